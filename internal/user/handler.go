package user

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wichananm65/drink-shop-backend/internal/session"
)

const tokenTTL = 72 * time.Hour

type Handler struct {
	service  ServiceInterface
	sessions session.Factory
	secret   []byte
	log      *zap.SugaredLogger
}

func NewHandler(service ServiceInterface, sessions session.Factory, secret string, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, sessions: sessions, secret: []byte(secret), log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-up", h.signUp)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-out", h.signOut)
	app.Get("/api/v1/profile", h.getProfile)
	app.Put("/api/v1/profile", h.updateProfile)
	app.Patch("/api/v1/profile", h.updateProfile)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func (r signUpRequest) isMissingRequiredFields() bool {
	return r.Email == "" || r.Password == "" || r.FirstName == ""
}

// signIn authenticates the account, issues the session token and persists
// it for the caller's device before the response is sent. A failed
// credential write fails the sign-in so the client never holds a session
// that would disappear on restart.
func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password are required"})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	signed, err := h.issueToken(u)
	if err != nil {
		h.log.Errorw("sign token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	deviceID := c.Get(session.DeviceHeader)
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	mgr := session.NewManager(h.sessions(deviceID))
	mgr.Initialize(c.Context())
	if err := mgr.Login(c.Context(), signed, u.Role); err != nil {
		h.log.Errorw("persist session", "device", deviceID, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "could not persist session"})
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"user":     sanitizeUser(u),
		"token":    signed,
		"deviceId": deviceID,
		"root":     session.Resolve(mgr.State()),
	})
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(signUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.isMissingRequiredFields() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}
	if !strings.Contains(payload.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email address"})
	}

	created, err := h.service.Register(User{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
	})
	if err != nil {
		switch err {
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
		case ErrWeakPassword:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password is too weak"})
		default:
			h.log.Errorw("register user", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(sanitizeUser(created))
}

// signOut clears the device's stored credentials. Signing out a device that
// holds no session is a success.
func (h *Handler) signOut(c *fiber.Ctx) error {
	deviceID := c.Get(session.DeviceHeader)
	if deviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing " + session.DeviceHeader + " header"})
	}

	mgr := session.NewManager(h.sessions(deviceID))
	if err := mgr.Logout(c.Context()); err != nil {
		h.log.Errorw("clear session", "device", deviceID, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "could not clear session"})
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	return c.JSON(sanitizeUser(u))
}

type profileUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Password  *string `json:"password,omitempty"`
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	var payload profileUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	existing.Password = ""
	if payload.FirstName != nil {
		existing.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		existing.LastName = *payload.LastName
	}
	if payload.Phone != nil {
		existing.Phone = *payload.Phone
	}
	if payload.Password != nil {
		existing.Password = *payload.Password
	}

	updated, err := h.service.UpdateProfile(userID, existing)
	if err != nil {
		if err == ErrWeakPassword {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password is too weak"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(sanitizeUser(updated))
}

func (h *Handler) issueToken(u User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}

// GetUserIDFromCtx extracts the user_id claim from the JWT token stored in
// `c.Locals("user")`. Several packages need this, so it is exported here.
func GetUserIDFromCtx(c *fiber.Ctx) (int, error) {
	claims, err := claimsFromCtx(c)
	if err != nil {
		return 0, err
	}
	if raw, ok := claims["user_id"]; ok {
		if v, ok := raw.(float64); ok {
			return int(v), nil
		}
	}
	return 0, fiber.ErrUnauthorized
}

// GetRoleFromCtx extracts the role claim from the JWT token.
func GetRoleFromCtx(c *fiber.Ctx) (session.Role, error) {
	claims, err := claimsFromCtx(c)
	if err != nil {
		return session.RoleNone, err
	}
	if raw, ok := claims["role"].(string); ok && raw != "" {
		return session.Role(raw), nil
	}
	return session.RoleNone, fiber.ErrUnauthorized
}

func claimsFromCtx(c *fiber.Ctx) (jwt.MapClaims, error) {
	u := c.Locals("user")
	if u == nil {
		return nil, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// AdminOnly rejects requests whose token does not carry the admin role.
// Admin route groups mount it after the JWT middleware.
func AdminOnly(c *fiber.Ctx) error {
	role, err := GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if role != session.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	return c.Next()
}
