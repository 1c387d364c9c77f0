package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DeviceHeader carries the device identifier scoping the credential store.
const DeviceHeader = "X-Device-ID"

// Handler exposes the session state endpoint used by clients on startup to
// decide which screen tree to mount.
type Handler struct {
	stores Factory
}

func NewHandler(stores Factory) *Handler {
	return &Handler{stores: stores}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/session", h.getSession)
}

type sessionResponse struct {
	DeviceID string `json:"deviceId"`
	State    State  `json:"state"`
	Root     Root   `json:"root"`
}

// getSession performs the initial credential read for the caller's device
// and returns the derived state together with the resolved root. A missing
// device header is treated as a brand-new device: an identifier is minted
// and returned so the client can persist it.
func (h *Handler) getSession(c *fiber.Ctx) error {
	deviceID := c.Get(DeviceHeader)
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	mgr := NewManager(h.stores(deviceID))
	state := mgr.Initialize(c.Context())

	return c.JSON(sessionResponse{
		DeviceID: deviceID,
		State:    state,
		Root:     Resolve(state),
	})
}
