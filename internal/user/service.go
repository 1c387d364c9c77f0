package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface is implemented by Service and by test doubles in other
// packages.
type ServiceInterface interface {
	GetByID(id int) (User, error)
	Register(u User) (User, error)
	Authenticate(email, password string) (User, error)
	UpdateProfile(id int, u User) (User, error)
}

type Service struct {
	repo  Repository
	roles RolePolicy
}

func NewService(repo Repository, roles RolePolicy) *Service {
	return &Service{repo: repo, roles: roles}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Register creates an account. The role is resolved by the policy at
// creation time and stored on the row.
func (s *Service) Register(u User) (User, error) {
	u.Email = normalizeEmail(u.Email)

	if len(u.Password) < 6 {
		return User{}, ErrWeakPassword
	}

	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u.Password = string(hashed)
	u.Role = s.roles(u.Email)
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.repo.Create(u)
}

// Authenticate returns the account matching the credentials. Both an unknown
// email and a wrong password collapse into ErrInvalidCredentials so the
// caller cannot probe which one it was.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) UpdateProfile(id int, u User) (User, error) {
	if u.Password != "" {
		if len(u.Password) < 6 {
			return User{}, ErrWeakPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}
	u.UpdatedAt = time.Now().UTC()
	return s.repo.Update(id, u)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
