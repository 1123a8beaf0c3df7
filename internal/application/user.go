package application

import (
	"errors"
	"time"

	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is not active")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownStatus      = errors.New("unknown account status")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Login verifies the credentials and issues a signed token carrying the
// caller's role and zone.
func (s *UserService) Login(input user.LoginInput) (user.User, string, error) {
	usr, err := s.Repos.User.GetByEmail(input.Email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.ActiveStatus != user.StatusActive {
		return user.User{}, "", ErrUserInactive
	}

	token, err := middleware.GenerateToken(usr, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// Profile returns the stored record for the authenticated caller.
func (s *UserService) Profile(id uint) (user.User, error) {
	return s.Repos.User.GetByID(id)
}

// ListUsers returns accounts matching the filter, for the admin console.
func (s *UserService) ListUsers(filter user.Filter) ([]user.User, error) {
	return s.Repos.User.List(filter)
}

// CreateUser registers an account with a hashed password. New accounts start
// active.
func (s *UserService) CreateUser(input user.CreateInput) (user.User, error) {
	if !input.RoleID.Valid() {
		return user.User{}, ErrUnknownRole
	}
	if _, err := s.Repos.User.GetByEmail(input.Email); err == nil {
		return user.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}
	usr := user.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Contact:      input.Contact,
		Password:     string(hash),
		RoleID:       input.RoleID,
		Zone:         input.Zone,
		ActiveStatus: user.StatusActive,
	}
	if err := s.Repos.User.Create(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// UpdateUser applies the non-nil fields of the input to the stored account.
// Email and password never change through this path.
func (s *UserService) UpdateUser(id uint, input user.UpdateInput) (user.User, error) {
	usr, err := s.Repos.User.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}

	if input.FirstName != nil {
		usr.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		usr.LastName = *input.LastName
	}
	if input.Contact != nil {
		usr.Contact = *input.Contact
	}
	if input.RoleID != nil {
		if !input.RoleID.Valid() {
			return user.User{}, ErrUnknownRole
		}
		usr.RoleID = *input.RoleID
	}
	if input.Zone != nil {
		usr.Zone = *input.Zone
	}

	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// SetUserStatus activates, deactivates or blocks an account.
func (s *UserService) SetUserStatus(id uint, status user.Status) (user.User, error) {
	if !status.Valid() {
		return user.User{}, ErrUnknownStatus
	}
	usr, err := s.Repos.User.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	usr.ActiveStatus = status
	if err := s.Repos.User.Save(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
