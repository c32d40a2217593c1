package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrMissingFields       = errors.New("missing required fields")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserHasDependencies = errors.New("user has existing records and cannot be deleted")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(name, email, password, role string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if role == "" {
		role = RoleStudent
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// --------------------------------------------------
// Admin user management
// --------------------------------------------------

// ListUsers returns all users, optionally filtered to one role.
func (s *Service) ListUsers(role string) ([]*User, error) {
	if role != "" && !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.repo.ListByRole(role)
}

// UserUpdate carries the fields an admin may change. Empty fields keep
// their current value.
type UserUpdate struct {
	Name     string
	Email    string
	Role     string
	Password string
}

func (s *Service) UpdateUser(id string, upd UserUpdate) (*User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Email != "" && upd.Email != user.Email {
		exists, _ := s.repo.ExistsByEmail(upd.Email)
		if exists {
			return nil, ErrEmailExists
		}
		user.Email = upd.Email
	}
	if upd.Role != "" {
		if !ValidRole(upd.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = upd.Role
	}
	if upd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user unless other tables still reference them.
func (s *Service) DeleteUser(id string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	has, err := s.repo.HasDependencies(id)
	if err != nil {
		return err
	}
	if has {
		return ErrUserHasDependencies
	}
	return s.repo.Delete(id)
}
