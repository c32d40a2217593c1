package auth

import (
	"sort"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	byID map[string]*User
	deps map[string]bool
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID: make(map[string]*User),
		deps: make(map[string]bool),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byID[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *InMemoryUserRepository) FindByID(id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *InMemoryUserRepository) ListByRole(role string) ([]*User, error) {
	var users []*User
	for _, u := range r.byID {
		if role == "" || u.Role == role {
			users = append(users, u)
		}
	}
	// Map iteration order is random; keep listings stable.
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (r *InMemoryUserRepository) Update(user *User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return ErrUserNotFound
	}
	r.byID[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *InMemoryUserRepository) HasDependencies(id string) (bool, error) {
	return r.deps[id], nil
}

// MarkDependency records that another table references the user.
func (r *InMemoryUserRepository) MarkDependency(id string) {
	r.deps[id] = true
}
