package auth

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	// ListByRole returns every user when role is empty.
	ListByRole(role string) ([]*User, error)
	Update(user *User) error
	Delete(id string) error
	// HasDependencies reports whether other tables still reference the
	// user, which blocks deletion.
	HasDependencies(id string) (bool, error)
}
