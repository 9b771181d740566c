package user

// User represents a row of the users table.
type User struct {
	ID    uint64 // ID is assigned by the database on insert
	Name  string // Name is the display name of the user
	Email string // Email is the contact address of the user
}
