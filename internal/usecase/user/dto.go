package user

const (
	// MsgUserCreated is reported when the insert succeeds.
	MsgUserCreated = "User created successfully"
	// MsgCreateFailedPrefix precedes the driver error text when the insert fails.
	MsgCreateFailedPrefix = "Failed to create user: "
)

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string
	Email string
}

// Result is the outcome of a write operation. It is returned for both
// success and failure; transports decide how to render it.
type Result struct {
	Success bool
	Message string
}

// ListUsersResponse represents the response payload for user listing.
//
// Degraded is set when the query failed and Users was replaced by an empty
// list. Callers render a degraded response exactly like an empty one.
type ListUsersResponse struct {
	Users    []User
	Degraded bool
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    uint64
	Name  string
	Email string
}
