package application

// Typed failure kinds raised by the service layer. The HTTP error mapper is
// the only place these are converted to transport status codes.

// NotFoundError means no user exists for the given identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "User not found: " + e.ID
}

// ConflictError means a write collided with the email uniqueness invariant.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return "Email already in use: " + e.Email
}

// InvalidArgumentError means a caller-supplied argument is structurally
// wrong, e.g. a malformed identifier.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

// ConstraintViolationError means a query parameter failed its constraint.
type ConstraintViolationError struct {
	Msg string
}

func (e *ConstraintViolationError) Error() string {
	return e.Msg
}
