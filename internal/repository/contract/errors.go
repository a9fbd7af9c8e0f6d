package contract

import "errors"

// ErrForeignKeyViolation is returned when an insert references a row that no
// longer exists, e.g. a chat message racing a patient delete.
var ErrForeignKeyViolation = errors.New("referenced row does not exist")

// ErrUniqueViolation is returned when an insert collides with a unique
// constraint (users.email).
var ErrUniqueViolation = errors.New("row already exists")
