package item

import "errors"

var (
	ErrNotFound      = errors.New("item not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrEmptyName     = errors.New("name must not be empty")
)
