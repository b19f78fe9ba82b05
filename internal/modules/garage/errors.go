package garage

import "errors"

var (
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrDuplicateService = errors.New("duplicate service")
)
