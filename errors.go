package superset

import "github.com/pkg/errors"

var (
	ErrInvalidOperation = errors.New("invalid operation")
)
