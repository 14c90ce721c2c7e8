package factory

import (
	"errors"
)

var (
	ErrSealed      = errors.New("type already has a construction routine")
	ErrNilInstance = errors.New("constructor returned a nil instance")
)
