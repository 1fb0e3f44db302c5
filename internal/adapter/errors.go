package adapter

import "errors"

var (
	ErrValidation   = errors.New("request rejected by validation")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)
