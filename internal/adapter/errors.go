package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("gateway rejected the request")
	ErrUnauthorized        = errors.New("gateway rejected the api key")
	ErrNotFound            = errors.New("gateway endpoint not found")
	ErrInternalServerError = errors.New("gateway internal error")
)
