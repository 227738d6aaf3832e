package utils

import (
	errors "github.com/go-errors/errors"
)

var (
	IOError             = errors.New("IOError")
	NotImplementedError = errors.New("Not implemented")
)
