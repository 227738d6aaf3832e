package pmem

import (
	errors "github.com/go-errors/errors"
)

var (
	// The acquisition device could not be opened or queried at all.
	DeviceUnavailableError = errors.New("memory device unavailable")

	// The driver returned a truncated or inconsistent memory map. We
	// never fall back to a partial or empty map - a handle either
	// opens with a complete map or not at all.
	MalformedMapError = errors.New("malformed memory map")
)
