package domain

import "errors"

var (
	ErrUnknownServerID   = errors.New("unknown server id")
	ErrInvalidServerID   = errors.New("invalid server id")
	ErrDuplicateServerID = errors.New("duplicate server id")
	ErrInvalidKey        = errors.New("key out of range")
	ErrReadConfig        = errors.New("failed to read config file")
	ErrFormatConfig      = errors.New("config file format invalid")
	ErrMetricsRegister   = errors.New("failed to register metrics")
	ErrMetricsWrite      = errors.New("failed to write metrics file")
)
