package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnknownTaste    = errors.New("unknown taste profile")
	ErrUnknownStrength = errors.New("unknown strength")
	ErrInvalidRatio    = errors.New("ratio out of range")
	ErrInvalidCoffee   = errors.New("coffee amount out of range")
)
