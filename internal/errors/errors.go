package errors

import "errors"

// Code errors indicate the code could not be obtained.
var (
	// ErrNoCode indicates no code was given on the command line, in the
	// environment, in the config file or at the prompt.
	ErrNoCode = errors.New("no code supplied")

	// ErrInvalidCode indicates the code is not a base 10 64-bit integer.
	ErrInvalidCode = errors.New("code is not an integer")
)

// Input errors indicate the input could not be read as ciphertext.
var (
	// ErrMalformedArmor indicates an armor header that cannot be parsed.
	ErrMalformedArmor = errors.New("malformed armor header")
)
