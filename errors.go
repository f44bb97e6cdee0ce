package main

import "errors"

// Error kinds reported by the compiler. They are always wrapped with the
// offending node, link, or file; match them with errors.Is.
var (
	ErrMissingInput         = errors.New("missing topology input")
	ErrUnknownNodeType      = errors.New("unknown node type")
	ErrMalformedRate        = errors.New("malformed data rate")
	ErrInvalidLinkEndpoints = errors.New("invalid link endpoints")
	ErrAddressExhausted     = errors.New("address space exhausted")
)
