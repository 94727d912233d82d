package parser

import (
	"errors"
	"fmt"
)

// Sentinels for the schema-violation error kinds §7 assigns to the parser.
var (
	ErrUnexpectedElement = errors.New("parser: unexpected element")
	ErrMissingElement    = errors.New("parser: missing required element")
	ErrBadAttribute      = errors.New("parser: bad attribute")
)

func unexpectedElement(tag string) error {
	return fmt.Errorf("%w: %q", ErrUnexpectedElement, tag)
}

func missingElement(tag string) error {
	return fmt.Errorf("%w: %q", ErrMissingElement, tag)
}

func badAttribute(name, value string, cause error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrBadAttribute, name, value, cause)
}
