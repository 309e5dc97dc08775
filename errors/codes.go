package errors

import "slices"

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Parse errors
//   - E3xxx: Runtime errors
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Invalid assignment target
	E1008 ErrorCode = "E1008" // Invalid number literal
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1011 ErrorCode = "E1011" // Expected string literal

	// Runtime errors (E3xxx)
	E3002 ErrorCode = "E3002" // Division by zero
	E3007 ErrorCode = "E3007" // Unknown node type
	E3011 ErrorCode = "E3011" // Execution cancelled
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "invalid assignment target",
	E1008: "invalid number literal",
	E1009: "maximum nesting depth exceeded",
	E1011: "expected string literal",

	E3002: "division by zero",
	E3007: "unknown node type",
	E3011: "execution cancelled",
}

// Codes returns every known error code in ascending order.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(codeDescriptions))
	for c := range codeDescriptions {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '3':
		return "runtime"
	default:
		return "unknown"
	}
}
