package compare

import (
	"fmt"

	"HashCompare/internal/digest"
)

// Operand identifies which side of a comparison an error came from.
type Operand int

const (
	First Operand = iota
	Second
)

func (o Operand) String() string {
	if o == Second {
		return "second"
	}
	return "first"
}

// OperandError wraps a resolution failure with the operand it hit.
// Compare resolves the first operand before touching the second, so a
// First error means the second input was never read or hashed.
type OperandError struct {
	Operand Operand
	Err     error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("error with %s input: %v", e.Operand, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// Result holds both digests and the divergence between them. DiffChars
// and DiffPercent are only meaningful when Equal is false.
type Result struct {
	Algorithm   digest.Algorithm
	DigestA     string
	DigestB     string
	Equal       bool
	DiffChars   int
	DiffPercent float64
}
