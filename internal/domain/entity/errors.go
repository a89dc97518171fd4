package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidContent is matched by every InvalidContentError
var ErrInvalidContent = errors.New("invalid sprite content")

// InvalidContentError reports a malformed or incomplete sprite sheet.
// An entity built from such content cannot be used.
type InvalidContentError struct {
	Row    int
	Reason string
}

func (e *InvalidContentError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid sprite content: %s", e.Reason)
	}
	return fmt.Sprintf("invalid sprite content: row %d: %s", e.Row, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidContent) succeed
func (e *InvalidContentError) Is(target error) bool {
	return target == ErrInvalidContent
}

// PreconditionViolation is the panic value for programmer errors such as a
// negative or non-finite time, or an unsupported direction.
type PreconditionViolation struct {
	Op     string
	Detail string
}

func (p PreconditionViolation) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", p.Op, p.Detail)
}

func violate(op, format string, args ...any) {
	panic(PreconditionViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// validTime reports whether t is a usable duration or clock value:
// finite and not negative. NaN fails every comparison, so it is rejected too.
func validTime(t float64) bool {
	return t >= 0 && !math.IsInf(t, 1)
}
