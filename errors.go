// listidx contains helpers for keeping dense slices, sparse integer-keyed maps
// and their inverse indices consistent with one another. The error kinds
// shared by the subpackages live here.
package listidx

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrDuplicateElement     = errors.New("duplicate element")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrNotImplemented       = errors.New("not implemented")
	ErrConsistencyViolation = errors.New("consistency violation")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// DuplicateElementError is returned when a sequence expected to be free of
// duplicates repeats an element.
type DuplicateElementError struct {
	Element any
	// Index of the repeated occurrence
	Index int
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("already-seen element %v at index %d", e.Element, e.Index)
}

func (e *DuplicateElementError) Is(target error) bool {
	return target == ErrDuplicateElement
}

// IndexError describes an index outside of [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// ConsistencyError reports that the two views of an indexed map disagree
// about the value held at an index. It is a programming error: the sparse map
// was mutated behind the composite's back.
type ConsistencyError struct {
	Op     string
	Index  int
	Sparse any
	Dense  any
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s at index %d: sparse view holds %v, dense view holds %v",
		e.Op, e.Index, e.Sparse, e.Dense)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistencyViolation
}
