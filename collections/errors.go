package collections

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoOpenChange    = errors.New("no change is open")
	ErrNoCurrentStep   = errors.New("change has no current step")
	ErrNotPermutation  = errors.New("step is not a permutation")
	ErrBadPermutation  = errors.New("not a permutation of its range")
)
