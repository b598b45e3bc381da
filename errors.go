package wpinq

import (
	"errors"
	"fmt"
)

// Sentinel causes for ContractViolation, naming the specific programmer
// error that was detected. These are never returned as ordinary errors;
// they are always the Cause of a panic'd *ContractViolation.
var (
	ErrEmptyGrid            = errors.New(`wpinq: fit_cdf_seq requires non-empty horizontal and vertical inputs`)
	ErrNonPositiveWidth     = errors.New(`wpinq: shave requires a positive width`)
	ErrPrematureObservation = errors.New(`wpinq: measurement observed before its probe reported quiescence`)
	ErrHandleClosed         = errors.New(`wpinq: dataset handle is closed`)
	ErrNilErrorAccumulator  = errors.New(`wpinq: measure requires a non-nil error accumulator`)
	ErrNilProbe             = errors.New(`wpinq: measure requires a non-nil probe`)
)

// ContractViolation is raised, via panic, whenever a caller breaks one
// of the programmer-facing contracts documented alongside each
// operator (non-positive shave width, fit_cdf_seq on an empty grid,
// observing a measurement before its probe is quiescent, pushing to a
// closed handle). It is not meant to be recovered by application code;
// a host such as the scheduler package may choose to recover, log, and
// re-panic or terminate, but the core itself never retries.
type ContractViolation struct {
	Op    string
	Cause error
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf(`wpinq: contract violation in %s: %v`, e.Op, e.Cause)
}

func (e *ContractViolation) Unwrap() error { return e.Cause }

// Violate panics with a *ContractViolation wrapping cause, tagged with
// op, the name of the operation that detected it.
func Violate(op string, cause error) {
	panic(&ContractViolation{Op: op, Cause: cause})
}
