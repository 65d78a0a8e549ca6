package errs

import "errors"

// Kind is the coarse category of an error. Outer layers map each Kind to a
// distinct signal so callers can tell input mistakes from infrastructure failures.
type Kind int

const (
	// KindUnknown is any error the package does not recognise.
	KindUnknown Kind = iota
	// KindValidation covers missing, malformed or out-of-range input.
	KindValidation
	// KindNotFound covers references to entities that do not exist.
	KindNotFound
	// KindConflict covers uniqueness and referential collisions.
	KindConflict
	// KindPersistence covers store and transaction failures.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// KindOf classifies err by walking its chain. Validation wins over the other
// kinds because it is detected before any store call.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindUnknown
	}
}

// WrapPersistence wraps err as a PersistenceError for operation unless it is
// nil or already classified.
func WrapPersistence(operation string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return NewPersistenceErrorWithCause(operation, err)
}
