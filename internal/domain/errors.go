package domain

import "errors"

// Every failure a service reports wraps exactly one of these, so callers can
// branch with errors.Is and still print the detailed message.
var (
	// ErrInvalidValue is returned when an input fails a range, positivity or
	// presence constraint.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateName is returned when a class or subject name collides,
	// ignoring case, with an existing one in the same scope.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotFound is returned when an id or selection resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrExcessPayment is returned when a payment is larger than what remains due.
	ErrExcessPayment = errors.New("payment exceeds remaining balance")

	// ErrNothingDue is returned when paying for a student in good standing.
	ErrNothingDue = errors.New("nothing left to pay")

	// ErrBalanceInsufficient is returned when an outflow exceeds the ledger balance.
	ErrBalanceInsufficient = errors.New("insufficient balance")

	// ErrEmptyPrerequisite is returned when an operation needs classes,
	// students or subjects that are not configured yet.
	ErrEmptyPrerequisite = errors.New("prerequisite not configured")
)
