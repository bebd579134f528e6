package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind tells whether cash came in or went out.
type TransactionKind string

const (
	Inflow  TransactionKind = "inflow"
	Outflow TransactionKind = "outflow"
)

// Valid reports whether k is Inflow or Outflow.
func (k TransactionKind) Valid() bool { return k == Inflow || k == Outflow }

// Sign returns "+" for inflows and "-" for outflows.
func (k TransactionKind) Sign() string {
	if k == Outflow {
		return "-"
	}
	return "+"
}

// Transaction is an immutable entry of the cash ledger.
type Transaction struct {
	ID          TransactionID   `json:"id"`
	Reference   uuid.UUID       `json:"reference"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        TransactionKind `json:"kind"`
	StudentID   StudentID       `json:"student_id,omitempty"` // zero when untagged
	CreatedAt   time.Time       `json:"created_at"`
}

// HasStudent reports whether the transaction is tied to a student.
func (t Transaction) HasStudent() bool { return t.StudentID != 0 }

// Signed returns the amount with the sign of its kind applied.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Outflow {
		return t.Amount.Neg()
	}
	return t.Amount
}
