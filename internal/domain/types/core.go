package types

import "strconv"

// ClassID identifies a class. Zero means none.
type ClassID int

// String returns the decimal form of the identifier.
func (id ClassID) String() string { return strconv.Itoa(int(id)) }

// StudentID identifies an enrolled student. Zero means none.
type StudentID int

// String returns the decimal form of the identifier.
func (id StudentID) String() string { return strconv.Itoa(int(id)) }

// TransactionID identifies a ledger transaction. Zero means none.
type TransactionID int

// String returns the decimal form of the identifier.
func (id TransactionID) String() string { return strconv.Itoa(int(id)) }
