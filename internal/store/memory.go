package store

import (
	"sync"

	"schoolbook/internal/domain"
)

// Memory keeps classes, students and the ledger in insertion order.
type Memory struct {
	mu sync.Mutex

	classes      []domain.Class
	students     []domain.Student
	transactions []domain.Transaction

	nextClassID       domain.ClassID
	nextStudentID     domain.StudentID
	nextTransactionID domain.TransactionID
}

// NewMemory returns an empty store whose counters start at 1.
func NewMemory() *Memory {
	return &Memory{
		nextClassID:       1,
		nextStudentID:     1,
		nextTransactionID: 1,
	}
}

// Compile-time assertions that Memory implements the domain stores.
var (
	_ domain.ClassStore       = (*Memory)(nil)
	_ domain.StudentStore     = (*Memory)(nil)
	_ domain.TransactionStore = (*Memory)(nil)
)
