package interfaces

import domaintypes "schoolbook/internal/domain/types"

// ClassStore holds the class collection. CreateClass assigns the id.
type ClassStore interface {
	CreateClass(class domaintypes.Class) (domaintypes.Class, error)
	SaveClass(class domaintypes.Class) error
	LoadClass(id domaintypes.ClassID) (domaintypes.Class, bool, error)
	ListClasses() ([]domaintypes.Class, error)
}

// StudentStore holds enrolled students in enrollment order. CreateStudent
// assigns the next student id.
type StudentStore interface {
	CreateStudent(student domaintypes.Student) (domaintypes.Student, error)
	SaveStudent(student domaintypes.Student) error
	LoadStudent(id domaintypes.StudentID) (domaintypes.Student, bool, error)
	ListStudents() ([]domaintypes.Student, error)
}

// TransactionStore is the append-only cash ledger.
type TransactionStore interface {
	AppendTransaction(tx domaintypes.Transaction) (domaintypes.Transaction, error)
	ListTransactions() ([]domaintypes.Transaction, error)
}
