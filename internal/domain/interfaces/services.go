package interfaces

import (
	"github.com/shopspring/decimal"

	domaintypes "schoolbook/internal/domain/types"
)

// CurriculumService configures classes and their subjects.
type CurriculumService interface {
	CreateClass(name string, fee decimal.Decimal) (domaintypes.Class, error)
	AddSubject(
		classID domaintypes.ClassID,
		name string,
		coefficient float64,
	) (domaintypes.Subject, error)
	Classes() ([]domaintypes.Class, error)
	Class(id domaintypes.ClassID) (domaintypes.Class, error)
}

// EnrollmentService enrolls students and lists the directory.
type EnrollmentService interface {
	Enroll(req domaintypes.Enrollment) (domaintypes.Student, error)
	FindStudent(id domaintypes.StudentID) (domaintypes.Student, error)
	ListStudents() ([]domaintypes.StudentSummary, error)
	ListStudentsByClass(classID domaintypes.ClassID) ([]domaintypes.StudentSummary, error)
}

// GradingService records grades and computes averages.
type GradingService interface {
	RecordGrades(
		studentID domaintypes.StudentID,
		subject string,
		grades []float64,
	) (domaintypes.GradeEntry, error)
	SubjectAverage(studentID domaintypes.StudentID, subject string) (float64, bool, error)
	GeneralAverage(studentID domaintypes.StudentID) (float64, bool, error)
	SubjectReport(classID domaintypes.ClassID, subject string) (domaintypes.SubjectReport, error)
}

// LedgerService records tuition payments and cash movements.
type LedgerService interface {
	RecordPayment(studentID domaintypes.StudentID, amount decimal.Decimal) (domaintypes.Receipt, error)
	RecordCashMovement(
		description string,
		amount decimal.Decimal,
		kind domaintypes.TransactionKind,
	) (domaintypes.Transaction, error)
	CurrentBalance() (decimal.Decimal, error)
	ListTransactions() ([]domaintypes.LedgerLine, error)
	Statement(studentID domaintypes.StudentID) (domaintypes.Account, error)
}
