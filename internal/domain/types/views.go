package types

import "github.com/shopspring/decimal"

// Enrollment is the input of a student enrollment. Fields are trimmed before
// the validate tags are checked.
type Enrollment struct {
	LastName  string  `validate:"required"`
	FirstName string  `validate:"required"`
	Address   string  `validate:"required"`
	Sex       Sex     `validate:"required,oneof=M F"`
	ClassID   ClassID `validate:"gt=0"`
}

// StudentSummary is one line of a student listing.
type StudentSummary struct {
	Student    Student
	ClassName  string
	Average    float64 // meaningful only when HasAverage
	HasAverage bool
	Account    Account
}

// GradeEntry reports how a batch of grades was split by RecordGrades.
type GradeEntry struct {
	Subject  Subject
	Accepted []float64
	Rejected []float64
}

// SubjectReportRow is one student's standing in a subject.
type SubjectReportRow struct {
	Student Student
	Grades  []float64
	Average float64 // meaningful only when Graded
	Graded  bool
}

// SubjectReport lists a class's results in one subject.
type SubjectReport struct {
	Class   Class
	Subject Subject
	Rows    []SubjectReportRow

	// ClassAverage is the mean of per-student averages over graded rows only.
	ClassAverage    float64
	HasClassAverage bool
	GradedCount     int
	Total           int
}

// LedgerLine is a transaction annotated for display.
type LedgerLine struct {
	Transaction Transaction
	StudentName string // empty when the transaction is not tied to a student
}

// Receipt is returned by a successful tuition payment.
type Receipt struct {
	Transaction Transaction
	Remaining   decimal.Decimal
}
