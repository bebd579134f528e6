package domain

import (
	interfaces "schoolbook/internal/domain/interfaces"
	types "schoolbook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ClassID          = types.ClassID
	StudentID        = types.StudentID
	TransactionID    = types.TransactionID
	Subject          = types.Subject
	Class            = types.Class
	Sex              = types.Sex
	Student          = types.Student
	Account          = types.Account
	TransactionKind  = types.TransactionKind
	Transaction      = types.Transaction
	Enrollment       = types.Enrollment
	StudentSummary   = types.StudentSummary
	GradeEntry       = types.GradeEntry
	SubjectReportRow = types.SubjectReportRow
	SubjectReport    = types.SubjectReport
	LedgerLine       = types.LedgerLine
	Receipt          = types.Receipt
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ClassStore        = interfaces.ClassStore
	StudentStore      = interfaces.StudentStore
	TransactionStore  = interfaces.TransactionStore
	CurriculumService = interfaces.CurriculumService
	EnrollmentService = interfaces.EnrollmentService
	GradingService    = interfaces.GradingService
	LedgerService     = interfaces.LedgerService
)

const (
	SexMale   = types.SexMale
	SexFemale = types.SexFemale
	Inflow    = types.Inflow
	Outflow   = types.Outflow
)

var (
	// NameKey is types.NameKey.
	NameKey = types.NameKey
	// SameName is types.SameName.
	SameName = types.SameName
	// ParseSex is types.ParseSex.
	ParseSex = types.ParseSex
)
