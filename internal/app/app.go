package app

import (
	"github.com/sirupsen/logrus"

	"schoolbook/internal/domain"
)

// Registry is the root of the school: every operation on classes, students,
// grades and cash goes through one of its services. It holds all state of
// the run and must be driven by one caller at a time.
type Registry struct {
	Curriculum domain.CurriculumService
	Enrollment domain.EnrollmentService
	Grading    domain.GradingService
	Ledger     domain.LedgerService

	Currency string
	Log      logrus.FieldLogger
}
