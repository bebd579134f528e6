package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"schoolbook/internal/services/curriculum"
	"schoolbook/internal/services/enrollment"
	"schoolbook/internal/services/grading"
	"schoolbook/internal/services/ledger"
	"schoolbook/internal/store"
)

// NewRegistry constructs the dependency graph from cfg. Each call starts an
// empty school with fresh id counters.
func NewRegistry(cfg Config, log logrus.FieldLogger) *Registry {
	// One in-memory store backs every collection.
	mem := store.NewMemory()

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	currency := cfg.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	curriculumSvc := curriculum.New(mem, log.WithField("service", "curriculum"))
	gradingSvc := grading.New(curriculumSvc, mem, log.WithField("service", "grading"))
	enrollmentSvc := enrollment.New(curriculumSvc, mem, gradingSvc, log.WithField("service", "enrollment"))
	ledgerSvc := ledger.New(curriculumSvc, mem, mem, now, log.WithField("service", "ledger"))

	return &Registry{
		Curriculum: curriculumSvc,
		Enrollment: enrollmentSvc,
		Grading:    gradingSvc,
		Ledger:     ledgerSvc,
		Currency:   currency,
		Log:        log,
	}
}
