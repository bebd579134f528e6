package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"schoolbook/internal/domain"
	"schoolbook/internal/tally"
)

// Clock supplies transaction timestamps.
type Clock func() time.Time

// Service keeps the cash ledger and student tuition accounts.
type Service struct {
	curriculum domain.CurriculumService
	students   domain.StudentStore
	txs        domain.TransactionStore
	now        Clock
	newRef     func() uuid.UUID
	log        logrus.FieldLogger
}

// New returns a ledger service. A nil clock means time.Now.
func New(
	curriculum domain.CurriculumService,
	students domain.StudentStore,
	txs domain.TransactionStore,
	now Clock,
	log logrus.FieldLogger,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		curriculum: curriculum,
		students:   students,
		txs:        txs,
		now:        now,
		newRef:     uuid.New,
		log:        log,
	}
}

// RecordPayment books a tuition payment for the student and returns the
// receipt with what remains due afterwards.
func (s *Service) RecordPayment(studentID domain.StudentID, amount decimal.Decimal) (domain.Receipt, error) {
	st, account, err := s.account(studentID)
	if err != nil {
		return domain.Receipt{}, err
	}
	log := s.log.WithField("student_id", st.ID).WithField("amount", amount.String())

	remaining := account.Remaining()
	if !remaining.IsPositive() {
		log.Debug("payment refused, nothing due")
		return domain.Receipt{}, fmt.Errorf("%w: %s has already paid all fees", domain.ErrNothingDue, st.FullName())
	}
	if !amount.IsPositive() {
		return domain.Receipt{}, fmt.Errorf("%w: payment must be greater than 0, got %s", domain.ErrInvalidValue, amount)
	}
	if amount.GreaterThan(remaining) {
		log.Debug("payment refused, exceeds remaining")
		return domain.Receipt{}, fmt.Errorf("%w: remaining to pay is %s", domain.ErrExcessPayment, remaining.StringFixed(2))
	}

	st.AmountPaid = st.AmountPaid.Add(amount)
	if err := s.students.SaveStudent(st); err != nil {
		return domain.Receipt{}, err
	}
	tx, err := s.append(domain.Transaction{
		Description: "Payment from " + st.FullName(),
		Amount:      amount,
		Kind:        domain.Inflow,
		StudentID:   st.ID,
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	log.WithField("transaction_id", tx.ID).Info("tuition payment recorded")
	return domain.Receipt{Transaction: tx, Remaining: remaining.Sub(amount)}, nil
}

// RecordCashMovement books a cash movement not tied to a student. Outflows
// may not take the balance below zero.
func (s *Service) RecordCashMovement(
	description string,
	amount decimal.Decimal,
	kind domain.TransactionKind,
) (domain.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Transaction{}, fmt.Errorf("%w: description is required", domain.ErrInvalidValue)
	}
	if !kind.Valid() {
		return domain.Transaction{}, fmt.Errorf("%w: unknown transaction kind %q", domain.ErrInvalidValue, kind)
	}
	if !amount.IsPositive() {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be greater than 0, got %s", domain.ErrInvalidValue, amount)
	}

	if kind == domain.Outflow {
		balance, err := s.CurrentBalance()
		if err != nil {
			return domain.Transaction{}, err
		}
		if amount.GreaterThan(balance) {
			s.log.WithField("amount", amount.String()).
				WithField("balance", balance.String()).
				Warn("outflow refused, insufficient balance")
			return domain.Transaction{}, fmt.Errorf("%w: current balance is %s", domain.ErrBalanceInsufficient, balance.StringFixed(2))
		}
	}

	tx, err := s.append(domain.Transaction{Description: description, Amount: amount, Kind: kind})
	if err != nil {
		return domain.Transaction{}, err
	}
	s.log.WithField("transaction_id", tx.ID).
		WithField("kind", string(tx.Kind)).
		WithField("amount", tx.Amount.String()).
		Info("cash movement recorded")
	return tx, nil
}

// CurrentBalance folds the full log into inflows minus outflows.
func (s *Service) CurrentBalance() (decimal.Decimal, error) {
	txs, err := s.txs.ListTransactions()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return tally.Balance(txs), nil
}

// ListTransactions returns the log in creation order, with the student's
// name on tagged entries.
func (s *Service) ListTransactions() ([]domain.LedgerLine, error) {
	txs, err := s.txs.ListTransactions()
	if err != nil {
		return nil, err
	}
	out := make([]domain.LedgerLine, 0, len(txs))
	for _, tx := range txs {
		line := domain.LedgerLine{Transaction: tx}
		if tx.HasStudent() {
			st, ok, err := s.students.LoadStudent(tx.StudentID)
			if err != nil {
				return nil, err
			}
			if ok {
				line.StudentName = st.FullName()
			}
		}
		out = append(out, line)
	}
	return out, nil
}

// Statement returns the student's tuition account.
func (s *Service) Statement(studentID domain.StudentID) (domain.Account, error) {
	_, account, err := s.account(studentID)
	return account, err
}

func (s *Service) account(id domain.StudentID) (domain.Student, domain.Account, error) {
	st, ok, err := s.students.LoadStudent(id)
	if err != nil {
		return domain.Student{}, domain.Account{}, err
	}
	if !ok {
		return domain.Student{}, domain.Account{}, fmt.Errorf("%w: no student with id %s", domain.ErrNotFound, id)
	}
	class, err := s.curriculum.Class(st.ClassID)
	if err != nil {
		return domain.Student{}, domain.Account{}, err
	}
	return st, st.Account(class), nil
}

func (s *Service) append(tx domain.Transaction) (domain.Transaction, error) {
	tx.Reference = s.newRef()
	tx.CreatedAt = s.now()
	return s.txs.AppendTransaction(tx)
}

// Compile-time assertion that Service implements domain.LedgerService.
var _ domain.LedgerService = (*Service)(nil)
