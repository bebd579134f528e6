package shell

import (
	"schoolbook/internal/domain"
)

func (s *Shell) recordPayment() error {
	students, err := s.reg.Enrollment.ListStudents()
	if err != nil {
		return err
	}
	if len(students) == 0 {
		s.println("\nNo student enrolled.")
		return nil
	}

	for {
		s.println("\n=== RECORD A STUDENT PAYMENT ===")
		if err := s.recordPaymentOnce(); err != nil {
			return err
		}
		more, err := s.again("record a payment")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) recordPaymentOnce() error {
	id, err := s.readPositiveInt("Student ID")
	if err != nil {
		return err
	}
	st, err := s.reg.Enrollment.FindStudent(domain.StudentID(id))
	if err != nil {
		return s.report(err)
	}
	account, err := s.reg.Ledger.Statement(st.ID)
	if err != nil {
		return s.report(err)
	}

	s.printf("\nStudent: %s\n", st.FullName())
	s.printf("Fees due: %s\n", s.money(account.Due))
	s.printf("Already paid: %s\n", s.money(account.Paid))
	s.printf("Remaining: %s\n", s.money(account.Remaining()))
	if account.InGoodStanding() {
		s.println("This student has already paid all fees.")
		return nil
	}

	amount, err := s.readAmount("\nAmount to pay (" + s.reg.Currency + ")")
	if err != nil {
		return err
	}
	receipt, err := s.reg.Ledger.RecordPayment(st.ID, amount)
	if err != nil {
		return s.report(err)
	}
	s.printf("Payment recorded! New remaining: %s\n", s.money(receipt.Remaining))
	s.printf("Transaction #%s recorded\n", receipt.Transaction.ID)
	s.printf("Reference: %s\n", receipt.Transaction.Reference)
	return nil
}

func (s *Shell) cashMovement(kind domain.TransactionKind) error {
	title, question := "CASH IN", "record a cash in"
	if kind == domain.Outflow {
		title, question = "CASH OUT", "record a cash out"
	}

	for {
		s.printf("\n=== %s ===\n", title)
		if kind == domain.Outflow {
			balance, err := s.reg.Ledger.CurrentBalance()
			if err != nil {
				return err
			}
			s.printf("Current balance: %s\n", s.money(balance))
		}
		desc, err := s.requireField("Description")
		if err != nil {
			return err
		}
		amount, err := s.readAmount("Amount (" + s.reg.Currency + ")")
		if err != nil {
			return err
		}
		tx, err := s.reg.Ledger.RecordCashMovement(desc, amount, kind)
		if err != nil {
			if err := s.report(err); err != nil {
				return err
			}
		} else {
			s.printf("Transaction #%s recorded: %s%s\n", tx.ID, tx.Kind.Sign(), s.money(tx.Amount))
		}

		more, err := s.again(question)
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) listTransactions() error {
	lines, err := s.reg.Ledger.ListTransactions()
	if err != nil {
		return err
	}
	s.printf("\nTRANSACTIONS (%d)\n", len(lines))
	if len(lines) == 0 {
		s.println("No transaction recorded.")
		return nil
	}
	for _, line := range lines {
		tx := line.Transaction
		s.printf("%s | %s | %s%s | %s",
			tx.ID, tx.CreatedAt.Format(dateLayout), tx.Kind.Sign(), s.money(tx.Amount), tx.Description)
		if tx.HasStudent() {
			s.printf(" | Student #%s %s", tx.StudentID, line.StudentName)
		}
		s.println()
	}
	return nil
}

func (s *Shell) showBalance() error {
	balance, err := s.reg.Ledger.CurrentBalance()
	if err != nil {
		return err
	}
	status := "Positive"
	if balance.IsNegative() {
		status = "Negative"
	}
	s.printf("\nCURRENT BALANCE: %s (%s)\n", s.money(balance), status)
	return nil
}

// Report prints the student list, every subject report and the ledger once,
// without reading input.
func (s *Shell) Report() error {
	if err := s.listStudents(); err != nil {
		return err
	}
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return err
	}
	for _, class := range classes {
		for _, subj := range class.Subjects {
			if err := s.printSubjectReport(class.ID, subj.Name); err != nil {
				return err
			}
		}
	}
	if err := s.listTransactions(); err != nil {
		return err
	}
	return s.showBalance()
}
