package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"schoolbook/internal/app"
	"schoolbook/internal/domain"
)

// Shell drives a Registry from line-oriented input.
type Shell struct {
	reg *app.Registry
	in  *bufio.Scanner
	out io.Writer
}

// New returns a shell reading commands from in and writing to out.
func New(reg *app.Registry, in io.Reader, out io.Writer) *Shell {
	return &Shell{reg: reg, in: bufio.NewScanner(in), out: out}
}

// Run shows the main menu until the user quits or input ends.
func (s *Shell) Run() error {
	err := s.mainMenu()
	if errors.Is(err, io.EOF) {
		s.println("\nGoodbye!")
		return nil
	}
	return err
}

func (s *Shell) mainMenu() error {
	for {
		s.println("\n=== SCHOOL MANAGEMENT SYSTEM ===")
		s.println("1. Students")
		s.println("2. Bursar")
		s.println("3. Quit")
		choice, err := s.readLine("\nChoice")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.studentsMenu()
		case "2":
			err = s.bursarMenu()
		case "3":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) studentsMenu() error {
	actions := map[string]func() error{
		"1": s.configureClass,
		"2": s.configureSubjects,
		"3": s.enrollStudent,
		"4": s.listStudents,
		"5": s.listStudentsByClass,
		"6": s.enterGrades,
		"7": s.showSubjectGrades,
	}
	for {
		s.println("\n=== STUDENTS ===")
		s.println("1. Configure a class")
		s.println("2. Configure subjects")
		s.println("3. Enroll a student")
		s.println("4. List all students")
		s.println("5. List students by class")
		s.println("6. Enter grades")
		s.println("7. Show grades for a subject")
		s.println("8. Back")
		choice, err := s.readLine("\nChoice")
		if err != nil {
			return err
		}
		if choice == "8" {
			return nil
		}
		action, ok := actions[choice]
		if !ok {
			s.println("Invalid choice")
			continue
		}
		if err := action(); err != nil {
			return err
		}
	}
}

func (s *Shell) bursarMenu() error {
	actions := map[string]func() error{
		"1": s.recordPayment,
		"2": func() error { return s.cashMovement(domain.Inflow) },
		"3": func() error { return s.cashMovement(domain.Outflow) },
		"4": s.listTransactions,
		"5": s.showBalance,
	}
	for {
		s.println("\n=== BURSAR ===")
		s.println("1. Record a student payment")
		s.println("2. Cash in")
		s.println("3. Cash out")
		s.println("4. List transactions")
		s.println("5. Show balance")
		s.println("6. Back")
		choice, err := s.readLine("\nChoice")
		if err != nil {
			return err
		}
		if choice == "6" {
			return nil
		}
		action, ok := actions[choice]
		if !ok {
			s.println("Invalid choice")
			continue
		}
		if err := action(); err != nil {
			return err
		}
	}
}

// userErrors are the failures shown to the user instead of ending the session.
var userErrors = []error{
	domain.ErrInvalidValue,
	domain.ErrDuplicateName,
	domain.ErrNotFound,
	domain.ErrExcessPayment,
	domain.ErrNothingDue,
	domain.ErrBalanceInsufficient,
	domain.ErrEmptyPrerequisite,
}

// report prints err when it is a user-facing failure and swallows it; any
// other error is returned.
func (s *Shell) report(err error) error {
	for _, known := range userErrors {
		if errors.Is(err, known) {
			s.printf("Error: %v\n", err)
			return nil
		}
	}
	return err
}

func (s *Shell) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }
