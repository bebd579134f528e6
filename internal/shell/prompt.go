package shell

import (
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"schoolbook/internal/domain"
)

// readLine prints "label: " and returns the next input line, trimmed.
func (s *Shell) readLine(label string) (string, error) {
	s.printf("%s: ", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// requireField re-prompts until the user enters something.
func (s *Shell) requireField(name string) (string, error) {
	for {
		v, err := s.readLine(name)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		s.printf("The field '%s' is required.\n", name)
	}
}

// readAmount re-prompts until a decimal greater than zero is entered.
func (s *Shell) readAmount(label string) (decimal.Decimal, error) {
	for {
		v, err := s.readLine(label)
		if err != nil {
			return decimal.Decimal{}, err
		}
		d, perr := decimal.NewFromString(v)
		if perr == nil && d.IsPositive() {
			return d, nil
		}
		s.println("Please enter a valid number greater than 0.")
	}
}

// readPositiveFloat re-prompts until a finite number greater than zero is entered.
func (s *Shell) readPositiveFloat(label string) (float64, error) {
	for {
		f, err := s.readFloat(label)
		if err != nil {
			return 0, err
		}
		if f > 0 {
			return f, nil
		}
		s.println("Please enter a valid number greater than 0.")
	}
}

// readFloat re-prompts until any finite number is entered. Range checks are
// left to the caller.
func (s *Shell) readFloat(label string) (float64, error) {
	for {
		v, err := s.readLine(label)
		if err != nil {
			return 0, err
		}
		f, perr := strconv.ParseFloat(v, 64)
		if perr == nil && !isInfOrNaN(f) {
			return f, nil
		}
		s.println("Please enter a valid number.")
	}
}

// readPositiveInt re-prompts until a whole number greater than zero is entered.
func (s *Shell) readPositiveInt(label string) (int, error) {
	for {
		v, err := s.readLine(label)
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(v)
		if perr == nil && n > 0 {
			return n, nil
		}
		s.println("Please enter a valid whole number.")
	}
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func (s *Shell) confirm(question string) (bool, error) {
	v, err := s.readLine(question + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// again asks whether to repeat action.
func (s *Shell) again(action string) (bool, error) {
	s.println()
	return s.confirm("Do you want to " + action + " again?")
}

// choose reads a 1-based selection among n entries. An out-of-range or
// non-numeric answer is reported and returns ok=false.
func (s *Shell) choose(label string, n int) (int, bool, error) {
	v, err := s.readLine(label)
	if err != nil {
		return 0, false, err
	}
	i, perr := strconv.Atoi(v)
	if perr != nil || i < 1 || i > n {
		s.printf("Error: %v: choose a number between 1 and %d\n", domain.ErrNotFound, n)
		return 0, false, nil
	}
	return i - 1, true, nil
}

// chooseClass lists the classes, with fees when showFees is set, and reads a
// selection. ok is false when nothing usable was chosen.
func (s *Shell) chooseClass(showFees bool) (domain.Class, bool, error) {
	classes, err := s.reg.Curriculum.Classes()
	if err != nil {
		return domain.Class{}, false, err
	}
	if len(classes) == 0 {
		s.println("No class available.")
		return domain.Class{}, false, nil
	}

	s.println("\n=== AVAILABLE CLASSES ===")
	for i, c := range classes {
		if showFees {
			s.printf("%d. %s - %s\n", i+1, c.Name, s.money(c.Fee))
		} else {
			s.printf("%d. %s\n", i+1, c.Name)
		}
	}
	i, ok, err := s.choose("\nChoose a class (number)", len(classes))
	if err != nil || !ok {
		return domain.Class{}, false, err
	}
	return classes[i], true, nil
}
