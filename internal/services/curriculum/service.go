package curriculum

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"schoolbook/internal/domain"
)

// Service creates classes and adds subjects to them.
type Service struct {
	classes domain.ClassStore
	log     logrus.FieldLogger
}

// New returns a curriculum service backed by the given class store.
func New(classes domain.ClassStore, log logrus.FieldLogger) *Service {
	return &Service{classes: classes, log: log}
}

// CreateClass adds a class with an empty curriculum.
func (s *Service) CreateClass(name string, fee decimal.Decimal) (domain.Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Class{}, fmt.Errorf("%w: class name is required", domain.ErrInvalidValue)
	}
	if !fee.IsPositive() {
		return domain.Class{}, fmt.Errorf("%w: fee must be greater than 0, got %s", domain.ErrInvalidValue, fee)
	}

	existing, err := s.classes.ListClasses()
	if err != nil {
		return domain.Class{}, err
	}
	for _, c := range existing {
		if domain.SameName(c.Name, name) {
			return domain.Class{}, fmt.Errorf("%w: class %q", domain.ErrDuplicateName, c.Name)
		}
	}

	class, err := s.classes.CreateClass(domain.Class{Name: name, Fee: fee})
	if err != nil {
		return domain.Class{}, err
	}
	s.log.WithField("class_id", class.ID).
		WithField("fee", class.Fee.String()).
		Info("class created")
	return class, nil
}

// AddSubject appends a subject to the class curriculum.
func (s *Service) AddSubject(classID domain.ClassID, name string, coefficient float64) (domain.Subject, error) {
	class, err := s.Class(classID)
	if err != nil {
		return domain.Subject{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Subject{}, fmt.Errorf("%w: subject name is required", domain.ErrInvalidValue)
	}
	if _, dup := class.Subject(name); dup {
		return domain.Subject{}, fmt.Errorf("%w: subject %q in class %q", domain.ErrDuplicateName, name, class.Name)
	}
	if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) || coefficient <= 0 {
		return domain.Subject{}, fmt.Errorf("%w: coefficient must be greater than 0, got %v", domain.ErrInvalidValue, coefficient)
	}

	subject := domain.Subject{Name: name, Coefficient: coefficient}
	class.Subjects = append(class.Subjects, subject)
	if err := s.classes.SaveClass(class); err != nil {
		return domain.Subject{}, err
	}
	s.log.WithField("class_id", class.ID).
		WithField("subject", subject.Name).
		WithField("coefficient", subject.Coefficient).
		Info("subject added")
	return subject, nil
}

// Classes lists every class in creation order.
func (s *Service) Classes() ([]domain.Class, error) {
	return s.classes.ListClasses()
}

// Class returns the class with id. It fails with ErrEmptyPrerequisite when no
// class exists at all and ErrNotFound when id is unknown.
func (s *Service) Class(id domain.ClassID) (domain.Class, error) {
	class, ok, err := s.classes.LoadClass(id)
	if err != nil {
		return domain.Class{}, err
	}
	if ok {
		return class, nil
	}

	all, err := s.classes.ListClasses()
	if err != nil {
		return domain.Class{}, err
	}
	if len(all) == 0 {
		return domain.Class{}, fmt.Errorf("%w: no class configured yet", domain.ErrEmptyPrerequisite)
	}
	return domain.Class{}, fmt.Errorf("%w: class %s", domain.ErrNotFound, id)
}

// Compile-time assertion that Service implements domain.CurriculumService.
var _ domain.CurriculumService = (*Service)(nil)
