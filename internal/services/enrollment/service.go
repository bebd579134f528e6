package enrollment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"schoolbook/internal/domain"
)

// Service enrolls students and lists them with their standing.
type Service struct {
	curriculum domain.CurriculumService
	students   domain.StudentStore
	grading    domain.GradingService
	validate   *validator.Validate
	log        logrus.FieldLogger
}

// New returns an enrollment service. The grading service supplies the
// general averages shown in listings.
func New(
	curriculum domain.CurriculumService,
	students domain.StudentStore,
	grading domain.GradingService,
	log logrus.FieldLogger,
) *Service {
	return &Service{
		curriculum: curriculum,
		students:   students,
		grading:    grading,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        log,
	}
}

// Enroll creates a student with no grades and nothing paid.
func (s *Service) Enroll(req domain.Enrollment) (domain.Student, error) {
	classes, err := s.curriculum.Classes()
	if err != nil {
		return domain.Student{}, err
	}
	if len(classes) == 0 {
		return domain.Student{}, fmt.Errorf("%w: configure a class before enrolling students", domain.ErrEmptyPrerequisite)
	}

	req.LastName = strings.TrimSpace(req.LastName)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.Address = strings.TrimSpace(req.Address)
	if sex, ok := domain.ParseSex(string(req.Sex)); ok {
		req.Sex = sex
	}
	if err := s.check(req); err != nil {
		return domain.Student{}, err
	}

	class, err := s.curriculum.Class(req.ClassID)
	if err != nil {
		return domain.Student{}, err
	}

	st, err := s.students.CreateStudent(domain.Student{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Address:   req.Address,
		Sex:       req.Sex,
		ClassID:   class.ID,
	})
	if err != nil {
		return domain.Student{}, err
	}
	s.log.WithField("student_id", st.ID).
		WithField("class_id", class.ID).
		Info("student enrolled")
	return st, nil
}

// FindStudent returns the student with id or ErrNotFound.
func (s *Service) FindStudent(id domain.StudentID) (domain.Student, error) {
	st, ok, err := s.students.LoadStudent(id)
	if err != nil {
		return domain.Student{}, err
	}
	if !ok {
		return domain.Student{}, fmt.Errorf("%w: no student with id %s", domain.ErrNotFound, id)
	}
	return st, nil
}

// ListStudents returns every student with their average and tuition account.
func (s *Service) ListStudents() ([]domain.StudentSummary, error) {
	all, err := s.students.ListStudents()
	if err != nil {
		return nil, err
	}
	return s.summarize(all)
}

// ListStudentsByClass returns the students of one class in enrollment order.
func (s *Service) ListStudentsByClass(classID domain.ClassID) ([]domain.StudentSummary, error) {
	class, err := s.curriculum.Class(classID)
	if err != nil {
		return nil, err
	}
	all, err := s.students.ListStudents()
	if err != nil {
		return nil, err
	}
	var members []domain.Student
	for _, st := range all {
		if st.ClassID == class.ID {
			members = append(members, st)
		}
	}
	return s.summarize(members)
}

func (s *Service) summarize(students []domain.Student) ([]domain.StudentSummary, error) {
	classes, err := s.curriculum.Classes()
	if err != nil {
		return nil, err
	}
	byID := make(map[domain.ClassID]domain.Class, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}

	out := make([]domain.StudentSummary, 0, len(students))
	for _, st := range students {
		class, ok := byID[st.ClassID]
		if !ok {
			return nil, fmt.Errorf("%w: class %s of student %s", domain.ErrNotFound, st.ClassID, st.ID)
		}
		avg, hasAvg, err := s.grading.GeneralAverage(st.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.StudentSummary{
			Student:    st,
			ClassName:  class.Name,
			Average:    avg,
			HasAverage: hasAvg,
			Account:    st.Account(class),
		})
	}
	return out, nil
}

// check runs the struct tags of req and folds any failure into ErrInvalidValue.
func (s *Service) check(req domain.Enrollment) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidValue, strings.Join(fields, ", "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "gt":
		return fe.Field() + " must be selected"
	}
	return fe.Field() + " failed " + fe.Tag()
}

// Compile-time assertion that Service implements domain.EnrollmentService.
var _ domain.EnrollmentService = (*Service)(nil)
