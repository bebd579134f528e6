package grading

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"schoolbook/internal/domain"
	"schoolbook/internal/tally"
)

// Service records grades and answers average queries.
type Service struct {
	curriculum domain.CurriculumService
	students   domain.StudentStore
	log        logrus.FieldLogger
}

// New returns a grading service. Class lookups go through curriculum so that
// missing classes are reported the same way everywhere.
func New(curriculum domain.CurriculumService, students domain.StudentStore, log logrus.FieldLogger) *Service {
	return &Service{curriculum: curriculum, students: students, log: log}
}

// RecordGrades stores the valid values of grades as the student's grade list
// for subject. The previous list is replaced, not extended. When no value is
// valid the previous list is kept.
func (s *Service) RecordGrades(
	studentID domain.StudentID,
	subject string,
	grades []float64,
) (domain.GradeEntry, error) {
	st, class, err := s.studentAndClass(studentID)
	if err != nil {
		return domain.GradeEntry{}, err
	}
	subj, err := findSubject(class, subject)
	if err != nil {
		return domain.GradeEntry{}, err
	}

	accepted, rejected := tally.SplitGrades(grades)
	entry := domain.GradeEntry{Subject: subj, Accepted: accepted, Rejected: rejected}

	log := s.log.WithField("student_id", st.ID).WithField("subject", subj.Name)
	if len(rejected) > 0 {
		log.WithField("rejected", rejected).Warn("grades out of range dropped")
	}
	if len(accepted) == 0 {
		return entry, nil
	}

	if st.Grades == nil {
		st.Grades = make(map[string][]float64)
	}
	st.Grades[subj.Key()] = accepted
	if err := s.students.SaveStudent(st); err != nil {
		return domain.GradeEntry{}, err
	}
	log.WithField("count", len(accepted)).Info("grades recorded")
	return entry, nil
}

// SubjectAverage returns the student's mean grade in subject; false when no
// grade is recorded.
func (s *Service) SubjectAverage(studentID domain.StudentID, subject string) (float64, bool, error) {
	st, class, err := s.studentAndClass(studentID)
	if err != nil {
		return 0, false, err
	}
	subj, err := findSubject(class, subject)
	if err != nil {
		return 0, false, err
	}
	avg, ok := tally.SubjectAverage(st, subj.Name)
	return avg, ok, nil
}

// GeneralAverage returns the coefficient-weighted average over the subjects
// the student has grades in; false when there are none.
func (s *Service) GeneralAverage(studentID domain.StudentID) (float64, bool, error) {
	st, class, err := s.studentAndClass(studentID)
	if err != nil {
		return 0, false, err
	}
	avg, ok := tally.GeneralAverage(class, st)
	return avg, ok, nil
}

// SubjectReport lists every student of the class with their grades in
// subject, plus the class mean over the students who have any.
func (s *Service) SubjectReport(classID domain.ClassID, subject string) (domain.SubjectReport, error) {
	class, err := s.curriculum.Class(classID)
	if err != nil {
		return domain.SubjectReport{}, err
	}
	subj, err := findSubject(class, subject)
	if err != nil {
		return domain.SubjectReport{}, err
	}

	all, err := s.students.ListStudents()
	if err != nil {
		return domain.SubjectReport{}, err
	}

	report := domain.SubjectReport{Class: class, Subject: subj}
	var sum float64
	for _, st := range all {
		if st.ClassID != class.ID {
			continue
		}
		row := domain.SubjectReportRow{Student: st, Grades: st.GradesFor(subj.Name)}
		row.Average, row.Graded = tally.Mean(row.Grades)
		if row.Graded {
			sum += row.Average
			report.GradedCount++
		}
		report.Rows = append(report.Rows, row)
	}
	report.Total = len(report.Rows)
	if report.GradedCount > 0 {
		report.ClassAverage = sum / float64(report.GradedCount)
		report.HasClassAverage = true
	}
	return report, nil
}

func (s *Service) studentAndClass(id domain.StudentID) (domain.Student, domain.Class, error) {
	st, ok, err := s.students.LoadStudent(id)
	if err != nil {
		return domain.Student{}, domain.Class{}, err
	}
	if !ok {
		return domain.Student{}, domain.Class{}, fmt.Errorf("%w: student %s", domain.ErrNotFound, id)
	}
	class, err := s.curriculum.Class(st.ClassID)
	if err != nil {
		return domain.Student{}, domain.Class{}, err
	}
	return st, class, nil
}

func findSubject(class domain.Class, name string) (domain.Subject, error) {
	if len(class.Subjects) == 0 {
		return domain.Subject{}, fmt.Errorf("%w: class %q has no subjects", domain.ErrEmptyPrerequisite, class.Name)
	}
	subj, ok := class.Subject(name)
	if !ok {
		return domain.Subject{}, fmt.Errorf("%w: subject %q in class %q", domain.ErrNotFound, name, class.Name)
	}
	return subj, nil
}

// Compile-time assertion that Service implements domain.GradingService.
var _ domain.GradingService = (*Service)(nil)
