package store

import (
	"fmt"

	"schoolbook/internal/domain"
)

// CreateStudent stores student under the next student id.
func (m *Memory) CreateStudent(student domain.Student) (domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student = student.Clone()
	student.ID = m.nextStudentID
	m.nextStudentID++
	m.students = append(m.students, student)
	return student.Clone(), nil
}

// SaveStudent replaces the stored student with the same id.
func (m *Memory) SaveStudent(student domain.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.studentIndex(student.ID)
	if !ok {
		return fmt.Errorf("%w: student %s", domain.ErrNotFound, student.ID)
	}
	m.students[i] = student.Clone()
	return nil
}

// LoadStudent returns the student with id, if any.
func (m *Memory) LoadStudent(id domain.StudentID) (domain.Student, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.studentIndex(id)
	if !ok {
		return domain.Student{}, false, nil
	}
	return m.students[i].Clone(), true, nil
}

// ListStudents returns every student in enrollment order.
func (m *Memory) ListStudents() ([]domain.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (m *Memory) studentIndex(id domain.StudentID) (int, bool) {
	i := int(id) - 1
	if i < 0 || i >= len(m.students) {
		return 0, false
	}
	return i, true
}
