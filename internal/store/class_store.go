package store

import (
	"fmt"

	"schoolbook/internal/domain"
)

// CreateClass stores class under the next class id and returns it with the id set.
func (m *Memory) CreateClass(class domain.Class) (domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	class = class.Clone()
	class.ID = m.nextClassID
	m.nextClassID++
	m.classes = append(m.classes, class)
	return class.Clone(), nil
}

// SaveClass replaces the stored class with the same id.
func (m *Memory) SaveClass(class domain.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.classIndex(class.ID)
	if !ok {
		return fmt.Errorf("%w: class %s", domain.ErrNotFound, class.ID)
	}
	m.classes[i] = class.Clone()
	return nil
}

// LoadClass returns the class with id, if any.
func (m *Memory) LoadClass(id domain.ClassID) (domain.Class, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.classIndex(id)
	if !ok {
		return domain.Class{}, false, nil
	}
	return m.classes[i].Clone(), true, nil
}

// ListClasses returns every class in creation order.
func (m *Memory) ListClasses() ([]domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Class, 0, len(m.classes))
	for _, c := range m.classes {
		out = append(out, c.Clone())
	}
	return out, nil
}

// ids are dense and start at 1, so the id is the position plus one.
func (m *Memory) classIndex(id domain.ClassID) (int, bool) {
	i := int(id) - 1
	if i < 0 || i >= len(m.classes) {
		return 0, false
	}
	return i, true
}
