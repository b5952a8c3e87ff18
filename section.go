package swml

import (
	"slices"
	"sync"

	"github.com/aretw0/swml/pkg/domain"
)

// Section is a named, ordered list of instructions. Sections are mutable
// after they have been added to a Document; later appends show up in the
// next rendering.
type Section struct {
	mu      sync.RWMutex
	name    string
	actions []domain.Instruction
}

// NewSection creates an empty section.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the name the section was created with.
func (s *Section) Name() string { return s.name }

// Append adds an instruction at the end of the section and returns it.
// A nil instruction, including a nil pointer such as (*domain.Play)(nil), is
// ignored.
func (s *Section) Append(i domain.Instruction) domain.Instruction {
	if domain.IsNil(i) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, i)
	return i
}

// Add appends i to s and returns it with its concrete type:
//
//	play := swml.Add(main, domain.Play{URL: domain.Ptr("say:Hi")})
func Add[T domain.Instruction](s *Section, i T) T {
	s.Append(i)
	return i
}

// Actions returns a copy of the instructions in append order.
func (s *Section) Actions() []domain.Instruction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.actions == nil {
		return []domain.Instruction{}
	}
	return slices.Clone(s.actions)
}

// Len returns the number of instructions.
func (s *Section) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions)
}

// MarshalJSON renders the section as its instruction list.
func (s *Section) MarshalJSON() ([]byte, error) {
	return compactJSON(s.Actions())
}

// MarshalYAML renders the section as its instruction list.
func (s *Section) MarshalYAML() (any, error) {
	return s.Actions(), nil
}
