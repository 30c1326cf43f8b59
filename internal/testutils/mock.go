package testutils

import (
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/stretchr/testify/mock"
)

// MockTerminal is a testify mock of ports.Terminal for tests that need to
// assert on exact call expectations.
type MockTerminal struct {
	mock.Mock
}

func (m *MockTerminal) Clear() error {
	return m.Called().Error(0)
}

func (m *MockTerminal) Write(s string) error {
	return m.Called(s).Error(0)
}

func (m *MockTerminal) Flush() error {
	return m.Called().Error(0)
}

func (m *MockTerminal) IsRaw() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockTerminal) EnableRaw() error {
	return m.Called().Error(0)
}

func (m *MockTerminal) DisableRaw() error {
	return m.Called().Error(0)
}

func (m *MockTerminal) ReadEvent() (ports.Event, error) {
	args := m.Called()
	return args.Get(0).(ports.Event), args.Error(1)
}
