package probe

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommandProcess commandProcess의 Mock 구현체입니다.
type MockCommandProcess struct {
	mock.Mock
}

func (m *MockCommandProcess) Wait() error {
	return m.Called().Error(0)
}

func (m *MockCommandProcess) ExitCode() int {
	return m.Called().Int(0)
}

func (m *MockCommandProcess) Stdout() string {
	return m.Called().String(0)
}

func (m *MockCommandProcess) Stderr() string {
	return m.Called().String(0)
}

// MockCommandExecutor commandExecutor의 Mock 구현체입니다.
// 가변 인자는 하나의 []string 인자로 기록됩니다.
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) Start(ctx context.Context, name string, args ...string) (commandProcess, error) {
	ret := m.Called(ctx, name, args)

	var proc commandProcess
	if ret.Get(0) != nil {
		proc = ret.Get(0).(commandProcess)
	}

	return proc, ret.Error(1)
}
