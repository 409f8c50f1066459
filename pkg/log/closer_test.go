package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCloser struct {
	mock.Mock
}

func (m *mockCloser) Close() error {
	return m.Called().Error(0)
}

type mockSyncCloser struct {
	mockCloser
}

func (m *mockSyncCloser) Sync() error {
	return m.Called().Error(0)
}

func TestCloser_Close(t *testing.T) {
	t.Run("모든 리소스를 닫고 hook을 비활성화", func(t *testing.T) {
		c1 := &mockCloser{}
		c1.On("Close").Return(nil).Once()
		c2 := &mockSyncCloser{}
		c2.On("Sync").Return(nil).Once()
		c2.On("Close").Return(nil).Once()
		h := &hook{}

		c := &closer{closers: []io.Closer{c1, c2}, hook: h}
		assert.NoError(t, c.Close())
		assert.True(t, h.closed)

		c1.AssertExpectations(t)
		c2.AssertExpectations(t)
	})

	t.Run("일부 실패 시 나머지도 닫고 에러를 합침", func(t *testing.T) {
		errA := errors.New("close a")
		errB := errors.New("close b")
		c1 := &mockCloser{}
		c1.On("Close").Return(errA).Once()
		c2 := &mockCloser{}
		c2.On("Close").Return(errB).Once()

		c := &closer{closers: []io.Closer{c1, nil, c2}}
		err := c.Close()
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)

		// 두 번째 호출은 리소스를 다시 닫지 않습니다.
		assert.Equal(t, err, c.Close())
		c1.AssertExpectations(t)
		c2.AssertExpectations(t)
	})
}
