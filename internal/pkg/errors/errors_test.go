package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// Creation
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{name: "Timeout", errType: Timeout, message: "헬스체크 시간이 초과되었습니다"},
		{name: "System", errType: System, message: "프로세스 실행 실패"},
		{name: "Empty Message", errType: NotFound, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Equal(t, fmt.Sprintf("[%s] %s", tt.errType, tt.message), err.Error())
			assert.True(t, Is(err, tt.errType))

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(ExecutionFailed, "exit code: %d", 3)

	assert.EqualError(t, err, "[ExecutionFailed] exit code: 3")
	assert.True(t, Is(err, ExecutionFailed))
}

func TestNew_StackPointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestNew_StackPointsToCaller")
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
}

// =============================================================================
// Wrapping
// =============================================================================

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("StdError", func(t *testing.T) {
		wrapped := Wrap(errStd, System, "wrapped message")

		assert.EqualError(t, wrapped, "[System] wrapped message: standard error")
		assert.True(t, Is(wrapped, System))
		assert.True(t, errors.Is(wrapped, errStd))
	})

	t.Run("NilError", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "should be nil"))
		assert.Nil(t, Wrapf(nil, Internal, "should be nil: %d", 1))
	})

	t.Run("Nested", func(t *testing.T) {
		err1 := New(Timeout, "timeout")
		err2 := Wrap(err1, Internal, "internal error")
		err3 := Wrapf(err2, System, "system error %d", 3)

		assert.True(t, Is(err3, System))
		assert.True(t, Is(err3, Internal))
		assert.True(t, Is(err3, Timeout))
		assert.False(t, Is(err3, ParsingFailed))
	})
}

func TestRootCauseAndUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		expectedRoot error
		expectedType ErrorType
	}{
		{name: "nil", err: nil, expectedRoot: nil, expectedType: Unknown},
		{name: "std error", err: errStd, expectedRoot: errStd, expectedType: Unknown},
		{name: "wrapped std error", err: Wrap(errStd, ParsingFailed, "parse"), expectedRoot: errStd, expectedType: ParsingFailed},
		{name: "fmt wrapped AppError", err: fmt.Errorf("outer: %w", Wrap(errStd, Timeout, "timeout")), expectedRoot: errStd, expectedType: Timeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedRoot, RootCause(tt.err))
			assert.Equal(t, tt.expectedType, UnderlyingType(tt.err))
		})
	}

	t.Run("innermost AppError wins", func(t *testing.T) {
		err := Wrap(New(NotFound, "missing"), Internal, "query failed")
		assert.Equal(t, NotFound, UnderlyingType(err))
	})
}

// =============================================================================
// Formatting
// =============================================================================

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(Timeout, "inner"), System, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] outer")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[Timeout] inner")
	assert.Contains(t, detailed, "Stack trace:")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{ErrorType(-1), "ErrorType(-1)"},
		{ErrorType(999), "ErrorType(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}
