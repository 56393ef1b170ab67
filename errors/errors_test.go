package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "bundle not found")

	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "bundle not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Unwrap())
	require.Nil(t, err.Context())
	require.Equal(t, "[NOT_FOUND] bundle not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidConfig, "shard count %d is not a power of two", 3)
	require.Equal(t, "[INVALID_CONFIGURATION] shard count 3 is not a power of two", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("preserves cause", func(t *testing.T) {
		err := Wrap(fs.ErrNotExist, CodeNotFound, "stat failed")

		require.True(t, stderrors.Is(err, fs.ErrNotExist))
		require.Equal(t, fs.ErrNotExist, err.Unwrap())
		require.Contains(t, err.Error(), "[NOT_FOUND] stat failed")
		require.Contains(t, err.Error(), fs.ErrNotExist.Error())
	})

	t.Run("nil error", func(t *testing.T) {
		require.Nil(t, Wrap(nil, CodeInternal, "ignored"))
		require.Nil(t, Wrapf(nil, CodeInternal, "ignored %d", 1))
	})

	t.Run("preserves classification", func(t *testing.T) {
		inner := New(CodeUnavailable, "device busy")
		err := Wrap(inner, CodeInternal, "read failed")

		require.Equal(t, CodeInternal, err.Code())
		require.Equal(t, ClassificationRetryable, err.Classification())
	})

	t.Run("formatted", func(t *testing.T) {
		err := Wrapf(stderrors.New("boom"), CodeInternal, "%s failed", "open")
		require.Equal(t, "[INTERNAL_ERROR] open failed: boom", err.Error())
	})
}

func TestWithContext(t *testing.T) {
	err := Wrap(fs.ErrPermission, CodeForbidden, "stat failed")
	err = WithContext(err, "path", "src/main.py")
	err = WithContext(err, "op", "stat")

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "src/main.py", ctx["path"])
	require.Equal(t, "stat", ctx["op"])
	require.Equal(t, CodeForbidden, err.Code())
	require.True(t, stderrors.Is(err, fs.ErrPermission))
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

func TestWithContextMap_Override(t *testing.T) {
	err := WithContextMap(New(CodeInternal, "internal"), map[string]interface{}{"a": 1, "b": 2})
	err = WithContextMap(err, map[string]interface{}{"b": 3})

	require.Equal(t, map[string]interface{}{"a": 1, "b": 3}, err.Context())
}

func TestContext_Immutability(t *testing.T) {
	original := New(CodeInternal, "internal")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())

	ctx := modified.Context()
	ctx["key"] = "changed"
	require.Equal(t, "value", modified.Context()["key"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  New(CodeNotFound, "not found"),
			want: CodeNotFound,
		},
		{
			name: "wrapped platform error",
			err:  Wrap(New(CodeUnavailable, "busy"), CodeInternal, "read failed"),
			want: CodeInternal,
		},
		{
			name: "standard error",
			err:  stderrors.New("standard error"),
			want: CodeUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unavailable", err: New(CodeUnavailable, "busy"), want: true},
		{name: "not found", err: New(CodeNotFound, "missing"), want: false},
		{name: "conflict", err: New(CodeConflict, "snapshot outstanding"), want: false},
		{name: "unknown code", err: New(ErrorCode("CUSTOM"), "custom"), want: false},
		{name: "standard error", err: stderrors.New("plain"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestAs(t *testing.T) {
	err := WithContext(Wrap(fs.ErrNotExist, CodeNotFound, "stat failed"), "path", "a.py")

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeNotFound, platformErr.Code())
	require.True(t, Is(err, fs.ErrNotExist))
}
