package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abevier/outcome/options"
)

func TestResult(t *testing.T) {
	require := require.New(t)

	r := New(1, nil)
	require.True(r.IsSuccess())
	require.False(r.IsFailure())
	require.Equal(options.Some(1), r.Val())
	require.Equal(options.None[error](), r.Err())

	r = Success[int, error](2)
	require.True(r.IsSuccess())
	require.Equal(options.Some(2), r.Val())

	errTest := errors.New("test err")
	r = New(0, errTest)
	require.False(r.IsSuccess())
	require.True(r.IsFailure())
	require.Equal(options.None[int](), r.Val())

	err, ok := r.Err().Get()
	require.True(ok)
	require.ErrorIs(err, errTest)
}

func TestResultGenericErr(t *testing.T) {
	require := require.New(t)

	r := Failure[int, string]("bad")
	require.True(r.IsFailure())
	require.Equal(options.None[int](), r.Val())
	require.Equal(options.Some("bad"), r.Err())
}
