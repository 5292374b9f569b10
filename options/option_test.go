package options

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	require := require.New(t)

	o := Some(7)
	require.True(o.IsSome())
	require.False(o.IsNone())

	v, ok := o.Get()
	require.True(ok)
	require.Equal(7, v)
	require.Equal(7, o.OrElse(0))

	n := None[int]()
	require.False(n.IsSome())
	require.True(n.IsNone())

	v, ok = n.Get()
	require.False(ok)
	require.Equal(0, v)
	require.Equal(42, n.OrElse(42))
}

func TestOptionMap(t *testing.T) {
	require := require.New(t)

	o := Map(Some(7), strconv.Itoa)
	require.Equal(Some("7"), o)

	n := Map(None[int](), strconv.Itoa)
	require.Equal(None[string](), n)
}
