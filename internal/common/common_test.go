package common

import (
	"math"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestPadding(t *testing.T) {
	want := []int{0, 3, 2, 1, 0, 3, 2, 1}
	for n, p := range want {
		require.Equal(t, p, Padding(n), "n=%d", n)
	}
	require.Equal(t, 8, Padded(5))
	require.Equal(t, 4, Padded(4))
	require.Equal(t, 0, Padded(0))
}

func TestPaddingBound(t *testing.T) {
	condition := func(n uint32) bool {
		p := Padding(int(n))
		return p >= 0 && p <= 3 && (int(n)+p)%4 == 0
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestIsIntegerKind(t *testing.T) {
	require.True(t, IsIntegerKind(reflect.Int))
	require.True(t, IsIntegerKind(reflect.Uint64))
	require.False(t, IsIntegerKind(reflect.Float64))
	require.False(t, IsIntegerKind(reflect.String))
}

func TestAsBytes(t *testing.T) {
	type named []byte
	b, ok := AsBytes([]byte{1})
	require.True(t, ok)
	require.Equal(t, []byte{1}, b)

	b, ok = AsBytes(named{2, 3})
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, b)

	b, ok = AsBytes([2]byte{4, 5})
	require.True(t, ok)
	require.Equal(t, []byte{4, 5}, b)

	type octet uint8
	require.NotPanics(t, func() {
		b, ok = AsBytes([3]octet{6, 7, 8})
	})
	require.True(t, ok)
	require.Equal(t, []byte{6, 7, 8}, b)

	b, ok = AsBytes([]octet{9})
	require.True(t, ok)
	require.Equal(t, []byte{9}, b)

	for _, x := range []any{nil, "s", 1, []int8{1}, [1]int{1}} {
		_, ok = AsBytes(x)
		require.False(t, ok, "%T", x)
	}
}

func TestAsLength(t *testing.T) {
	for _, x := range []any{7, int8(7), uint16(7), int64(7), uint64(7), uintptr(7)} {
		n, ok := AsLength(x)
		require.True(t, ok, "%T", x)
		require.Equal(t, 7, n)
	}
	for _, x := range []any{nil, -1, int64(-7), uint64(math.MaxUint64), 1.5, "7"} {
		_, ok := AsLength(x)
		require.False(t, ok, "%v", x)
	}
}

func TestAllZero(t *testing.T) {
	require.True(t, AllZero(nil))
	require.True(t, AllZero([]byte{0, 0, 0}))
	require.False(t, AllZero([]byte{0, 1}))
}
