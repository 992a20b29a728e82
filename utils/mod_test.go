package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1, Clamp(0, 1, 5))
	require.Equal(t, 5, Clamp(9, 1, 5))
	require.Equal(t, 3, Clamp(3, 1, 5))
}
