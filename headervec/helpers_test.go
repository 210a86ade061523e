package headervec

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

type zst struct{}

func requireVec[H comparable, T comparable](t *testing.T, want, got *Vec[H, T]) {
	t.Helper()
	require.Truef(t, Equal(want.View(), got.View()), "want %v, got %v", want, got)
}

func seq(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i <= to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
