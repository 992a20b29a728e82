package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	t.Run("independent of piece order and board offset", func(t *testing.T) {
		a := position(
			on(Black, Gyoku, 0, 0),
			on(White, Gyoku, 0, 2),
			on(Black, Hi, 1, 1),
			inHand(White, Kaku),
			inHand(Black, Ki),
		)
		b := position(
			inHand(Black, Ki),
			on(Black, Hi, 6, 4),
			inHand(White, Kaku),
			on(White, Gyoku, 5, 5),
			on(Black, Gyoku, 5, 3),
		)
		require.Equal(t, Fingerprint(a), Fingerprint(b))
		require.Equal(t, "Black|0,0,Black,Gyoku;0,2,White,Gyoku;1,1,Black,Hi|Black,Ki,Ki;White,Kaku,Kaku", Fingerprint(a))
	})

	t.Run("turn and faces matter", func(t *testing.T) {
		a := position(on(Black, Gyoku, 0, 0), on(White, Gyoku, 0, 2), on(Black, Hi, 1, 1))
		b := a.Copy()
		b.SwitchTurn()
		require.NotEqual(t, Fingerprint(a), Fingerprint(b))

		c := a.Copy()
		c.Pieces[2].Face = Cho
		require.NotEqual(t, Fingerprint(a), Fingerprint(c))
	})

	t.Run("empty without black king", func(t *testing.T) {
		require.Empty(t, Fingerprint(position(on(White, Gyoku, 0, 2))))
	})
}

func TestClassify(t *testing.T) {
	t.Run("perpetual check loses on the fourth occurrence", func(t *testing.T) {
		h := History{}
		require.Equal(t, Ongoing, h.Record("k", true))
		require.Equal(t, Ongoing, h.Record("k", true))
		require.Equal(t, PerpetualCheckWarning, h.Record("k", true))
		c := h.Record("k", true)
		require.Equal(t, PerpetualCheckLoss, c)
		require.True(t, c.Terminal())
	})

	t.Run("mixed repetition is a draw", func(t *testing.T) {
		h := History{}
		h.Record("k", true)
		h.Record("k", false)
		require.Equal(t, RepetitionWarning, h.Record("k", true))
		require.Equal(t, Sennichite, h.Record("k", true))
	})

	t.Run("fingerprints are counted separately", func(t *testing.T) {
		h := History{}
		for i := 0; i < 3; i++ {
			h.Record("a", false)
		}
		require.Equal(t, Ongoing, h.Record("b", false))
		require.Len(t, h.Lookup("a"), 3)
		require.Nil(t, h.Lookup("missing"))
	})

	t.Run("copies are independent", func(t *testing.T) {
		h := History{}
		h.Record("k", false)
		c := h.Copy()
		c.Record("k", false)
		require.Len(t, h.Lookup("k"), 1)
		require.Len(t, c.Lookup("k"), 2)
	})
}
