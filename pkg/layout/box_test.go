package layout

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// recorder is a Mover that remembers what it was told.
type recorder struct {
	dx, dy float64
	calls  int
}

func (r *recorder) Move(dx, dy float64) {
	r.dx += dx
	r.dy += dy
	r.calls++
}

func TestBoxModel_Edges(t *testing.T) {
	tests := []struct {
		name                     string
		anchor                   Anchor
		left, right, bottom, top float64
	}{
		{"center", AnchorCenter, 75, 125, 85, 115},
		{"bottom left", AnchorBottomLeft, 100, 150, 100, 130},
		{"top right", Anchor{X: 1, Y: 1}, 50, 100, 70, 100},
		{"fraction", Anchor{X: 0.2, Y: 0.5}, 90, 140, 85, 115},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoxModel(nil, 100, 100, 50, 30, tt.anchor, false)
			assert.InDelta(t, tt.left, b.Left(), eps)
			assert.InDelta(t, tt.right, b.Right(), eps)
			assert.InDelta(t, tt.bottom, b.Bottom(), eps)
			assert.InDelta(t, tt.top, b.Top(), eps)
			assert.InDelta(t, (tt.left+tt.right)/2, b.CenterX(), eps)
			assert.InDelta(t, (tt.bottom+tt.top)/2, b.CenterY(), eps)
		})
	}
}

func TestBoxModel_AnchorInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w, h := r.Float64()*500, r.Float64()*500
		b := NewBoxModel(nil, r.Float64()*1000-500, r.Float64()*1000-500, w, h,
			Anchor{X: r.Float64(), Y: r.Float64()}, false)
		b.Move(r.Float64()*100, r.Float64()*100)
		assert.InDelta(t, w, b.Right()-b.Left(), 1e-6)
		assert.InDelta(t, h, b.Top()-b.Bottom(), 1e-6)
	}
}

func TestBoxModel_MovesAdd(t *testing.T) {
	a := NewBoxModel(nil, 10, 20, 5, 5, AnchorCenter, false)
	b := a.Copy()

	a.Move(3, -4)
	a.Move(-7, 11)
	b.Move(3-7, -4+11)

	assert.InDelta(t, b.Left(), a.Left(), eps)
	assert.InDelta(t, b.Top(), a.Top(), eps)
}

func TestBoxModel_AutoNotify(t *testing.T) {
	owner := &recorder{}
	b := NewBoxModel(owner, 0, 0, 10, 10, AnchorCenter, true)

	b.Move(5, 6)
	assert.Equal(t, 1, owner.calls)
	assert.Equal(t, 5.0, owner.dx)
	assert.Equal(t, 6.0, owner.dy)
	dx, dy := b.PendingDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestBoxModel_DeferredNotify(t *testing.T) {
	owner := &recorder{}
	b := NewBoxModel(owner, 0, 0, 10, 10, AnchorCenter, false)

	b.Move(1, 2)
	b.Goto(10, 10)
	assert.Zero(t, owner.calls)
	dx, dy := b.PendingDelta()
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, 10.0, dy)

	b.NotifyOwner()
	assert.Equal(t, 1, owner.calls)
	assert.Equal(t, 10.0, owner.dx)
	assert.Equal(t, 10.0, owner.dy)
	dx, dy = b.PendingDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestBoxModel_CopyIsDetached(t *testing.T) {
	owner := &recorder{}
	b := NewBoxModel(owner, 1, 2, 3, 4, Anchor{X: 1, Y: 0}, true)
	c := b.Copy()

	assert.Equal(t, Bounds(b), Bounds(c))
	c.Move(10, 10)
	assert.Zero(t, owner.calls)
	assert.InDelta(t, 1.0, b.Right(), eps)
}

func TestAlign_CenterX(t *testing.T) {
	a := NewBoxModel(nil, 10, 10, 100, 40, AnchorBottomLeft, false)
	b := NewBoxModel(nil, 500, 77, 30, 30, AnchorCenter, false)

	require.NoError(t, a.Align(b, EdgeCenterX))
	assert.InDelta(t, a.CenterX(), b.CenterX(), eps)
	_, y := b.Position()
	assert.Equal(t, 77.0, y)
}

func TestAlign_AllEdges(t *testing.T) {
	for _, e := range alignEdges {
		t.Run(string(e), func(t *testing.T) {
			a := NewBoxModel(nil, 3, 4, 100, 80, AnchorCenter, false)
			b := NewBoxModel(nil, -50, 60, 20, 10, AnchorBottomLeft, false)
			require.NoError(t, a.Align(b, e))
			assert.InDelta(t, edgeOf(a, e), edgeOf(b, e), eps)
		})
	}
}

func TestAlign_Invalid(t *testing.T) {
	a := NewBoxModel(nil, 0, 0, 1, 1, AnchorCenter, false)
	b := NewBoxModel(nil, 5, 5, 1, 1, AnchorCenter, false)

	for _, bad := range []Edge{"middle", "center", ""} {
		err := a.Align(b, bad)
		var iae *InvalidAlignmentError
		require.True(t, errors.As(err, &iae), "alignment %q", bad)
		assert.Equal(t, string(bad), iae.Alignment)
	}
	x, y := b.Position()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)
}

func TestPlaceBeside(t *testing.T) {
	tests := []struct {
		side  Side
		align Edge
		check func(t *testing.T, a, b *BoxModel)
	}{
		{SideTop, EdgeCenter, func(t *testing.T, a, b *BoxModel) {
			assert.InDelta(t, a.Top()+5, b.Bottom(), eps)
			assert.InDelta(t, a.CenterX(), b.CenterX(), eps)
		}},
		{SideBottom, EdgeLeft, func(t *testing.T, a, b *BoxModel) {
			assert.InDelta(t, a.Bottom()-5, b.Top(), eps)
			assert.InDelta(t, a.Left(), b.Left(), eps)
		}},
		{SideLeft, EdgeTop, func(t *testing.T, a, b *BoxModel) {
			assert.InDelta(t, a.Left()-5, b.Right(), eps)
			assert.InDelta(t, a.Top(), b.Top(), eps)
		}},
		{SideRight, "", func(t *testing.T, a, b *BoxModel) {
			assert.InDelta(t, a.Right()+5, b.Left(), eps)
			assert.InDelta(t, a.CenterY(), b.CenterY(), eps)
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			a := NewBoxModel(nil, 0, 0, 100, 50, AnchorCenter, false)
			b := NewBoxModel(nil, 333, -20, 30, 20, AnchorBottomLeft, false)
			require.NoError(t, a.PlaceBeside(b, tt.side, 5, tt.align))
			tt.check(t, a, b)
		})
	}
}

func TestPlaceBeside_InvalidTokensMoveNothing(t *testing.T) {
	a := NewBoxModel(nil, 0, 0, 10, 10, AnchorCenter, false)
	b := NewBoxModel(nil, 50, 50, 10, 10, AnchorCenter, false)

	err := a.PlaceBeside(b, "above", 0, EdgeCenter)
	var ise *InvalidSideError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, "above", ise.Side)

	err = a.PlaceBeside(b, SideTop, 0, EdgeTop)
	var iae *InvalidAlignmentError
	require.True(t, errors.As(err, &iae))

	err = a.PlaceBeside(b, SideLeft, 0, EdgeCenterX)
	require.True(t, errors.As(err, &iae))

	x, y := b.Position()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)
}

func TestPlaceInside(t *testing.T) {
	outer := NewBoxModel(nil, 0, 0, 200, 100, AnchorBottomLeft, false)

	b := NewBoxModel(nil, 1000, 1000, 20, 10, AnchorCenter, false)
	require.NoError(t, outer.PlaceInside(b, EdgeCenter, EdgeCenter))
	assert.InDelta(t, 100, b.CenterX(), eps)
	assert.InDelta(t, 50, b.CenterY(), eps)

	require.NoError(t, outer.PlaceInside(b, EdgeRight, EdgeTop))
	assert.InDelta(t, 200, b.Right(), eps)
	assert.InDelta(t, 100, b.Top(), eps)

	err := outer.PlaceInside(b, EdgeTop, EdgeCenter)
	var iae *InvalidAlignmentError
	require.True(t, errors.As(err, &iae))
	assert.Equal(t, "top", iae.Alignment)
}
