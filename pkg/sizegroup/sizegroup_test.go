package sizegroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/plume/pkg/layout"
)

func newGroup(mode Mode, items ...*layout.Item) *Group {
	g := New()
	g.SetMode(mode)
	for _, it := range items {
		g.Add(it)
	}
	g.ComponentComplete()
	return g
}

func itemWithWidth(width int) *layout.Item {
	it := layout.NewItem()
	it.SetImplicitSize(width, 1)
	return it
}

func itemWithHeight(height int) *layout.Item {
	it := layout.NewItem()
	it.SetImplicitSize(1, height)
	return it
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Mode
	}{
		{"none", None},
		{"", None},
		{"width", Width},
		{"height", Height},
		{"both", Both},
	}
	for _, tc := range cases {
		mode, err := ParseMode(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, mode)
	}

	_, err := ParseMode("diagonal")
	require.Error(t, err)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", None.String())
	assert.Equal(t, "width", Width.String())
	assert.Equal(t, "height", Height.String())
	assert.Equal(t, "both", Both.String())
}

func TestEmptyGroupAggregatesAreZero(t *testing.T) {
	t.Parallel()

	g := newGroup(Both)
	assert.Equal(t, 0, g.MaxWidth())
	assert.Equal(t, 0, g.MaxHeight())
}

func TestMaxWidthTracksVisibleMembers(t *testing.T) {
	t.Parallel()

	a := itemWithWidth(10)
	b := itemWithWidth(30)
	c := itemWithWidth(20)
	g := newGroup(Both, a, b, c)

	require.Equal(t, 30, g.MaxWidth())

	b.SetVisible(false)
	assert.Equal(t, 20, g.MaxWidth(), "hiding the widest member must shrink the aggregate")

	b.SetVisible(true)
	assert.Equal(t, 30, g.MaxWidth(), "invisible members stay subscribed and re-join on show")
}

func TestBuildingPhaseDefersRecomputation(t *testing.T) {
	t.Parallel()

	g := New()
	g.SetMode(Width)
	g.Add(itemWithWidth(12))
	g.Add(itemWithWidth(7))
	assert.Equal(t, 0, g.MaxWidth(), "no recomputation before ComponentComplete")

	g.ComponentComplete()
	assert.Equal(t, 12, g.MaxWidth())
}

func TestAddAfterCompleteUpdatesAggregate(t *testing.T) {
	t.Parallel()

	g := newGroup(Width, itemWithWidth(8))
	g.Relayout()
	require.Equal(t, 8, g.MaxWidth())

	g.Add(itemWithWidth(15))
	assert.Equal(t, 15, g.MaxWidth())
}

func TestRemoveCurrentMaxRecomputes(t *testing.T) {
	t.Parallel()

	big := itemWithWidth(40)
	small := itemWithWidth(9)
	g := newGroup(Width, big, small)
	require.Equal(t, 40, g.MaxWidth())

	g.Remove(big)
	assert.Equal(t, 9, g.MaxWidth())
	assert.Len(t, g.Items(), 1)

	g.Remove(small)
	assert.Equal(t, 0, g.MaxWidth())
}

func TestRemoveUnknownMemberIsNoop(t *testing.T) {
	t.Parallel()

	g := newGroup(Width, itemWithWidth(5))
	g.Remove(itemWithWidth(99))
	assert.Equal(t, 5, g.MaxWidth())
}

func TestDuplicateAddIsIdempotent(t *testing.T) {
	t.Parallel()

	it := itemWithWidth(6)
	g := newGroup(Width, it)
	g.Add(it)

	assert.Len(t, g.Items(), 1)

	// A duplicate subscription would fire this twice per change.
	changes := 0
	g.OnMaxWidthChanged(func() { changes++ })
	it.SetImplicitSize(11, 1)
	assert.Equal(t, 1, changes)
}

func TestDestroyedMemberIsPurged(t *testing.T) {
	t.Parallel()

	doomed := itemWithWidth(50)
	survivor := itemWithWidth(14)
	g := newGroup(Width, doomed, survivor)
	require.Equal(t, 50, g.MaxWidth())

	doomed.Destroy()

	assert.Len(t, g.Items(), 1)
	assert.Equal(t, 14, g.MaxWidth())

	// A later pass must not touch the destroyed item.
	g.Relayout()
	assert.Equal(t, 14, g.MaxWidth())
}

func TestClearDropsAllMembers(t *testing.T) {
	t.Parallel()

	a := itemWithWidth(3)
	b := itemWithWidth(4)
	g := newGroup(Width, a, b)

	g.Clear()
	assert.Empty(t, g.Items())
	assert.Equal(t, 0, g.MaxWidth())

	// Cleared members are unsubscribed; their changes no longer matter.
	a.SetImplicitSize(100, 1)
	assert.Equal(t, 0, g.MaxWidth())
}

func TestModeNoneNeverRecomputes(t *testing.T) {
	t.Parallel()

	it := itemWithWidth(25)
	g := newGroup(None, it)

	it.SetImplicitSize(60, 1)
	g.Relayout()
	assert.Equal(t, 0, g.MaxWidth())
	assert.Equal(t, 0, g.MaxHeight())
}

func TestEnablingDimensionRecomputesStaleAggregate(t *testing.T) {
	t.Parallel()

	it := itemWithWidth(10)
	g := newGroup(Width, it)
	require.Equal(t, 10, g.MaxWidth())

	g.SetMode(None)
	it.SetImplicitSize(33, 1) // changes while excluded are not tracked
	require.Equal(t, 10, g.MaxWidth())

	g.SetMode(Width)
	assert.Equal(t, 33, g.MaxWidth())
}

func TestModeChangeNotifies(t *testing.T) {
	t.Parallel()

	g := New()
	changed := 0
	g.OnModeChanged(func() { changed++ })

	g.SetMode(Width)
	g.SetMode(Width) // unchanged, no emit
	g.SetMode(Both)

	assert.Equal(t, 2, changed)
}

func TestHeightSynchronizationEndToEnd(t *testing.T) {
	t.Parallel()

	a := itemWithHeight(5)
	b := itemWithHeight(5)
	c := itemWithHeight(5)
	g := newGroup(Height, a, b, c)
	require.Equal(t, 5, g.MaxHeight())

	b.SetImplicitSize(1, 12)
	assert.Equal(t, 12, g.MaxHeight())

	b.SetVisible(false)
	assert.Equal(t, 5, g.MaxHeight())
}

func TestGroupPushesCommonSizeBack(t *testing.T) {
	t.Parallel()

	a := itemWithWidth(10)
	b := itemWithWidth(30)
	g := newGroup(Width, a, b)

	require.Equal(t, 30, g.MaxWidth())
	assert.Equal(t, 30, a.PreferredWidth())
	assert.Equal(t, 30, b.PreferredWidth())
}

func TestAggregateChangeNotification(t *testing.T) {
	t.Parallel()

	it := itemWithHeight(4)
	g := newGroup(Height, it)

	emitted := 0
	g.OnMaxHeightChanged(func() { emitted++ })

	it.SetImplicitSize(1, 9)
	require.Equal(t, 1, emitted)

	// Same value again: no spurious notification.
	g.Relayout()
	assert.Equal(t, 1, emitted)
}
