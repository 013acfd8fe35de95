// Package sizegroup keeps a group of visual items rendering at a common
// size. A Group watches its members' natural sizes and visibility and
// maintains the maximum width and height over the currently visible ones,
// pushing the result back so every member renders at the shared size.
//
// Groups follow the host's single-threaded event model: all membership and
// geometry changes must happen on the same goroutine. See package layout.
package sizegroup

import (
	"fmt"

	"github.com/plumekit/plume/pkg/layout"
)

// Mode selects which dimensions a Group synchronizes.
type Mode int

const (
	// None disables synchronization entirely.
	None Mode = 0
	// Width syncs member widths.
	Width Mode = 1 << 0
	// Height syncs member heights.
	Height Mode = 1 << 1
	// Both syncs widths and heights.
	Both Mode = Width | Height
)

// Has reports whether m includes every dimension of other.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Width:
		return "width"
	case Height:
		return "height"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "none", "":
		return None, nil
	case "width":
		return Width, nil
	case "height":
		return Height, nil
	case "both":
		return Both, nil
	}
	return None, fmt.Errorf("unknown size group mode %q", s)
}

// Member is the contract items must satisfy to join a Group. The group
// never owns a member's lifetime; OnDestroyed is how a member tells the
// group to forget it.
type Member interface {
	ImplicitWidth() int
	ImplicitHeight() int
	Visible() bool
	OnImplicitWidthChanged(func()) layout.Subscription
	OnImplicitHeightChanged(func()) layout.Subscription
	OnVisibleChanged(func()) layout.Subscription
	OnDestroyed(func()) layout.Subscription
}

// Sizable is optionally implemented by members that accept the common size
// being pushed back onto them.
type Sizable interface {
	SetPreferredWidth(int)
	SetPreferredHeight(int)
}

// Group synchronizes a dimension across a dynamic set of members.
//
// A freshly constructed Group is in its building phase: members may be
// added but recomputation is deferred until ComponentComplete, so bulk
// population does not trigger redundant passes. After ComponentComplete
// every membership, geometry, or visibility change recomputes immediately.
type Group struct {
	mode      Mode
	maxWidth  int
	maxHeight int

	members       []Member
	subscriptions map[Member][]layout.Subscription
	complete      bool

	modeChanged      layout.Signal
	maxWidthChanged  layout.Signal
	maxHeightChanged layout.Signal
}

// New returns an empty group in its building phase with Mode None.
func New() *Group {
	return &Group{
		subscriptions: make(map[Member][]layout.Subscription),
	}
}

// Mode returns the dimensions currently being synchronized.
func (g *Group) Mode() Mode {
	return g.mode
}

// SetMode changes which dimensions participate. Dimensions that were
// excluded while changes happened have stale aggregates, so enabling a
// dimension forces a recomputation pass for it.
func (g *Group) SetMode(mode Mode) {
	if mode == g.mode {
		return
	}
	added := mode &^ g.mode
	g.mode = mode
	g.modeChanged.Emit()
	g.adjustItems(added)
}

// MaxWidth is the width of the widest visible member. Only updated while
// the mode includes Width. Defaults to 0.
func (g *Group) MaxWidth() int {
	return g.maxWidth
}

// MaxHeight is the height of the tallest visible member. Only updated
// while the mode includes Height. Defaults to 0.
func (g *Group) MaxHeight() int {
	return g.maxHeight
}

// OnModeChanged registers an observer for mode changes.
func (g *Group) OnModeChanged(fn func()) layout.Subscription {
	return g.modeChanged.Connect(fn)
}

// OnMaxWidthChanged registers an observer for aggregate width changes.
func (g *Group) OnMaxWidthChanged(fn func()) layout.Subscription {
	return g.maxWidthChanged.Connect(fn)
}

// OnMaxHeightChanged registers an observer for aggregate height changes.
func (g *Group) OnMaxHeightChanged(fn func()) layout.Subscription {
	return g.maxHeightChanged.Connect(fn)
}

// Items returns a snapshot of the current members.
func (g *Group) Items() []Member {
	items := make([]Member, len(g.members))
	copy(items, g.members)
	return items
}

// Add appends a member and subscribes to its geometry, visibility, and
// destruction notifications. Re-adding a member already in the group is a
// no-op; a duplicate subscription would double-count it on recomputation.
func (g *Group) Add(m Member) {
	if m == nil {
		return
	}
	if _, exists := g.subscriptions[m]; exists {
		return
	}

	g.members = append(g.members, m)
	g.subscriptions[m] = []layout.Subscription{
		m.OnImplicitWidthChanged(func() { g.adjustItems(Width) }),
		m.OnImplicitHeightChanged(func() { g.adjustItems(Height) }),
		m.OnVisibleChanged(func() { g.adjustItems(Both) }),
		m.OnDestroyed(func() { g.Remove(m) }),
	}
	g.adjustItems(Both)
}

// Remove unsubscribes and drops a member, then recomputes. Removing a
// member that is not in the group is a no-op.
func (g *Group) Remove(m Member) {
	subs, exists := g.subscriptions[m]
	if !exists {
		return
	}
	for _, sub := range subs {
		sub.Cancel()
	}
	delete(g.subscriptions, m)
	for i, member := range g.members {
		if member == m {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	g.adjustItems(Both)
}

// Clear unsubscribes and drops every member, then recomputes.
func (g *Group) Clear() {
	for _, subs := range g.subscriptions {
		for _, sub := range subs {
			sub.Cancel()
		}
	}
	g.subscriptions = make(map[Member][]layout.Subscription)
	g.members = nil
	g.adjustItems(Both)
}

// Relayout forces an immediate full recomputation pass. Normally never
// needed, as the group recomputes as members are added and their sizes
// change; use it after bulk external mutation the group could not observe.
func (g *Group) Relayout() {
	g.adjustItems(Both)
}

// ComponentComplete ends the building phase and runs the first
// recomputation pass.
func (g *Group) ComponentComplete() {
	g.complete = true
	g.adjustItems(Both)
}

// adjustItems recomputes aggregates for the dimensions in whatChanged that
// the current mode includes. Invisible members are excluded from the max
// but stay subscribed, so becoming visible re-includes them.
func (g *Group) adjustItems(whatChanged Mode) {
	if !g.complete {
		return
	}

	if g.mode.Has(Width) && whatChanged.Has(Width) {
		max := 0
		for _, m := range g.members {
			if m.Visible() && m.ImplicitWidth() > max {
				max = m.ImplicitWidth()
			}
		}
		if max != g.maxWidth {
			g.maxWidth = max
			g.maxWidthChanged.Emit()
		}
		for _, m := range g.members {
			if s, ok := m.(Sizable); ok {
				s.SetPreferredWidth(g.maxWidth)
			}
		}
	}

	if g.mode.Has(Height) && whatChanged.Has(Height) {
		max := 0
		for _, m := range g.members {
			if m.Visible() && m.ImplicitHeight() > max {
				max = m.ImplicitHeight()
			}
		}
		if max != g.maxHeight {
			g.maxHeight = max
			g.maxHeightChanged.Emit()
		}
		for _, m := range g.members {
			if s, ok := m.(Sizable); ok {
				s.SetPreferredHeight(g.maxHeight)
			}
		}
	}
}
