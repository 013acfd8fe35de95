package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Item is a visual element with a natural (implicit) size, a visibility
// flag, and change notifications for both. The implicit size is measured
// from the item's rendered content in terminal cells; a preferred size may
// be pushed onto the item from outside, in which case View pads the content
// up to it.
//
// Items are owned by whoever created them. Destroy marks the item dead and
// notifies observers so they can drop their references; using an item after
// Destroy is a programming error.
type Item struct {
	content        string
	implicitWidth  int
	implicitHeight int

	preferredWidth  int
	preferredHeight int

	visible   bool
	destroyed bool

	implicitWidthChanged  Signal
	implicitHeightChanged Signal
	visibleChanged        Signal
	destroyedSignal       Signal
}

// NewItem returns a visible, empty item.
func NewItem() *Item {
	return &Item{visible: true}
}

// NewItemWithContent returns a visible item measured from content.
func NewItemWithContent(content string) *Item {
	it := NewItem()
	it.SetContent(content)
	return it
}

// SetContent replaces the rendered content and re-measures the implicit
// size from it.
func (it *Item) SetContent(content string) {
	it.content = content
	it.SetImplicitSize(lipgloss.Width(content), lipgloss.Height(content))
}

// Content returns the raw content string.
func (it *Item) Content() string {
	return it.content
}

// SetImplicitSize sets the natural size directly, emitting change
// notifications for the dimensions that actually changed.
func (it *Item) SetImplicitSize(width, height int) {
	if width != it.implicitWidth {
		it.implicitWidth = width
		it.implicitWidthChanged.Emit()
	}
	if height != it.implicitHeight {
		it.implicitHeight = height
		it.implicitHeightChanged.Emit()
	}
}

// ImplicitWidth returns the natural width in cells.
func (it *Item) ImplicitWidth() int {
	return it.implicitWidth
}

// ImplicitHeight returns the natural height in cells.
func (it *Item) ImplicitHeight() int {
	return it.implicitHeight
}

// Visible reports whether the item participates in layout.
func (it *Item) Visible() bool {
	return it.visible
}

// SetVisible toggles layout participation.
func (it *Item) SetVisible(visible bool) {
	if visible == it.visible {
		return
	}
	it.visible = visible
	it.visibleChanged.Emit()
}

// SetPreferredWidth sets the width the item should render at. Zero clears
// the constraint.
func (it *Item) SetPreferredWidth(width int) {
	it.preferredWidth = width
}

// SetPreferredHeight sets the height the item should render at. Zero
// clears the constraint.
func (it *Item) SetPreferredHeight(height int) {
	it.preferredHeight = height
}

// PreferredWidth returns the externally imposed width, or 0 if none.
func (it *Item) PreferredWidth() int {
	return it.preferredWidth
}

// PreferredHeight returns the externally imposed height, or 0 if none.
func (it *Item) PreferredHeight() int {
	return it.preferredHeight
}

// Destroy marks the item dead and notifies observers. Subsequent calls are
// no-ops.
func (it *Item) Destroy() {
	if it.destroyed {
		return
	}
	it.destroyed = true
	it.destroyedSignal.Emit()
}

// Destroyed reports whether Destroy has been called.
func (it *Item) Destroyed() bool {
	return it.destroyed
}

// View renders the content, padded up to the preferred size when one has
// been pushed onto the item. Invisible items render as the empty string.
func (it *Item) View() string {
	if !it.visible {
		return ""
	}
	style := lipgloss.NewStyle()
	if it.preferredWidth > it.implicitWidth {
		style = style.Width(it.preferredWidth)
	}
	if it.preferredHeight > it.implicitHeight {
		style = style.Height(it.preferredHeight)
	}
	return style.Render(it.content)
}

// OnImplicitWidthChanged registers an observer for natural-width changes.
func (it *Item) OnImplicitWidthChanged(fn func()) Subscription {
	return it.implicitWidthChanged.Connect(fn)
}

// OnImplicitHeightChanged registers an observer for natural-height changes.
func (it *Item) OnImplicitHeightChanged(fn func()) Subscription {
	return it.implicitHeightChanged.Connect(fn)
}

// OnVisibleChanged registers an observer for visibility changes.
func (it *Item) OnVisibleChanged(fn func()) Subscription {
	return it.visibleChanged.Connect(fn)
}

// OnDestroyed registers an observer for destruction.
func (it *Item) OnDestroyed(fn func()) Subscription {
	return it.destroyedSignal.Connect(fn)
}
