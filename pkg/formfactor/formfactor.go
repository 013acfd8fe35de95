// Package formfactor classifies the screen the program renders to and the
// kinds of input the user employs, with change notifications so layouts
// can adapt at runtime.
//
// On a terminal the screen class is derived from the cell geometry; the
// PLUME_SCREEN_TYPE environment variable pins it for testing or kiosk
// deployments.
package formfactor

import (
	"os"

	"golang.org/x/term"

	"github.com/plumekit/plume/pkg/layout"
)

// ScreenType is the form factor of the surface being rendered to.
type ScreenType int

const (
	NoScreen ScreenType = iota
	Desktop
	Tablet
	Handheld
	TV
)

func (s ScreenType) String() string {
	switch s {
	case Desktop:
		return "desktop"
	case Tablet:
		return "tablet"
	case Handheld:
		return "handheld"
	case TV:
		return "tv"
	default:
		return "none"
	}
}

// PlatformID maps the screen type onto the platform tier identifier the
// style selector uses. Tablets and handhelds share the compact tier.
func (s ScreenType) PlatformID() string {
	switch s {
	case Desktop:
		return "desktop"
	case Tablet, Handheld:
		return "compact"
	case TV:
		return "tv"
	default:
		return ""
	}
}

// InputType is a bit set of input device kinds.
type InputType int

const (
	Unknown       InputType = 0
	Mouse         InputType = 1 << 0
	TouchScreen   InputType = 1 << 1
	Keyboard      InputType = 1 << 2
	RemoteControl InputType = 1 << 3
)

// Has reports whether t includes every flag of other.
func (t InputType) Has(other InputType) bool {
	return t&other == other
}

// ScreenTypeEnv pins the screen type regardless of terminal geometry.
const ScreenTypeEnv = "PLUME_SCREEN_TYPE"

// Cell-width thresholds for screen classification.
const (
	tabletMinColumns  = 80
	desktopMinColumns = 120
)

// Info tracks the current form factor. It follows the single-threaded
// event model of package layout: feed it resize and input events from the
// host program's loop.
type Info struct {
	cols, rows int
	screenType ScreenType
	pinned     bool

	primary   InputType
	transient InputType
	available InputType

	screenTypeChanged     layout.Signal
	transientInputChanged layout.Signal
}

// New probes the terminal attached to stdout. Keyboard is always the
// primary input on a terminal; mouse is assumed available since most
// emulators report it.
func New() *Info {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 0, 0
	}
	return NewWithSize(cols, rows)
}

// NewWithSize builds an Info from a known geometry, bypassing the probe.
func NewWithSize(cols, rows int) *Info {
	info := &Info{
		cols:      cols,
		rows:      rows,
		primary:   Keyboard,
		transient: Keyboard,
		available: Keyboard | Mouse,
	}

	if pinned, ok := screenTypeFromEnv(); ok {
		info.screenType = pinned
		info.pinned = true
		return info
	}
	info.screenType = classify(cols, rows)
	return info
}

func screenTypeFromEnv() (ScreenType, bool) {
	switch os.Getenv(ScreenTypeEnv) {
	case "desktop":
		return Desktop, true
	case "tablet":
		return Tablet, true
	case "handheld":
		return Handheld, true
	case "tv":
		return TV, true
	}
	return NoScreen, false
}

func classify(cols, rows int) ScreenType {
	switch {
	case cols <= 0 || rows <= 0:
		return NoScreen
	case cols >= desktopMinColumns:
		return Desktop
	case cols >= tabletMinColumns:
		return Tablet
	default:
		return Handheld
	}
}

// ScreenType returns the current screen classification.
func (i *Info) ScreenType() ScreenType {
	return i.screenType
}

// Size returns the last known geometry in cells.
func (i *Info) Size() (cols, rows int) {
	return i.cols, i.rows
}

// Resize feeds a new terminal geometry, re-classifying the screen and
// notifying observers when the class changes. A pinned screen type never
// re-classifies.
func (i *Info) Resize(cols, rows int) {
	i.cols, i.rows = cols, rows
	if i.pinned {
		return
	}
	next := classify(cols, rows)
	if next != i.screenType {
		i.screenType = next
		i.screenTypeChanged.Emit()
	}
}

// PrimaryInputType returns the main input device kind.
func (i *Info) PrimaryInputType() InputType {
	return i.primary
}

// TransientInputType returns the kind of input most recently employed,
// which may differ from the primary one.
func (i *Info) TransientInputType() InputType {
	return i.transient
}

// AvailableInputTypes returns every input kind seen or assumed so far.
func (i *Info) AvailableInputTypes() InputType {
	return i.available
}

// RecordInput notes that an input of the given kind arrived, updating the
// transient type and the available set.
func (i *Info) RecordInput(t InputType) {
	if t == Unknown {
		return
	}
	i.available |= t
	if t != i.transient {
		i.transient = t
		i.transientInputChanged.Emit()
	}
}

// OnScreenTypeChanged registers an observer for screen re-classification.
func (i *Info) OnScreenTypeChanged(fn func()) layout.Subscription {
	return i.screenTypeChanged.Connect(fn)
}

// OnTransientInputChanged registers an observer for transient input
// changes.
func (i *Info) OnTransientInputChanged(fn func()) layout.Subscription {
	return i.transientInputChanged.Connect(fn)
}
