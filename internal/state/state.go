// Package state holds the client-observed presentation state of a mounted
// portfolio view: the theme flag, the scrolled flag and the pointer position.
//
// A Holder belongs to exactly one view and is driven from the goroutine that
// renders that view. It is not safe for concurrent use.
package state

// ScrollThreshold is the vertical offset a viewport must exceed before the
// navbar switches to its scrolled variant.
const ScrollThreshold = 50.0

// Point is a viewport coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a copy of the presentation state.
type Snapshot struct {
	Dark     bool  `json:"dark"`
	Scrolled bool  `json:"scrolled"`
	Pointer  Point `json:"pointer"`
}

// Default returns the state of a freshly mounted view.
func Default() Snapshot {
	return Snapshot{Dark: true}
}

// IsScrolled reports whether offset is past ScrollThreshold.
func IsScrolled(offset float64) bool {
	return offset > ScrollThreshold
}

// Holder owns the mutable presentation state.
type Holder struct {
	s        Snapshot
	onChange func(Snapshot)
}

// NewHolder returns a Holder initialised to Default.
func NewHolder() *Holder {
	return &Holder{s: Default()}
}

// OnChange registers fn to run after every mutation. Passing nil removes it.
func (h *Holder) OnChange(fn func(Snapshot)) {
	h.onChange = fn
}

// Snapshot returns the current state.
func (h *Holder) Snapshot() Snapshot {
	return h.s
}

// ToggleTheme inverts the theme flag.
func (h *Holder) ToggleTheme() {
	h.s.Dark = !h.s.Dark
	h.changed()
}

// Scroll recomputes the scrolled flag from a vertical scroll offset.
func (h *Holder) Scroll(offset float64) {
	h.s.Scrolled = IsScrolled(offset)
	h.changed()
}

// MovePointer records the latest pointer position as reported.
func (h *Holder) MovePointer(p Point) {
	h.s.Pointer = p
	h.changed()
}

func (h *Holder) changed() {
	if h.onChange != nil {
		h.onChange(h.s)
	}
}
