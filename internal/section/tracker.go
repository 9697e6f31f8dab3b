package section

const (
	// LookAhead is added to the scroll offset so a section becomes active
	// slightly before its top reaches the top of the viewport.
	LookAhead = 100

	// UnitsPerLine converts rendered terminal lines into the units the
	// look-ahead is expressed in.
	UnitsPerLine = 20
)

// Measurement is the vertical extent of a section, [Top, Top+Height).
type Measurement struct {
	Top    int
	Height int
}

// Contains reports whether pos falls inside the measured range.
func (m Measurement) Contains(pos int) bool {
	return pos >= m.Top && pos < m.Top+m.Height
}

// Measurer reports the geometry of a section at query time. The boolean is
// false when the section is not rendered.
type Measurer interface {
	Measure(id ID) (Measurement, bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(id ID) (Measurement, bool)

// Measure implements Measurer.
func (f MeasureFunc) Measure(id ID) (Measurement, bool) { return f(id) }

// ComputeActive returns the section whose range contains scroll+LookAhead.
// Sections are visited in Order and the last match wins. When nothing
// matches, current is returned.
func ComputeActive(scroll int, current ID, m Measurer) ID {
	if m == nil {
		return current
	}
	point := scroll + LookAhead
	active := current
	for _, id := range Order {
		geom, ok := m.Measure(id)
		if !ok {
			continue
		}
		if geom.Contains(point) {
			active = id
		}
	}
	return active
}

// Tracker holds the active section between scroll events.
type Tracker struct {
	active ID
}

// NewTracker returns a tracker positioned on Home.
func NewTracker() *Tracker {
	return &Tracker{active: Home}
}

// Active returns the current active section.
func (t *Tracker) Active() ID {
	return t.active
}

// OnScroll recomputes the active section for scroll and reports whether it
// changed.
func (t *Tracker) OnScroll(scroll int, m Measurer) (ID, bool) {
	next := ComputeActive(scroll, t.active, m)
	changed := next != t.active
	t.active = next
	return next, changed
}

// LineOffset converts a viewport line offset into tracker units.
func LineOffset(line int) int {
	return line * UnitsPerLine
}
