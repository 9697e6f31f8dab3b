package section

// Layout records where each rendered section starts in the document, in
// lines. It implements Measurer in tracker units.
type Layout struct {
	blocks []block
	total  int
}

type block struct {
	id    ID
	top   int
	lines int
}

// Append adds a section of the given line count after the previous ones.
func (l *Layout) Append(id ID, lines int) {
	if lines < 0 {
		lines = 0
	}
	l.blocks = append(l.blocks, block{id: id, top: l.total, lines: lines})
	l.total += lines
}

// Reset empties the layout.
func (l *Layout) Reset() {
	l.blocks = l.blocks[:0]
	l.total = 0
}

// TotalLines is the number of lines covered by all sections.
func (l *Layout) TotalLines() int {
	return l.total
}

// Top returns the first line of id.
func (l *Layout) Top(id ID) (int, bool) {
	for _, b := range l.blocks {
		if b.id == id {
			return b.top, true
		}
	}
	return 0, false
}

// Lines returns the line count of id.
func (l *Layout) Lines(id ID) (int, bool) {
	for _, b := range l.blocks {
		if b.id == id {
			return b.lines, true
		}
	}
	return 0, false
}

// At returns the section covering line.
func (l *Layout) At(line int) (ID, bool) {
	for _, b := range l.blocks {
		if line >= b.top && line < b.top+b.lines {
			return b.id, true
		}
	}
	return "", false
}

// IDs lists the sections in layout order.
func (l *Layout) IDs() []ID {
	ids := make([]ID, 0, len(l.blocks))
	for _, b := range l.blocks {
		ids = append(ids, b.id)
	}
	return ids
}

// Measure implements Measurer.
func (l *Layout) Measure(id ID) (Measurement, bool) {
	for _, b := range l.blocks {
		if b.id == id {
			return Measurement{Top: b.top * UnitsPerLine, Height: b.lines * UnitsPerLine}, true
		}
	}
	return Measurement{}, false
}
