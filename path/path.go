package path

import "slices"

// Path accumulates the segments walked by one robot and keeps a running
// count of the distinct cells they cover.
//
// A Path is owned by a single execution and is not safe for concurrent use.
type Path struct {
	rows        *lineIndex // horizontal segments keyed by Y
	cols        *lineIndex // vertical segments keyed by X
	uniqueCells int
}

// New returns an empty path. The starting cell is already counted.
func New() *Path {
	return &Path{
		rows:        newLineIndex(),
		cols:        newLineIndex(),
		uniqueCells: 1,
	}
}

// UniqueCells returns the number of distinct cells visited so far.
func (p *Path) UniqueCells() int {
	return p.uniqueCells
}

// Segments returns the number of committed segments.
func (p *Path) Segments() int {
	return p.rows.size + p.cols.size
}

// Add commits s and counts the cells it visits for the first time.
// s must start on the cell where the previous segment ended (or on the
// starting cell). A segment that fails validation leaves the path untouched.
func (p *Path) Add(s Segment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.TotalCells() == 0 {
		return nil
	}

	parallel, perpendicular := p.rows, p.cols
	if !s.IsHorizontal() {
		parallel, perpendicular = p.cols, p.rows
	}

	lo, hi := s.Fresh()
	fixed := s.Fixed()
	var seen cellSet

	// Crossings: perpendicular lines whose key falls on the new cells and
	// whose span reaches the new segment's line.
	for _, key := range perpendicular.keysBetween(lo, hi) {
		for _, other := range perpendicular.lines[key] {
			olo, ohi := other.Span()
			if olo <= fixed && fixed <= ohi {
				seen.addPoint(key)
				break
			}
		}
	}

	// Overlaps: collinear segments on the same line, whatever their direction.
	for _, other := range parallel.lines[fixed] {
		olo, ohi := other.Span()
		seen.addRange(max(lo, olo), min(hi, ohi))
	}

	parallel.add(s)
	p.uniqueCells += s.TotalCells() - seen.count()
	return nil
}

// lineIndex buckets segments of one orientation by their fixed coordinate.
type lineIndex struct {
	lines map[int][]Segment
	keys  []int // sorted keys of lines
	size  int
}

func newLineIndex() *lineIndex {
	return &lineIndex{lines: make(map[int][]Segment)}
}

func (l *lineIndex) add(s Segment) {
	key := s.Fixed()
	if _, ok := l.lines[key]; !ok {
		i, _ := slices.BinarySearch(l.keys, key)
		l.keys = slices.Insert(l.keys, i, key)
	}
	l.lines[key] = append(l.lines[key], s)
	l.size++
}

// keysBetween returns the keys within the closed range [lo, hi].
func (l *lineIndex) keysBetween(lo, hi int) []int {
	i, _ := slices.BinarySearch(l.keys, lo)
	j := i
	for j < len(l.keys) && l.keys[j] <= hi {
		j++
	}
	return l.keys[i:j]
}
