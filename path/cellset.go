package path

import (
	"cmp"
	"slices"
	"sort"
)

// span is a closed range of cells along one axis.
type span struct {
	lo, hi int
}

// cellSet collects the cells of a single axis line that a new segment
// revisits. Overlaps are kept as ranges and crossings as points so that the
// cost of counting depends on the number of segments, not on their length.
type cellSet struct {
	ranges []span
	points []int // distinct, one per crossing column/row
}

func (c *cellSet) addRange(lo, hi int) {
	if lo > hi {
		return
	}
	c.ranges = append(c.ranges, span{lo: lo, hi: hi})
}

func (c *cellSet) addPoint(p int) {
	c.points = append(c.points, p)
}

// count returns the size of the union of every range and point.
func (c *cellSet) count() int {
	merged := mergeSpans(c.ranges)

	n := 0
	for _, s := range merged {
		n += s.hi - s.lo + 1
	}
	for _, p := range c.points {
		if !covers(merged, p) {
			n++
		}
	}
	return n
}

// mergeSpans sorts spans and joins the ones that overlap or touch.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })

	merged := []span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.lo <= last.hi+1 {
			last.hi = max(last.hi, s.hi)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// covers reports whether p lies inside one of the merged, sorted spans.
func covers(merged []span, p int) bool {
	i := sort.Search(len(merged), func(i int) bool { return merged[i].hi >= p })
	return i < len(merged) && merged[i].lo <= p
}
