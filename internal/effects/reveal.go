package effects

// DefaultRevealThreshold is the visible fraction that reveals a section.
const DefaultRevealThreshold = 0.1

// Span is a block of lines in the page: first line and height.
type Span struct {
	Start  int
	Height int
}

// Reveal remembers which sections have been scrolled into view. Revealed
// sections stay revealed.
type Reveal struct {
	threshold float64
	revealed  []bool
}

// NewReveal tracks n sections.
func NewReveal(n int, threshold float64) Reveal {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return Reveal{threshold: threshold, revealed: make([]bool, max(n, 0))}
}

// Observe checks each span against the viewport [top, top+height) and
// returns the indices revealed by this call.
func (r *Reveal) Observe(spans []Span, top, height int) []int {
	var newly []int
	for i, span := range spans {
		if i >= len(r.revealed) || r.revealed[i] {
			continue
		}
		if visibleFraction(span, top, height) >= r.threshold {
			r.revealed[i] = true
			newly = append(newly, i)
		}
	}
	return newly
}

// Revealed reports whether section i has been revealed.
func (r Reveal) Revealed(i int) bool {
	return i >= 0 && i < len(r.revealed) && r.revealed[i]
}

func visibleFraction(span Span, top, height int) float64 {
	if height <= 0 {
		return 0
	}
	bottom := top + height
	if span.Height <= 0 {
		if span.Start >= top && span.Start < bottom {
			return 1
		}
		return 0
	}
	overlap := min(span.Start+span.Height, bottom) - max(span.Start, top)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(span.Height)
}
