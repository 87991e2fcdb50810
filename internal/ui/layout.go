package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which nav links collapse
	// behind the menu toggle.
	LayoutCompactWidth = 100
)

// Carousel geometry, in terminal cells.
const (
	// carouselButtonWidth is the width of each prev/next button column.
	carouselButtonWidth = 3

	// slideMinHeight and slideMaxHeight bound the slide image rows.
	slideMinHeight = 3
	slideMaxHeight = 14

	// pageMinHeight is the fewest page rows kept above the carousel.
	pageMinHeight = 4
)

// Timing constants.
const (
	// ResizeDebounce is how long the size must stay put before the menu
	// reacts to a resize.
	ResizeDebounce = 250 * time.Millisecond

	// CounterFrame is the counter animation step.
	CounterFrame = 16 * time.Millisecond

	// ScrollFrame is the smooth scroll animation step.
	ScrollFrame = 16 * time.Millisecond

	// HeaderScrollLines is how far the page scrolls before the header
	// switches to its raised style.
	HeaderScrollLines = 5

	// changeBuffer is the capacity of the carousel change channel.
	changeBuffer = 16
)

// screenLayout places the page and carousel rows for the current size.
// Rows are absolute terminal rows; -1 marks an absent row.
type screenLayout struct {
	pageTop    int
	pageHeight int

	carouselTop  int
	slideTop     int
	slideHeight  int
	captionRow   int
	indicatorRow int
	thumbnailRow int
	progressRow  int
}

func (m Model) layout() screenLayout {
	l := screenLayout{
		pageTop:      1,
		carouselTop:  -1,
		captionRow:   -1,
		indicatorRow: -1,
		thumbnailRow: -1,
		progressRow:  -1,
	}
	avail := max(m.height-1, 0)
	if m.slides.ctl == nil {
		l.pageHeight = max(avail, 1)
		return l
	}

	indicators, thumbnails := m.slides.indicators, m.slides.thumbnails
	fixed := func() int {
		n := 2 // caption + progress
		if indicators {
			n++
		}
		if thumbnails {
			n++
		}
		return n
	}

	// Short terminals shed the thumbnail strip first, then the dots.
	if thumbnails && avail < fixed()+slideMinHeight+pageMinHeight {
		thumbnails = false
	}
	if indicators && avail < fixed()+slideMinHeight+pageMinHeight {
		indicators = false
	}
	// One page row and one slide row at least, or no carousel at all.
	if avail < fixed()+2 {
		l.pageHeight = max(avail, 1)
		return l
	}

	slide := min(max(avail*2/5, slideMinHeight), slideMaxHeight)
	if avail-fixed()-slide < pageMinHeight {
		slide = max(avail-fixed()-pageMinHeight, slideMinHeight)
	}
	slide = min(slide, avail-fixed()-1)
	l.slideHeight = slide
	l.pageHeight = avail - fixed() - slide

	row := l.pageTop + l.pageHeight
	l.carouselTop = row
	l.slideTop = row
	row += slide
	l.captionRow = row
	row++
	if indicators {
		l.indicatorRow = row
		row++
	}
	if thumbnails {
		l.thumbnailRow = row
		row++
	}
	l.progressRow = row
	return l
}

// cellSpan is a horizontal run of cells on one row.
type cellSpan struct {
	x     int
	width int
}

func (s cellSpan) contains(x int) bool {
	return x >= s.x && x < s.x+s.width
}

// centeredSpans lays n items of itemWidth side by side, centered in width.
func centeredSpans(width, n, itemWidth int) []cellSpan {
	if n <= 0 || itemWidth <= 0 {
		return nil
	}
	start := max((width-n*itemWidth)/2, 0)
	spans := make([]cellSpan, n)
	for i := range spans {
		spans[i] = cellSpan{x: start + i*itemWidth, width: itemWidth}
	}
	return spans
}
