package navigation

// DefaultCapacity is the number of entry rows drawn per frame
const DefaultCapacity = 30

// Window is the contiguous slice of entry indices drawn in one frame
type Window struct {
	Skip int
	Take int
}

// Contains reports whether index falls inside the window
func (w Window) Contains(index int) bool {
	return index >= w.Skip && index < w.Skip+w.Take
}

// End returns the first index past the window
func (w Window) End() int {
	return w.Skip + w.Take
}
