package navigation

// Compute returns the rows to draw for a list of total entries with the
// cursor at selected. The window tries to centre the cursor and stops at
// either end of the list, so near the edges the cursor sits off-centre.
func Compute(total, selected, capacity int) Window {
	if total <= 0 || capacity <= 0 {
		return Window{}
	}

	take := capacity
	if total < take {
		take = total
	}

	maxSkip := total - capacity
	if maxSkip < 0 {
		maxSkip = 0
	}

	skip := selected - capacity/2
	if skip > maxSkip {
		skip = maxSkip
	}
	if skip < 0 {
		skip = 0
	}

	return Window{Skip: skip, Take: take}
}

// Clamp keeps index inside a list of length total; empty lists give 0
func Clamp(index, total int) int {
	if index >= total {
		index = total - 1
	}
	if index < 0 {
		return 0
	}
	return index
}
