package layout

import "math"

// MaxGridSize is the hard ceiling on tracks per axis. It bounds the
// allocation caused by malformed templates or huge child counts.
const MaxGridSize = 1000

// ComputeGrid places the children of a grid container into a two-axis
// track grid, honoring explicit placement and spans or falling back to
// row-major auto-placement. Dangling child ids are skipped.
func ComputeGrid(t *Tree, id NodeID, availableWidth, availableHeight int) {
	node, ok := t.Get(id)
	if !ok {
		return
	}

	children := make([]*Node, 0, len(node.Children))
	for _, childID := range node.Children {
		if child, ok := t.Get(childID); ok {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		return
	}

	style := node.Style
	pad := style.Padding
	contentWidth := satSub(availableWidth, pad.Horizontal())
	contentHeight := satSub(availableHeight, pad.Vertical())

	colGap := style.Gap
	if style.ColumnGap != nil {
		colGap = *style.ColumnGap
	}
	rowGap := style.Gap
	if style.RowGap != nil {
		rowGap = *style.RowGap
	}

	// Infer grid dimensions: template length when given, otherwise a
	// near-square arrangement of the children.
	columns := len(style.GridColumns)
	if columns == 0 {
		columns = int(math.Ceil(math.Sqrt(float64(len(children)))))
	}
	columns = clamp(columns, 1, MaxGridSize)

	rows := len(style.GridRows)
	if rows == 0 {
		rows = (len(children) + columns - 1) / columns
	}
	rows = clamp(rows, 1, MaxGridSize)

	tracer().Debugf("grid %d: %d children in %dx%d tracks", id, len(children), columns, rows)

	colSizes := trackSizes(style.GridColumns, columns, satSub(contentWidth, colGap*(columns-1)))
	rowSizes := trackSizes(style.GridRows, rows, satSub(contentHeight, rowGap*(rows-1)))
	colPos := trackPositions(colSizes, colGap)
	rowPos := trackPositions(rowSizes, rowGap)

	for i, child := range children {
		colStart, colSpan := resolvePlacement(child.Style.GridColumn, i%columns, columns)
		rowStart, rowSpan := resolvePlacement(child.Style.GridRow, i/columns, rows)

		colEnd := min(colStart+colSpan, columns)
		rowEnd := min(rowStart+rowSpan, rows)

		child.Computed = NewRect(
			pad.Left+colPos[colStart],
			pad.Top+rowPos[rowStart],
			spanSize(colPos, colSizes, colStart, colEnd, colGap),
			spanSize(rowPos, rowSizes, rowStart, rowEnd, rowGap),
		)
	}
}

// trackSizes sizes every track on one axis. available is the axis's
// content size with gaps already removed. Fixed tracks consume space
// directly; the remainder is split among fractional tracks in
// proportion to their weights, truncating to whole cells. Tracks past
// the end of the template default to Fr(1).
func trackSizes(template []GridTrack, count, available int) []int {
	sizes := make([]int, count)
	weights := make([]float64, count)
	fixedTotal := 0
	totalFr := 0.0

	for i := 0; i < count; i++ {
		track := FrTrack(1)
		if i < len(template) {
			track = template[i]
		}
		if track.Kind == TrackFixed {
			sizes[i] = int(track.Amount)
			fixedTotal += sizes[i]
			continue
		}
		weights[i] = track.frWeight()
		totalFr += weights[i]
	}

	if totalFr > 0 {
		perFr := float64(satSub(available, fixedTotal)) / totalFr
		for i := 0; i < count; i++ {
			if weights[i] > 0 {
				sizes[i] = int(perFr * weights[i])
			}
		}
	}
	return sizes
}

// trackPositions returns cumulative track offsets including gaps. The
// result has one more entry than there are tracks; the final entry is
// a sentinel end position one gap past the last track.
func trackPositions(sizes []int, gap int) []int {
	positions := make([]int, len(sizes)+1)
	for i, size := range sizes {
		positions[i+1] = positions[i] + size + gap
	}
	return positions
}

// resolvePlacement converts a 1-indexed placement into a 0-indexed
// start track and a span count. autoIndex is the row-major fallback
// position. Spans never go below 1; the start is clamped into bounds.
func resolvePlacement(p GridPlacement, autoIndex, count int) (start, span int) {
	start = autoIndex
	if p.Start != 0 {
		start = p.Start - 1
	}
	start = clamp(start, 0, count-1)

	span = 1
	switch {
	case p.End < 0:
		span = -p.End
	case p.End > 0 && p.End-1 > start:
		span = p.End - 1 - start
	}
	if span < 1 {
		span = 1
	}
	return start, span
}

// spanSize is the distance between the start and end cumulative
// positions minus the trailing gap, falling back to the single track's
// size if the span collapsed under clamping.
func spanSize(positions, sizes []int, start, end, gap int) int {
	if end <= start {
		return sizes[start]
	}
	return satSub(positions[end]-positions[start], gap)
}
