package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node     *Node
	mainSize int
	auto     bool
}

// ComputeFlex distributes the children of a flex container along one
// axis (Row = horizontal main axis, Column = vertical) with
// justify/align semantics. Dangling child ids are skipped.
func ComputeFlex(t *Tree, id NodeID, availableWidth, availableHeight int) {
	node, ok := t.Get(id)
	if !ok {
		return
	}

	style := node.Style
	pad := style.Padding
	contentWidth := satSub(availableWidth, pad.Horizontal())
	contentHeight := satSub(availableHeight, pad.Vertical())

	isRow := style.Direction == Row
	mainSize, crossSize := contentWidth, contentHeight
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	items := collectFlexItems(t, node)
	if len(items) == 0 {
		return
	}

	// Effective gap: the direction-specific override wins over the
	// generic gap (column-gap separates row children and vice versa).
	gap := style.Gap
	if isRow && style.ColumnGap != nil {
		gap = *style.ColumnGap
	} else if !isRow && style.RowGap != nil {
		gap = *style.RowGap
	}
	totalGaps := gap * (len(items) - 1)
	availableMain := satSub(mainSize, totalGaps)

	// Phase 1: resolve fixed and percent main sizes, count Auto children.
	totalFixed := 0
	autoCount := 0
	for i := range items {
		child := items[i].node
		main := mainValue(child.Style, isRow)
		if main.IsAuto() {
			items[i].auto = true
			autoCount++
			continue
		}
		size := main.Resolve(availableMain, 0)
		size = clampMain(child.Style, isRow, availableMain, size)
		items[i].mainSize = size
		totalFixed += size
	}

	// Phase 2: split the remainder evenly among Auto children. The
	// first (remaining % autoCount) children get one extra cell so the
	// distributed sizes sum to the remainder exactly.
	if autoCount > 0 {
		remaining := satSub(availableMain, totalFixed)
		perAuto := remaining / autoCount
		extra := remaining % autoCount
		seen := 0
		for i := range items {
			if !items[i].auto {
				continue
			}
			size := perAuto
			if seen < extra {
				size++
			}
			seen++
			items[i].mainSize = clampMain(items[i].node.Style, isRow, availableMain, size)
		}
	}

	// Phase 3: free space and justify-content tie-breaks.
	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace := satSub(mainSize, totalUsed+totalGaps)
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))

	// Phase 4: cross-axis sizing, alignment, and position assembly.
	for i := range items {
		child := items[i].node

		align := style.AlignItems
		if child.Style.AlignSelf != nil {
			align = *child.Style.AlignSelf
		}

		cross := crossValue(child.Style, isRow)
		var crossMain int
		if cross.IsAuto() {
			// Auto fills the cross axis only under Stretch; otherwise
			// it collapses to a minimum single cell.
			if align == AlignStretch {
				crossMain = crossSize
			} else {
				crossMain = 1
			}
		} else {
			crossMain = cross.Resolve(crossSize, 0)
		}
		crossMain = clampCross(child.Style, isRow, crossSize, crossMain)
		crossPos := alignOffset(align, crossSize, crossMain)

		if isRow {
			child.Computed = NewRect(pad.Left+offset, pad.Top+crossPos, items[i].mainSize, crossMain)
		} else {
			child.Computed = NewRect(pad.Left+crossPos, pad.Top+offset, crossMain, items[i].mainSize)
		}

		offset += items[i].mainSize + gap
		if i < len(items)-1 {
			offset += spacing
		}
	}
}

// collectFlexItems gathers the children that still exist in the tree.
func collectFlexItems(t *Tree, node *Node) []flexItem {
	items := make([]flexItem, 0, len(node.Children))
	for _, childID := range node.Children {
		child, ok := t.Get(childID)
		if !ok {
			continue
		}
		items = append(items, flexItem{node: child})
	}
	return items
}

// mainValue returns the child's size on the main axis.
func mainValue(style Style, isRow bool) Size {
	if isRow {
		return style.Width
	}
	return style.Height
}

// crossValue returns the child's size on the cross axis.
func crossValue(style Style, isRow bool) Size {
	if isRow {
		return style.Height
	}
	return style.Width
}

// clampMain applies the child's main-axis min/max constraints.
func clampMain(style Style, isRow bool, available, size int) int {
	if isRow {
		return clamp(size, resolveMin(style.MinWidth, available), resolveMax(style.MaxWidth, available))
	}
	return clamp(size, resolveMin(style.MinHeight, available), resolveMax(style.MaxHeight, available))
}

// clampCross applies the child's cross-axis min/max constraints.
func clampCross(style Style, isRow bool, available, size int) int {
	if isRow {
		return clamp(size, resolveMin(style.MinHeight, available), resolveMax(style.MaxHeight, available))
	}
	return clamp(size, resolveMin(style.MinWidth, available), resolveMax(style.MaxWidth, available))
}

// justifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return (freeSpace / itemCount) / 2
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children based on
// the justify mode and available free space.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		if itemCount > 1 {
			return freeSpace / (itemCount - 1)
		}
		return 0
	case JustifySpaceAround:
		return freeSpace / itemCount
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return satSub(crossSize, itemSize)
	case AlignCenter:
		return satSub(crossSize, itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
