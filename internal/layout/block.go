package layout

// ComputeBlock lays out the children of a block container as a
// vertical stack. Each child defaults to the full content width; Auto
// heights collapse to a single row since there is no intrinsic content
// measurement. Gap is not consulted (a flex/grid-only concept).
func ComputeBlock(t *Tree, id NodeID, availableWidth, availableHeight int) {
	node, ok := t.Get(id)
	if !ok {
		return
	}
	pad := node.Style.Padding
	contentWidth := satSub(availableWidth, pad.Horizontal())
	contentHeight := satSub(availableHeight, pad.Vertical())

	y := pad.Top
	for _, childID := range node.Children {
		child, ok := t.Get(childID)
		if !ok {
			continue
		}
		style := child.Style

		var width int
		switch style.Width.Unit {
		case UnitFixed:
			width = min(style.Width.Resolve(contentWidth, 0), contentWidth)
		case UnitPercent:
			width = style.Width.Resolve(contentWidth, 0)
		default:
			width = satSub(contentWidth, style.Margin.Horizontal())
		}

		// Auto height is 1: a minimum single-row box.
		height := style.Height.Resolve(contentHeight, 1)

		width = clamp(width, resolveMin(style.MinWidth, contentWidth), resolveMax(style.MaxWidth, contentWidth))
		height = clamp(height, resolveMin(style.MinHeight, contentHeight), resolveMax(style.MaxHeight, contentHeight))

		top := y + style.Margin.Top
		child.Computed = NewRect(pad.Left+style.Margin.Left, top, width, height)
		y = top + height + style.Margin.Bottom
	}
}
