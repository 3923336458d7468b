package layout

import "testing"

func flexChild(t *Tree, parent NodeID, style Style) NodeID {
	id := t.Insert(style)
	t.AddChild(parent, id)
	return id
}

func fixedSize(w, h int) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

func TestComputeFlex_TwoAutoChildren_WithGap(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.Gap = 10
	root := tree.Insert(style)

	a := flexChild(tree, root, DefaultStyle())
	b := flexChild(tree, root, DefaultStyle())

	ComputeFlex(tree, root, 100, 50)

	ra := rectOf(t, tree, a)
	rb := rectOf(t, tree, b)

	if ra.Width != 45 || rb.Width != 45 {
		t.Errorf("widths = %d, %d, want 45, 45", ra.Width, rb.Width)
	}
	if ra.X != 0 {
		t.Errorf("first child X = %d, want 0", ra.X)
	}
	if rb.X != 55 {
		t.Errorf("second child X = %d, want 55", rb.X)
	}
	// Default AlignStretch fills the cross axis.
	if ra.Height != 50 || rb.Height != 50 {
		t.Errorf("heights = %d, %d, want 50, 50 (stretched)", ra.Height, rb.Height)
	}
}

func TestComputeFlex_AutoDistribution_ExactConservation(t *testing.T) {
	// 100 cells across three Auto children: 34 + 33 + 33, no drift.
	tree := NewTree()
	root := tree.Insert(DefaultStyle())

	ids := []NodeID{
		flexChild(tree, root, DefaultStyle()),
		flexChild(tree, root, DefaultStyle()),
		flexChild(tree, root, DefaultStyle()),
	}

	ComputeFlex(tree, root, 100, 10)

	want := []uint16{34, 33, 33}
	sum := 0
	for i, id := range ids {
		r := rectOf(t, tree, id)
		if r.Width != want[i] {
			t.Errorf("child %d Width = %d, want %d", i, r.Width, want[i])
		}
		sum += int(r.Width)
	}
	if sum != 100 {
		t.Errorf("sum of widths = %d, want exactly 100", sum)
	}
}

func TestComputeFlex_JustifyModes(t *testing.T) {
	type tc struct {
		justify    Justify
		expectedX1 int
		expectedX2 int
		expectedX3 int
	}

	// Container: 100 wide, children: 20 each = 60 total, free space: 40.
	tests := map[string]tc{
		"JustifyStart": {
			justify:    JustifyStart,
			expectedX1: 0,
			expectedX2: 20,
			expectedX3: 40,
		},
		"JustifyEnd": {
			justify:    JustifyEnd,
			expectedX1: 40,
			expectedX2: 60,
			expectedX3: 80,
		},
		"JustifyCenter": {
			justify:    JustifyCenter,
			expectedX1: 20,
			expectedX2: 40,
			expectedX3: 60,
		},
		"JustifySpaceBetween": {
			// 40 / (3-1) = 20 extra between each pair
			justify:    JustifySpaceBetween,
			expectedX1: 0,
			expectedX2: 40,
			expectedX3: 80,
		},
		"JustifySpaceAround": {
			// Inter-item gap 40/3 = 13, leading offset 13/2 = 6
			justify:    JustifySpaceAround,
			expectedX1: 6,
			expectedX2: 39,
			expectedX3: 72,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			style := DefaultStyle()
			style.JustifyContent = tt.justify
			root := tree.Insert(style)

			ids := []NodeID{
				flexChild(tree, root, fixedSize(20, 50)),
				flexChild(tree, root, fixedSize(20, 50)),
				flexChild(tree, root, fixedSize(20, 50)),
			}

			ComputeFlex(tree, root, 100, 50)

			wantX := []int{tt.expectedX1, tt.expectedX2, tt.expectedX3}
			for i, id := range ids {
				if r := rectOf(t, tree, id); int(r.X) != wantX[i] {
					t.Errorf("child %d X = %d, want %d", i, r.X, wantX[i])
				}
			}
		})
	}
}

func TestComputeFlex_SpaceBetween_TwoChildren(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.JustifyContent = JustifySpaceBetween
	root := tree.Insert(style)

	a := flexChild(tree, root, fixedSize(20, 50))
	b := flexChild(tree, root, fixedSize(20, 50))

	ComputeFlex(tree, root, 100, 50)

	if r := rectOf(t, tree, a); r.X != 0 {
		t.Errorf("first child X = %d, want 0", r.X)
	}
	if r := rectOf(t, tree, b); r.X != 80 {
		t.Errorf("second child X = %d, want 80", r.X)
	}
}

func TestComputeFlex_Column(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.Direction = Column
	style.Gap = 2
	root := tree.Insert(style)

	a := flexChild(tree, root, DefaultStyle())
	b := flexChild(tree, root, DefaultStyle())

	ComputeFlex(tree, root, 80, 24)

	ra := rectOf(t, tree, a)
	rb := rectOf(t, tree, b)

	// Main axis is vertical: 24 - 2 gap = 22 across two autos.
	if ra.Height != 11 || rb.Height != 11 {
		t.Errorf("heights = %d, %d, want 11, 11", ra.Height, rb.Height)
	}
	if ra.Y != 0 || rb.Y != 13 {
		t.Errorf("Y positions = %d, %d, want 0, 13", ra.Y, rb.Y)
	}
	if ra.Width != 80 {
		t.Errorf("cross width = %d, want 80 (stretched)", ra.Width)
	}
}

func TestComputeFlex_GapOverrides(t *testing.T) {
	columnGap := 4
	rowGap := 6

	tree := NewTree()
	style := DefaultStyle()
	style.Gap = 10
	style.ColumnGap = &columnGap
	style.RowGap = &rowGap
	root := tree.Insert(style)

	a := flexChild(tree, root, fixedSize(10, 5))
	b := flexChild(tree, root, fixedSize(10, 5))
	_ = a

	// Row direction consults the column-gap override, not Gap.
	ComputeFlex(tree, root, 100, 50)
	if r := rectOf(t, tree, b); r.X != 14 {
		t.Errorf("row: second child X = %d, want 14 (column-gap 4)", r.X)
	}

	// Column direction consults the row-gap override.
	n, _ := tree.Get(root)
	n.Style.Direction = Column
	ComputeFlex(tree, root, 100, 50)
	if r := rectOf(t, tree, b); r.Y != 11 {
		t.Errorf("column: second child Y = %d, want 11 (row-gap 6)", r.Y)
	}
}

func TestComputeFlex_CrossAxis(t *testing.T) {
	type tc struct {
		align          Align
		height         Size
		expectedY      int
		expectedHeight int
	}

	// Container: row, 100x50.
	tests := map[string]tc{
		"stretch fills cross axis": {
			align:          AlignStretch,
			height:         Auto(),
			expectedY:      0,
			expectedHeight: 50,
		},
		"auto without stretch collapses to one row": {
			align:          AlignStart,
			height:         Auto(),
			expectedY:      0,
			expectedHeight: 1,
		},
		"align end": {
			align:          AlignEnd,
			height:         Fixed(30),
			expectedY:      20,
			expectedHeight: 30,
		},
		"align center": {
			align:          AlignCenter,
			height:         Fixed(30),
			expectedY:      10,
			expectedHeight: 30,
		},
		"percent cross size": {
			align:          AlignStart,
			height:         Percent(40),
			expectedY:      0,
			expectedHeight: 20,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			style := DefaultStyle()
			style.AlignItems = tt.align
			root := tree.Insert(style)

			childStyle := DefaultStyle()
			childStyle.Width = Fixed(20)
			childStyle.Height = tt.height
			child := flexChild(tree, root, childStyle)

			ComputeFlex(tree, root, 100, 50)

			r := rectOf(t, tree, child)
			if int(r.Y) != tt.expectedY {
				t.Errorf("Y = %d, want %d", r.Y, tt.expectedY)
			}
			if int(r.Height) != tt.expectedHeight {
				t.Errorf("Height = %d, want %d", r.Height, tt.expectedHeight)
			}
		})
	}
}

func TestComputeFlex_AlignSelf_Override(t *testing.T) {
	alignEnd := AlignEnd

	tree := NewTree()
	style := DefaultStyle()
	style.AlignItems = AlignStart
	root := tree.Insert(style)

	a := flexChild(tree, root, fixedSize(20, 30))

	overridden := fixedSize(20, 30)
	overridden.AlignSelf = &alignEnd
	b := flexChild(tree, root, overridden)

	ComputeFlex(tree, root, 100, 50)

	if r := rectOf(t, tree, a); r.Y != 0 {
		t.Errorf("inheriting child Y = %d, want 0 (AlignStart)", r.Y)
	}
	if r := rectOf(t, tree, b); r.Y != 20 {
		t.Errorf("overriding child Y = %d, want 20 (AlignSelf end)", r.Y)
	}
}

func TestComputeFlex_PercentMain(t *testing.T) {
	tree := NewTree()
	root := tree.Insert(DefaultStyle())

	percentStyle := DefaultStyle()
	percentStyle.Width = Percent(50)
	a := flexChild(tree, root, percentStyle)
	b := flexChild(tree, root, DefaultStyle())

	ComputeFlex(tree, root, 100, 50)

	if r := rectOf(t, tree, a); r.Width != 50 {
		t.Errorf("percent child Width = %d, want 50", r.Width)
	}
	// The single Auto child takes everything that remains.
	if r := rectOf(t, tree, b); r.Width != 50 || r.X != 50 {
		t.Errorf("auto child = %+v, want Width 50 at X 50", r)
	}
}

func TestComputeFlex_MinMaxClamp(t *testing.T) {
	tree := NewTree()
	root := tree.Insert(DefaultStyle())

	capped := DefaultStyle()
	capped.MaxWidth = Fixed(30)
	a := flexChild(tree, root, capped)
	b := flexChild(tree, root, DefaultStyle())

	ComputeFlex(tree, root, 100, 50)

	// Each Auto child is offered 50; the cap clamps the first one after
	// distribution (no redistribution of the reclaimed cells).
	if r := rectOf(t, tree, a); r.Width != 30 {
		t.Errorf("capped child Width = %d, want 30", r.Width)
	}
	rb := rectOf(t, tree, b)
	if rb.Width != 50 {
		t.Errorf("free child Width = %d, want 50", rb.Width)
	}
	if rb.X != 30 {
		t.Errorf("free child X = %d, want 30", rb.X)
	}
}

func TestComputeFlex_Padding(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.Padding = EdgeAll(5)
	root := tree.Insert(style)

	child := flexChild(tree, root, DefaultStyle())

	ComputeFlex(tree, root, 100, 50)

	r := rectOf(t, tree, child)
	if r != (Rect{X: 5, Y: 5, Width: 90, Height: 40}) {
		t.Errorf("child = %+v, want {5 5 90 40}", r)
	}
}

func TestComputeFlex_DanglingChildrenSkipped(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.Gap = 10
	root := tree.Insert(style)

	a := flexChild(tree, root, DefaultStyle())
	b := flexChild(tree, root, DefaultStyle())

	n, _ := tree.Get(root)
	n.Children = []NodeID{a, 999, b}

	ComputeFlex(tree, root, 100, 50)

	// Only two real children: one gap, 45 cells each.
	if r := rectOf(t, tree, a); r.Width != 45 {
		t.Errorf("first child Width = %d, want 45", r.Width)
	}
	if r := rectOf(t, tree, b); r.X != 55 {
		t.Errorf("second child X = %d, want 55", r.X)
	}
}

func TestComputeFlex_Overflow_SaturatesToZero(t *testing.T) {
	tree := NewTree()
	style := DefaultStyle()
	style.Gap = 30
	root := tree.Insert(style)

	ids := []NodeID{
		flexChild(tree, root, DefaultStyle()),
		flexChild(tree, root, DefaultStyle()),
		flexChild(tree, root, DefaultStyle()),
	}

	// Gaps alone (60) exceed nothing but leave 0 cells for children.
	ComputeFlex(tree, root, 60, 10)

	for i, id := range ids {
		if r := rectOf(t, tree, id); r.Width != 0 {
			t.Errorf("child %d Width = %d, want 0 (no remaining space)", i, r.Width)
		}
	}
}

func TestComputeFlex_MissingNode(t *testing.T) {
	tree := NewTree()
	// Must not panic.
	ComputeFlex(tree, 42, 100, 100)
}
