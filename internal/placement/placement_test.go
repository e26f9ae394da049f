package placement

import "testing"

var (
	panel    = Size{Width: 222, Height: 310}
	viewport = Size{Width: 1280, Height: 720}
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		trigger   Point
		bounds    Rect
		wantX     float64
		wantY     float64
		growsUp   bool
		growsLeft bool
	}{
		{
			name:    "Top left quadrant grows right and down",
			trigger: Point{X: 100, Y: 100},
			bounds:  Rect{Left: 80, Top: 90, Right: 160, Bottom: 110},
			wantX:   92, // trigger.X - gap
			wantY:   110,
		},
		{
			name:      "Right half grows left",
			trigger:   Point{X: 1000, Y: 100},
			bounds:    Rect{Left: 980, Top: 90, Right: 1060, Bottom: 110},
			wantX:     1008, // trigger.X + gap
			wantY:     110,
			growsLeft: true,
		},
		{
			name:    "Low trigger grows up",
			trigger: Point{X: 100, Y: 600},
			bounds:  Rect{Left: 80, Top: 590, Right: 160, Bottom: 610},
			wantX:   92,
			wantY:   590, // bounds.Top
			growsUp: true,
		},
		{
			name:      "Bottom right grows up and left",
			trigger:   Point{X: 1200, Y: 700},
			bounds:    Rect{Left: 1180, Top: 690, Right: 1260, Bottom: 710},
			wantX:     1208,
			wantY:     690,
			growsUp:   true,
			growsLeft: true,
		},
		{
			name:    "Exact horizontal midpoint grows right",
			trigger: Point{X: 640, Y: 100},
			bounds:  Rect{Left: 620, Top: 90, Right: 700, Bottom: 110},
			wantX:   632,
			wantY:   110,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(tt.trigger, tt.bounds, panel, viewport)
			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
			if p.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", p.Y, tt.wantY)
			}
			if p.GrowsUp != tt.growsUp {
				t.Errorf("GrowsUp = %v, want %v", p.GrowsUp, tt.growsUp)
			}
			if p.GrowsLeft != tt.growsLeft {
				t.Errorf("GrowsLeft = %v, want %v", p.GrowsLeft, tt.growsLeft)
			}
		})
	}
}

func TestCompute_GrowsUpBoundary(t *testing.T) {
	// growsUp flips exactly when trigger.Y + panel.Height exceeds the
	// viewport height.
	fits := Compute(Point{X: 100, Y: viewport.Height - panel.Height}, Rect{}, panel, viewport)
	if fits.GrowsUp {
		t.Error("GrowsUp = true when the panel exactly fits below")
	}
	overflows := Compute(Point{X: 100, Y: viewport.Height - panel.Height + 1}, Rect{}, panel, viewport)
	if !overflows.GrowsUp {
		t.Error("GrowsUp = false when the panel overflows by one pixel")
	}
}

func TestComputeTouch(t *testing.T) {
	bounds := Rect{Left: 80, Top: 90, Right: 160, Bottom: 110}

	left := ComputeTouch(Point{X: 100, Y: 100}, bounds, panel, viewport)
	if left.X != bounds.Left {
		t.Errorf("X = %v, want bounds.Left %v", left.X, bounds.Left)
	}
	if left.Y != bounds.Bottom {
		t.Errorf("Y = %v, want bounds.Bottom %v", left.Y, bounds.Bottom)
	}

	rightBounds := Rect{Left: 980, Top: 90, Right: 1060, Bottom: 110}
	right := ComputeTouch(Point{X: 1000, Y: 100}, rightBounds, panel, viewport)
	if !right.GrowsLeft {
		t.Error("GrowsLeft = false for touch on the right half")
	}
	if right.X != rightBounds.Right {
		t.Errorf("X = %v, want bounds.Right %v", right.X, rightBounds.Right)
	}
}

func TestComputeFocus(t *testing.T) {
	tests := []struct {
		name      string
		bounds    Rect
		wantX     float64
		wantY     float64
		growsUp   bool
		growsLeft bool
	}{
		{
			name:   "Room on both axes",
			bounds: Rect{Left: 80, Top: 90, Right: 160, Bottom: 110},
			wantX:  80,
			wantY:  110,
		},
		{
			name:      "Panel would cross the right edge",
			bounds:    Rect{Left: 1100, Top: 90, Right: 1180, Bottom: 110},
			wantX:     1180,
			wantY:     110,
			growsLeft: true,
		},
		{
			name:    "Panel would cross the bottom edge",
			bounds:  Rect{Left: 80, Top: 600, Right: 160, Bottom: 620},
			wantX:   80,
			wantY:   600,
			growsUp: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeFocus(tt.bounds, panel, viewport)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("anchor = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if p.GrowsUp != tt.growsUp || p.GrowsLeft != tt.growsLeft {
				t.Errorf("growth = (up %v, left %v), want (up %v, left %v)",
					p.GrowsUp, p.GrowsLeft, tt.growsUp, tt.growsLeft)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if !r.Contains(Point{X: 60, Y: 45}) {
		t.Error("Contains() = false for interior point")
	}
	if r.Contains(Point{X: 111, Y: 45}) {
		t.Error("Contains() = true for point past the right edge")
	}
}
