// Package placement decides where a floating preview panel appears relative
// to its trigger so it never renders off-screen.
package placement

// PointerGap is the fixed pixel offset between the pointer and the panel in
// the direction of growth.
const PointerGap = 8

// Point is a viewport coordinate.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a bounding rectangle in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether the point falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Placement is a computed anchor point plus the flow direction the panel
// grows in from that anchor.
type Placement struct {
	X         float64
	Y         float64
	GrowsUp   bool
	GrowsLeft bool
}

// Compute places the panel for a pointer-driven trigger. The panel anchors
// horizontally at the pointer, offset by PointerGap in the growth direction,
// and vertically at the top or bottom edge of the trigger's bounding rect.
//
// The panel grows left when the pointer is past the viewport's horizontal
// midpoint, biasing it toward the side with more room. It grows up when
// placing it below the pointer would push its bottom edge past the viewport.
//
// Calls while a panel is already open simply recompute; there is no queuing.
func Compute(trigger Point, bounds Rect, panel Size, viewport Size) Placement {
	growsLeft := trigger.X > viewport.Width/2
	growsUp := trigger.Y+panel.Height > viewport.Height

	x := trigger.X - PointerGap
	if growsLeft {
		x = trigger.X + PointerGap
	}

	y := bounds.Bottom
	if growsUp {
		y = bounds.Top
	}

	return Placement{X: x, Y: y, GrowsUp: growsUp, GrowsLeft: growsLeft}
}

// ComputeTouch places the panel for a touch activation. It anchors to the
// trigger element's own left or right edge rather than the touch coordinate
// so the panel is not hidden under the finger.
func ComputeTouch(touch Point, bounds Rect, panel Size, viewport Size) Placement {
	p := Compute(touch, bounds, panel, viewport)

	p.X = bounds.Left
	if p.GrowsLeft {
		p.X = bounds.Right
	}

	return p
}

// ComputeFocus places the panel for a keyboard-focus activation, where no
// pointer coordinate exists. Overflow is tested from the trigger rect's
// edges plus the panel's intrinsic size.
func ComputeFocus(bounds Rect, panel Size, viewport Size) Placement {
	growsLeft := bounds.Left+panel.Width >= viewport.Width
	growsUp := bounds.Bottom+panel.Height >= viewport.Height

	x := bounds.Left
	if growsLeft {
		x = bounds.Right
	}

	y := bounds.Bottom
	if growsUp {
		y = bounds.Top
	}

	return Placement{X: x, Y: y, GrowsUp: growsUp, GrowsLeft: growsLeft}
}
