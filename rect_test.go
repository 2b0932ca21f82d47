package camttc

import (
	"testing"
)

func TestRectContains(t *testing.T) {

	r := NewRect(100, 50, 200, 100)

	cases := []struct {
		name string
		x, y float32
		want bool
	}{
		{"center", 200, 100, true},
		{"top left corner inclusive", 100, 50, true},
		{"right edge exclusive", 300, 100, false},
		{"bottom edge exclusive", 200, 150, false},
		{"left of rect", 99, 100, false},
		{"above rect", 200, 49, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%v, %v) = %v, want %v",
					tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectShrink(t *testing.T) {

	r := NewRect(100, 100, 200, 100)
	s := r.Shrink(0.1)

	if !almostEqual(s.X(), 110, 1e-5) || !almostEqual(s.Y(), 105, 1e-5) {
		t.Errorf("Shrunk origin = (%v, %v), want (110, 105)", s.X(), s.Y())
	}

	if !almostEqual(s.Width(), 180, 1e-5) || !almostEqual(s.Height(), 90, 1e-5) {
		t.Errorf("Shrunk size = (%v, %v), want (180, 90)", s.Width(), s.Height())
	}

	// factor 0 leaves the rectangle unchanged
	z := r.Shrink(0)

	if z.X() != r.X() || z.Y() != r.Y() || z.Width() != r.Width() ||
		z.Height() != r.Height() {
		t.Errorf("Shrink(0) changed the rectangle: %v", z.Tlwh)
	}
}

func TestRectTlbr(t *testing.T) {

	r := GenerateRectByTlbr(Tlbr{10, 20, 110, 70})

	if r.X() != 10 || r.Y() != 20 || r.Width() != 100 || r.Height() != 50 {
		t.Errorf("GenerateRectByTlbr gave %v", r.Tlwh)
	}

	back := r.GetTlbr()

	for i, want := range []float32{10, 20, 110, 70} {
		if back[i] != want {
			t.Errorf("GetTlbr[%d] = %v, want %v", i, back[i], want)
		}
	}
}

func TestRectCalcIoU(t *testing.T) {

	a := NewRect(0, 0, 100, 100)
	b := NewRect(0, 0, 100, 100)

	if iou := a.CalcIoU(b); iou < 0.99 {
		t.Errorf("IoU of identical rects = %v, want ~1", iou)
	}

	c := NewRect(500, 500, 100, 100)

	if iou := a.CalcIoU(c); iou != 0 {
		t.Errorf("IoU of disjoint rects = %v, want 0", iou)
	}
}
