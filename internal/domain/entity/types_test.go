package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 110, Y: 105, W: 10, H: 5}, true},
		{"partial overlap right", Rect{X: 140, Y: 110, W: 50, H: 50}, true},
		{"touching right edge", Rect{X: 150, Y: 100, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 90, Y: 100, W: 10, H: 10}, false},
		{"touching top edge", Rect{X: 100, Y: 80, W: 10, H: 20}, false},
		{"touching bottom edge", Rect{X: 100, Y: 120, W: 10, H: 10}, false},
		{"disjoint", Rect{X: 500, Y: 500, W: 10, H: 10}, false},
		{"overlap x only", Rect{X: 110, Y: 300, W: 10, H: 10}, false},
		{"overlap y only", Rect{X: 300, Y: 110, W: 10, H: 10}, false},
		{"sub-unit overlap", Rect{X: 149.9, Y: 119.9, W: 10, H: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 5, Y: 5, W: 10, H: 10},
		{X: 10, Y: 0, W: 10, H: 10},
		{X: -3, Y: 8, W: 4, H: 4},
		{X: 2, Y: 2, W: 1, H: 1},
		{X: 0, Y: 10, W: 100, H: 1},
	}

	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%+v b=%+v", a, b)
		}
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 80, H: 52}

	assert.Equal(t, 90.0, r.Right())
	assert.Equal(t, 72.0, r.Bottom())
	assert.Equal(t, 50.0, r.CenterX())
	assert.Equal(t, 46.0, r.CenterY())
}

func TestFacing_String(t *testing.T) {
	assert.Equal(t, "right", FacingRight.String())
	assert.Equal(t, "left", FacingLeft.String())
}
