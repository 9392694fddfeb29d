package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name               string
		content, container float64
		wantMin, wantMax   float64
	}{
		{"overflowing", 1000, 400, -600, 0},
		{"exact fit", 400, 400, 0, 0},
		{"smaller than container", 200, 400, 0, 0},
		{"NaN content", math.NaN(), 400, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := scrollWindow(tt.content, tt.container)
			assert.Equal(t, tt.wantMin, min)
			assert.Equal(t, tt.wantMax, max)
		})
	}
}

func TestOverscroll_IdentityInsideWindow(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}
	tests := []struct {
		name string
		p, t float64
	}{
		{"forward", -100, -50},
		{"backward", -100, 100},
		{"to leading edge", -300, 300},
		{"to trailing edge", -300, -300},
		{"zero", -250, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.t, m.Translate(1000, 400, tt.p, tt.t))
		})
	}
}

func TestOverscroll_DampsPastLeadingEdge(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}

	got := m.Translate(1000, 400, 0, 80)

	assert.InDelta(t, math.Pow(81, 0.875)-1, got, 1e-9)
	assert.InDelta(t, 45.76, got, 0.01)
	assert.Less(t, got, 80.0)
	assert.Greater(t, got, 0.0)
}

func TestOverscroll_ThousandInThreeHundred(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}
	tests := []struct {
		name string
		p, t float64
		want float64
	}{
		{"inside the window", 0, -50, -50},
		{"past the leading edge", 0, 80, math.Pow(81, 0.875) - 1},
		{"at the trailing edge", -700, 0, 0},
		{"past the trailing edge", -700, -80, -(math.Pow(81, 0.875) - 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.Translate(1000, 300, tt.p, tt.t), 1e-9)
		})
	}
}

func TestOverscroll_SymmetricAtTrailingEdge(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}

	leading := m.Translate(1000, 400, 0, 80)
	trailing := m.Translate(1000, 400, -600, -80)

	assert.InDelta(t, -leading, trailing, 1e-9)
}

func TestOverscroll_CrossingAnEdge(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}

	// Starting 10 inside the window, 20 of the 30 requested land past it.
	got := m.Translate(1000, 400, -10, 30)

	assert.InDelta(t, 10+math.Pow(21, 0.875)-1, got, 1e-9)
}

func TestOverscroll_MonotonicAndSubLinear(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}
	prev := 0.0
	for tr := 1.0; tr <= 2000; tr += 7 {
		got := m.Translate(1000, 400, 0, tr)
		assert.Greater(t, got, prev, "translation %v", tr)
		assert.LessOrEqual(t, got, tr, "translation %v", tr)
		prev = got
	}
}

func TestOverscroll_ContentSmallerThanContainer(t *testing.T) {
	m := OverscrollModel{Elasticity: 0.875}

	assert.InDelta(t, math.Pow(41, 0.875)-1, m.Translate(200, 400, 0, 40), 1e-9)
	assert.InDelta(t, -(math.Pow(41, 0.875) - 1), m.Translate(200, 400, 0, -40), 1e-9)
}

func TestOverscroll_ElasticityRange(t *testing.T) {
	tests := []struct {
		name       string
		elasticity float64
	}{
		{"one", 1},
		{"above one", 3},
		{"NaN", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := OverscrollModel{Elasticity: tt.elasticity}
			assert.InDelta(t, 80, m.Translate(1000, 400, 0, 80), 1e-9, "undamped")
		})
	}

	stiff := OverscrollModel{Elasticity: 0}
	assert.InDelta(t, 0, stiff.Translate(1000, 400, 0, 80), 1e-9, "fully damped")
}
