package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		sell float64
		want float64
	}{
		{"zero cost", 0, 100, 0},
		{"zero sell", 50, 0, 0},
		{"both zero", 0, 0, 0},
		{"half margin", 50, 100, 0.5},
		{"thin margin", 90, 100, 0.1},
		{"selling below cost goes negative", 100, 80, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MarginPercent(tt.cost, tt.sell), 1e-9)
		})
	}
}

func TestMarginPercent_AlwaysBelowOne(t *testing.T) {
	// Margin is a fraction of the selling price, so it can never reach 1
	// for a positive cost.
	for _, cost := range []float64{0.01, 1, 50, 1000} {
		assert.Less(t, MarginPercent(cost, 10000), 1.0)
	}
}
