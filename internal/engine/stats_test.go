package engine

import (
	"testing"

	"github.com/gdghack/stockwise/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	return New(config.DefaultEngineConfig())
}

func TestAverageDailyDemand_EmptyHistory(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, 0.0, e.AverageDailyDemand(nil))
	assert.Equal(t, 0.0, e.AverageDailyDemand([]float64{}))
}

func TestAverageDailyDemand_WeeklyToDaily(t *testing.T) {
	e := newTestEngine()

	// (10+12+14+16)/4 weeks = 13 per week = 13/7 per day
	got := e.AverageDailyDemand([]float64{10, 12, 14, 16})
	assert.InDelta(t, 13.0/7.0, got, 1e-9)

	// A single week still averages
	assert.InDelta(t, 1.0, e.AverageDailyDemand([]float64{7}), 1e-9)
}

func TestHasIncreasingTrend_TooShort(t *testing.T) {
	e := newTestEngine()

	assert.False(t, e.HasIncreasingTrend(nil))
	assert.False(t, e.HasIncreasingTrend([]float64{5}))
	assert.False(t, e.HasIncreasingTrend([]float64{5, 50}))
}

func TestHasIncreasingTrend_Window(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name    string
		history []float64
		want    bool
	}{
		{"strictly increasing", []float64{10, 12, 14, 16}, true},
		{"two of three increases", []float64{10, 12, 11, 16}, true},
		{"one increase only", []float64{16, 14, 12, 13}, false},
		{"flat", []float64{10, 10, 10, 10}, false},
		{"plateau does not count as increase", []float64{10, 12, 12, 12}, false},
		{"decreasing", []float64{16, 14, 12, 10}, false},
		{"only the last four entries matter", []float64{100, 90, 80, 10, 12, 14, 16}, true},
		{"old growth outside the window is ignored", []float64{1, 2, 3, 4, 20, 15, 10, 5}, false},
		{"three entries can trend", []float64{10, 12, 14}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.HasIncreasingTrend(tt.history))
		})
	}
}
