package engine

// daysPerWeek converts a per-week average into a daily rate; demand is
// recorded weekly.
const daysPerWeek = 7

// AverageDailyDemand averages the recorded weekly quantities and converts
// the result to a daily rate. An empty history has no signal and yields 0.
func (e *Engine) AverageDailyDemand(history []float64) float64 {
	if len(history) == 0 {
		return 0
	}

	total := 0.0
	for _, qty := range history {
		total += qty
	}

	return total / float64(len(history)) / daysPerWeek
}

// HasIncreasingTrend is a momentum heuristic, not a statistical test: it
// looks at the last TrendWindow entries and calls the trend increasing when
// at least TrendThreshold adjacent pairs strictly increase. Histories
// shorter than TrendMinHistory never trend.
func (e *Engine) HasIncreasingTrend(history []float64) bool {
	if len(history) < e.cfg.TrendMinHistory {
		return false
	}

	window := history
	if len(window) > e.cfg.TrendWindow {
		window = window[len(window)-e.cfg.TrendWindow:]
	}

	increases := 0
	for i := 1; i < len(window); i++ {
		if window[i] > window[i-1] {
			increases++
		}
	}

	return increases >= e.cfg.TrendThreshold
}
