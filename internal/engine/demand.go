package engine

// EffectiveDailyDemand adjusts the raw daily average with three independent
// multiplicative boosts. With every flag off the result equals avgDaily
// exactly. The margin tiers are exclusive: a margin at or above the high
// tier gets only the high boost, one between the mid and high tiers gets
// only the mid boost, anything lower (including negative) gets none.
func (e *Engine) EffectiveDailyDemand(avgDaily float64, trending bool, margin float64, festival bool) float64 {
	demand := avgDaily

	if trending {
		demand *= e.cfg.TrendBoost
	}

	switch {
	case margin >= e.cfg.MarginHighTier:
		demand *= e.cfg.MarginHighBoost
	case margin >= e.cfg.MarginMidTier:
		demand *= e.cfg.MarginMidBoost
	}

	if festival {
		demand *= e.cfg.FestivalBoost
	}

	return demand
}
