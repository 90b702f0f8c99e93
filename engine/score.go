package engine

import "math"

// Score bands shown in the app's four-tier color scheme. Bands are inclusive
// on the lower bound: 0-25 beginning, 26-50 building, 51-75 strong,
// 76-100 exceptional.
const (
	BandBeginning   = "beginning"
	BandBuilding    = "building"
	BandStrong      = "strong"
	BandExceptional = "exceptional"
)

// DefaultEngagementCap is the coping-tool usage count at which the engagement
// sub-score saturates.
const DefaultEngagementCap = 50

// Weights controls how the four sub-scores blend into the composite score.
// They are re-normalized before use, so misconfigured weights can skew the
// blend but never push the score outside [0,100].
type Weights struct {
	Consistency     float64
	Resilience      float64
	Engagement      float64
	Desensitization float64
}

// DefaultWeights favors the two inputs most under the user's daily control.
func DefaultWeights() Weights {
	return Weights{Consistency: 0.4, Resilience: 0.3, Engagement: 0.15, Desensitization: 0.15}
}

// ScoreInput is everything the recovery score depends on. Resets must count
// only streaks terminated by a relapse, never the live run (see StreakSummary).
type ScoreInput struct {
	TotalDaysWon          int
	DaysSinceStart        int
	Resets                int
	JournalCount          int
	UrgeSurfCount         int
	DesensitizationPoints int
	EngagementCap         int
}

// ScoreResult carries the composite score, its band, and the normalized
// sub-scores for display.
type ScoreResult struct {
	Score           int     `json:"score"`
	Band            string  `json:"band"`
	Consistency     float64 `json:"consistency"`
	Resilience      float64 `json:"resilience"`
	Engagement      float64 `json:"engagement"`
	Desensitization float64 `json:"desensitization"`
}

// ComputeScore blends four normalized sub-scores into a single 0-100 score.
// Deterministic and side-effect free; invalid inputs are clamped rather than
// rejected since a brand-new or never-engaged account is a steady state here,
// not a fault.
func ComputeScore(in ScoreInput, w Weights) ScoreResult {
	days := in.DaysSinceStart
	if days < 1 {
		days = 1
	}
	won := in.TotalDaysWon
	if won < 0 {
		won = 0
	}
	resets := in.Resets
	if resets < 0 {
		resets = 0
	}

	consistency := clamp01(float64(won) / float64(days))

	// With no days won there is nothing defended yet, so an empty ledger
	// scores zero across the board instead of starting with free resilience.
	resilience := 0.0
	if won > 0 {
		resilience = clamp01(1 - float64(resets)/float64(won))
	}

	cap := in.EngagementCap
	if cap < 1 {
		cap = DefaultEngagementCap
	}
	usage := in.JournalCount + in.UrgeSurfCount
	if usage < 0 {
		usage = 0
	}
	engagement := clamp01(math.Log(1+float64(usage)) / math.Log(1+float64(cap)))

	points := in.DesensitizationPoints
	if points < 0 {
		points = 0
	}
	if points > DesensitizationCap {
		points = DesensitizationCap
	}
	desens := float64(points) / float64(DesensitizationCap)

	w = normalizeWeights(w)
	raw := w.Consistency*consistency + w.Resilience*resilience + w.Engagement*engagement + w.Desensitization*desens
	score := int(math.Round(100 * raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoreResult{
		Score:           score,
		Band:            ScoreBand(score),
		Consistency:     consistency,
		Resilience:      resilience,
		Engagement:      engagement,
		Desensitization: desens,
	}
}

// ScoreBand maps a composite score to its qualitative band.
func ScoreBand(score int) string {
	switch {
	case score <= 25:
		return BandBeginning
	case score <= 50:
		return BandBuilding
	case score <= 75:
		return BandStrong
	default:
		return BandExceptional
	}
}

func normalizeWeights(w Weights) Weights {
	sum := w.Consistency + w.Resilience + w.Engagement + w.Desensitization
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Consistency:     w.Consistency / sum,
		Resilience:      w.Resilience / sum,
		Engagement:      w.Engagement / sum,
		Desensitization: w.Desensitization / sum,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
