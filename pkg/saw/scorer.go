package saw

import "sort"

// Result carries the scores plus both intermediate matrices. The matrices are
// part of the contract: consumers display the calculation, not just the ranks.
type Result struct {
	Scores     []float64
	Decision   *Matrix
	Normalized *Matrix
}

// CalculateScores computes score(i) = Σ_c weight[c] * normalized[c][i] over
// the criteria present in the weight mapping. A weighted criterion whose
// column is absent from the decision matrix contributes zero to every
// alternative (weight-present-but-data-absent is not fatal). The decision
// matrix is not mutated; scoring is a pure function of its inputs.
func CalculateScores(decision *Matrix, weights map[string]float64) Result {
	normalized := Normalize(decision)

	scores := make([]float64, decision.Rows())
	for key, weight := range weights {
		col, ok := normalized.Column(key)
		if !ok {
			continue
		}
		for i, v := range col {
			scores[i] += weight * v
		}
	}

	return Result{
		Scores:     scores,
		Decision:   decision,
		Normalized: normalized,
	}
}

// Ranked pairs an alternative's original index with its assigned rank.
type Ranked struct {
	Index int
	Rank  int
	Score float64
}

// Rank sorts alternatives by score descending and assigns ranks 1..N. The
// sort is stable, so ties keep their original input order. topN <= 0 returns
// the full ranking; otherwise the sorted list is truncated without
// renumbering.
func Rank(scores []float64, topN int) []Ranked {
	ranked := make([]Ranked, len(scores))
	for i, s := range scores {
		ranked[i] = Ranked{Index: i, Score: s}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
