package saw

// costEpsilon substitutes literal zero raw values in cost columns so the
// min(x)/x_i ratio stays defined. This is an edge-case policy, not a data
// error.
const costEpsilon = 0.001

// NormalizeBenefit scales a benefit column with r_i = x_i / max(x).
// An all-zero column normalizes to all zeros ("no signal").
func NormalizeBenefit(values []float64) []float64 {
	out := make([]float64, len(values))
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / maxVal
	}
	return out
}

// NormalizeCost scales a cost column with r_i = min(x) / x_i, substituting
// costEpsilon for zero raw values.
func NormalizeCost(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	minVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
	}
	for i, v := range values {
		if v == 0 {
			v = costEpsilon
		}
		out[i] = minVal / v
	}
	return out
}

// Normalize produces the [0,1]-scaled matrix from a raw decision matrix,
// dispatching per column on the criterion polarity. Columns without a known
// criterion default to benefit, matching the decision-matrix contract.
func Normalize(decision *Matrix) *Matrix {
	normalized := NewMatrix(decision.Rows())
	for _, key := range decision.Keys() {
		col, _ := decision.Column(key)
		polarity := PolarityBenefit
		if c, ok := CriterionByKey(key); ok {
			polarity = c.Polarity
		}
		if polarity == PolarityCost {
			normalized.AddColumn(key, NormalizeCost(col))
		} else {
			normalized.AddColumn(key, NormalizeBenefit(col))
		}
	}
	return normalized
}
