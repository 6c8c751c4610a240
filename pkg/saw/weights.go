package saw

import "math"

// starToWeight quantizes a 1-5 star rating to a raw weight. Shared by the
// remote interpretation path and the keyword fallback.
var starToWeight = map[int]float64{
	1: 0.05,
	2: 0.10,
	3: 0.15,
	4: 0.20,
	5: 0.25,
}

// importanceToWeight maps the five discrete importance labels to the same raw
// weight scale as the star ratings.
var importanceToWeight = map[string]float64{
	"Tidak Penting":  0.05,
	"Kurang Penting": 0.10,
	"Cukup Penting":  0.15,
	"Penting":        0.20,
	"Sangat Penting": 0.25,
}

// defaultRawWeight is used for unrecognized stars or labels.
const defaultRawWeight = 0.15

// StarToWeight converts a single 1-5 star rating to its raw weight.
func StarToWeight(stars int) float64 {
	if w, ok := starToWeight[stars]; ok {
		return w
	}
	return defaultRawWeight
}

// ImportanceToWeight converts an importance label to its raw weight.
func ImportanceToWeight(label string) float64 {
	if w, ok := importanceToWeight[label]; ok {
		return w
	}
	return defaultRawWeight
}

// StarsToWeights quantizes per-criterion 1-5 star ratings and renormalizes so
// the final vector sums to exactly 1.0. Criteria missing from the input get 3
// stars. This is the only place weights are guaranteed normalized; callers
// feeding the scorer directly are responsible for normalizing themselves.
func StarsToWeights(stars map[string]int) map[string]float64 {
	raw := make(map[string]float64, len(Criteria))
	for _, c := range Criteria {
		s, ok := stars[c.Key]
		if !ok {
			s = 3
		}
		raw[c.Key] = StarToWeight(s)
	}
	return NormalizeWeights(raw)
}

// ImportanceToWeights quantizes per-criterion importance labels and
// renormalizes, mirroring StarsToWeights. Criteria missing from the input or
// carrying an unrecognized label get the default weight.
func ImportanceToWeights(labels map[string]string) map[string]float64 {
	raw := make(map[string]float64, len(Criteria))
	for _, c := range Criteria {
		raw[c.Key] = ImportanceToWeight(labels[c.Key])
	}
	return NormalizeWeights(raw)
}

// NormalizeWeights divides each raw weight by the total so the result sums to
// 1.0. An all-zero input is returned unchanged.
func NormalizeWeights(raw map[string]float64) map[string]float64 {
	total := 0.0
	for _, w := range raw {
		total += w
	}
	if total == 0 {
		return raw
	}
	out := make(map[string]float64, len(raw))
	for k, w := range raw {
		out[k] = w / total
	}
	return out
}

// ValidateWeights checks that the vector sums to 1.0 within tolerance. It
// reports, it does not correct: a non-normalized vector reaching the scorer
// is a caller contract violation.
func ValidateWeights(weights map[string]float64, tolerance float64) (bool, float64) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return math.Abs(total-1.0) <= tolerance, total
}
