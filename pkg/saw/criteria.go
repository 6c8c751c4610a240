package saw

// Polarity determines how a criterion column is normalized.
type Polarity string

const (
	// PolarityBenefit means higher raw values are better.
	PolarityBenefit Polarity = "benefit"
	// PolarityCost means lower raw values are better.
	PolarityCost Polarity = "cost"
)

// Criterion keys. The set is closed: six criteria, fixed at build time.
const (
	CriterionPrice   = "price"
	CriterionRAM     = "ram"
	CriterionSSD     = "ssd"
	CriterionRating  = "rating"
	CriterionDisplay = "display"
	CriterionGPU     = "gpu"
)

// Criterion describes one scoring dimension.
type Criterion struct {
	Key           string
	Name          string
	Polarity      Polarity
	DefaultWeight float64
}

// Criteria is the ordered, closed criteria set. Only weights vary per request.
var Criteria = []Criterion{
	{Key: CriterionPrice, Name: "Harga", Polarity: PolarityCost, DefaultWeight: 0.25},
	{Key: CriterionRAM, Name: "RAM", Polarity: PolarityBenefit, DefaultWeight: 0.20},
	{Key: CriterionSSD, Name: "Storage (SSD)", Polarity: PolarityBenefit, DefaultWeight: 0.15},
	{Key: CriterionRating, Name: "Rating", Polarity: PolarityBenefit, DefaultWeight: 0.15},
	{Key: CriterionDisplay, Name: "Ukuran Layar", Polarity: PolarityBenefit, DefaultWeight: 0.10},
	{Key: CriterionGPU, Name: "GPU Memory", Polarity: PolarityBenefit, DefaultWeight: 0.15},
}

var criteriaByKey = func() map[string]Criterion {
	m := make(map[string]Criterion, len(Criteria))
	for _, c := range Criteria {
		m[c.Key] = c
	}
	return m
}()

// CriterionByKey looks up a criterion by its column key.
func CriterionByKey(key string) (Criterion, bool) {
	c, ok := criteriaByKey[key]
	return c, ok
}

// CriterionKeys returns the criterion keys in canonical order.
func CriterionKeys() []string {
	keys := make([]string, len(Criteria))
	for i, c := range Criteria {
		keys[i] = c.Key
	}
	return keys
}

// CriterionNames returns the key -> display name mapping.
func CriterionNames() map[string]string {
	names := make(map[string]string, len(Criteria))
	for _, c := range Criteria {
		names[c.Key] = c.Name
	}
	return names
}

// DefaultWeights returns the build-time default weight vector. The defaults
// already sum to 1.0.
func DefaultWeights() map[string]float64 {
	weights := make(map[string]float64, len(Criteria))
	for _, c := range Criteria {
		weights[c.Key] = c.DefaultWeight
	}
	return weights
}
