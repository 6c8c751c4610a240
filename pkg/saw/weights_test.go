package saw

import (
	"math"
	"testing"
)

func TestStarsToWeightsSumsToOne(t *testing.T) {
	tests := []struct {
		name  string
		stars map[string]int
	}{
		{
			name:  "all default",
			stars: map[string]int{},
		},
		{
			name: "gaming preset",
			stars: map[string]int{
				CriterionPrice: 2, CriterionRAM: 4, CriterionSSD: 3,
				CriterionRating: 3, CriterionDisplay: 4, CriterionGPU: 5,
			},
		},
		{
			name: "extremes",
			stars: map[string]int{
				CriterionPrice: 1, CriterionRAM: 5, CriterionSSD: 1,
				CriterionRating: 5, CriterionDisplay: 1, CriterionGPU: 5,
			},
		},
		{
			name: "partial input defaults missing criteria to three stars",
			stars: map[string]int{
				CriterionPrice: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := StarsToWeights(tt.stars)

			if len(weights) != len(Criteria) {
				t.Fatalf("weight count = %d, want %d", len(weights), len(Criteria))
			}
			total := 0.0
			for key, w := range weights {
				if w < 0 {
					t.Errorf("weight[%s] = %v, want non-negative", key, w)
				}
				total += w
			}
			if math.Abs(total-1.0) > 1e-9 {
				t.Errorf("weights sum = %v, want 1.0 within 1e-9", total)
			}
		})
	}
}

func TestStarToWeightQuantization(t *testing.T) {
	want := map[int]float64{1: 0.05, 2: 0.10, 3: 0.15, 4: 0.20, 5: 0.25}
	for stars, expected := range want {
		if got := StarToWeight(stars); got != expected {
			t.Errorf("StarToWeight(%d) = %v, want %v", stars, got, expected)
		}
	}
	if got := StarToWeight(0); got != defaultRawWeight {
		t.Errorf("StarToWeight(0) = %v, want default %v", got, defaultRawWeight)
	}
}

func TestImportanceToWeight(t *testing.T) {
	if got := ImportanceToWeight("Sangat Penting"); got != 0.25 {
		t.Errorf("ImportanceToWeight(Sangat Penting) = %v, want 0.25", got)
	}
	if got := ImportanceToWeight("unknown label"); got != defaultRawWeight {
		t.Errorf("unknown label = %v, want default %v", got, defaultRawWeight)
	}
}

func TestImportanceToWeightsNormalizes(t *testing.T) {
	weights := ImportanceToWeights(map[string]string{
		CriterionPrice: "Sangat Penting",
		CriterionGPU:   "Tidak Penting",
	})

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if diff := math.Abs(total - 1.0); diff > 1e-9 {
		t.Errorf("weights sum = %v, want 1.0", total)
	}
	if weights[CriterionPrice] <= weights[CriterionGPU] {
		t.Errorf("price %v should outweigh gpu %v", weights[CriterionPrice], weights[CriterionGPU])
	}
	// Missing criteria quantize to the middle weight, same as 3 stars.
	if weights[CriterionRAM] != weights[CriterionSSD] {
		t.Errorf("unmentioned criteria differ: ram %v, ssd %v", weights[CriterionRAM], weights[CriterionSSD])
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
		valid   bool
	}{
		{"normalized", map[string]float64{"a": 0.6, "b": 0.4}, true},
		{"within tolerance", map[string]float64{"a": 0.505, "b": 0.5}, true},
		{"not normalized", map[string]float64{"a": 0.6, "b": 0.6}, false},
		{"defaults", DefaultWeights(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateWeights(tt.weights, 0.01)
			if valid != tt.valid {
				t.Errorf("valid = %v, want %v", valid, tt.valid)
			}
		})
	}
}
