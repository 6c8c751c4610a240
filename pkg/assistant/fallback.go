package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"laptop-dss-be/pkg/saw"
)

// budgetAmountPattern captures the numeric amount before a "millions" word.
var budgetAmountPattern = regexp.MustCompile(`(\d+)\s*(juta|jt|million|m\b)`)

// preset is one keyword-triggered extraction profile. Order matters: the
// first preset whose keyword appears in the message wins, so the more
// demanding profiles sit on top.
type preset struct {
	name     string
	useCase  string
	keywords []string
	weights  map[string]int
	ramMin   float64
	ssdMin   float64
	gpuMin   float64
}

var presets = []preset{
	{
		name:     "gaming",
		useCase:  "gaming",
		keywords: []string{"gaming", "game", "main game"},
		weights: map[string]int{
			saw.CriterionPrice: 2, saw.CriterionRAM: 4, saw.CriterionSSD: 3,
			saw.CriterionRating: 3, saw.CriterionDisplay: 4, saw.CriterionGPU: 5,
		},
		ramMin: 16,
		gpuMin: 4,
	},
	{
		name:     "editing",
		useCase:  "editing",
		keywords: []string{"editing", "edit", "video", "render", "3d", "desain"},
		weights: map[string]int{
			saw.CriterionPrice: 2, saw.CriterionRAM: 5, saw.CriterionSSD: 4,
			saw.CriterionRating: 3, saw.CriterionDisplay: 4, saw.CriterionGPU: 5,
		},
		ramMin: 16,
		ssdMin: 512,
		gpuMin: 4,
	},
	{
		name:     "coding",
		useCase:  "coding",
		keywords: []string{"programming", "coding", "developer", "programmer", "ngoding"},
		weights: map[string]int{
			saw.CriterionPrice: 3, saw.CriterionRAM: 5, saw.CriterionSSD: 4,
			saw.CriterionRating: 3, saw.CriterionDisplay: 4, saw.CriterionGPU: 2,
		},
		ramMin: 16,
		ssdMin: 512,
	},
	{
		name:     "office",
		useCase:  "office",
		keywords: []string{"office", "kantor", "kerja", "bisnis"},
		weights: map[string]int{
			saw.CriterionPrice: 4, saw.CriterionRAM: 3, saw.CriterionSSD: 3,
			saw.CriterionRating: 4, saw.CriterionDisplay: 3, saw.CriterionGPU: 1,
		},
		ramMin: 8,
	},
	{
		name:     "student",
		useCase:  "kuliah",
		keywords: []string{"kuliah", "mahasiswa", "pelajar", "sekolah", "student"},
		weights: map[string]int{
			saw.CriterionPrice: 5, saw.CriterionRAM: 3, saw.CriterionSSD: 3,
			saw.CriterionRating: 3, saw.CriterionDisplay: 2, saw.CriterionGPU: 1,
		},
		ramMin: 8,
	},
	{
		name:     "budget",
		useCase:  "",
		keywords: []string{"murah", "budget", "hemat", "terjangkau"},
		weights: map[string]int{
			saw.CriterionPrice: 5, saw.CriterionRAM: 3, saw.CriterionSSD: 2,
			saw.CriterionRating: 3, saw.CriterionDisplay: 2, saw.CriterionGPU: 1,
		},
	},
}

// FallbackParse recovers preferences from the message with deterministic
// keyword matching. It never fails and never asks questions: whatever it can
// detect becomes filters and weights, the rest stays at the defaults.
func FallbackParse(message string, errNote string) Result {
	lower := strings.ToLower(message)

	res := Result{
		Success: true,
		Weights: map[string]int{
			saw.CriterionPrice: 3, saw.CriterionRAM: 3, saw.CriterionSSD: 3,
			saw.CriterionRating: 3, saw.CriterionDisplay: 3, saw.CriterionGPU: 3,
		},
		Err: errNote,
	}

	if m := budgetAmountPattern.FindStringSubmatch(lower); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			budget := amount * 1_000_000
			res.Filters.PriceMax = floatPtr(budget)
			res.DetectedPreferences.Budget = budget
		}
	}

	for _, p := range presets {
		if !containsAny(lower, p.keywords) {
			continue
		}
		res.UseCase = p.useCase
		res.DetectedPreferences.UseCase = p.useCase
		for k, v := range p.weights {
			res.Weights[k] = v
		}
		if p.ramMin > 0 {
			res.Filters.RAMMin = floatPtr(p.ramMin)
		}
		if p.ssdMin > 0 {
			res.Filters.SSDMin = floatPtr(p.ssdMin)
		}
		if p.gpuMin > 0 {
			res.Filters.GPUMin = floatPtr(p.gpuMin)
		}
		break
	}

	res.ResponseMessage = defaultConfirmation(res.UseCase, res.Filters)
	return res
}

// defaultConfirmation builds the templated Indonesian confirmation used when
// no model-authored reply is available.
func defaultConfirmation(useCase string, filters FilterHints) string {
	var b strings.Builder
	b.WriteString("Baik, saya akan carikan laptop")
	if useCase != "" {
		fmt.Fprintf(&b, " untuk %s", useCase)
	}
	if filters.PriceMax != nil {
		fmt.Fprintf(&b, " dengan budget maksimal Rp %s", formatRupiah(*filters.PriceMax))
	}
	b.WriteString(".")
	if filters.RAMMin != nil {
		fmt.Fprintf(&b, " RAM minimal %sGB.", trimFloat(*filters.RAMMin))
	}
	if filters.SSDMin != nil {
		fmt.Fprintf(&b, " SSD minimal %sGB.", trimFloat(*filters.SSDMin))
	}
	if filters.GPUMin != nil {
		fmt.Fprintf(&b, " GPU dedicated minimal %sGB.", trimFloat(*filters.GPUMin))
	}
	return b.String()
}

// formatRupiah renders an amount with dot thousand separators, e.g.
// 15000000 becomes "15.000.000".
func formatRupiah(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
