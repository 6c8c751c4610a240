package assistant

import "laptop-dss-be/pkg/store"

// RangeStat is a dataset-wide observed [min, max] for one criterion.
type RangeStat struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg,omitempty"`
}

// OptionStat is the sorted distinct-value set for a criterion.
type OptionStat struct {
	Options []float64 `json:"options"`
}

// Min returns the smallest option, or 0 for an empty set.
func (o OptionStat) Min() float64 {
	if len(o.Options) == 0 {
		return 0
	}
	return o.Options[0]
}

// Max returns the largest option, or 0 for an empty set.
func (o OptionStat) Max() float64 {
	if len(o.Options) == 0 {
		return 0
	}
	return o.Options[len(o.Options)-1]
}

// DatasetStats grounds the remote model in the values that actually exist,
// and provides defaults for absent filter bounds.
type DatasetStats struct {
	Price   RangeStat  `json:"price"`
	RAM     OptionStat `json:"ram"`
	SSD     OptionStat `json:"ssd"`
	Display RangeStat  `json:"display"`
	GPU     OptionStat `json:"gpu"`
	Rating  RangeStat  `json:"rating"`
}

// FilterHints are per-criterion bound hints, possibly partial or nil, as
// produced by interpretation (remote or fallback).
type FilterHints struct {
	PriceMin   *float64 `json:"price_min"`
	PriceMax   *float64 `json:"price_max"`
	RAMMin     *float64 `json:"ram_min"`
	RAMMax     *float64 `json:"ram_max"`
	SSDMin     *float64 `json:"ssd_min"`
	GPUMin     *float64 `json:"gpu_min"`
	RatingMin  *float64 `json:"rating_min"`
	DisplayMin *float64 `json:"display_min"`
	DisplayMax *float64 `json:"display_max"`
}

// Range is an inclusive numeric bound used to prune the candidate pool.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSet is the complete per-criterion range set. Bounds absent from the
// hints default to the dataset's observed extremes.
type FilterSet struct {
	Price   Range `json:"price"`
	RAM     Range `json:"ram"`
	SSD     Range `json:"ssd"`
	Rating  Range `json:"rating"`
	Display Range `json:"display"`
	GPU     Range `json:"gpu"`
}

// Result is the uniform outcome record shared by all three extraction paths
// (clarification, remote interpretation, keyword fallback).
type Result struct {
	Success                bool              `json:"success"`
	ResponseMessage        string            `json:"response_message"`
	Filters                FilterHints       `json:"filters"`
	Weights                map[string]int    `json:"weights"`
	UseCase                string            `json:"use_case"`
	NeedsClarification     bool              `json:"needs_clarification"`
	ClarificationQuestions []string          `json:"clarification_questions"`
	DetectedPreferences    store.Preferences `json:"detected_preferences"`
	Err                    string            `json:"error,omitempty"`
}

// Candidate is the extractor's view of one laptop, used by the explanation
// generator.
type Candidate struct {
	Name    string
	Price   float64
	RAM     float64
	SSD     float64
	Display float64
	GPU     float64
	Rating  float64
}

func floatPtr(v float64) *float64 { return &v }
