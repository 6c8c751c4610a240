package assistant

import "laptop-dss-be/pkg/saw"

// ResolveFilters completes partial filter hints into a full range set.
// Any bound the user never gave defaults to the dataset's observed extreme,
// so an empty hint set matches every laptop.
func ResolveFilters(hints FilterHints, stats DatasetStats) FilterSet {
	return FilterSet{
		Price: Range{
			Min: orDefault(hints.PriceMin, stats.Price.Min),
			Max: orDefault(hints.PriceMax, stats.Price.Max),
		},
		RAM: Range{
			Min: orDefault(hints.RAMMin, stats.RAM.Min()),
			Max: orDefault(hints.RAMMax, stats.RAM.Max()),
		},
		SSD: Range{
			Min: orDefault(hints.SSDMin, stats.SSD.Min()),
			Max: stats.SSD.Max(),
		},
		Rating: Range{
			Min: orDefault(hints.RatingMin, stats.Rating.Min),
			Max: stats.Rating.Max,
		},
		Display: Range{
			Min: orDefault(hints.DisplayMin, stats.Display.Min),
			Max: orDefault(hints.DisplayMax, stats.Display.Max),
		},
		GPU: Range{
			Min: orDefault(hints.GPUMin, stats.GPU.Min()),
			Max: stats.GPU.Max(),
		},
	}
}

// ResolveWeights converts the per-criterion star ratings into a normalized
// weight vector. Criteria missing from the map count as 3 stars.
func ResolveWeights(stars map[string]int) map[string]float64 {
	return saw.StarsToWeights(stars)
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
