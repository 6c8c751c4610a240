package assistant

import (
	"fmt"
	"strings"

	"laptop-dss-be/pkg/store"
)

// BuildPrompt assembles the interpretation prompt: role guardrails, the
// dataset's real value ranges, prior conversation context, and the strict
// JSON output contract.
func BuildPrompt(message string, stats DatasetStats, sess *store.Session) string {
	var b strings.Builder

	b.WriteString("Anda adalah asisten rekomendasi laptop. Tugas Anda HANYA membantu memilih laptop.\n")
	b.WriteString("Jika pertanyaan di luar topik laptop, set \"understood\" ke false.\n")
	b.WriteString("Jangan menyebutkan merek atau model yang tidak diminta. Jawab dalam Bahasa Indonesia.\n\n")

	b.WriteString("DATA LAPTOP YANG TERSEDIA:\n")
	fmt.Fprintf(&b, "- Harga: Rp %s - Rp %s\n", formatRupiah(stats.Price.Min), formatRupiah(stats.Price.Max))
	fmt.Fprintf(&b, "- RAM: %s GB\n", formatOptions(stats.RAM))
	fmt.Fprintf(&b, "- SSD: %s GB\n", formatOptions(stats.SSD))
	fmt.Fprintf(&b, "- Layar: %.1f - %.1f inci\n", stats.Display.Min, stats.Display.Max)
	fmt.Fprintf(&b, "- GPU: %s GB\n", formatOptions(stats.GPU))
	fmt.Fprintf(&b, "- Rating: %.1f - %.1f\n\n", stats.Rating.Min, stats.Rating.Max)

	if sess != nil {
		if summary := sess.ContextSummary(); summary != "" {
			b.WriteString(summary)
			b.WriteString("\n\n")
		}
	}

	fmt.Fprintf(&b, "PESAN PENGGUNA: %s\n\n", message)

	b.WriteString("Balas HANYA dengan satu objek JSON valid, tanpa teks lain, dengan skema berikut:\n")
	b.WriteString(`{
  "understood": true,
  "needs_clarification": false,
  "clarification_questions": [],
  "use_case": "gaming",
  "response_message": "penjelasan singkat untuk pengguna",
  "filters": {
    "price_min": null, "price_max": 15000000,
    "ram_min": 16, "ram_max": null,
    "ssd_min": null, "gpu_min": 4,
    "rating_min": null,
    "display_min": null, "display_max": null
  },
  "weights": {"price": 2, "ram": 4, "ssd": 3, "rating": 3, "display": 4, "gpu": 5},
  "detected_preferences": {"budget": 15000000, "use_case": "gaming"}
}`)
	b.WriteString("\n\nATURAN:\n")
	b.WriteString("- \"weights\" berisi bintang 1-5 untuk tiap kriteria; gunakan 3 jika pengguna tidak menyinggungnya.\n")
	b.WriteString("- Gunakan null untuk batas filter yang tidak disebut pengguna.\n")
	b.WriteString("- Harga selalu dalam rupiah penuh (15 juta = 15000000).\n")
	b.WriteString("- Set \"needs_clarification\" ke true hanya jika kebutuhan pengguna benar-benar tidak jelas.\n")

	return b.String()
}

func formatOptions(o OptionStat) string {
	if len(o.Options) == 0 {
		return "-"
	}
	parts := make([]string, len(o.Options))
	for i, v := range o.Options {
		parts[i] = trimFloat(v)
	}
	return strings.Join(parts, "/")
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
