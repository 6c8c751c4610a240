package assistant

import (
	"fmt"
	"strings"
)

// gpuUseCases are the use cases where a dedicated GPU actually matters.
var gpuUseCases = []string{"gaming", "editing", "render", "desain"}

// heavyRAMUseCases are the use cases where less than 16GB is a real constraint.
var heavyRAMUseCases = []string{"gaming", "editing", "coding"}

// Explain builds the Indonesian explanation for the winning laptop: its
// strengths, its trade-offs given the stated budget and use case, and the
// alternatives from the candidate pool worth a second look. The pool is
// every other candidate that survived filtering, not just the next ranks.
func Explain(top Candidate, budget float64, useCase string, pool []Candidate) string {
	var strengths, considerations []string

	if budget > 0 {
		ratio := top.Price / budget
		switch {
		case ratio <= 0.8:
			strengths = append(strengths,
				fmt.Sprintf("Harga Rp %s jauh di bawah budget Anda, ada sisa untuk aksesori", formatRupiah(top.Price)))
		case ratio <= 1.0:
			strengths = append(strengths,
				fmt.Sprintf("Harga Rp %s pas dengan budget Anda", formatRupiah(top.Price)))
		default:
			considerations = append(considerations,
				fmt.Sprintf("Harga Rp %s sedikit di atas budget Anda", formatRupiah(top.Price)))
		}
	}

	switch {
	case top.RAM >= 16:
		strengths = append(strengths,
			fmt.Sprintf("RAM %sGB lega untuk multitasking berat", trimFloat(top.RAM)))
	case top.RAM >= 8:
		strengths = append(strengths,
			fmt.Sprintf("RAM %sGB cukup untuk penggunaan umum", trimFloat(top.RAM)))
	}
	if top.RAM < 16 && matchesUseCase(useCase, heavyRAMUseCases) {
		considerations = append(considerations,
			fmt.Sprintf("RAM %sGB mungkin terasa kurang untuk %s jangka panjang, idealnya 16GB", trimFloat(top.RAM), useCase))
	}

	if matchesUseCase(useCase, gpuUseCases) {
		switch {
		case top.GPU >= 6:
			strengths = append(strengths,
				fmt.Sprintf("GPU dedicated %sGB sangat bertenaga untuk %s", trimFloat(top.GPU), useCase))
		case top.GPU >= 4:
			strengths = append(strengths,
				fmt.Sprintf("GPU dedicated %sGB kuat untuk %s", trimFloat(top.GPU), useCase))
		case top.GPU > 0:
			considerations = append(considerations,
				fmt.Sprintf("GPU %sGB tergolong minim untuk %s berat", trimFloat(top.GPU), useCase))
		default:
			considerations = append(considerations,
				fmt.Sprintf("Tidak ada GPU dedicated, performa %s akan terbatas", useCase))
		}
	} else if top.GPU > 0 {
		strengths = append(strengths,
			fmt.Sprintf("GPU dedicated %sGB sebagai nilai tambah", trimFloat(top.GPU)))
	}

	switch {
	case top.SSD >= 512:
		strengths = append(strengths,
			fmt.Sprintf("SSD %sGB cepat dan cukup luas", trimFloat(top.SSD)))
	case top.SSD >= 256:
		considerations = append(considerations,
			fmt.Sprintf("SSD %sGB memadai, pertimbangkan kapasitas lebih besar bila butuh ruang simpan", trimFloat(top.SSD)))
	}

	switch {
	case top.Rating >= 4.0:
		strengths = append(strengths,
			fmt.Sprintf("Rating %.1f sangat baik dari pengguna lain", top.Rating))
	case top.Rating >= 3.0:
		strengths = append(strengths,
			fmt.Sprintf("Rating %.1f cukup baik dari pengguna lain", top.Rating))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rekomendasi terbaik: **%s** (Rp %s)\n", top.Name, formatRupiah(top.Price))

	if len(strengths) > 0 {
		b.WriteString("\n**Kelebihan:**\n")
		for _, s := range strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if len(considerations) > 0 {
		b.WriteString("\n**Pertimbangan:**\n")
		for _, c := range considerations {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	alts := alternatives(top, useCase, pool)
	if len(alts) > 0 {
		b.WriteString("\n**Alternatif:**\n")
		for _, a := range alts {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// alternatives picks the cheapest candidate that undercuts the winner and,
// for GPU-heavy use cases, the candidate with the most GPU memory above it.
func alternatives(top Candidate, useCase string, pool []Candidate) []string {
	var alts []string

	if cheaper, ok := cheapestBelow(top, pool); ok {
		alts = append(alts,
			fmt.Sprintf("%s (Rp %s): lebih murah", cheaper.Name, formatRupiah(cheaper.Price)))
	}

	if matchesUseCase(useCase, gpuUseCases) {
		if stronger, ok := highestGPUAbove(top, pool); ok {
			alts = append(alts,
				fmt.Sprintf("%s (Rp %s): GPU %sGB lebih besar", stronger.Name, formatRupiah(stronger.Price), trimFloat(stronger.GPU)))
		}
	}
	return alts
}

func cheapestBelow(top Candidate, pool []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range pool {
		if c.Price >= top.Price {
			continue
		}
		if !found || c.Price < best.Price {
			best = c
			found = true
		}
	}
	return best, found
}

func highestGPUAbove(top Candidate, pool []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range pool {
		if c.GPU <= top.GPU {
			continue
		}
		if !found || c.GPU > best.GPU {
			best = c
			found = true
		}
	}
	return best, found
}

func matchesUseCase(useCase string, set []string) bool {
	lower := strings.ToLower(useCase)
	for _, s := range set {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
