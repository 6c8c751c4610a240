package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"laptop-dss-be/pkg/llm"
	"laptop-dss-be/pkg/saw"
	"laptop-dss-be/pkg/store"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.Generate(ctx, "", opts...)
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func testStats() DatasetStats {
	return DatasetStats{
		Price:   RangeStat{Min: 4_000_000, Max: 35_000_000},
		RAM:     OptionStat{Options: []float64{4, 8, 16, 32}},
		SSD:     OptionStat{Options: []float64{256, 512, 1024}},
		Display: RangeStat{Min: 13.3, Max: 17.3},
		GPU:     OptionStat{Options: []float64{0, 4, 6, 8}},
		Rating:  RangeStat{Min: 3.2, Max: 4.9},
	}
}

func TestClarificationVagueBudget(t *testing.T) {
	sess := store.NewSession("s1")

	questions := CheckClarification("cari laptop murah", sess)
	if len(questions) != 1 {
		t.Fatalf("expected exactly one question, got %d: %v", len(questions), questions)
	}
	if !strings.Contains(questions[0], "budget") {
		t.Errorf("question should ask about budget, got %q", questions[0])
	}
	if sess.ShouldAskClarification(store.TopicBudget) {
		t.Error("budget topic should be marked as asked")
	}

	// Same vague message again must not re-ask.
	if again := CheckClarification("pokoknya yang murah", sess); len(again) != 0 {
		t.Errorf("expected no repeat questions, got %v", again)
	}
}

func TestClarificationSkipsKnownTopics(t *testing.T) {
	// A budget remembered from an earlier turn must suppress the budget
	// question even when the new message is vague about price.
	sess := store.NewSession("s1")
	sess.UpdatePreferences(store.Preferences{Budget: 15_000_000})

	if qs := CheckClarification("cari laptop murah", sess); len(qs) != 0 {
		t.Errorf("budget already known, expected no questions, got %v", qs)
	}
	if !sess.ShouldAskClarification(store.TopicBudget) {
		t.Error("gate must not mark a topic it never asked")
	}

	sess = store.NewSession("s2")
	sess.UpdatePreferences(store.Preferences{UseCase: "gaming"})
	if qs := CheckClarification("rekomen laptop yang bagus dong", sess); len(qs) != 0 {
		t.Errorf("use case already known, expected no questions, got %v", qs)
	}
}

func TestClarificationExplicitBudgetSkipsGate(t *testing.T) {
	sess := store.NewSession("s1")
	if qs := CheckClarification("laptop gaming budget 15 juta", sess); len(qs) != 0 {
		t.Errorf("explicit budget and use case should pass the gate, got %v", qs)
	}
}

func TestClarificationVagueRequest(t *testing.T) {
	sess := store.NewSession("s1")
	qs := CheckClarification("rekomen laptop yang bagus dong", sess)
	if len(qs) != 1 || !strings.Contains(qs[0], "digunakan untuk apa") {
		t.Fatalf("expected one use-case question, got %v", qs)
	}
}

func TestFallbackGamingWithBudget(t *testing.T) {
	res := FallbackParse("laptop gaming budget 15 juta", "model unavailable")

	if !res.Success {
		t.Fatal("fallback must always succeed")
	}
	if res.UseCase != "gaming" {
		t.Errorf("use case = %q, want gaming", res.UseCase)
	}
	if res.DetectedPreferences.Budget != 15_000_000 {
		t.Errorf("budget = %v, want 15000000", res.DetectedPreferences.Budget)
	}
	if res.Filters.PriceMax == nil || *res.Filters.PriceMax != 15_000_000 {
		t.Errorf("price_max = %v, want 15000000", res.Filters.PriceMax)
	}
	if res.Filters.RAMMin == nil || *res.Filters.RAMMin != 16 {
		t.Errorf("ram_min = %v, want 16", res.Filters.RAMMin)
	}
	if res.Filters.GPUMin == nil || *res.Filters.GPUMin != 4 {
		t.Errorf("gpu_min = %v, want 4", res.Filters.GPUMin)
	}

	want := map[string]int{
		saw.CriterionPrice: 2, saw.CriterionRAM: 4, saw.CriterionSSD: 3,
		saw.CriterionRating: 3, saw.CriterionDisplay: 4, saw.CriterionGPU: 5,
	}
	for k, v := range want {
		if res.Weights[k] != v {
			t.Errorf("weights[%s] = %d, want %d", k, res.Weights[k], v)
		}
	}
	if res.Err != "model unavailable" {
		t.Errorf("error note = %q", res.Err)
	}
	if !strings.Contains(res.ResponseMessage, "15.000.000") {
		t.Errorf("confirmation should mention the budget, got %q", res.ResponseMessage)
	}
}

func TestFallbackPresetPriority(t *testing.T) {
	tests := []struct {
		message string
		useCase string
	}{
		{"laptop gaming yang murah", "gaming"},
		{"buat editing video kantor", "editing"},
		{"laptop coding buat mahasiswa", "coding"},
		{"laptop kerja kantoran", "office"},
		{"buat anak kuliah", "kuliah"},
		{"yang murah saja", ""},
	}
	for _, tt := range tests {
		res := FallbackParse(tt.message, "")
		if res.UseCase != tt.useCase {
			t.Errorf("%q: use case = %q, want %q", tt.message, res.UseCase, tt.useCase)
		}
	}
}

func TestFallbackPlainMessageKeepsDefaults(t *testing.T) {
	res := FallbackParse("laptop 20 juta", "")
	if res.DetectedPreferences.Budget != 20_000_000 {
		t.Errorf("budget = %v, want 20000000", res.DetectedPreferences.Budget)
	}
	for _, k := range saw.CriterionKeys() {
		if res.Weights[k] != 3 {
			t.Errorf("weights[%s] = %d, want default 3", k, res.Weights[k])
		}
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "prose wrapped",
			in:   `Tentu! {"a": 1} Semoga membantu.`,
			want: `{"a": 1}`,
		},
		{
			name: "nested objects",
			in:   `{"filters": {"ram_min": 16}, "ok": true} trailing`,
			want: `{"filters": {"ram_min": 16}, "ok": true}`,
		},
		{
			name: "brace inside string",
			in:   `{"msg": "pakai {kurung} saja"}`,
			want: `{"msg": "pakai {kurung} saja"}`,
		},
		{
			name:    "no object",
			in:      "maaf saya tidak mengerti",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			in:      `{"a": {"b": 1}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInterpretationDefaults(t *testing.T) {
	raw := `{"use_case": "coding", "response_message": "oke", "weights": {"ram": 5}}`
	in, err := ParseInterpretation(raw)
	if err != nil {
		t.Fatal(err)
	}
	res := in.toResult(raw)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Weights[saw.CriterionRAM] != 5 {
		t.Errorf("ram stars = %d, want 5", res.Weights[saw.CriterionRAM])
	}
	for _, k := range []string{saw.CriterionPrice, saw.CriterionSSD, saw.CriterionRating, saw.CriterionDisplay, saw.CriterionGPU} {
		if res.Weights[k] != 3 {
			t.Errorf("weights[%s] = %d, want default 3", k, res.Weights[k])
		}
	}
}

func TestParseInterpretationNotUnderstoodKeepsModelMessage(t *testing.T) {
	raw := `{"understood": false, "response_message": "Wah, soal resep masakan saya angkat tangan. Tapi kalau soal laptop, saya siap!"}`
	in, err := ParseInterpretation(raw)
	if err != nil {
		t.Fatal(err)
	}
	res := in.toResult(raw)
	if res.Success {
		t.Error("off-topic message must not succeed")
	}
	if !strings.Contains(res.ResponseMessage, "resep masakan") {
		t.Errorf("model's own redirect should survive, got %q", res.ResponseMessage)
	}
}

func TestParseInterpretationNotUnderstood(t *testing.T) {
	raw := `{"understood": false}`
	in, err := ParseInterpretation(raw)
	if err != nil {
		t.Fatal(err)
	}
	res := in.toResult(raw)
	if res.Success {
		t.Error("off-topic message must not succeed")
	}
	if !strings.Contains(res.ResponseMessage, "laptop") {
		t.Errorf("apology should redirect to laptops, got %q", res.ResponseMessage)
	}
}

func TestExtractorFallsBackOnProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("connection refused")}
	e := NewExtractor(p, nil)
	sess := store.NewSession("s1")

	res := e.Extract(context.Background(), "laptop gaming budget 15 juta", testStats(), sess)
	if !res.Success {
		t.Fatal("expected fallback success")
	}
	if res.UseCase != "gaming" {
		t.Errorf("use case = %q, want gaming", res.UseCase)
	}
	if sess.Preferences.Budget != 15_000_000 {
		t.Errorf("session budget = %v, want 15000000", sess.Preferences.Budget)
	}
	if sess.Preferences.UseCase != "gaming" {
		t.Errorf("session use case = %q, want gaming", sess.Preferences.UseCase)
	}
}

func TestExtractorUsesModelReply(t *testing.T) {
	p := &stubProvider{reply: `{"understood": true, "use_case": "office",
		"response_message": "Siap, laptop kerja kantoran.",
		"filters": {"price_max": 10000000},
		"weights": {"price": 4, "rating": 4},
		"detected_preferences": {"budget": 10000000, "use_case": "office"}}`}
	e := NewExtractor(p, nil)
	sess := store.NewSession("s1")

	res := e.Extract(context.Background(), "laptop kantor 10 juta", testStats(), sess)
	if !res.Success || res.NeedsClarification {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.ResponseMessage != "Siap, laptop kerja kantoran." {
		t.Errorf("response = %q", res.ResponseMessage)
	}
	if res.Filters.PriceMax == nil || *res.Filters.PriceMax != 10_000_000 {
		t.Errorf("price_max = %v", res.Filters.PriceMax)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want 1", p.calls)
	}
}

func TestExtractorKeepsProseReplyWithoutJSON(t *testing.T) {
	prose := "Untuk kebutuhan gaming dengan budget 15 juta, saya sarankan fokus ke laptop dengan GPU dedicated dan RAM 16GB."
	p := &stubProvider{reply: prose}
	e := NewExtractor(p, nil)
	sess := store.NewSession("s1")

	res := e.Extract(context.Background(), "laptop gaming budget 15 juta", testStats(), sess)
	if !res.Success {
		t.Fatal("expected fallback success")
	}
	if res.ResponseMessage != prose {
		t.Errorf("prose reply should survive the fallback, got %q", res.ResponseMessage)
	}
	// Structured fields still come from the keyword pass.
	if res.UseCase != "gaming" {
		t.Errorf("use case = %q, want gaming", res.UseCase)
	}
	if res.DetectedPreferences.Budget != 15_000_000 {
		t.Errorf("budget = %v, want 15000000", res.DetectedPreferences.Budget)
	}
}

func TestExtractorClarificationSkipsModel(t *testing.T) {
	p := &stubProvider{reply: `{}`}
	e := NewExtractor(p, nil)
	sess := store.NewSession("s1")

	res := e.Extract(context.Background(), "cari laptop murah", testStats(), sess)
	if !res.NeedsClarification {
		t.Fatal("expected clarification")
	}
	if p.calls != 0 {
		t.Errorf("model must not be called during clarification, calls = %d", p.calls)
	}
}

func TestResolveFiltersDefaults(t *testing.T) {
	stats := testStats()

	full := ResolveFilters(FilterHints{}, stats)
	if full.Price.Min != 4_000_000 || full.Price.Max != 35_000_000 {
		t.Errorf("price range = %+v", full.Price)
	}
	if full.RAM.Min != 4 || full.RAM.Max != 32 {
		t.Errorf("ram range = %+v", full.RAM)
	}
	if full.GPU.Min != 0 || full.GPU.Max != 8 {
		t.Errorf("gpu range = %+v", full.GPU)
	}

	partial := ResolveFilters(FilterHints{PriceMax: floatPtr(15_000_000), RAMMin: floatPtr(16)}, stats)
	if partial.Price.Min != 4_000_000 || partial.Price.Max != 15_000_000 {
		t.Errorf("partial price range = %+v", partial.Price)
	}
	if partial.RAM.Min != 16 {
		t.Errorf("partial ram min = %v", partial.RAM.Min)
	}
}

func TestExplainThresholds(t *testing.T) {
	top := Candidate{
		Name: "Asus TUF A15", Price: 14_000_000, RAM: 16, SSD: 512,
		Display: 15.6, GPU: 6, Rating: 4.6,
	}
	alt := Candidate{Name: "Lenovo LOQ", Price: 12_500_000, RAM: 16, SSD: 512, GPU: 6, Rating: 4.3}

	out := Explain(top, 15_000_000, "gaming", []Candidate{alt})

	for _, want := range []string{
		"Asus TUF A15",
		"Kelebihan",
		"GPU dedicated 6GB",
		"SSD 512GB",
		"Rating 4.6",
		"Alternatif",
		"lebih murah",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("explanation missing %q:\n%s", want, out)
		}
	}
}

func TestExplainOverBudgetConsideration(t *testing.T) {
	top := Candidate{Name: "MacBook Air", Price: 16_500_000, RAM: 8, SSD: 256, Rating: 4.8}
	out := Explain(top, 15_000_000, "coding", nil)

	if !strings.Contains(out, "Pertimbangan") {
		t.Fatalf("expected considerations section:\n%s", out)
	}
	if !strings.Contains(out, "di atas budget") {
		t.Errorf("expected over-budget note:\n%s", out)
	}
	if !strings.Contains(out, "RAM 8GB mungkin terasa kurang") {
		t.Errorf("expected RAM consideration for coding:\n%s", out)
	}
}

func TestExplainPicksCheapestFromPool(t *testing.T) {
	top := Candidate{Name: "Acer Nitro V", Price: 10_000_000, RAM: 16, SSD: 512, GPU: 6, Rating: 4.4}
	pool := []Candidate{
		{Name: "HP Victus", Price: 11_000_000, RAM: 16, SSD: 512, GPU: 6, Rating: 4.3},
		{Name: "Lenovo LOQ", Price: 12_000_000, RAM: 16, SSD: 512, GPU: 8, Rating: 4.5},
		{Name: "Axioo Pongo", Price: 5_000_000, RAM: 8, SSD: 256, GPU: 0, Rating: 3.9},
	}

	out := Explain(top, 12_000_000, "gaming", pool)

	if !strings.Contains(out, "Axioo Pongo") || !strings.Contains(out, "lebih murah") {
		t.Errorf("cheapest pool candidate below the pick should be the alternative:\n%s", out)
	}
	if strings.Contains(out, "HP Victus") {
		t.Errorf("pricier candidate must not appear as the cheaper alternative:\n%s", out)
	}
	// Gaming also surfaces the strongest GPU above the pick.
	if !strings.Contains(out, "Lenovo LOQ") || !strings.Contains(out, "GPU 8GB lebih besar") {
		t.Errorf("expected the highest-GPU candidate as an alternative:\n%s", out)
	}
}

func TestExplainSpecTiers(t *testing.T) {
	// 256GB SSD and mid rating land in the middle tiers, not silence.
	top := Candidate{Name: "Acer Aspire 5", Price: 6_500_000, RAM: 8, SSD: 256, GPU: 0, Rating: 3.5}
	out := Explain(top, 7_000_000, "kuliah", nil)

	if !strings.Contains(out, "SSD 256GB memadai") {
		t.Errorf("expected the adequate-SSD note:\n%s", out)
	}
	if !strings.Contains(out, "RAM 8GB cukup untuk penggunaan umum") {
		t.Errorf("expected the sufficient-RAM note:\n%s", out)
	}
	if !strings.Contains(out, "Rating 3.5 cukup baik") {
		t.Errorf("expected the mid rating tier:\n%s", out)
	}
	if strings.Contains(out, "mungkin terasa kurang") {
		t.Errorf("kuliah is not a heavy-RAM use case:\n%s", out)
	}
}

func TestExplainGPUTiersAndBonus(t *testing.T) {
	weak := Candidate{Name: "MSI Thin", Price: 9_000_000, RAM: 16, SSD: 512, GPU: 2, Rating: 4.1}
	out := Explain(weak, 10_000_000, "gaming", nil)
	if !strings.Contains(out, "GPU 2GB tergolong minim") {
		t.Errorf("small GPU should be a consideration for gaming:\n%s", out)
	}

	office := Candidate{Name: "Dell Vostro", Price: 9_000_000, RAM: 16, SSD: 512, GPU: 4, Rating: 4.1}
	out = Explain(office, 10_000_000, "office", nil)
	if !strings.Contains(out, "GPU dedicated 4GB sebagai nilai tambah") {
		t.Errorf("a GPU outside GPU use cases is a bonus, not a requirement:\n%s", out)
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15_000_000, "15.000.000"},
		{4_500_000, "4.500.000"},
		{999, "999"},
		{1_000, "1.000"},
	}
	for _, tt := range tests {
		if got := formatRupiah(tt.in); got != tt.want {
			t.Errorf("formatRupiah(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
