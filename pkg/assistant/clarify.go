package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"laptop-dss-be/pkg/store"
)

// explicitBudgetPattern matches an amount with a rupiah magnitude word, e.g.
// "15 juta", "10jt", "500 ribu".
var explicitBudgetPattern = regexp.MustCompile(`\d+\s*(juta|jt|ribu|rb|million|m\b)`)

var budgetVagueKeywords = []string{
	"murah", "mahal", "terjangkau", "budget", "hemat", "ekonomis",
}

var useCaseKeywords = []string{
	"gaming", "game", "editing", "edit", "video", "render",
	"coding", "programming", "ngoding", "office", "kantor",
	"kuliah", "mahasiswa", "pelajar", "kerja", "desain", "design",
}

var vagueRequestKeywords = []string{
	"bagus", "recommended", "terbaik", "worth it", "rekomen",
	"suggest", "saran", "pilih", "butuh laptop",
}

const (
	budgetQuestion  = "Berapa budget yang Anda siapkan untuk laptop ini? (dalam jutaan rupiah, misal: 10 juta)"
	useCaseQuestion = "Laptop ini akan digunakan untuk apa? (contoh: gaming, editing video, coding, office, kuliah)"
)

// CheckClarification inspects a message for vague language and returns the
// clarification questions that should be asked before any extraction happens.
// Topics already known from session memory or already asked this session are
// never asked again.
func CheckClarification(message string, sess *store.Session) []string {
	lower := strings.ToLower(message)

	hasExplicitBudget := explicitBudgetPattern.MatchString(lower)
	hasVagueBudget := !hasExplicitBudget && containsAny(lower, budgetVagueKeywords)
	hasUseCase := containsAny(lower, useCaseKeywords)
	hasVagueRequest := !hasUseCase && containsAny(lower, vagueRequestKeywords)

	budgetKnown := sess.Preferences.Budget > 0
	useCaseKnown := sess.Preferences.UseCase != ""

	var questions []string
	if hasVagueBudget && !budgetKnown && sess.ShouldAskClarification(store.TopicBudget) {
		questions = append(questions, budgetQuestion)
		sess.MarkClarificationAsked(store.TopicBudget)
	}
	if hasVagueRequest && !useCaseKnown && sess.ShouldAskClarification(store.TopicUseCase) {
		questions = append(questions, useCaseQuestion)
		sess.MarkClarificationAsked(store.TopicUseCase)
	}
	return questions
}

// FormatClarification renders one or more clarification questions as a single
// assistant reply.
func FormatClarification(questions []string) string {
	if len(questions) == 0 {
		return ""
	}
	if len(questions) == 1 {
		return fmt.Sprintf("Untuk memberikan rekomendasi yang tepat, saya perlu tahu: %s", questions[0])
	}

	var b strings.Builder
	b.WriteString("Untuk memberikan rekomendasi yang tepat, saya perlu tahu beberapa hal:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
