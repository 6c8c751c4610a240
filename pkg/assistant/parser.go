package assistant

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"laptop-dss-be/pkg/saw"
)

var errNoJSON = errors.New("assistant: no JSON object in response")

// interpretation mirrors the JSON contract the prompt asks the model for.
// Every numeric field is a pointer so that absent and null both mean
// "not specified" and get an explicit default.
type interpretation struct {
	Understood             *bool       `json:"understood"`
	NeedsClarification     bool        `json:"needs_clarification"`
	ClarificationQuestions []string    `json:"clarification_questions"`
	UseCase                string      `json:"use_case"`
	ResponseMessage        string      `json:"response_message"`
	Filters                FilterHints `json:"filters"`
	Weights                struct {
		Price   *float64 `json:"price"`
		RAM     *float64 `json:"ram"`
		SSD     *float64 `json:"ssd"`
		Rating  *float64 `json:"rating"`
		Display *float64 `json:"display"`
		GPU     *float64 `json:"gpu"`
	} `json:"weights"`
	DetectedPreferences struct {
		Budget  *float64 `json:"budget"`
		UseCase string   `json:"use_case"`
	} `json:"detected_preferences"`
}

// extractJSON returns the first balanced top-level {...} block in s. Strings
// and escapes are respected so braces inside values do not unbalance the scan.
func extractJSON(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errNoJSON
}

// ParseInterpretation extracts and decodes the model's JSON reply. A missing
// block or a decode failure is an error; the caller falls back to keyword
// extraction.
func ParseInterpretation(raw string) (*interpretation, error) {
	block, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var in interpretation
	if err := json.Unmarshal([]byte(block), &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// toResult normalizes a decoded interpretation into a Result, applying the
// explicit defaults the contract promises: understood=true when absent,
// 3 stars for any unspecified weight.
func (in *interpretation) toResult(rawReply string) Result {
	if in.Understood != nil && !*in.Understood {
		msg := strings.TrimSpace(in.ResponseMessage)
		if msg == "" {
			msg = "Maaf, saya hanya dapat membantu pemilihan laptop. Bisa jelaskan kebutuhan laptop Anda?"
		}
		return Result{
			Success:         false,
			ResponseMessage: msg,
		}
	}

	if in.NeedsClarification && len(in.ClarificationQuestions) > 0 {
		msg := in.ResponseMessage
		if msg == "" {
			msg = FormatClarification(in.ClarificationQuestions)
		}
		return Result{
			Success:                true,
			NeedsClarification:     true,
			ClarificationQuestions: in.ClarificationQuestions,
			ResponseMessage:        msg,
		}
	}

	res := Result{
		Success:         true,
		ResponseMessage: in.ResponseMessage,
		Filters:         in.Filters,
		UseCase:         in.UseCase,
		Weights: map[string]int{
			saw.CriterionPrice:   clampStars(in.Weights.Price),
			saw.CriterionRAM:     clampStars(in.Weights.RAM),
			saw.CriterionSSD:     clampStars(in.Weights.SSD),
			saw.CriterionRating:  clampStars(in.Weights.Rating),
			saw.CriterionDisplay: clampStars(in.Weights.Display),
			saw.CriterionGPU:     clampStars(in.Weights.GPU),
		},
	}
	if in.DetectedPreferences.Budget != nil {
		res.DetectedPreferences.Budget = *in.DetectedPreferences.Budget
	}
	res.DetectedPreferences.UseCase = in.DetectedPreferences.UseCase
	if res.DetectedPreferences.UseCase == "" {
		res.DetectedPreferences.UseCase = in.UseCase
	}

	if res.ResponseMessage == "" {
		res.ResponseMessage = reuseRawReply(rawReply)
	}
	if res.ResponseMessage == "" {
		res.ResponseMessage = defaultConfirmation(res.UseCase, res.Filters)
	}
	return res
}

// reuseRawReply salvages a model reply that carried prose instead of a
// response_message field; short replies are discarded as noise.
func reuseRawReply(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) <= 20 {
		return ""
	}
	if len(trimmed) > 500 {
		trimmed = trimmed[:500]
	}
	return trimmed
}

func clampStars(v *float64) int {
	if v == nil {
		return 3
	}
	stars := int(math.Round(*v))
	if stars < 1 {
		stars = 1
	}
	if stars > 5 {
		stars = 5
	}
	return stars
}
