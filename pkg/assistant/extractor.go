package assistant

import (
	"context"
	"log"
	"time"

	"laptop-dss-be/pkg/llm"
	"laptop-dss-be/pkg/store"
)

// DefaultTimeout bounds one remote interpretation round trip.
const DefaultTimeout = 60 * time.Second

// Extractor turns a free-text user message into structured preferences.
// It runs three stages in order: a local clarification gate, remote model
// interpretation, and a deterministic keyword fallback. The fallback
// guarantees the extractor always produces a usable result.
type Extractor struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *log.Logger
}

// NewExtractor wires an extractor around the given model provider. A nil
// provider is allowed; extraction then goes straight to the fallback.
func NewExtractor(provider llm.Provider, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{
		provider: provider,
		timeout:  DefaultTimeout,
		logger:   logger,
	}
}

// Extract processes one user message against the current session and the
// dataset statistics. The session's preferences and asked-topic set are
// updated as a side effect.
func (e *Extractor) Extract(ctx context.Context, message string, stats DatasetStats, sess *store.Session) Result {
	if questions := CheckClarification(message, sess); len(questions) > 0 {
		return Result{
			Success:                true,
			NeedsClarification:     true,
			ClarificationQuestions: questions,
			ResponseMessage:        FormatClarification(questions),
		}
	}

	res := e.interpret(ctx, message, stats, sess)
	e.mergePreferences(sess, res)
	return res
}

func (e *Extractor) interpret(ctx context.Context, message string, stats DatasetStats, sess *store.Session) Result {
	if e.provider == nil {
		return FallbackParse(message, "no model provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := BuildPrompt(message, stats, sess)
	reply, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		e.logger.Printf("assistant: model call failed, using fallback: %v", err)
		return FallbackParse(message, err.Error())
	}

	in, err := ParseInterpretation(reply)
	if err != nil {
		e.logger.Printf("assistant: unparseable model reply, using fallback: %v", err)
		res := FallbackParse(message, err.Error())
		// A prose reply without JSON can still carry the answer; keep it
		// over the templated confirmation.
		if text := reuseRawReply(reply); text != "" {
			res.ResponseMessage = text
		}
		return res
	}
	return in.toResult(reply)
}

// mergePreferences folds detected preferences into the session. Absent
// values never overwrite what an earlier turn established.
func (e *Extractor) mergePreferences(sess *store.Session, res Result) {
	if sess == nil || !res.Success || res.NeedsClarification {
		return
	}
	sess.UpdatePreferences(res.DetectedPreferences)
}
