package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/munhak/internal/llm"
	"github.com/abhisek/munhak/internal/store"
	"github.com/abhisek/munhak/internal/studystate"
)

const cachePrefix = "tutor/explanation/"

// Service explains incorrect notes with an LLM. Explanations are cached in
// the key-value store by question ID so each note costs one request.
type Service struct {
	provider llm.Provider
	cache    store.KV
	cfg      Config
	log      logrus.FieldLogger
}

// NewService creates a tutor. cache may be nil to disable caching.
func NewService(provider llm.Provider, cache store.KV, cfg Config, log logrus.FieldLogger) *Service {
	return &Service{provider: provider, cache: cache, cfg: cfg, log: log}
}

// Explain returns an explanation for note, from cache when available.
func (s *Service) Explain(ctx context.Context, note studystate.IncorrectNote) (Explanation, error) {
	if note.QuestionID == "" {
		return Explanation{}, errors.New("note has no question id")
	}

	if exp, ok := s.cached(ctx, note.QuestionID); ok {
		return exp, nil
	}

	exp, err := s.generate(ctx, note)
	if err != nil {
		return Explanation{}, err
	}
	s.store(ctx, note.QuestionID, exp)
	return exp, nil
}

// Forget drops the cached explanation for questionID.
func (s *Service) Forget(ctx context.Context, questionID string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, cachePrefix+questionID); err != nil {
		return fmt.Errorf("delete cached explanation: %w", err)
	}
	return nil
}

func (s *Service) generate(ctx context.Context, note studystate.IncorrectNote) (Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain-"+string(note.Type()))

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(note)}},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Explanation{}, fmt.Errorf("explain %s: %w", note.QuestionID, err)
	}

	var exp Explanation
	if err := json.Unmarshal(resp.Content, &exp); err != nil {
		return Explanation{}, fmt.Errorf("parse explanation: %w", err)
	}
	return exp, nil
}

func (s *Service) cached(ctx context.Context, questionID string) (Explanation, bool) {
	if s.cache == nil {
		return Explanation{}, false
	}
	raw, err := s.cache.Get(ctx, cachePrefix+questionID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.WithError(err).WithField("question", questionID).Warn("read cached explanation")
		}
		return Explanation{}, false
	}
	var exp Explanation
	if err := json.Unmarshal(raw, &exp); err != nil {
		s.log.WithError(err).WithField("question", questionID).Warn("discard malformed cached explanation")
		return Explanation{}, false
	}
	return exp, true
}

func (s *Service) store(ctx context.Context, questionID string, exp Explanation) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(exp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cachePrefix+questionID, raw); err != nil {
		s.log.WithError(err).WithField("question", questionID).Warn("cache explanation")
	}
}
