// Package chat orchestrates a single conversation turn: keyword extraction,
// candidate retrieval, and best-answer selection.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/helpbase/faqdex/internal/domain"
	"github.com/helpbase/faqdex/internal/logger"
	"github.com/helpbase/faqdex/internal/match"
)

// Outcome classifies how a turn was answered.
type Outcome string

const (
	// OutcomeAnswered means a candidate with positive overlap won.
	OutcomeAnswered Outcome = "answered"
	// OutcomeDefault means no usable keywords or no positive-overlap candidate.
	OutcomeDefault Outcome = "default"
	// OutcomeGreeting means the conversational fast path replied.
	OutcomeGreeting Outcome = "greeting"
	// OutcomePrompt means the question was empty.
	OutcomePrompt Outcome = "prompt"
	// OutcomeFailure means retrieval failed and the turn recovered locally.
	OutcomeFailure Outcome = "failure"
)

// Messages holds the fixed reply texts.
type Messages struct {
	Default  string
	Trouble  string
	Prompt   string
	Greeting string
	Thanks   string
}

// Reply is the result of one conversation turn.
type Reply struct {
	Answer   string
	Outcome  Outcome
	Score    int
	Keywords []string
	RecordID string
}

// Service answers questions against the record store.
type Service struct {
	retriever Retriever
	extractor *match.Extractor
	msgs      Messages
	turns     turnGuard
}

// New creates a chat service.
func New(retriever Retriever, extractor *match.Extractor, msgs Messages) *Service {
	return &Service{
		retriever: retriever,
		extractor: extractor,
		msgs:      msgs,
		turns:     turnGuard{inFlight: make(map[string]struct{})},
	}
}

// Ask runs one conversation turn. Turns are serialized per session: a second
// Ask while one is outstanding returns domain.ErrTurnInFlight. The guard is
// released on every exit path, failure included.
//
// Empty questions, zero usable keywords, and zero retrieved candidates are
// normal outcomes, not errors. A retrieval failure is recovered locally into
// the fixed trouble-connecting reply so the conversation can continue.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (Reply, error) {
	if !s.turns.acquire(sessionID) {
		return Reply{}, domain.ErrTurnInFlight
	}
	defer s.turns.release(sessionID)

	log := logger.FromContext(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{Answer: s.msgs.Prompt, Outcome: OutcomePrompt}, nil
	}

	if match.IsGreeting(question) {
		return Reply{Answer: s.msgs.Greeting, Outcome: OutcomeGreeting}, nil
	}
	if match.IsThanks(question) {
		return Reply{Answer: s.msgs.Thanks, Outcome: OutcomeGreeting}, nil
	}

	keywords := s.extractor.Extract(question)
	if len(keywords) == 0 {
		// Entirely stop words or punctuation. No retrieval happens.
		return Reply{Answer: s.msgs.Default, Outcome: OutcomeDefault}, nil
	}

	candidates, err := s.retriever.FindByAnyKeyword(ctx, keywords)
	if err != nil {
		log.Warn("candidate retrieval failed",
			zap.Strings("keywords", keywords),
			zap.Error(err),
		)
		return Reply{Answer: s.msgs.Trouble, Outcome: OutcomeFailure, Keywords: keywords}, nil
	}

	sel := match.SelectBest(keywords, candidates, s.msgs.Default)
	reply := Reply{
		Answer:   sel.Answer,
		Outcome:  OutcomeDefault,
		Score:    sel.Score,
		Keywords: keywords,
		RecordID: sel.RecordID,
	}
	if sel.Matched {
		reply.Outcome = OutcomeAnswered
	}

	log.Debug("turn answered",
		zap.String("outcome", string(reply.Outcome)),
		zap.Int("score", reply.Score),
		zap.Int("candidates", len(candidates)),
	)
	return reply, nil
}
