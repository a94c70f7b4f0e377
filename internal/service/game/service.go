// Package game orchestrates chess sessions on top of the rules engine:
// session lifecycle, move application, promotion handling and archiving of
// finished games.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okarvik/chesskit/internal/domain"
	"github.com/okarvik/chesskit/internal/engine"
	"github.com/okarvik/chesskit/pkg/gamedto"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrSessionLimit    = errors.New("too many concurrent game sessions")
)

const defaultMaxSessions = 64

// Config tunes the service.
type Config struct {
	MaxSessions int
}

type session struct {
	id        string
	game      *engine.Game
	moves     []string
	startedAt time.Time
	updatedAt time.Time
	archived  bool
}

// Service owns every live session. One mutex guards the session map and
// the sessions themselves; engine calls are short and synchronous, so a
// single lock keeps move application atomic per session.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	repo     Repository
	cfg      Config
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger, cfg Config) *Service {
	if repo == nil {
		repo = NewMemoryRepository()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}
	return &Service{
		sessions: make(map[string]*session),
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start opens a new session from the standard position, White to move.
func (s *Service) Start(ctx context.Context) (*gamedto.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.cfg.MaxSessions {
		return nil, fmt.Errorf("%w: limit %d", ErrSessionLimit, s.cfg.MaxSessions)
	}

	now := time.Now()
	sess := &session{
		id:        uuid.NewString(),
		game:      engine.New(),
		startedAt: now,
		updatedAt: now,
	}
	s.sessions[sess.id] = sess

	s.logger.Info("session_start", zap.String("session_uuid", sess.id))
	return snapshot(sess), nil
}

// Move applies one move to the session. Engine errors pass through
// unchanged; they are user-facing and leave the session untouched.
func (s *Service) Move(ctx context.Context, sessionID, from, to string) (*gamedto.MoveSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	state, err := sess.game.MakeMove(from, to)
	if err != nil {
		return nil, err
	}
	sess.moves = append(sess.moves, from+to)
	sess.updatedAt = time.Now()

	summary := s.summarize(ctx, sess, state)
	s.logger.Info("move",
		zap.String("session_uuid", sess.id),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("state", string(state)),
	)
	return summary, nil
}

// Promote resolves a pending pawn promotion.
func (s *Service) Promote(ctx context.Context, sessionID, pieceName string) (*gamedto.MoveSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	state, err := sess.game.SetPromotion(pieceName)
	if err != nil {
		return nil, err
	}
	sess.updatedAt = time.Now()

	summary := s.summarize(ctx, sess, state)
	s.logger.Info("promotion",
		zap.String("session_uuid", sess.id),
		zap.String("piece", pieceName),
		zap.String("state", string(state)),
	)
	return summary, nil
}

// Resign ends the session on behalf of the side to move.
func (s *Service) Resign(ctx context.Context, sessionID string) (*gamedto.MoveSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	resigner := sess.game.ActiveColour()
	state, err := sess.game.Resign()
	if err != nil {
		return nil, err
	}
	sess.updatedAt = time.Now()

	s.archive(ctx, sess, string(resigner.Opposite()), "resignation")
	s.logger.Info("resignation",
		zap.String("session_uuid", sess.id),
		zap.String("resigner", string(resigner)),
	)
	return &gamedto.MoveSummary{State: snapshot(sess), Finished: state == engine.StateGameOver, Method: "resignation"}, nil
}

// PossibleMoves lists the legal destinations, as two-character coordinates,
// for whatever occupies the given square.
func (s *Service) PossibleMoves(ctx context.Context, sessionID, square string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sq, err := engine.ParseSquare(square)
	if err != nil {
		return nil, err
	}

	moves := sess.game.PossibleMoves(sq)
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.String())
	}
	return out, nil
}

// PieceAt returns the piece occupying a square, zero when empty.
func (s *Service) PieceAt(ctx context.Context, sessionID, square string) (engine.Piece, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return engine.Piece{}, err
	}
	sq, err := engine.ParseSquare(square)
	if err != nil {
		return engine.Piece{}, err
	}
	board := sess.game.Board()
	return board.At(sq), nil
}

// State returns a snapshot of the session.
func (s *Service) State(ctx context.Context, sessionID string) (*gamedto.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

// RecentGames lists archived finished games, most recent first.
func (s *Service) RecentGames(ctx context.Context, limit int) ([]*domain.GameRecord, error) {
	return s.repo.GetRecentGames(ctx, limit)
}

// lookup must run under s.mu.
func (s *Service) lookup(sessionID string) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	return sess, nil
}

// summarize builds the move result and, when the game just ended, derives
// the outcome and archives the record. Checkmate and stalemate share the
// terminal state; they are told apart only for display, by whether the
// side left without moves stands in check.
func (s *Service) summarize(ctx context.Context, sess *session, state engine.GameState) *gamedto.MoveSummary {
	summary := &gamedto.MoveSummary{State: snapshot(sess), Finished: state == engine.StateGameOver}
	if !summary.Finished {
		return summary
	}

	if sess.game.InCheck() {
		summary.Method = "checkmate"
		s.archive(ctx, sess, string(sess.game.ActiveColour().Opposite()), summary.Method)
	} else {
		summary.Method = "stalemate"
		s.archive(ctx, sess, "draw", summary.Method)
	}
	return summary
}

// archive must run under s.mu.
func (s *Service) archive(ctx context.Context, sess *session, outcome, method string) {
	if sess.archived {
		return
	}
	now := time.Now()
	record := &domain.GameRecord{
		SessionUUID: sess.id,
		Outcome:     outcome,
		Method:      method,
		Moves:       append([]string(nil), sess.moves...),
		MoveCount:   len(sess.moves),
		StartedAt:   sess.startedAt,
		EndedAt:     now,
		Duration:    now.Sub(sess.startedAt),
	}
	if _, err := s.repo.InsertGame(ctx, record); err != nil {
		s.logger.Error("archive_failed", zap.String("session_uuid", sess.id), zap.Error(err))
		return
	}
	sess.archived = true
	s.logger.Info("game_over",
		zap.String("session_uuid", sess.id),
		zap.String("outcome", outcome),
		zap.String("method", method),
		zap.Int("move_count", record.MoveCount),
	)
}

func snapshot(sess *session) *gamedto.SessionState {
	return &gamedto.SessionState{
		SessionUUID: sess.id,
		State:       string(sess.game.State()),
		Turn:        string(sess.game.ActiveColour()),
		Board:       sess.game.String(),
		Moves:       append([]string(nil), sess.moves...),
		MoveCount:   len(sess.moves),
	}
}
