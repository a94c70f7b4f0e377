package game

import (
	"context"
	"errors"

	"github.com/okarvik/chesskit/internal/domain"
)

var ErrDuplicateRecord = errors.New("game record already exists")

// Repository archives finished games. The engine itself never touches it;
// only the service writes records, once per finished session.
type Repository interface {
	InsertGame(ctx context.Context, record *domain.GameRecord) (int64, error)
	GetRecentGames(ctx context.Context, limit int) ([]*domain.GameRecord, error)
}
