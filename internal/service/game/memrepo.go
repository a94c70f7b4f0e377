package game

import (
	"context"
	"sort"
	"sync"

	"github.com/okarvik/chesskit/internal/domain"
)

// memrepo keeps finished-game records in process memory. There is no
// durable store; records live as long as the process.
type memrepo struct {
	mu sync.RWMutex

	nextID int64

	recordsByID      map[int64]*domain.GameRecord
	recordsBySession map[string]*domain.GameRecord
}

func NewMemoryRepository() Repository {
	return &memrepo{
		recordsByID:      make(map[int64]*domain.GameRecord),
		recordsBySession: make(map[string]*domain.GameRecord),
	}
}

func (m *memrepo) InsertGame(ctx context.Context, record *domain.GameRecord) (int64, error) {
	if record == nil {
		return 0, ErrDuplicateRecord
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.recordsBySession[record.SessionUUID]; exists {
		return 0, ErrDuplicateRecord
	}

	m.nextID++
	id := m.nextID
	copy := *record
	copy.ID = id

	m.recordsByID[id] = &copy
	m.recordsBySession[record.SessionUUID] = &copy

	return id, nil
}

func (m *memrepo) GetRecentGames(ctx context.Context, limit int) ([]*domain.GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*domain.GameRecord, 0, len(m.recordsByID))
	for _, r := range m.recordsByID {
		copy := *r
		items = append(items, &copy)
	}
	// Sort by EndedAt desc, falling back to ID desc.
	sort.Slice(items, func(i, j int) bool {
		if !items[i].EndedAt.Equal(items[j].EndedAt) {
			return items[i].EndedAt.After(items[j].EndedAt)
		}
		return items[i].ID > items[j].ID
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
