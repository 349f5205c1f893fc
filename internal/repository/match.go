package repository

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
)

// Mutation changes a match inside the store's critical section.
// Returning remove=true deletes the match once fn returns; an error leaves the store as it was.
type Mutation func(match *entity.Match) (remove bool, err error)

type MatchRepository interface {
	Create(kind entity.GameKind, channelID, darkID, lightID uint64) (*entity.Match, error)
	GetByChannelID(channelID uint64) (*entity.Match, error)
	Update(channelID uint64, fn Mutation) error
	Count() int
}

// memoryMatches keeps every active match behind one lock shared by all channels.
type memoryMatches struct {
	mu      sync.Mutex
	matches map[uint64]*entity.Match
}

func NewMatchRepository() MatchRepository {
	return &memoryMatches{
		matches: make(map[uint64]*entity.Match),
	}
}

func (that *memoryMatches) Create(kind entity.GameKind, channelID, darkID, lightID uint64) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[channelID]; ok {
		return nil, fmt.Errorf("%w: channel %d", apperror.ErrMatchAlreadyActive, channelID)
	}

	match, err := entity.NewMatch(kind, channelID, darkID, lightID)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.matches[channelID] = match

	return match.Clone(), nil
}

// GetByChannelID - returns a copy; changes to it are not stored.
func (that *memoryMatches) GetByChannelID(channelID uint64) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[channelID]
	if !ok {
		return nil, fmt.Errorf("%w: channel %d", apperror.ErrNoActiveMatch, channelID)
	}

	return match.Clone(), nil
}

func (that *memoryMatches) Update(channelID uint64, fn Mutation) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[channelID]
	if !ok {
		return fmt.Errorf("%w: channel %d", apperror.ErrNoActiveMatch, channelID)
	}

	remove, err := fn(match)
	if err != nil {
		return err
	}

	if remove {
		delete(that.matches, channelID)
	}

	return nil
}

func (that *memoryMatches) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.matches)
}
