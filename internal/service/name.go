package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/boardgame-bot/internal/repository"
)

// UnknownName replaces a display name that could not be resolved.
const UnknownName = "None"

type NameService interface {
	Name(ctx context.Context, userID uint64) string
}

type userLookup interface {
	LookupName(ctx context.Context, userID uint64) (string, error)
}

type nameRepo interface {
	Save(ctx context.Context, userID uint64, name string) error
	GetByID(ctx context.Context, userID uint64) (string, error)
}

type nameService struct {
	logger *slog.Logger

	lookup userLookup
	cache  nameRepo
}

// NewNameService - cache may be nil, then every call goes to the lookup.
func NewNameService(logger *slog.Logger, lookup userLookup, cache nameRepo) NameService {
	return &nameService{
		logger: logger,
		lookup: lookup,
		cache:  cache,
	}
}

// Name never fails: lookup errors degrade to UnknownName.
func (that *nameService) Name(ctx context.Context, userID uint64) string {
	log := that.logger.With("method", "Name", "userID", userID)

	if that.cache != nil {
		name, err := that.cache.GetByID(ctx, userID)
		if err == nil {
			return name
		}

		if !errors.Is(err, repository.ErrNameNotFound) {
			log.Warn("failed to read cached name", "error", err)
		}
	}

	name, err := that.lookup.LookupName(ctx, userID)
	if err != nil {
		log.Warn("failed to look up name", "error", err)
		return UnknownName
	}

	if that.cache != nil {
		if err = that.cache.Save(ctx, userID, name); err != nil {
			log.Warn("failed to cache name", "error", err)
		}
	}

	return name
}
