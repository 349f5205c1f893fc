package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	MatchHandler(w http.ResponseWriter, r *http.Request)
}

type matchReader interface {
	Match(channelID uint64) (*entity.Match, error)
}

type handlers struct {
	logger  *slog.Logger
	matches matchReader
}

func NewHandlers(logger *slog.Logger, matches matchReader) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// MatchHandler - the current state of a channel's match as JSON.
func (that *handlers) MatchHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MatchHandler")

	channelID, err := strconv.ParseUint(r.PathValue("channelID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid channel id", http.StatusBadRequest)
		return
	}

	match, err := that.matches.Match(channelID)
	if errors.Is(err, apperror.ErrNoActiveMatch) {
		http.Error(w, apperror.ErrNoActiveMatch.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get match", "channelID", channelID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(match); err != nil {
		log.Error("failed to encode match", "error", err)
	}
}
