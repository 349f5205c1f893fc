package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// UserLookup resolves display names through the Discord API.
type UserLookup struct {
	session *discordgo.Session
}

func NewUserLookup(session *discordgo.Session) *UserLookup {
	return &UserLookup{session: session}
}

func (that *UserLookup) LookupName(ctx context.Context, userID uint64) (string, error) {
	user, err := that.session.User(strconv.FormatUint(userID, 10), discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to get discord user: %w", err)
	}

	return user.Username, nil
}
