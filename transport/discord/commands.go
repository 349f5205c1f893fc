package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
	"github.com/rocketscienceinc/boardgame-bot/internal/usecase"
)

const (
	commandPing         = "ping"
	commandReversiStart = "reversi_start"
	commandReversiEnd   = "reversi_end"
	commandQuantumStart = "q_gomoku_start"
	commandQuantumEnd   = "q_gomoku_end"
	commandMatchEnd     = "match_end"

	optionOpponent = "user"
)

var opponentOption = &discordgo.ApplicationCommandOption{
	Type:        discordgo.ApplicationCommandOptionUser,
	Name:        optionOpponent,
	Description: "Your opponent.",
	Required:    true,
}

var commands = []*discordgo.ApplicationCommand{
	{Name: commandPing, Description: "Checks that the bot is alive."},
	{Name: commandReversiStart, Description: "Starts a reversi match.", Options: []*discordgo.ApplicationCommandOption{opponentOption}},
	{Name: commandReversiEnd, Description: "Ends the reversi match in this channel."},
	{Name: commandQuantumStart, Description: "Starts a quantum gomoku match.", Options: []*discordgo.ApplicationCommandOption{opponentOption}},
	{Name: commandQuantumEnd, Description: "Ends the quantum gomoku match in this channel."},
	{Name: commandMatchEnd, Description: "Ends whatever match is running in this channel."},
}

// commandAction - the arbiter action behind a slash command. Channel and actor are filled in by the caller.
func commandAction(data discordgo.ApplicationCommandInteractionData) (usecase.Action, error) {
	switch data.Name {
	case commandReversiStart:
		return startAction(entity.KindReversi, data)
	case commandQuantumStart:
		return startAction(entity.KindQuantumGomoku, data)
	case commandReversiEnd:
		return usecase.Action{Kind: usecase.ActionEndMatch, Game: entity.KindReversi}, nil
	case commandQuantumEnd:
		return usecase.Action{Kind: usecase.ActionEndMatch, Game: entity.KindQuantumGomoku}, nil
	case commandMatchEnd:
		return usecase.Action{Kind: usecase.ActionEndMatch}, nil
	default:
		return usecase.Action{}, fmt.Errorf("%w: command %q", apperror.ErrUnknownAction, data.Name)
	}
}

func startAction(game entity.GameKind, data discordgo.ApplicationCommandInteractionData) (usecase.Action, error) {
	action := usecase.Action{Kind: usecase.ActionStartMatch, Game: game}

	opponent := opponentOf(data)
	if opponent == nil {
		return action, nil
	}

	id, err := parseID(opponent.ID)
	if err != nil {
		return usecase.Action{}, fmt.Errorf("%w: %w", apperror.ErrInvalidOpponent, err)
	}

	action.OpponentID = id
	action.OpponentIsBot = opponent.Bot

	return action, nil
}

// opponentOf - the user picked for the opponent option. Only resolved users say whether they are bots.
func opponentOf(data discordgo.ApplicationCommandInteractionData) *discordgo.User {
	for _, option := range data.Options {
		if option.Name != optionOpponent || option.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}

		user := option.UserValue(nil)
		if data.Resolved != nil {
			if resolved, ok := data.Resolved.Users[user.ID]; ok {
				return resolved
			}
		}

		return user
	}

	return nil
}
