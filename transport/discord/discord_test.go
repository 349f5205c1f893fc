package discord

import (
	"io"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
	"github.com/rocketscienceinc/boardgame-bot/internal/usecase"
)

func TestCommandAction(t *testing.T) {
	t.Run("Start carries the resolved opponent", func(t *testing.T) {
		// Given: a start command naming a bot
		data := discordgo.ApplicationCommandInteractionData{
			Name: commandQuantumStart,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: optionOpponent, Type: discordgo.ApplicationCommandOptionUser, Value: "42"},
			},
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
				Users: map[string]*discordgo.User{"42": {ID: "42", Bot: true}},
			},
		}

		// When: it is translated
		action, err := commandAction(data)

		// Then: the opponent and the bot flag are passed on
		require.NoError(t, err)
		assert.Equal(t, usecase.ActionStartMatch, action.Kind)
		assert.Equal(t, entity.KindQuantumGomoku, action.Game)
		assert.Equal(t, uint64(42), action.OpponentID)
		assert.True(t, action.OpponentIsBot)
	})

	t.Run("Start without resolved data", func(t *testing.T) {
		data := discordgo.ApplicationCommandInteractionData{
			Name: commandReversiStart,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: optionOpponent, Type: discordgo.ApplicationCommandOptionUser, Value: "7"},
			},
		}

		action, err := commandAction(data)

		require.NoError(t, err)
		assert.Equal(t, entity.KindReversi, action.Game)
		assert.Equal(t, uint64(7), action.OpponentID)
		assert.False(t, action.OpponentIsBot)
	})

	t.Run("End commands", func(t *testing.T) {
		for name, game := range map[string]entity.GameKind{
			commandReversiEnd: entity.KindReversi,
			commandQuantumEnd: entity.KindQuantumGomoku,
			commandMatchEnd:   "",
		} {
			action, err := commandAction(discordgo.ApplicationCommandInteractionData{Name: name})

			require.NoError(t, err)
			assert.Equal(t, usecase.ActionEndMatch, action.Kind)
			assert.Equal(t, game, action.Game, name)
		}
	})

	t.Run("Unknown command", func(t *testing.T) {
		_, err := commandAction(discordgo.ApplicationCommandInteractionData{Name: "chess_start"})

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})
}

func TestComponentAction(t *testing.T) {
	t.Run("Picker values become labels", func(t *testing.T) {
		action, err := componentAction("qgomoku_choice_number", []string{"15"})

		require.NoError(t, err)
		assert.Equal(t, usecase.ActionSelectColumn, action.Kind)
		assert.Equal(t, entity.KindQuantumGomoku, action.Game)
		assert.Equal(t, "15", action.Label)
	})

	t.Run("Buttons carry no label", func(t *testing.T) {
		action, err := componentAction("push_stone", nil)

		require.NoError(t, err)
		assert.Equal(t, usecase.ActionCommit, action.Kind)
		assert.Equal(t, entity.KindReversi, action.Game)
		assert.Empty(t, action.Label)
	})

	t.Run("Picker without a value", func(t *testing.T) {
		_, err := componentAction("choice_alphabet", nil)

		require.ErrorIs(t, err, apperror.ErrInvalidLabel)
	})

	t.Run("Unknown component", func(t *testing.T) {
		_, err := componentAction("flip_table", nil)

		require.ErrorIs(t, err, apperror.ErrUnknownAction)
	})
}

func TestCustomIDFor_RoundTrip(t *testing.T) {
	for customID, target := range componentTargets {
		control := usecase.Control{Action: target.kind, Game: target.game}

		assert.Equal(t, customID, customIDFor(control))
	}

	assert.Panics(t, func() {
		customIDFor(usecase.Control{Action: usecase.ActionCommitAndObserve, Game: entity.KindReversi})
	})
}

func TestComponents(t *testing.T) {
	// Given: the controls of a quantum match
	controls := []usecase.Control{
		{Kind: usecase.ControlPicker, Action: usecase.ActionSelectRow, Game: entity.KindQuantumGomoku, Caption: "Choose a row", Options: []string{"A", "B"}},
		{Kind: usecase.ControlPicker, Action: usecase.ActionSelectColumn, Game: entity.KindQuantumGomoku, Caption: "Choose a column", Options: []string{"1"}},
		{Kind: usecase.ControlButton, Action: usecase.ActionCommit, Game: entity.KindQuantumGomoku, Caption: "Place"},
		{Kind: usecase.ControlButton, Action: usecase.ActionCommitAndObserve, Game: entity.KindQuantumGomoku, Caption: "Place and observe"},
	}

	// When: they are turned into message components
	rows := components(controls)

	// Then: each picker gets a row and the buttons share one
	require.Len(t, rows, 3)

	rowPicker, ok := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, "qgomoku_choice_alphabet", rowPicker.CustomID)
	assert.Equal(t, "Choose a row", rowPicker.Placeholder)
	assert.Equal(t, []discordgo.SelectMenuOption{{Label: "A", Value: "A"}, {Label: "B", Value: "B"}}, rowPicker.Options)

	buttons := rows[2].(discordgo.ActionsRow).Components
	require.Len(t, buttons, 2)
	assert.Equal(t, "qgomoku_push_stone", buttons[0].(discordgo.Button).CustomID)
	assert.Equal(t, "qgomoku_push_stone_observe", buttons[1].(discordgo.Button).CustomID)
}

func TestResponses(t *testing.T) {
	result := &usecase.Result{
		Message: "Now 🔵 : alice to move.",
		Board:   "board\n",
		Images:  []usecase.Image{{Name: "board.png", PNG: []byte{1, 2, 3}}},
	}

	t.Run("Reply posts the board below the message", func(t *testing.T) {
		response := reply(result)

		assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, response.Type)
		assert.Equal(t, "Now 🔵 : alice to move.\n\nboard\n", response.Data.Content)
		require.Len(t, response.Data.Files, 1)
		assert.Equal(t, "board.png", response.Data.Files[0].Name)

		body, err := io.ReadAll(response.Data.Files[0].Reader)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, body)
	})

	t.Run("Update replaces the message and its attachments", func(t *testing.T) {
		response := update(&usecase.Result{Message: "The match is over.", Finished: true})

		assert.Equal(t, discordgo.InteractionResponseUpdateMessage, response.Type)
		require.NotNil(t, response.Data.Attachments)
		assert.Empty(t, *response.Data.Attachments)
		assert.Empty(t, response.Data.Components)
	})

	t.Run("Notice is ephemeral", func(t *testing.T) {
		response := notice("It is not your turn.")

		assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
		assert.Equal(t, "It is not your turn.", response.Data.Content)
	})
}

func TestOrigin(t *testing.T) {
	t.Run("Guild interaction", func(t *testing.T) {
		interaction := &discordgo.Interaction{
			ChannelID: "100",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "1"}},
		}

		channelID, actorID, err := origin(interaction)

		require.NoError(t, err)
		assert.Equal(t, uint64(100), channelID)
		assert.Equal(t, uint64(1), actorID)
	})

	t.Run("Direct message interaction", func(t *testing.T) {
		interaction := &discordgo.Interaction{ChannelID: "100", User: &discordgo.User{ID: "2"}}

		_, actorID, err := origin(interaction)

		require.NoError(t, err)
		assert.Equal(t, uint64(2), actorID)
	})

	t.Run("Malformed ids", func(t *testing.T) {
		_, _, err := origin(&discordgo.Interaction{ChannelID: "general", User: &discordgo.User{ID: "2"}})
		require.Error(t, err)

		_, _, err = origin(&discordgo.Interaction{ChannelID: "100"})
		require.Error(t, err)
	})
}
