package discord

import (
	"bytes"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/boardgame-bot/internal/apperror"
	"github.com/rocketscienceinc/boardgame-bot/internal/entity"
	"github.com/rocketscienceinc/boardgame-bot/internal/usecase"
)

type componentTarget struct {
	kind usecase.ActionKind
	game entity.GameKind
}

var componentTargets = map[string]componentTarget{
	"choice_alphabet":            {usecase.ActionSelectRow, entity.KindReversi},
	"choice_number":              {usecase.ActionSelectColumn, entity.KindReversi},
	"push_stone":                 {usecase.ActionCommit, entity.KindReversi},
	"qgomoku_choice_alphabet":    {usecase.ActionSelectRow, entity.KindQuantumGomoku},
	"qgomoku_choice_number":      {usecase.ActionSelectColumn, entity.KindQuantumGomoku},
	"qgomoku_push_stone":         {usecase.ActionCommit, entity.KindQuantumGomoku},
	"qgomoku_push_stone_observe": {usecase.ActionCommitAndObserve, entity.KindQuantumGomoku},
}

// componentAction - the arbiter action behind a pressed button or a picked menu value.
func componentAction(customID string, values []string) (usecase.Action, error) {
	target, ok := componentTargets[customID]
	if !ok {
		return usecase.Action{}, fmt.Errorf("%w: component %q", apperror.ErrUnknownAction, customID)
	}

	action := usecase.Action{Kind: target.kind, Game: target.game}

	if target.kind == usecase.ActionSelectRow || target.kind == usecase.ActionSelectColumn {
		if len(values) == 0 {
			return usecase.Action{}, fmt.Errorf("%w: component %q sent no value", apperror.ErrInvalidLabel, customID)
		}

		action.Label = values[0]
	}

	return action, nil
}

func customIDFor(control usecase.Control) string {
	for customID, target := range componentTargets {
		if target.kind == control.Action && target.game == control.Game {
			return customID
		}
	}

	panic(fmt.Errorf("%w: no component for %s in %s", apperror.ErrInvariantViolation, control.Action, control.Game))
}

// components - one row per picker, all buttons share the last row.
func components(controls []usecase.Control) []discordgo.MessageComponent {
	rows := []discordgo.MessageComponent{}

	var buttons []discordgo.MessageComponent
	for _, control := range controls {
		switch control.Kind {
		case usecase.ControlPicker:
			options := make([]discordgo.SelectMenuOption, 0, len(control.Options))
			for _, option := range control.Options {
				options = append(options, discordgo.SelectMenuOption{Label: option, Value: option})
			}

			rows = append(rows, discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    customIDFor(control),
						Placeholder: control.Caption,
						Options:     options,
					},
				},
			})
		case usecase.ControlButton:
			buttons = append(buttons, discordgo.Button{
				Label:    control.Caption,
				Style:    discordgo.PrimaryButton,
				CustomID: customIDFor(control),
			})
		}
	}

	if len(buttons) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

func messageData(result *usecase.Result) *discordgo.InteractionResponseData {
	content := result.Message
	if result.Board != "" {
		content += "\n\n" + result.Board
	}

	data := &discordgo.InteractionResponseData{
		Content:    content,
		Components: components(result.Controls),
	}

	for _, image := range result.Images {
		data.Files = append(data.Files, &discordgo.File{
			Name:        image.Name,
			ContentType: "image/png",
			Reader:      bytes.NewReader(image.PNG),
		})
	}

	return data
}

// reply - a new channel message, used for slash commands.
func reply(result *usecase.Result) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: messageData(result),
	}
}

// update - rewrites the message holding the controls; earlier images are dropped.
func update(result *usecase.Result) *discordgo.InteractionResponse {
	data := messageData(result)
	data.Attachments = &[]*discordgo.MessageAttachment{}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	}
}

// notice - visible only to the user who acted.
func notice(text string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
