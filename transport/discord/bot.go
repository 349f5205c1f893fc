package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rocketscienceinc/boardgame-bot/internal/usecase"
)

// Discord drops interactions that are not answered within three seconds.
const interactionTimeout = 3 * time.Second

type actionHandler interface {
	Handle(ctx context.Context, action usecase.Action) (*usecase.Result, error)
}

type Bot struct {
	logger  *slog.Logger
	session *discordgo.Session
	handler actionHandler

	applicationID string
	guildID       string
}

func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}

func New(logger *slog.Logger, session *discordgo.Session, handler actionHandler, applicationID, guildID string) *Bot {
	return &Bot{
		logger:  logger.With("component", "discord"),
		session: session,
		handler: handler,

		applicationID: applicationID,
		guildID:       guildID,
	}
}

// Start connects to the gateway, registers the slash commands and serves interactions until ctx is done.
func (that *Bot) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	that.session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		log.Info("logged in", "user", ready.User.Username)
	})
	that.session.AddHandler(that.onInteraction)

	if err := that.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	defer func() {
		if err := that.session.Close(); err != nil {
			log.Error("failed to close discord session", "error", err)
		}
	}()

	applicationID := that.applicationID
	if applicationID == "" {
		applicationID = that.session.State.User.ID
	}

	registered, err := that.session.ApplicationCommandBulkOverwrite(applicationID, that.guildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	log.Info("commands registered", "count", len(registered), "guildID", that.guildID)

	<-ctx.Done()

	return nil
}

func (that *Bot) onInteraction(_ *discordgo.Session, event *discordgo.InteractionCreate) {
	log := that.logger.With("method", "onInteraction", "interactionID", event.ID, "channelID", event.ChannelID)

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error("recovered from panic", "panic", recovered)
			that.respond(log, event.Interaction, notice(usecase.NoticeInternal))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	var (
		response *discordgo.InteractionResponse
		err      error
	)

	switch event.Type {
	case discordgo.InteractionApplicationCommand:
		response, err = that.onCommand(ctx, event.Interaction)
	case discordgo.InteractionMessageComponent:
		response, err = that.onComponent(ctx, event.Interaction)
	default:
		return
	}

	if err != nil {
		text, expected := usecase.RejectionNotice(err)
		if !expected {
			log.Error("failed to handle interaction", "error", err)
		}

		response = notice(text)
	}

	that.respond(log, event.Interaction, response)
}

func (that *Bot) onCommand(ctx context.Context, interaction *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := interaction.ApplicationCommandData()
	if data.Name == commandPing {
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: "Pong!"},
		}, nil
	}

	action, err := commandAction(data)
	if err != nil {
		return nil, err
	}

	if action.ChannelID, action.ActorID, err = origin(interaction); err != nil {
		return nil, err
	}

	result, err := that.handler.Handle(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to handle command %s: %w", data.Name, err)
	}

	return reply(result), nil
}

func (that *Bot) onComponent(ctx context.Context, interaction *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := interaction.MessageComponentData()

	action, err := componentAction(data.CustomID, data.Values)
	if err != nil {
		return nil, err
	}

	if action.ChannelID, action.ActorID, err = origin(interaction); err != nil {
		return nil, err
	}

	result, err := that.handler.Handle(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to handle component %s: %w", data.CustomID, err)
	}

	if result.Message == "" {
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}, nil
	}

	return update(result), nil
}

func (that *Bot) respond(log *slog.Logger, interaction *discordgo.Interaction, response *discordgo.InteractionResponse) {
	if err := that.session.InteractionRespond(interaction, response); err != nil {
		log.Error("failed to respond to interaction", "error", err)
	}
}

// origin - channel and acting user of an interaction. Guild interactions carry the user on the member.
func origin(interaction *discordgo.Interaction) (uint64, uint64, error) {
	user := interaction.User
	if interaction.Member != nil {
		user = interaction.Member.User
	}

	if user == nil {
		return 0, 0, fmt.Errorf("interaction %s has no user", interaction.ID)
	}

	channelID, err := parseID(interaction.ChannelID)
	if err != nil {
		return 0, 0, err
	}

	actorID, err := parseID(user.ID)
	if err != nil {
		return 0, 0, err
	}

	return channelID, actorID, nil
}

func parseID(snowflake string) (uint64, error) {
	id, err := strconv.ParseUint(snowflake, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid discord id %q: %w", snowflake, err)
	}

	return id, nil
}
