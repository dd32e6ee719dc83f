package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/hotel-web/internal/models"
)

type channelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts a summary of each registration and reservation to
// the front desk channel.
type DiscordNotifier struct {
	session   channelSender
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &DiscordNotifier{session: session, channelID: channelID}, nil
}

func (n *DiscordNotifier) NotifyRegistration(ctx context.Context, record models.RegistrationRecord) error {
	message := fmt.Sprintf("📝 **Nuevo registro**\n**Nombre:** %s\n**Correo:** %s\n**Fecha:** %s",
		record.Name,
		record.Email,
		record.RegisteredAt,
	)
	return n.send(ctx, message)
}

func (n *DiscordNotifier) NotifyReservation(ctx context.Context, record models.ReservationRecord) error {
	room := record.RoomID
	if r, ok := models.FindRoom(record.RoomID); ok {
		room = fmt.Sprintf("%s (%s)", r.Name, r.ID)
	}

	message := fmt.Sprintf("🛎️ **Nueva reserva**\n**Nombre:** %s (%s, %s)\n**Habitación:** %s\n**Fechas:** %s - %s (%d noches)\n**Huéspedes:** %d\n**Fecha:** %s",
		record.Name,
		record.Email,
		record.Phone,
		room,
		record.CheckIn,
		record.CheckOut,
		record.Nights(),
		record.Guests,
		record.ReservedAt,
	)
	return n.send(ctx, message)
}

func (n *DiscordNotifier) send(ctx context.Context, message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message, discordgo.WithContext(ctx))
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
