package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/utsav-fest/utsav-api/internal/models"
)

// DiscordNotifier posts a short message to the organizers' channel for
// every registration, so the team hears about entries as they land.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🎉 **New Registration**\n**Event:** %s\n**Team #%d** from %s\n**Contact:** %s\n**Fee:** %s (txn %s, %s)",
		registration.EventName,
		registration.TeamNumber,
		registration.CollegeName,
		registration.Email,
		registration.RegistrationFee,
		registration.TransactionID,
		registration.PaymentStatus,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
