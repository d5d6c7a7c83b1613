package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/utsav-fest/utsav-api/internal/admin"
	"github.com/utsav-fest/utsav-api/internal/auth"
	"github.com/utsav-fest/utsav-api/internal/config"
	"github.com/utsav-fest/utsav-api/internal/database"
	"github.com/utsav-fest/utsav-api/internal/event"
	"github.com/utsav-fest/utsav-api/internal/handlers"
	"github.com/utsav-fest/utsav-api/internal/notifier"
	"github.com/utsav-fest/utsav-api/internal/payments"
	"github.com/utsav-fest/utsav-api/internal/wizard"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Event bus backing the live teams feed
	bus := event.NewEventBus()

	// Best-effort registration mirrors
	var notifiers []notifier.Notifier
	if cfg.SheetWebhookURL != "" {
		notifiers = append(notifiers, notifier.NewSheetNotifier(cfg.SheetWebhookURL))
	} else {
		log.Printf("Sheet mirror not configured, registrations will not be copied to the spreadsheet")
	}
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			notifiers = append(notifiers, notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID))
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	upi := payments.NewUPIProvider(cfg.UPIPayeeID, cfg.UPIPayeeName, cfg.FestName)
	manager := wizard.NewManager(wizard.Deps{
		DB:        db,
		Payments:  upi,
		Notifiers: notifiers,
		Bus:       bus,
	})
	eventsHandler := handlers.NewEventsHandler()
	wizardHandler := handlers.NewWizardHandler(manager, authHandler)
	teamsHandler := handlers.NewTeamsHandler(db, bus)
	adminHandler := handlers.NewAdminHandler(admin.NewDashboard(db, bus), authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, eventsHandler, wizardHandler, teamsHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
