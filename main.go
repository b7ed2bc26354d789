package main

import (
	"fmt"
	"os"

	"genie/internal/api"
	"genie/internal/auth"
	"genie/internal/chat"
	"genie/internal/config"
	"genie/internal/logging"
	"genie/internal/notify"
	"genie/internal/prefs"
	"genie/internal/session"
	"genie/internal/sidebar"
	"genie/internal/ui"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogFile)
	defer func() { _ = log.Sync() }()

	store, err := prefs.Open()
	if err != nil {
		// The store degrades to in-memory; note it and move on.
		log.Warn("preference store unavailable, using in-memory fallback", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	sess := session.NewStore()
	hub := notify.NewHub()

	backend := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	authClient := auth.NewClient(cfg.AuthBaseURL, cfg.AuthAPIKey, cfg.HTTPTimeout, log)

	p := ui.NewProgram(ui.Deps{
		Log:     log,
		Auth:    authClient,
		Session: sess,
		Prefs:   store,
		Hub:     hub,
		Chat:    chat.NewController(backend, sess, hub, log),
		Sidebar: sidebar.NewController(backend, sess, log),
	})

	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
