package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-team-keeper/internal/adapter"
	"github.com/MKhiriev/go-team-keeper/internal/client"
	"github.com/MKhiriev/go-team-keeper/internal/config"
	"github.com/MKhiriev/go-team-keeper/internal/crypto"
	"github.com/MKhiriev/go-team-keeper/internal/logger"
	"github.com/MKhiriev/go-team-keeper/internal/tui"
	"github.com/MKhiriev/go-team-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.Nop()
	if cfg.LogFile != "" {
		log = logger.NewFileLogger("go-team-client", cfg.LogFile)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	exitOnError(log, err, "error creating server adapter")

	ui, err := tui.New(serverAdapter, crypto.NewKeyChain(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	exitOnError(log, err, "error creating ui")

	app, err := client.NewApp(serverAdapter, ui, log)
	exitOnError(log, err, "init client app error")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()
	exitOnError(log, err, "client run error")
}

// exitOnError reports err on stderr as well, since the client log is a file
// or nothing at all.
func exitOnError(log *logger.Logger, err error, msg string) {
	if err == nil {
		return
	}
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
