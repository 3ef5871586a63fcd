package main

import (
	"fmt"

	"github.com/MKhiriev/go-auth-flow/internal/adapter"
	"github.com/MKhiriev/go-auth-flow/internal/client"
	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/tui"
	"github.com/MKhiriev/go-auth-flow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPIdentityGateway(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity gateway")
	}

	loginFlow := flow.NewLoginFlow(gateway, log)
	sessionFlow := flow.NewSessionFlow(gateway, log)

	ui, err := tui.New(loginFlow, sessionFlow, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(loginFlow, sessionFlow, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
