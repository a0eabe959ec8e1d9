package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-boilerplate/internal/app"
	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/MKhiriev/go-api-boilerplate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-api-server", false)
	opts, err := config.GetOptions(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting options")
	}

	ctx := context.Background()
	a, err := app.New(ctx, opts, buildInfo)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = a.Run(ctx); err != nil {
		a.Logger.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
