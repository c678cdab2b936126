package main

import (
	"github.com/MKhiriev/go-clip-keeper/internal/client"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	if err := app.Run(); err != nil {
		logger.NewLogger("go-clip-client").Fatal().Err(err).Msg("client run error")
	}
}
