package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/handler/http"
	"github.com/MKhiriev/go-spa-host/internal/logger"
	"github.com/MKhiriev/go-spa-host/internal/resolver"
	"github.com/MKhiriev/go-spa-host/internal/server"
	"github.com/MKhiriev/go-spa-host/internal/service"
	"github.com/MKhiriev/go-spa-host/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("spa-host")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// resolve the environment template before anything listens: a container
	// that cannot produce its artifact must die visibly, not serve stale or
	// empty configuration
	res, err := resolver.NewResolver(cfg.Resolver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating resolver")
	}

	bindings := resolver.BindingsFromEnviron(os.Environ())
	if err := res.ResolveFile(cfg.Resolver.TemplatePath, cfg.Resolver.OutputPath, bindings); err != nil {
		log.Fatal().Err(err).Msg("error resolving environment template")
	}

	services, err := service.NewServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := http.NewHandler(services, cfg.Static, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
