// Command healthcheck probes the spa-host health endpoint and exits with a
// non-zero status when the host is not serving. It exists so container
// images without curl or wget can still declare a HEALTHCHECK:
//
//	HEALTHCHECK CMD ["/healthcheck"]
//
// The target address is taken from SERVER_ADDRESS, matching the server's own
// configuration, and defaults to 0.0.0.0:8080.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-spa-host/internal/logger"
)

const (
	defaultAddress = "0.0.0.0:8080"
	probeTimeout   = 5 * time.Second
	healthRoute    = "/api/healthz"
)

func main() {
	log := logger.NewLogger("healthcheck")

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}

	client := resty.New().
		SetBaseURL("http://" + address).
		SetTimeout(probeTimeout)

	resp, err := client.R().Get(healthRoute)
	if err != nil {
		log.Error().Err(err).Str("address", address).Msg("health probe failed")
		os.Exit(1)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("host is unhealthy")
		os.Exit(1)
	}

	log.Info().Str("address", address).Msg("host is healthy")
}
