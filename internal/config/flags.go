package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-root static assets root directory
//	-index index file name served for "/" and SPA fallback
//	-template environment template path
//	-output generated artifact path
//	-unbound unbound placeholder policy ("keep" or "empty")
//	-escape value escape mode ("none" or "js")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-c/-config json file path with configs
//	-app-version application version string
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var staticRootDir string
	var indexFile string
	var templatePath string
	var outputPath string
	var unboundPolicy string
	var escapeMode string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var jsonConfigPath string
	var appVersion string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&staticRootDir, "root", "", "Static assets root directory")
	flag.StringVar(&indexFile, "index", "", "Index file name")
	flag.StringVar(&templatePath, "template", "", "Environment template path")
	flag.StringVar(&outputPath, "output", "", "Generated artifact path")
	flag.StringVar(&unboundPolicy, "unbound", "", "Unbound placeholder policy (keep, empty)")
	flag.StringVar(&escapeMode, "escape", "", "Value escape mode (none, js)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appVersion, "app-version", "", "Application version")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Static: Static{
			RootDir:   staticRootDir,
			IndexFile: indexFile,
		},
		Resolver: Resolver{
			TemplatePath:  templatePath,
			OutputPath:    outputPath,
			UnboundPolicy: unboundPolicy,
			EscapeMode:    escapeMode,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
