package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
	"github.com/anatolykoptev/netdata-mcp/internal/toolreg"
)

func main() {
	// Load .env
	loadDotenv(".env")

	cfg := netdata.Init()
	client := netdata.NewClient(cfg)

	registry := toolreg.NewRegistry()
	toolreg.RegisterAll(registry, client)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		runServe(cfg, client, registry)
	case "check":
		runCheck(client)
	case "badge":
		runBadge(client)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `netdata-mcp - Netdata MCP adapter

Usage:
  netdata-mcp serve [--port PORT] [--stdio]      MCP server (HTTP or stdio)
  netdata-mcp check                              One-shot agent reachability check
  netdata-mcp badge --chart ID [--out FILE]      Fetch an SVG badge for a chart
`)
}

// hasFlag checks if a flag exists in os.Args.
func hasFlag(flag string) bool {
	for _, a := range os.Args[2:] {
		if a == flag {
			return true
		}
	}
	return false
}

// getFlagValue returns the value after a flag (--flag value).
func getFlagValue(flag string) string {
	args := os.Args[2:]
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
		// Handle --flag=value
		if strings.HasPrefix(a, flag+"=") {
			return strings.TrimPrefix(a, flag+"=")
		}
	}
	return ""
}
