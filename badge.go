package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
)

// runBadge fetches an SVG badge for a chart and writes it to a file.
// The badge result is a tagged variant: SVG bytes or an error text, never
// both, so nothing is written on failure.
func runBadge(client *netdata.Client) {
	defer client.Close()

	chart := getFlagValue("--chart")
	if chart == "" {
		fmt.Fprintln(os.Stderr, "badge: --chart is required")
		os.Exit(1)
	}
	out := getFlagValue("--out")
	if out == "" {
		out = "badge.svg"
	}

	result := client.Badge(context.Background(), netdata.BadgeInput{
		Chart:     chart,
		Dimension: getFlagValue("--dimension"),
	})
	if result.IsError() {
		fmt.Fprintf(os.Stderr, "badge failed: %s\n", result.Err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, result.SVG, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "badge: write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(result.SVG))
}
