package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
)

// runCheck fetches agent info once and prints it. Exits non-zero when the
// agent is unreachable or the payload is error-shaped.
func runCheck(client *netdata.Client) {
	defer client.Close()

	result, err := client.Info(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		os.Exit(1)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))

	if m, ok := result.(map[string]any); ok {
		if _, failed := m["error"]; failed {
			os.Exit(1)
		}
	}
}
