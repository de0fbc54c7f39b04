package toolreg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
)

// RegisterAll registers every Netdata client operation as a catalogue tool.
// Registration order is the catalogue order.
func RegisterAll(r *Registry, client *netdata.Client) {
	r.Register(&infoTool{client: client})
	r.Register(&nodesTool{client: client})
	r.Register(&contextsTool{client: client})
	r.Register(&searchContextsTool{client: client})
	r.Register(&dataTool{client: client})
	r.Register(&allMetricsTool{client: client})
	r.Register(&alertsTool{client: client})
	r.Register(&alertLogTool{client: client})
	r.Register(&alertVariablesTool{client: client})
	r.Register(&functionsTool{client: client})
	r.Register(&executeFunctionTool{client: client})
	r.Register(&manageHealthTool{client: client})
	r.Register(&chartsTool{client: client})
	r.Register(&chartTool{client: client})
}

// helpers for parsing map[string]any args into typed values

func getString(args map[string]any, key, def string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	return s, nil
}

func getInt(args map[string]any, key string, def int) int {
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return def
}

func getInt64(args map[string]any, key string, def int64) int64 {
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			return int64(n)
		case int:
			return int64(n)
		case int64:
			return n
		}
	}
	return def
}

func getInt64Ptr(args map[string]any, key string) *int64 {
	if _, ok := args[key]; !ok {
		return nil
	}
	n := getInt64(args, key, 0)
	return &n
}

func getBool(args map[string]any, key string) bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getStringSlice(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	case []string:
		return s
	}
	return nil
}

// marshalResult pretty-prints a client result. Everything the client
// returns decodes from JSON, so a marshal failure here is a dispatch-level
// error for the boundary adapter.
func marshalResult(result any) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize result: %w", err)
	}
	return string(data), nil
}

// --- netdata_get_info ---

type infoTool struct{ client *netdata.Client }

func (t *infoTool) Name() string { return "netdata_get_info" }
func (t *infoTool) Description() string {
	return "Get basic information about the Netdata agent including version, OS, collectors, and alarm counts"
}
func (t *infoTool) InputSchema() *jsonschema.Schema { return infoSchema }
func (t *infoTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	result, err := t.client.Info(ctx)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_nodes ---

type nodesTool struct{ client *netdata.Client }

func (t *nodesTool) Name() string { return "netdata_get_nodes" }
func (t *nodesTool) Description() string {
	return "Get list of all nodes hosted by this Netdata Agent with their status and information"
}
func (t *nodesTool) InputSchema() *jsonschema.Schema { return nodesSchema }
func (t *nodesTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.Nodes(ctx, netdata.NodesInput{
		APIVersion: getString(args, "api_version", "v2"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_contexts ---

type contextsTool struct{ client *netdata.Client }

func (t *contextsTool) Name() string { return "netdata_get_contexts" }
func (t *contextsTool) Description() string {
	return "Get list of all metric contexts across all nodes with their metadata"
}
func (t *contextsTool) InputSchema() *jsonschema.Schema { return contextsSchema }
func (t *contextsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.Contexts(ctx, netdata.ContextsInput{
		APIVersion:    getString(args, "api_version", "v2"),
		ScopeNodes:    getString(args, "scope_nodes", "*"),
		ScopeContexts: getString(args, "scope_contexts", "*"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_search_contexts ---

type searchContextsTool struct{ client *netdata.Client }

func (t *searchContextsTool) Name() string { return "netdata_search_contexts" }
func (t *searchContextsTool) Description() string {
	return "Search for contexts matching a query string across all nodes"
}
func (t *searchContextsTool) InputSchema() *jsonschema.Schema { return searchContextsSchema }
func (t *searchContextsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, err := requireString(args, "query")
	if err != nil {
		return "", err
	}
	result, err := t.client.SearchContexts(ctx, netdata.SearchInput{
		Query:      query,
		APIVersion: getString(args, "api_version", "v2"),
		ScopeNodes: getString(args, "scope_nodes", "*"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_data ---

type dataTool struct{ client *netdata.Client }

func (t *dataTool) Name() string { return "netdata_get_data" }
func (t *dataTool) Description() string {
	return "Query metric data for a chart or context with time-series data for all dimensions"
}
func (t *dataTool) InputSchema() *jsonschema.Schema { return dataSchema }
func (t *dataTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.Data(ctx, netdata.DataInput{
		Chart:      getString(args, "chart", ""),
		Context:    getString(args, "context", ""),
		After:      getInt64(args, "after", -600),
		Before:     getInt64(args, "before", 0),
		Points:     getInt(args, "points", 0),
		Format:     getString(args, "format", "json"),
		Group:      getString(args, "group", "average"),
		Options:    getStringSlice(args, "options"),
		APIVersion: getString(args, "api_version", "v1"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_all_metrics ---

type allMetricsTool struct{ client *netdata.Client }

func (t *allMetricsTool) Name() string { return "netdata_get_all_metrics" }
func (t *allMetricsTool) Description() string {
	return "Get latest values for all metrics across all charts"
}
func (t *allMetricsTool) InputSchema() *jsonschema.Schema { return allMetricsSchema }
func (t *allMetricsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.AllMetrics(ctx, netdata.AllMetricsInput{
		Format: getString(args, "format", "json"),
		Filter: getString(args, "filter", ""),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_alerts ---

type alertsTool struct{ client *netdata.Client }

func (t *alertsTool) Name() string { return "netdata_get_alerts" }
func (t *alertsTool) Description() string {
	return "Get list of active or raised alarms with their current state"
}
func (t *alertsTool) InputSchema() *jsonschema.Schema { return alertsSchema }
func (t *alertsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.Alerts(ctx, netdata.AlertsInput{
		All:    getBool(args, "all"),
		Active: getBool(args, "active"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_alert_log ---

type alertLogTool struct{ client *netdata.Client }

func (t *alertLogTool) Name() string { return "netdata_get_alert_log" }
func (t *alertLogTool) Description() string {
	return "Get alarm log entries with historical information on raised and cleared alarms"
}
func (t *alertLogTool) InputSchema() *jsonschema.Schema { return alertLogSchema }
func (t *alertLogTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.AlertLog(ctx, netdata.AlertLogInput{
		After: getInt64Ptr(args, "after"),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_alert_variables ---

type alertVariablesTool struct{ client *netdata.Client }

func (t *alertVariablesTool) Name() string { return "netdata_get_alert_variables" }
func (t *alertVariablesTool) Description() string {
	return "Get variables available for configuring alarms for a specific chart"
}
func (t *alertVariablesTool) InputSchema() *jsonschema.Schema { return alertVariablesSchema }
func (t *alertVariablesTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	chart, err := requireString(args, "chart")
	if err != nil {
		return "", err
	}
	result, err := t.client.AlertVariables(ctx, chart)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_functions ---

type functionsTool struct{ client *netdata.Client }

func (t *functionsTool) Name() string { return "netdata_get_functions" }
func (t *functionsTool) Description() string {
	return "Get list of all registered collector functions that can be executed on demand"
}
func (t *functionsTool) InputSchema() *jsonschema.Schema { return functionsSchema }
func (t *functionsTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	result, err := t.client.Functions(ctx)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_execute_function ---

type executeFunctionTool struct{ client *netdata.Client }

func (t *executeFunctionTool) Name() string { return "netdata_execute_function" }
func (t *executeFunctionTool) Description() string {
	return "Execute a collector function on demand"
}
func (t *executeFunctionTool) InputSchema() *jsonschema.Schema { return executeFunctionSchema }
func (t *executeFunctionTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	function, err := requireString(args, "function")
	if err != nil {
		return "", err
	}
	result, err := t.client.ExecuteFunction(ctx, netdata.ExecuteFunctionInput{
		Function: function,
		Timeout:  getInt(args, "timeout", 10),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_manage_health ---

type manageHealthTool struct{ client *netdata.Client }

func (t *manageHealthTool) Name() string { return "netdata_manage_health" }
func (t *manageHealthTool) Description() string {
	return "Manage health checks and notifications at runtime (disable, silence, reset)"
}
func (t *manageHealthTool) InputSchema() *jsonschema.Schema { return manageHealthSchema }
func (t *manageHealthTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	result, err := t.client.ManageHealth(ctx, netdata.HealthInput{
		Cmd:     getString(args, "cmd", ""),
		Alarm:   getString(args, "alarm", ""),
		Chart:   getString(args, "chart", ""),
		Context: getString(args, "context", ""),
	})
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_charts ---

type chartsTool struct{ client *netdata.Client }

func (t *chartsTool) Name() string { return "netdata_get_charts" }
func (t *chartsTool) Description() string {
	return "Get summary of all charts (legacy v1 API)"
}
func (t *chartsTool) InputSchema() *jsonschema.Schema { return chartsSchema }
func (t *chartsTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	result, err := t.client.Charts(ctx)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// --- netdata_get_chart ---

type chartTool struct{ client *netdata.Client }

func (t *chartTool) Name() string { return "netdata_get_chart" }
func (t *chartTool) Description() string {
	return "Get detailed information about a specific chart (legacy v1 API)"
}
func (t *chartTool) InputSchema() *jsonschema.Schema { return chartSchema }
func (t *chartTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	chart, err := requireString(args, "chart")
	if err != nil {
		return "", err
	}
	result, err := t.client.Chart(ctx, chart)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}
