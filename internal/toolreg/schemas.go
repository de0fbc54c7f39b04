package toolreg

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Static input contracts for the Netdata tool catalogue. Defaults declared
// here are the ones the dispatcher applies for absent arguments.

func def(raw string) json.RawMessage { return json.RawMessage(raw) }

var apiVersionSchema = &jsonschema.Schema{
	Type:        "string",
	Description: "API version to use (v2 or v3)",
	Enum:        []any{"v2", "v3"},
	Default:     def(`"v2"`),
}

var infoSchema = &jsonschema.Schema{
	Type:       "object",
	Properties: map[string]*jsonschema.Schema{},
}

var nodesSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"api_version": apiVersionSchema,
	},
}

var contextsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"api_version": apiVersionSchema,
		"scope_nodes": {
			Type:        "string",
			Description: "Simple pattern to filter nodes",
			Default:     def(`"*"`),
		},
		"scope_contexts": {
			Type:        "string",
			Description: "Simple pattern to filter contexts",
			Default:     def(`"*"`),
		},
	},
}

var searchContextsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"query": {
			Type:        "string",
			Description: "Search query string",
		},
		"api_version": apiVersionSchema,
		"scope_nodes": {
			Type:        "string",
			Description: "Simple pattern to filter nodes",
			Default:     def(`"*"`),
		},
	},
	Required: []string{"query"},
}

var dataSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"chart": {
			Type:        "string",
			Description: "Chart ID to query (v1 API only)",
		},
		"context": {
			Type:        "string",
			Description: "Context to query (e.g., 'system.cpu', 'disk.io')",
		},
		"after": {
			Type:        "integer",
			Description: "Start time in seconds (negative for relative to now, positive for unix timestamp)",
			Default:     def(`-600`),
		},
		"before": {
			Type:        "integer",
			Description: "End time in seconds (0 for now, negative for relative, positive for unix timestamp)",
			Default:     def(`0`),
		},
		"points": {
			Type:        "integer",
			Description: "Number of points to return (0 for all available)",
			Default:     def(`0`),
		},
		"format": {
			Type:        "string",
			Description: "Response format",
			Enum:        []any{"json", "json2", "csv", "datatable", "jsonp"},
			Default:     def(`"json"`),
		},
		"group": {
			Type:        "string",
			Description: "Time aggregation function",
			Enum:        []any{"min", "max", "avg", "average", "median", "sum", "stddev"},
			Default:     def(`"average"`),
		},
		"options": {
			Type:        "array",
			Items:       &jsonschema.Schema{Type: "string"},
			Description: "Additional options (jsonwrap, raw, minify, etc.)",
		},
		"api_version": {
			Type:        "string",
			Description: "API version to use (v1, v2, or v3)",
			Enum:        []any{"v1", "v2", "v3"},
			Default:     def(`"v1"`),
		},
	},
}

var allMetricsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"format": {
			Type:        "string",
			Description: "Response format",
			Enum:        []any{"shell", "prometheus", "json"},
			Default:     def(`"json"`),
		},
		"filter": {
			Type:        "string",
			Description: "Filter pattern to apply to charts",
		},
	},
}

var alertsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"all": {
			Type:        "boolean",
			Description: "Return all enabled alarms",
			Default:     def(`false`),
		},
		"active": {
			Type:        "boolean",
			Description: "Return raised alarms in WARNING or CRITICAL state",
			Default:     def(`false`),
		},
	},
}

var alertLogSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"after": {
			Type:        "integer",
			Description: "Return events after this UNIQUEID",
		},
	},
}

var alertVariablesSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"chart": {
			Type:        "string",
			Description: "Chart ID",
		},
	},
	Required: []string{"chart"},
}

var functionsSchema = &jsonschema.Schema{
	Type:       "object",
	Properties: map[string]*jsonschema.Schema{},
}

var executeFunctionSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"function": {
			Type:        "string",
			Description: "Name of the function to execute",
		},
		"timeout": {
			Type:        "integer",
			Description: "Timeout in seconds",
			Default:     def(`10`),
		},
	},
	Required: []string{"function"},
}

var manageHealthSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"cmd": {
			Type:        "string",
			Description: "Command to execute",
			Enum:        []any{"DISABLE ALL", "SILENCE ALL", "DISABLE", "SILENCE", "RESET", "LIST"},
		},
		"alarm": {
			Type:        "string",
			Description: "Alarm name pattern",
		},
		"chart": {
			Type:        "string",
			Description: "Chart ID pattern",
		},
		"context": {
			Type:        "string",
			Description: "Context pattern",
		},
	},
}

var chartsSchema = &jsonschema.Schema{
	Type:       "object",
	Properties: map[string]*jsonschema.Schema{},
}

var chartSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"chart": {
			Type:        "string",
			Description: "Chart ID",
		},
	},
	Required: []string{"chart"},
}
