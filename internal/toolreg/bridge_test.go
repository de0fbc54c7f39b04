package toolreg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
)

// catalogueNames is the full tool set in catalogue order.
var catalogueNames = []string{
	"netdata_get_info",
	"netdata_get_nodes",
	"netdata_get_contexts",
	"netdata_search_contexts",
	"netdata_get_data",
	"netdata_get_all_metrics",
	"netdata_get_alerts",
	"netdata_get_alert_log",
	"netdata_get_alert_variables",
	"netdata_get_functions",
	"netdata_execute_function",
	"netdata_manage_health",
	"netdata_get_charts",
	"netdata_get_chart",
}

// newTestCatalogue wires the full catalogue against a stub agent and
// returns the registry plus the last captured request.
func newTestCatalogue(t *testing.T, status int, body string) (*Registry, *http.Request) {
	t.Helper()
	captured := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(r.Context())
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := netdata.NewClient(netdata.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	t.Cleanup(client.Close)

	r := NewRegistry()
	RegisterAll(r, client)
	return r, captured
}

func TestRegisterAll_Catalogue(t *testing.T) {
	r, _ := newTestCatalogue(t, http.StatusOK, `{}`)

	if got := r.Names(); !reflect.DeepEqual(got, catalogueNames) {
		t.Errorf("catalogue: got %v, want %v", got, catalogueNames)
	}

	seen := make(map[string]bool)
	for _, tool := range r.List() {
		if seen[tool.Name()] {
			t.Errorf("duplicate tool name %q", tool.Name())
		}
		seen[tool.Name()] = true

		if tool.Description() == "" {
			t.Errorf("tool %q has no description", tool.Name())
		}
		schema := tool.InputSchema()
		if schema == nil {
			t.Fatalf("tool %q has no input schema", tool.Name())
		}
		if schema.Type != "object" {
			t.Errorf("tool %q schema type: got %q, want object", tool.Name(), schema.Type)
		}
	}
}

func TestSchemas_RequiredFieldsDeclared(t *testing.T) {
	r, _ := newTestCatalogue(t, http.StatusOK, `{}`)

	want := map[string][]string{
		"netdata_search_contexts":     {"query"},
		"netdata_get_alert_variables": {"chart"},
		"netdata_execute_function":    {"function"},
		"netdata_get_chart":           {"chart"},
	}
	for _, tool := range r.List() {
		required := tool.InputSchema().Required
		if exp, ok := want[tool.Name()]; ok {
			if !reflect.DeepEqual(required, exp) {
				t.Errorf("tool %q required: got %v, want %v", tool.Name(), required, exp)
			}
		} else if len(required) != 0 {
			t.Errorf("tool %q unexpectedly declares required fields: %v", tool.Name(), required)
		}
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	r, _ := newTestCatalogue(t, http.StatusOK, `{}`)

	_, err := r.Execute(context.Background(), "netdata_get_badge", nil)
	if err == nil {
		t.Fatal("dispatch of unknown tool returned nil error")
	}
	if !strings.Contains(err.Error(), "unknown tool") {
		t.Errorf("error %q should mention unknown tool", err.Error())
	}
}

func TestDispatch_MissingRequiredArgument(t *testing.T) {
	tests := []struct {
		tool string
		key  string
	}{
		{"netdata_search_contexts", "query"},
		{"netdata_get_alert_variables", "chart"},
		{"netdata_execute_function", "function"},
		{"netdata_get_chart", "chart"},
	}
	for _, tc := range tests {
		t.Run(tc.tool, func(t *testing.T) {
			r, _ := newTestCatalogue(t, http.StatusOK, `{}`)

			_, err := r.Execute(context.Background(), tc.tool, map[string]any{})
			if err == nil {
				t.Fatal("dispatch without required argument returned nil error")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("error %q should name missing argument %q", err.Error(), tc.key)
			}
		})
	}
}

func TestDispatch_PrettyJSON(t *testing.T) {
	r, _ := newTestCatalogue(t, http.StatusOK, `{"version":"1.0.0","hostname":"test-host"}`)

	out, err := r.Execute(context.Background(), "netdata_get_info", map[string]any{})
	if err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["version"] != "1.0.0" || decoded["hostname"] != "test-host" {
		t.Errorf("decoded output: got %v", decoded)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("output should be indented, got %q", out)
	}
}

func TestDispatch_DataVersionBranch(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		wantPath   string
		wantParam  string
		wantValue  string
		omitParams []string
	}{
		{
			name:       "v1 sends context",
			args:       map[string]any{"context": "system.cpu", "after": float64(-600), "before": float64(0), "format": "json", "api_version": "v1"},
			wantPath:   "/api/v1/data",
			wantParam:  "context",
			wantValue:  "system.cpu",
			omitParams: []string{"scope_contexts"},
		},
		{
			name:       "v2 sends scope_contexts",
			args:       map[string]any{"context": "system.cpu", "after": float64(-600), "before": float64(0), "format": "json", "api_version": "v2"},
			wantPath:   "/api/v2/data",
			wantParam:  "scope_contexts",
			wantValue:  "system.cpu",
			omitParams: []string{"context", "chart"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, req := newTestCatalogue(t, http.StatusOK, `{}`)

			if _, err := r.Execute(context.Background(), "netdata_get_data", tc.args); err != nil {
				t.Fatalf("dispatch returned error: %v", err)
			}
			if req.URL.Path != tc.wantPath {
				t.Errorf("path: got %q, want %q", req.URL.Path, tc.wantPath)
			}
			q := req.URL.Query()
			if got := q.Get(tc.wantParam); got != tc.wantValue {
				t.Errorf("param %s: got %q, want %q", tc.wantParam, got, tc.wantValue)
			}
			for _, k := range tc.omitParams {
				if _, present := q[k]; present {
					t.Errorf("param %s should be omitted", k)
				}
			}
		})
	}
}

func TestDispatch_DefaultsApplied(t *testing.T) {
	t.Run("nodes default api version", func(t *testing.T) {
		r, req := newTestCatalogue(t, http.StatusOK, `{}`)
		if _, err := r.Execute(context.Background(), "netdata_get_nodes", map[string]any{}); err != nil {
			t.Fatalf("dispatch returned error: %v", err)
		}
		if req.URL.Path != "/api/v2/nodes" {
			t.Errorf("path: got %q, want /api/v2/nodes", req.URL.Path)
		}
	})

	t.Run("data defaults", func(t *testing.T) {
		r, req := newTestCatalogue(t, http.StatusOK, `{}`)
		if _, err := r.Execute(context.Background(), "netdata_get_data", map[string]any{"context": "system.cpu"}); err != nil {
			t.Fatalf("dispatch returned error: %v", err)
		}
		q := req.URL.Query()
		for k, want := range map[string]string{
			"after":  "-600",
			"before": "0",
			"points": "0",
			"format": "json",
			"group":  "average",
		} {
			if got := q.Get(k); got != want {
				t.Errorf("param %s: got %q, want %q", k, got, want)
			}
		}
	})

	t.Run("contexts default scopes", func(t *testing.T) {
		r, req := newTestCatalogue(t, http.StatusOK, `{}`)
		if _, err := r.Execute(context.Background(), "netdata_get_contexts", map[string]any{}); err != nil {
			t.Fatalf("dispatch returned error: %v", err)
		}
		q := req.URL.Query()
		if got := q.Get("scope_nodes"); got != "*" {
			t.Errorf("scope_nodes: got %q, want *", got)
		}
		if got := q.Get("scope_contexts"); got != "*" {
			t.Errorf("scope_contexts: got %q, want *", got)
		}
	})
}

func TestDispatch_BooleanArguments(t *testing.T) {
	r, req := newTestCatalogue(t, http.StatusOK, `{}`)

	if _, err := r.Execute(context.Background(), "netdata_get_alerts", map[string]any{"all": true}); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	q := req.URL.Query()
	if got := q.Get("all"); got != "true" {
		t.Errorf("all: got %q, want true", got)
	}
	if _, present := q["active"]; present {
		t.Error("active should be omitted when false")
	}
}

func TestDispatch_TransportFailureBecomesText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := netdata.NewClient(netdata.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	t.Cleanup(client.Close)
	r := NewRegistry()
	RegisterAll(r, client)

	out, err := r.Execute(context.Background(), "netdata_get_info", map[string]any{})
	if err != nil {
		t.Fatalf("transport failure must not surface as a dispatch error, got: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["error"]; !ok {
		t.Errorf("output missing error key: %v", decoded)
	}
}

func TestDispatch_ExecuteFunctionArguments(t *testing.T) {
	r, req := newTestCatalogue(t, http.StatusOK, `{}`)

	args := map[string]any{"function": "processes", "timeout": float64(30)}
	if _, err := r.Execute(context.Background(), "netdata_execute_function", args); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	q := req.URL.Query()
	if got := q.Get("function"); got != "processes" {
		t.Errorf("function: got %q", got)
	}
	if got := q.Get("timeout"); got != "30" {
		t.Errorf("timeout: got %q, want 30", got)
	}
}
