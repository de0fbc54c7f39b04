// Package netdata provides a thin client for the Netdata agent HTTP API.
package netdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"
)

// Client talks to a single Netdata agent. Transport-level failures never
// escape as errors: they come back as a payload carrying an "error" key
// (and "status_code" when a response was received), so every tool call can
// produce a textual result. The only error returns are malformed JSON
// bodies, handled at the dispatch boundary.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client from config. The per-request timeout is
// enforced by a failsafe timeout policy on the transport; no retries,
// one request per call.
func NewClient(cfg Config) *Client {
	to := cfg.Timeout
	if to <= 0 {
		to = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Transport: failsafehttp.NewRoundTripper(nil, timeout.New[*http.Response](to)),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// BaseURL returns the normalized agent URL (no trailing slash).
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe on a never-used client and safe to
// call more than once.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// errorPayload is the error-shaped result value for transport failures.
func errorPayload(msg string, status int) map[string]any {
	p := map[string]any{"error": msg}
	if status > 0 {
		p["status_code"] = status
	}
	return p
}

// request issues one GET to {base}/api/{version}/{endpoint} and decodes the
// JSON body. Connection failures and non-2xx statuses are returned as
// error payloads, not errors.
func (c *Client) request(ctx context.Context, version, endpoint string, params url.Values) (any, error) {
	reqURL := fmt.Sprintf("%s/api/%s/%s", c.baseURL, version, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errorPayload(err.Error(), 0), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorPayload(fmt.Sprintf("netdata api status %d for %s", resp.StatusCode, endpoint), resp.StatusCode), nil
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return body, nil
}

// Info returns basic agent information (version, OS, collectors, alarms).
func (c *Client) Info(ctx context.Context) (any, error) {
	return c.request(ctx, "v1", "info", nil)
}

// Nodes lists all nodes hosted by this agent.
func (c *Client) Nodes(ctx context.Context, in NodesInput) (any, error) {
	ver := in.APIVersion
	if ver == "" {
		ver = "v2"
	}
	return c.request(ctx, ver, "nodes", nil)
}

// Contexts lists metric contexts across all nodes.
func (c *Client) Contexts(ctx context.Context, in ContextsInput) (any, error) {
	ver := in.APIVersion
	if ver == "" {
		ver = "v2"
	}
	params := url.Values{}
	params.Set("scope_nodes", defaultPattern(in.ScopeNodes))
	params.Set("scope_contexts", defaultPattern(in.ScopeContexts))
	return c.request(ctx, ver, "contexts", params)
}

// SearchContexts runs a full-text search over contexts.
func (c *Client) SearchContexts(ctx context.Context, in SearchInput) (any, error) {
	ver := in.APIVersion
	if ver == "" {
		ver = "v2"
	}
	params := url.Values{}
	params.Set("q", in.Query)
	params.Set("scope_nodes", defaultPattern(in.ScopeNodes))
	return c.request(ctx, ver, "q", params)
}

// Data queries time-series data for a chart or context. Under v1 the chart
// or context is sent directly; v2/v3 carry the context as scope_contexts.
func (c *Client) Data(ctx context.Context, in DataInput) (any, error) {
	ver := in.APIVersion
	if ver == "" {
		ver = "v1"
	}
	if in.After == 0 {
		in.After = -600
	}
	format := in.Format
	if format == "" {
		format = "json"
	}
	group := in.Group
	if group == "" {
		group = "average"
	}

	params := url.Values{}
	params.Set("after", strconv.FormatInt(in.After, 10))
	params.Set("before", strconv.FormatInt(in.Before, 10))
	params.Set("points", strconv.Itoa(in.Points))
	params.Set("format", format)
	params.Set("group", group)

	if ver == "v1" {
		if in.Chart != "" {
			params.Set("chart", in.Chart)
		} else if in.Context != "" {
			params.Set("context", in.Context)
		}
	} else if in.Context != "" {
		params.Set("scope_contexts", in.Context)
	}

	if len(in.Options) > 0 {
		params.Set("options", strings.Join(in.Options, ","))
	}

	return c.request(ctx, ver, "data", params)
}

// AllMetrics returns the latest value of every metric.
func (c *Client) AllMetrics(ctx context.Context, in AllMetricsInput) (any, error) {
	format := in.Format
	if format == "" {
		format = "json"
	}
	params := url.Values{}
	params.Set("format", format)
	params.Set("names", "yes")
	params.Set("timestamps", "yes")
	if in.Filter != "" {
		params.Set("filter", in.Filter)
	}
	return c.request(ctx, "v1", "allmetrics", params)
}

// Alerts lists active or raised alarms.
func (c *Client) Alerts(ctx context.Context, in AlertsInput) (any, error) {
	params := url.Values{}
	if in.All {
		params.Set("all", "true")
	}
	if in.Active {
		params.Set("active", "true")
	}
	return c.request(ctx, "v1", "alarms", params)
}

// AlertLog returns alarm log entries, optionally after a UNIQUEID.
func (c *Client) AlertLog(ctx context.Context, in AlertLogInput) (any, error) {
	params := url.Values{}
	if in.After != nil {
		params.Set("after", strconv.FormatInt(*in.After, 10))
	}
	return c.request(ctx, "v1", "alarm_log", params)
}

// AlertVariables returns the variables available for alarm configuration
// on a chart.
func (c *Client) AlertVariables(ctx context.Context, chart string) (any, error) {
	params := url.Values{}
	params.Set("chart", chart)
	return c.request(ctx, "v1", "alarm_variables", params)
}

// Functions lists registered collector functions.
func (c *Client) Functions(ctx context.Context) (any, error) {
	return c.request(ctx, "v1", "functions", nil)
}

// ExecuteFunction runs a collector function synchronously.
func (c *Client) ExecuteFunction(ctx context.Context, in ExecuteFunctionInput) (any, error) {
	to := in.Timeout
	if to <= 0 {
		to = 10
	}
	params := url.Values{}
	params.Set("function", in.Function)
	params.Set("timeout", strconv.Itoa(to))
	return c.request(ctx, "v1", "function", params)
}

// ManageHealth drives runtime health management (disable, silence, reset).
// Absent fields are omitted from the query entirely.
func (c *Client) ManageHealth(ctx context.Context, in HealthInput) (any, error) {
	params := url.Values{}
	if in.Cmd != "" {
		params.Set("cmd", in.Cmd)
	}
	if in.Alarm != "" {
		params.Set("alarm", in.Alarm)
	}
	if in.Chart != "" {
		params.Set("chart", in.Chart)
	}
	if in.Context != "" {
		params.Set("context", in.Context)
	}
	return c.request(ctx, "v1", "manage/health", params)
}

// Charts returns the legacy v1 summary of all charts.
func (c *Client) Charts(ctx context.Context) (any, error) {
	return c.request(ctx, "v1", "charts", nil)
}

// Chart returns legacy v1 detail for a single chart.
func (c *Client) Chart(ctx context.Context, chart string) (any, error) {
	params := url.Values{}
	params.Set("chart", chart)
	return c.request(ctx, "v1", "chart", params)
}

// BadgeResult is the tagged outcome of a badge request: SVG bytes on
// success, the transport error text on failure. Callers must check Err;
// the two arms are never both set.
type BadgeResult struct {
	SVG []byte
	Err string
}

// IsError reports whether the badge request failed.
func (r BadgeResult) IsError() bool { return r.Err != "" }

// Text collapses the result to the boundary's text shape.
func (r BadgeResult) Text() string {
	if r.Err != "" {
		return r.Err
	}
	return string(r.SVG)
}

// Badge renders a server-side SVG badge. This endpoint bypasses the JSON
// request path: the body is raw SVG.
func (c *Client) Badge(ctx context.Context, in BadgeInput) BadgeResult {
	if in.After == 0 {
		in.After = -600
	}
	params := url.Values{}
	params.Set("chart", in.Chart)
	params.Set("after", strconv.FormatInt(in.After, 10))
	params.Set("before", strconv.FormatInt(in.Before, 10))
	if in.Dimension != "" {
		params.Set("dimension", in.Dimension)
	}
	if in.Label != "" {
		params.Set("label", in.Label)
	}
	if in.Units != "" {
		params.Set("units", in.Units)
	}
	if in.LabelColor != "" {
		params.Set("label_color", in.LabelColor)
	}
	if in.ValueColor != "" {
		params.Set("value_color", in.ValueColor)
	}

	reqURL := c.baseURL + "/api/v1/badge.svg?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return BadgeResult{Err: err.Error()}
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return BadgeResult{Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return BadgeResult{Err: fmt.Sprintf("netdata api status %d for badge.svg", resp.StatusCode)}
	}

	svg, err := io.ReadAll(resp.Body)
	if err != nil {
		return BadgeResult{Err: err.Error()}
	}
	return BadgeResult{SVG: svg}
}

func defaultPattern(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
