package netdata

// --- typed per-tool parameter structs ---
//
// The dispatcher fills these from tool-call arguments, applying the
// catalogue defaults for absent keys. Client methods apply the remaining
// string defaults so direct callers get sensible behavior too.

// NodesInput selects the API version for the nodes listing.
type NodesInput struct {
	APIVersion string // v2 or v3, default v2
}

// ContextsInput filters the contexts listing.
type ContextsInput struct {
	APIVersion    string // v2 or v3, default v2
	ScopeNodes    string // simple pattern, default *
	ScopeContexts string // simple pattern, default *
}

// SearchInput is the full-text context search. Query is required.
type SearchInput struct {
	Query      string
	APIVersion string // v2 or v3, default v2
	ScopeNodes string // simple pattern, default *
}

// DataInput is the time-series query. Chart and Context are v1 selectors;
// v2/v3 send Context as scope_contexts instead.
type DataInput struct {
	Chart      string
	Context    string
	After      int64 // negative = seconds ago, positive = unix timestamp
	Before     int64 // 0 = now
	Points     int   // 0 = all available
	Format     string
	Group      string
	Options    []string
	APIVersion string // v1, v2 or v3, default v1
}

// AllMetricsInput selects the latest-values snapshot format.
type AllMetricsInput struct {
	Format string // shell, prometheus, json; default json
	Filter string
}

// AlertsInput selects which alarms to list.
type AlertsInput struct {
	All    bool
	Active bool
}

// AlertLogInput pages the alarm log. After is a UNIQUEID, nil for all.
type AlertLogInput struct {
	After *int64
}

// ExecuteFunctionInput runs a collector function. Function is required.
type ExecuteFunctionInput struct {
	Function string
	Timeout  int // seconds, default 10
}

// HealthInput drives the health management API. All fields optional.
type HealthInput struct {
	Cmd     string // DISABLE ALL, SILENCE ALL, DISABLE, SILENCE, RESET, LIST
	Alarm   string
	Chart   string
	Context string
}

// BadgeInput renders a server-side SVG badge for a chart.
type BadgeInput struct {
	Chart      string
	Dimension  string
	After      int64
	Before     int64
	Label      string
	Units      string
	LabelColor string
	ValueColor string
}
