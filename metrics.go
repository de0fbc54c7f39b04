package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netdata_mcp_tool_calls_total",
		Help: "Total tool calls dispatched, by tool name.",
	}, []string{"tool"})

	toolErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netdata_mcp_tool_errors_total",
		Help: "Tool calls that produced an error result, by tool name.",
	}, []string{"tool"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "netdata_mcp_tool_duration_seconds",
		Help:    "Tool call duration, by tool name.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})
)
