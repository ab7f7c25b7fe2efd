/*
Package monitoring provides metrics collection for the key points service.

# Overview

Metrics live on a private Prometheus registry so each server (and each test)
owns its collectors.

# Features

- HTTP request metrics (latency, throughput, response size)
- Widget renders by view and entry point
- Fallback notices and skipped automatic appends
- Store size and uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
