// Package server assembles the key points HTTP service.
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger and metrics
//  3. Seed the store from data files and widget settings
//  4. Setup middleware (recovery, request ids, logging, metrics, CORS, rate limit)
//  5. Register routes, optionally behind gzip compression
//  6. Serve until Close
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
