// Command questpath searches routes on terrain grids and plans multi-agent
// missions.
//
// Commands:
//  1. search  – one route search on a grid file
//  2. plan    – plan a YAML mission file
//  3. inspect – summarize a grid file
//  4. species – list the species cost tables
//  5. serve   – run the REST and WebSocket API
//  6. mcp     – run the MCP tool server on stdio
//
// Every flag can also be set from a QUESTPATH_* environment variable, and a
// .env file in the working directory is loaded first.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "questpath"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
