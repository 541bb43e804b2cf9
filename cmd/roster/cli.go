package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Records   roster.RecordService
	Responder *chat.Responder
	Converter roster.Converter

	// DataUnavailable is set when the record data file could not be loaded.
	DataUnavailable bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool    `short:"v" help:"Enable debug logging"`
	Data      string  `default:"data.csv" env:"ROSTER_DATA" type:"path" help:"Path to the record data file"`
	Provider  string  `default:"xai" enum:"xai,gemini" env:"ROSTER_PROVIDER" help:"Model provider (xai, gemini)"`
	Model     string  `env:"ROSTER_MODEL" help:"Model identifier (provider default when empty)"`
	BaseURL   string  `name:"base-url" env:"ROSTER_BASE_URL" help:"Chat-completion API base URL for the xai provider"`
	RateLimit float64 `name:"rate-limit" default:"2" help:"Model calls per second, 0 disables limiting"`

	Serve   ServeCmd   `cmd:"" help:"Serve the web chat interface"`
	Ask     AskCmd     `cmd:"" help:"Ask a single question"`
	Chat    ChatCmd    `cmd:"" help:"Chat in the terminal"`
	Records RecordsCmd `cmd:"" help:"List the loaded records"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string        `default:":8080" env:"ROSTER_ADDR" help:"Address to listen on"`
	SessionTTL time.Duration `name:"session-ttl" default:"12h" help:"Idle time after which a chat session ends"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask"`
	Tone     string   `short:"t" default:"Witty" help:"Answer tone (Witty, Formal, Casual)"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Tone string `short:"t" default:"Witty" help:"Initial answer tone (Witty, Formal, Casual)"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Name  string `short:"n" help:"Show only records with this exact person name"`
	Limit int    `short:"l" help:"Maximum number of records to show"`
}
