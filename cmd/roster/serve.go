package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	rosterhttp "github.com/fwojciec/roster/http"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may finish on exit.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := rosterhttp.NewServer()
	s.Addr = c.Addr
	s.Responder = deps.Responder
	s.Records = deps.Records
	s.Converter = deps.Converter
	s.Logger = deps.Logger
	s.DataUnavailable = deps.DataUnavailable
	s.Sessions = rosterhttp.NewSessionStore(c.SessionTTL)

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Close(shutdownCtx)
	})
	return g.Wait()
}
