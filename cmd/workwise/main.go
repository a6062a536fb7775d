package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"workwise/internal/app/console"
	"workwise/internal/client/session"
	"workwise/internal/platform/config"
	"workwise/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "workwise: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ephemeral := flag.Bool("ephemeral", false, "keep the session in memory only")
	start := flag.String("path", "", "screen to open first, e.g. /admin/employees")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadClient(ctx, nil)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr, Service: "workwise-cli"})

	var store session.Store = session.NewMemoryStore()
	if !*ephemeral {
		store = session.NewDiskStore(cfg.Home)
	}

	app := console.New(store, console.Options{
		APIURL:  cfg.APIURL,
		Timeout: cfg.Timeout,
		Log:     log,
	})
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		app.Prompt.ReadSecret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			return string(b), err
		}
	}
	return app.Run(ctx, *start)
}
