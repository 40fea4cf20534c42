// Command askbook is a floating terminal chat widget for the Physical AI &
// Humanoid Robotics book. It forwards questions to the book's answering
// service and renders the exchange as a scrolling transcript. Ctrl+T opens
// and closes the panel.
//
// Usage:
//
//	askbook [flags]
//
// Flags:
//
//	-endpoint string  Answering service base URL (default: built-in endpoint)
//	-light            Force the light theme
//	-dark             Force the dark theme
//	-debug string     Write debug logs to the given file
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/hnasir/askbook"
	"github.com/hnasir/askbook/backend"
	bt "github.com/hnasir/askbook/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "askbook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		endpoint = flag.String("endpoint", "", "Answering service base URL (default: built-in endpoint)")
		light    = flag.Bool("light", false, "Force the light theme")
		dark     = flag.Bool("dark", false, "Force the dark theme")
		debugLog = flag.String("debug", "", "Write debug logs to the given file")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := newLogger(*debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []backend.Option{backend.WithLogger(logger)}
	if *endpoint != "" {
		opts = append(opts, backend.WithBaseURL(*endpoint))
	}
	answerer := backend.New(opts...)

	// The ambient background preference is sampled once here and injected
	// as a value; it only selects colors, never behavior.
	theme := askbook.ThemeFor(useDark(*light, *dark))

	if err := bt.Run(ctx, bt.New(answerer, theme)); err != nil {
		return fmt.Errorf("widget: %w", err)
	}
	return nil
}

// useDark resolves the theme choice: explicit flags win, otherwise the
// terminal's background preference decides.
func useDark(light, dark bool) bool {
	switch {
	case light:
		return false
	case dark:
		return true
	default:
		return termenv.HasDarkBackground()
	}
}

func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
