// Command snapdemo scrolls a sectioned document in the terminal with the
// snapping scroll stack.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/snapscroll/internal/demo"
	"github.com/go-drift/snapscroll/internal/telemetry"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/errors"
)

func main() {
	configPath := flag.String("config", "", "path to a .yaml or .toml scroll config")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snapdemo [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx := context.Background()
	exporter, err := telemetry.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tracing disabled: %v\n", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_ = exporter.Shutdown(shutdownCtx)
	}()

	m := demo.New(cfg, nil)
	errors.SetHandler(m)
	defer errors.SetHandler(nil)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
