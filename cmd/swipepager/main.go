package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"swipepager/internal/config"
	"swipepager/internal/eventbus"
	"swipepager/internal/ui"
)

// flags holds the command line overrides; unset values leave the config alone
type flags struct {
	configPath string
	logPath    string
	cutoff     float64
	page       int
	set        map[string]bool
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("swipepager", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to the config file")
	fs.StringVar(&f.configPath, "c", "", "Path to the config file (shorthand)")
	fs.StringVar(&f.logPath, "log", "", "Log file (overrides log_file)")
	fs.Float64Var(&f.cutoff, "cutoff", 0, "Menu width as a fraction of the pager width (overrides pager.delta_cutoff)")
	fs.IntVar(&f.page, "page", 0, "Start page: 0 side, 1 center, 2 menu (overrides pager.start_page)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply copies explicitly set flags over cfg and revalidates it
func (f *flags) apply(cfg *config.Config) error {
	if f.set["log"] {
		cfg.LogFile = f.logPath
	}
	if f.set["cutoff"] {
		cfg.Pager.DeltaCutoff = f.cutoff
	}
	if f.set["page"] {
		cfg.Pager.StartPage = f.page
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	loaded := err == nil
	if err != nil {
		log.Printf("Error loading config %s: %v", configSvc.Path(), err)
		// Use default config and leave the broken file alone
		cfg = config.DefaultConfig()
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
	} else {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Remember the committed page so the next run starts there
	pageChanged := false
	lastPage := cfg.Pager.StartPage
	bus.Subscribe(eventbus.EventIndexCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IndexCommittedEvent); ok && event.Changed() {
			lastPage = int(event.Current)
			pageChanged = true
		}
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	if loaded && cfg.UI.RememberPage && pageChanged {
		// flags and environment overrides apply to this run only
		if err := configSvc.SaveStartPage(lastPage); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
}
