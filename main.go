package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/meddict/meddict-tui/internal/config"
	"github.com/meddict/meddict-tui/internal/dictionary"
	"github.com/meddict/meddict-tui/internal/session"
	"github.com/meddict/meddict-tui/views/lookup"
)

const Version = "0.1.0"

var (
	g = color.New(color.FgHiGreen)
	y = color.New(color.FgHiYellow)
	r = color.New(color.FgHiRed)
)

type model struct {
	lookupView lookup.Model
	width      int
	height     int
}

func initialModel(dict lookup.Dictionary, opts lookup.Options) model {
	return model{lookupView: lookup.New(dict, opts)}
}

func (m model) Init() tea.Cmd {
	return m.lookupView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	var cmd tea.Cmd
	m.lookupView, cmd = m.lookupView.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.lookupView.View()
}

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	configPath := flag.String("config", "", "path to the JSON config file (default ~/.meddict/config.json)")
	define := flag.String("define", "", "look up a single term and print the result")
	flag.Parse()

	if *showVersion {
		fmt.Printf("meddict v%s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		r.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		r.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := dictionary.NewLogger(cfg.LogPath)
	if err != nil {
		y.Printf("Warning: file logging disabled: %v\n", err)
		logger = dictionary.NopLogger()
	}
	level, _ := cfg.MinLogLevel()
	logger.SetMinLevel(level)
	defer logger.Close()

	client := dictionary.NewClient(cfg.API.BaseURL, cfg.API.Key,
		dictionary.WithLogger(logger),
		dictionary.WithTimeout(cfg.API.Timeout()),
	)

	if *define != "" {
		code := runDefine(client, *define, os.Stdout)
		logger.Close()
		os.Exit(code)
	}

	opts := lookup.Options{
		Session: session.Options{
			MinChars:        cfg.Autocomplete.MinChars,
			SuggestionLimit: cfg.Autocomplete.SuggestionLimit,
		},
		Timeout: cfg.API.Timeout(),
		Logger:  logger,
	}

	logger.Info("app", "starting", map[string]interface{}{"version": Version, "base_url": cfg.API.BaseURL})
	p := tea.NewProgram(initialModel(client, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("app", "program exited", err)
		r.Printf("Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}
