// Package main is the entry point for the Gantt TUI application.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"github.com/hy4ri/gantt-tui/internal/logger"
	"github.com/hy4ri/gantt-tui/internal/source"
	"github.com/hy4ri/gantt-tui/internal/tui"
	"github.com/hy4ri/gantt-tui/internal/tui/components"
	"go.uber.org/zap"
)

const version = "0.1.0"

const helpText = `gantt-tui - Terminal Gantt chart for task files and Todoist

USAGE:
    gantt-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Use a config file other than the default
    --file PATH         Chart tasks from a YAML or JSON file
    --todoist           Chart dated tasks from Todoist
    --days              Start in the days view (default)
    --weeks             Start in the weeks view
    --months            Start in the months view
    --locale TAG        Label language (en, es)
    --print             Print the chart once and exit
    --width N           Width of the printed chart (default 120)
    --debug             Write debug entries to the log file
    --set-token         Read a Todoist API token from stdin and store it
    --logout            Remove the stored Todoist API token

CONFIGURATION:
    Config file: ~/.config/gantt-tui/config.yaml

    To get started:
    1. Run 'gantt-tui --init' to create a config template
    2. Point source.file at a task file, or set source.type to todoist
    3. Run 'gantt-tui'

TASK FILE:
    tasks:
      - id: design
        name: Design
        startDate: 2024-01-01
        endDate: 2024-01-05
      - id: wireframes
        parentId: design
        name: Wireframes
        startDate: 2024-01-02
        endDate: 2024-01-03

KEYBINDINGS:
    Tasks:
        j/k         Move down/up
        g/G         First/last task
        y           Copy task name and dates

    Timeline:
        h/l         Scroll one unit
        H/L         Scroll one page
        t           Jump to today

    View:
        d/w/m       Days, weeks, months
        Tab         Next view

    Other:
        r           Reload tasks
        ?           Show help
        q           Quit

For more information, see: https://github.com/hy4ri/gantt-tui
`

const configTemplate = `# Gantt TUI Configuration
# Location: ~/.config/gantt-tui/config.yaml

source:
  # "file" or "todoist"
  type: file

  # Task file (YAML or JSON) used when type is "file"
  file: ""

  # Todoist settings, used when type is "todoist".
  # The token can also come from TODOIST_TOKEN or 'gantt-tui --set-token'.
  # api_token: ""
  # filter: "#Work"
  # project_id: ""

ui:
  # days, weeks or months
  default_view: days
  # Label language: en or es
  locale: en
  # Terminal cells per time unit and for the task name column
  unit_width: 6
  name_width: 24
  show_hints: true

notify:
  # Desktop notification for tasks that start today
  tasks_starting_today: false

log:
  enabled: false
  debug: false
  # Defaults to ~/.local/share/gantt-tui/gantt-tui.log
  # file: ""
`

// options holds the parsed command line.
type options struct {
	configPath string
	file       string
	todoist    bool
	mode       string
	locale     string
	printOnce  bool
	width      int
	debug      bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		setToken    bool
		logout      bool
		days        bool
		weeks       bool
		months      bool
		opts        options
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&setToken, "set-token", false, "Store a Todoist API token read from stdin")
	flag.BoolVar(&logout, "logout", false, "Remove the stored Todoist API token")
	flag.StringVar(&opts.configPath, "config", "", "Config file path")
	flag.StringVar(&opts.file, "file", "", "Task file")
	flag.BoolVar(&opts.todoist, "todoist", false, "Use Todoist as the task source")
	flag.BoolVar(&days, "days", false, "Start in days view")
	flag.BoolVar(&weeks, "weeks", false, "Start in weeks view")
	flag.BoolVar(&months, "months", false, "Start in months view")
	flag.StringVar(&opts.locale, "locale", "", "Label language")
	flag.BoolVar(&opts.printOnce, "print", false, "Print the chart and exit")
	flag.IntVar(&opts.width, "width", 120, "Printed chart width")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("gantt-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	if setToken {
		return storeToken()
	}

	if logout {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Println("Stored Todoist token removed.")
		return nil
	}

	// The last view flag wins
	if days {
		opts.mode = "days"
	}
	if weeks {
		opts.mode = "weeks"
	}
	if months {
		opts.mode = "months"
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.printOnce {
		return printChart(cfg, opts.width)
	}

	return runApp(cfg, opts.debug)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.file != "" {
		cfg.Source.Type = config.SourceFile
		cfg.Source.File = opts.file
	}
	if opts.todoist {
		cfg.Source.Type = config.SourceTodoist
	}
	if opts.mode != "" {
		cfg.UI.DefaultView = opts.mode
	}
	if opts.locale != "" {
		cfg.UI.Locale = opts.locale
	}
	if opts.debug {
		cfg.Log.Enabled = true
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Set source.file to a YAML or JSON task file")
	fmt.Println("     or set source.type to todoist and run 'gantt-tui --set-token'")
	fmt.Println("  2. Run 'gantt-tui' to start")

	return nil
}

// storeToken reads a Todoist API token from stdin and saves it.
func storeToken() error {
	fmt.Print("Todoist API token: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if err := config.SaveToken(strings.TrimSpace(line)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Println("Token saved.")
	return nil
}

// newLogger builds the file logger when logging is enabled.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.Log.Enabled {
		return zap.NewNop(), nil
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	return logger.NewFileLogger(path, cfg.Log.Debug)
}

// printChart renders the chart once to stdout.
func printChart(cfg *config.Config, width int) error {
	src, err := source.FromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tasks, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	chart := gantt.NewChart(gantt.WithMode(cfg.ViewMode()), gantt.WithLocale(cfg.Locale()))
	chart.SetTasks(tasks)
	layout, err := chart.Layout()
	if err != nil {
		return err
	}

	view := components.NewGantt(cfg.UI.UnitWidth, cfg.UI.NameWidth)
	view.SetData(layout)
	view.SetSize(width, len(layout.Rows)+6)
	view.ScrollToDate(chart.Now())

	fmt.Println(view.View())
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, debug bool) error {
	src, err := source.FromConfig(cfg)
	if err != nil {
		path, _ := config.ConfigPath()
		fmt.Println(err)
		fmt.Println()
		fmt.Println("To get started:")
		fmt.Printf("  1. Run 'gantt-tui --init' to create a config file at:\n     %s\n", path)
		fmt.Println("  2. Or pass a task file: gantt-tui --file tasks.yaml")
		return nil
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync(log)

	log.Info("starting", zap.String("version", version), zap.String("source", src.Name()), zap.Bool("debug", debug))

	// Create and run TUI
	app := tui.NewApp(src, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
