package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/git-branch-control/internal/git"
	"github.com/atomicstack/git-branch-control/internal/logging/events"
	"github.com/atomicstack/git-branch-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ErrNotInteractive is returned when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("git-branch-control needs an interactive terminal")

// Config describes user-provided application options.
type Config struct {
	RepoDir    string
	Start      string
	Timeout    time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	NoColor    bool
}

// Run resolves the repository and executes the Bubble Tea program.
func Run(cfg Config) error {
	if !interactive() {
		return ErrNotInteractive
	}
	repo, err := git.Open(cfg.RepoDir)
	if err != nil {
		return fmt.Errorf("resolve repository: %w", err)
	}
	events.App.Repository(repo.Root, repo.Head)

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	runner := git.NewRunner(repo.Root, cfg.Timeout)
	model := ui.NewModel(runner, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.Start)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	confirmed := false
	if m, ok := final.(*ui.Model); ok {
		confirmed = m.Confirmed()
	}
	events.App.Exit(confirmed, err)
	return err
}

func interactive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
