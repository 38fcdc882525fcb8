package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skleeno/showroom-cli/internal/api"
	"github.com/skleeno/showroom-cli/internal/cmd"
	"github.com/skleeno/showroom-cli/internal/config"
	"github.com/skleeno/showroom-cli/internal/prefs"
	"github.com/skleeno/showroom-cli/internal/session"
	"github.com/skleeno/showroom-cli/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "showroom",
		Short: "Showroom - vehicle sales admin dashboard",
		Long:  "Showroom CLI: manage car listings, inspection bookings, purchases, and sell requests.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
			fmt.Println("not logged in. run 'showroom login' first.")
			return err
		}
		// An anonymous session still lets the operator see the public
		// car listing; admin actions will fail with a clear error.
		cfg = nil
	}

	sess := session.New()
	baseURL := api.DefaultBaseURL
	if cfg != nil {
		sess = session.NewWithToken(cfg.Token)
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
	}
	client := api.NewClient(baseURL, sess)

	p, _ := prefs.Load("")
	app := ui.NewApp(client, p)

	prog := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
