package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mhorak/kiosek/cmd/config"
	"github.com/mhorak/kiosek/internal/tui/browser"
	"github.com/mhorak/kiosek/pkg/client"
)

// NewBrowseCmd creates the `kiosek browse` command.
func NewBrowseCmd() *cobra.Command {
	var (
		serverURL  string
		password   string
		local      bool
		contentDir string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the exhibition in the terminal",
		Long: `Launch the interactive kiosk browser.

By default it connects to a running kiosk server; with --local it builds the
catalog straight from the content directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("browse mode requires an interactive terminal")
			}

			var source browser.Source
			if local {
				if contentDir == "" {
					contentDir = config.ContentDir()
				}
				prefStore, err := config.OpenPrefs()
				if err != nil {
					prefStore = nil
				} else {
					defer prefStore.Close()
				}
				source = &browser.LocalSource{
					Content: os.DirFS(contentDir),
					Prefs:   prefStore,
					Log:     config.Logger(),
				}
			} else {
				if password == "" {
					password = config.Password()
				}
				c, err := client.New(serverURL)
				if err != nil {
					return err
				}
				if err := c.Login(cmd.Context(), password); err != nil {
					return err
				}
				source = &browser.APISource{Client: c}
			}

			model := browser.New(source)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&serverURL, "server", "s", "http://localhost:3100", "kiosk server URL")
	cmd.Flags().StringVar(&password, "password", "", "kiosk password (default from config)")
	cmd.Flags().BoolVar(&local, "local", false, "browse the content directory without a server")
	cmd.Flags().StringVar(&contentDir, "content", "", "content directory for --local (default from config)")

	return cmd
}
