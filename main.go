package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mhorak/kiosek/cmd"
	"github.com/mhorak/kiosek/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kiosek",
		Short: "A password-gated kiosk browser for exhibition media",
		Long: `kiosek serves and browses a fixed set of exhibition media (images,
PDFs, text, audio, video) organized into a category hierarchy, with search
and a distraction-free viewer.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			config.InitConfig()
		},
	}
	config.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cmd.NewServeCmd())
	rootCmd.AddCommand(cmd.NewBrowseCmd())
	rootCmd.AddCommand(cmd.NewCatalogCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
