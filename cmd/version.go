package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewVersionCmd creates the `kiosek version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the kiosek version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kiosek %s\n", Version)
		},
	}
}
