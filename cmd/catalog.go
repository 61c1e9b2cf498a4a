package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mhorak/kiosek/cmd/config"
	"github.com/mhorak/kiosek/pkg/catalog"
	"github.com/mhorak/kiosek/pkg/models"
)

// NewCatalogCmd creates the `kiosek catalog` command group: operator
// tooling for inspecting what a content directory builds into.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog built from the content directory",
	}
	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogExportCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var contentDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the category tree and item counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentDir == "" {
				contentDir = config.ContentDir()
			}
			cat := catalog.Load(cmd.Context(), os.DirFS(contentDir), config.Logger())

			if cat.IsLegacy {
				fmt.Printf("Legacy catalog: %d items, flat tags\n", len(cat.Items))
				return nil
			}
			fmt.Printf("Catalog: %d categories at top level, %d items\n", len(cat.Categories), len(cat.Items))
			for _, node := range cat.Categories {
				printTree(node, 0)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (default from config)")
	return cmd
}

func printTree(node *models.CategoryNode, depth int) {
	fmt.Printf("%s%s %s (%d položek)\n", strings.Repeat("  ", depth), node.Icon, node.Title, node.ItemCount)
	for _, sub := range node.Subcategories {
		printTree(sub, depth+1)
	}
}

func newCatalogExportCmd() *cobra.Command {
	var (
		contentDir string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the built catalog as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentDir == "" {
				contentDir = config.ContentDir()
			}
			cat := catalog.Load(cmd.Context(), os.DirFS(contentDir), config.Logger())

			switch format {
			case "json":
				data, err := json.MarshalIndent(cat, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(cat)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
