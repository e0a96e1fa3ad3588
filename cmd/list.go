package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/rosgen/msgdefs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog schemas and known ros types",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()
		bold := color.New(color.Bold)
		bold.Println("schemas")
		for _, name := range catalog.Names() {
			sc, _ := catalog.Get(name)
			if sc.RosEquivalent != "" {
				fmt.Printf("  %s -> %s\n", name, sc.RosEquivalent)
				continue
			}
			fmt.Printf("  %s\n", name)
		}
		bold.Println("ros types")
		for _, name := range msgdefs.Names(dialect()) {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
