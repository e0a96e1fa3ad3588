package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/rosgen/rosmsg"
	"github.com/wkalt/rosgen/util/log"
	"golang.org/x/sync/errgroup"
)

var (
	generateOutDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema names]",
	Short: "Render single message definitions",
	Long: `Render one msg definition per named schema, for all schemas in the
catalog when no names are given. With --out-dir, definitions are written as
<Name>.msg files; otherwise they print to stdout in catalog order.`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog := loadCatalog()
		names := args
		if len(names) == 0 {
			names = catalog.Names()
		}
		if generateOutDir == "" {
			for _, name := range names {
				sc, ok := catalog.Get(name)
				if !ok {
					bailf("unknown schema: %s", name)
				}
				def, err := rosmsg.Build(sc, dialect())
				checkErr(err)
				text, err := rosmsg.Render(def, dialect())
				checkErr(err)
				fmt.Print(text)
			}
			return
		}
		checkErr(os.MkdirAll(generateOutDir, 0o755))
		ctx := log.AddTags(cmd.Context(), "dialect", dialect().String())
		g, ctx := errgroup.WithContext(ctx)
		for _, name := range names {
			name := name
			g.Go(func() error {
				sc, ok := catalog.Get(name)
				if !ok {
					return fmt.Errorf("unknown schema: %s", name)
				}
				def, err := rosmsg.Build(sc, dialect())
				if err != nil {
					return fmt.Errorf("failed to build %s: %w", name, err)
				}
				text, err := rosmsg.Render(def, dialect())
				if err != nil {
					return fmt.Errorf("failed to render %s: %w", name, err)
				}
				path := filepath.Join(generateOutDir, sc.Name+".msg")
				if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				log.Debugf(ctx, "wrote %s", path)
				return nil
			})
		}
		checkErr(g.Wait())
		color.Green("wrote %d definitions to %s", len(names), generateOutDir)
	},
}

func init() {
	generateCmd.PersistentFlags().StringVarP(
		&generateOutDir, "out-dir", "o", "", "directory to write .msg files to")
	rootCmd.AddCommand(generateCmd)
}
