package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wkalt/rosgen/mcap"
	"github.com/wkalt/rosgen/msgdefs"
	"github.com/wkalt/rosgen/rosmsg"
	"github.com/wkalt/rosgen/util/log"
)

var (
	bundleOutput string
	bundleCheck  bool
	bundleMCAP   string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle [schema name]",
	Short: "Render a merged definition including all dependencies",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			bailf(cmd.UsageString())
		}
		catalog := loadCatalog()
		sc, ok := catalog.Get(args[0])
		if !ok {
			bailf("unknown schema: %s", args[0])
		}
		text, err := rosmsg.Merge(sc, dialect(), msgdefs.For(dialect()))
		checkErr(err)
		if bundleCheck {
			names, err := rosmsg.VerifyBundle(text)
			checkErr(err)
			log.Debugf(cmd.Context(), "bundle parses with %d dependencies", len(names))
		}
		if bundleMCAP != "" {
			def, err := rosmsg.Build(sc, dialect())
			checkErr(err)
			f, err := os.Create(bundleMCAP)
			checkErr(err)
			checkErr(mcap.WriteSchemaFile(f, def.MsgInterfaceName, dialect().Encoding(), []byte(text)))
			checkErr(f.Close())
			log.Debugf(cmd.Context(), "wrote mcap schema file %s", bundleMCAP)
		}
		if bundleOutput == "" {
			fmt.Print(text)
			return
		}
		checkErr(os.WriteFile(bundleOutput, []byte(text), 0o644))
	},
}

func init() {
	bundleCmd.PersistentFlags().StringVarP(
		&bundleOutput, "output", "o", "", "file to write the bundle to (default stdout)")
	bundleCmd.PersistentFlags().BoolVar(
		&bundleCheck, "check", false, "parse the bundle before writing it")
	bundleCmd.PersistentFlags().StringVar(
		&bundleMCAP, "mcap", "", "additionally write an mcap file embedding the bundle as a schema record")
	rootCmd.AddCommand(bundleCmd)
}
