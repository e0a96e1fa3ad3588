package cmd

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/wkalt/rosgen/rosmsg"
	"github.com/wkalt/rosgen/schema"
	"github.com/wkalt/rosgen/util/log"
)

var (
	schemaGlobs []string
	useRos2     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "rosgen",
	Short: "Generate ROS message definitions from foxglove schemas",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(os.Stderr, verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

func dialect() rosmsg.Dialect {
	if useRos2 {
		return rosmsg.Ros2
	}
	return rosmsg.Ros1
}

// loadCatalog reads and merges the schema documents matched by --schemas.
func loadCatalog() *schema.Catalog {
	var docs [][]byte
	for _, pattern := range schemaGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		checkErr(err)
		if len(matches) == 0 {
			bailf("no schema files match %s", pattern)
		}
		for _, match := range matches {
			data, err := os.ReadFile(match)
			checkErr(err)
			docs = append(docs, data)
		}
	}
	if len(docs) == 0 {
		bailf("no schema files supplied; pass --schemas")
	}
	catalog, err := schema.LoadCatalog(docs...)
	checkErr(err)
	return catalog
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(
		&schemaGlobs, "schemas", "s", nil, "glob of schema catalog JSON files (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&useRos2, "ros2", false, "generate ros2msg output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
