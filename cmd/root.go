package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "bindgen",
	Short: "Wrapper module generator for the livesplit-core C API",
	Long:  "bindgen turns a binding model of the native library's exported classes and functions into ready-to-use JavaScript or TypeScript wrapper modules.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity := 0
		if verbose {
			verbosity = 1
		}
		if quiet {
			verbosity = -1
		}
		commonlog.Configure(verbosity, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func Execute() error {
	return rootCmd.Execute()
}
