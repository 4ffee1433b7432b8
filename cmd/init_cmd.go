package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	initLibrary string
	initOutput  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter binding model and extensions file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initLibrary, "library", "l", "my_library", "Native library name")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", ".", "Output directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !quiet {
		fmt.Printf("Initializing binding model for %s in %s\n", initLibrary, initOutput)
	}

	if err := os.MkdirAll(initOutput, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Write starter binding model
	modelPath := filepath.Join(initOutput, initLibrary+".yaml")
	bindingModel := fmt.Sprintf(`library: %s

classes:
  Instance:
    static_fns:
      - name: Instance_new
        method: new
        output: { name: Instance, custom: true }
    own_fns:
      - name: Instance_drop
        method: drop
        inputs:
          - name: this
            type: { name: Instance, custom: true }
    shared_fns:
      - name: Instance_state
        method: state
        inputs:
          - name: this
            type: { name: Instance, kind: ref, custom: true }
        output: { name: i32 }
`, initLibrary)

	if err := os.WriteFile(modelPath, []byte(bindingModel), 0644); err != nil {
		return fmt.Errorf("writing binding model: %w", err)
	}

	// Write starter extensions file
	extsPath := filepath.Join(initOutput, "extensions.toml")
	exts := `# Per-class convenience methods spliced into the generated wrappers.
# Each entry names a class, the tier the method lands in (shared or owning),
# and the verbatim method text for each output mode.

# [[extension]]
# class = "Instance"
# tier = "owning"
# javascript = '''
#     stateTwice() {
#         return this.state() * 2;
#     }'''
# typescript = '''
#     stateTwice(): number {
#         return this.state() * 2;
#     }'''
`
	if err := os.WriteFile(extsPath, []byte(exts), 0644); err != nil {
		return fmt.Errorf("writing extensions file: %w", err)
	}

	if !quiet {
		fmt.Printf("Created:\n")
		fmt.Printf("  %s\n", modelPath)
		fmt.Printf("  %s\n", extsPath)
		fmt.Printf("\nNext: bindgen validate %s\n", modelPath)
	}
	return nil
}
