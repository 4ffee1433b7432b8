package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eein/livesplit-core/loader"
	"github.com/Eein/livesplit-core/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [binding-model.yaml]",
	Short: "Check a binding model without generating",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	modelPath := args[0]

	if !quiet {
		fmt.Printf("Validating %s\n", modelPath)
	}

	// Load and schema-validate the binding model
	m, err := loader.LoadModel(modelPath)
	if err != nil {
		return fmt.Errorf("loading binding model: %w", err)
	}

	if verbose {
		fns := 0
		for _, class := range m.Classes {
			fns += len(class.AllFns())
		}
		fmt.Printf("  Library: %s\n", m.Library)
		fmt.Printf("  Classes: %d\n", len(m.Classes))
		fmt.Printf("  Functions: %d\n", fns)
	}

	// Run semantic validation
	result := validate.Validate(m)
	if !result.IsValid() {
		return fmt.Errorf("semantic validation failed:\n%s", result.Error())
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
