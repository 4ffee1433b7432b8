package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Eein/livesplit-core/gen"
	"github.com/Eein/livesplit-core/loader"
	"github.com/Eein/livesplit-core/validate"
)

var (
	genOutput     string
	genMode       string
	genExtensions string
	genDryRun     bool
)

var log = commonlog.GetLogger("bindgen")

var generateCmd = &cobra.Command{
	Use:   "generate [binding-model.yaml]",
	Short: "Generate wrapper modules from a binding model",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "./generated", "Output directory")
	generateCmd.Flags().StringVarP(&genMode, "mode", "m", "both", "Output mode: js, ts, or both")
	generateCmd.Flags().StringVar(&genExtensions, "extensions", "", "TOML file with per-class extension methods (merged over built-ins)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	modelPath := args[0]

	if !quiet {
		fmt.Printf("Generating from %s\n", modelPath)
	}

	// Load and schema-validate
	m, err := loader.LoadModel(modelPath)
	if err != nil {
		return fmt.Errorf("loading binding model: %w", err)
	}

	// Semantic validation
	result := validate.Validate(m)
	if !result.IsValid() {
		return fmt.Errorf("validation failed:\n%s", result.Error())
	}

	// Per-class extensions: built-ins plus optional TOML overlay
	exts := gen.DefaultExtensions()
	if genExtensions != "" {
		exts, err = gen.LoadExtensions(genExtensions)
		if err != nil {
			return fmt.Errorf("loading extensions: %w", err)
		}
	}

	generatorNames := gen.GeneratorsForMode(genMode)
	if generatorNames == nil {
		return fmt.Errorf("unknown mode %q (expected js, ts, or both)", genMode)
	}

	ctx := gen.NewContext(m, exts, genOutput, modelPath)
	ctx.Verbose = verbose
	ctx.DryRun = genDryRun

	// Run generators and collect output
	var allFiles []*gen.OutputFile
	for _, name := range generatorNames {
		g, ok := gen.Get(name)
		if !ok {
			return fmt.Errorf("generator %q not registered", name)
		}

		log.Infof("running generator: %s", g.Name())

		files, err := g.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generator %s failed: %w", name, err)
		}
		allFiles = append(allFiles, files...)
	}

	// Write output files
	var written int
	for _, f := range allFiles {
		outPath := filepath.Join(genOutput, f.Path)

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		log.Infof("wrote: %s", outPath)
	}

	if !quiet && !genDryRun {
		fmt.Printf("Generated %d file(s) in %s\n", written, genOutput)
	}
	return nil
}
