package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecdemo/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vecdemo/internal/adapters/driven/render"
	"github.com/custodia-labs/vecdemo/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driving"
	"github.com/custodia-labs/vecdemo/internal/core/services"
	"github.com/custodia-labs/vecdemo/internal/logger"
)

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose     bool
	configPath  string
	outputStyle string
	outputJSON  bool
)

// newDemoService builds the demo service for a renderer. Tests replace it.
var newDemoService = func(r driven.VectorRenderer) driving.DemoService {
	return services.NewDemoService(r)
}

var rootCmd = &cobra.Command{
	Use:   "vecdemo",
	Short: "Print components of small fixed-size vectors",
	Long: `Builds a 2, 3 and 4 component float vector, prints the x of the first,
the y of the second and the whole of the third, one line each.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.Flags().StringVar(&outputStyle, "style", "", "vector render style ("+styleNames()+")")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "output lines as JSON")
}

func styleNames() string {
	styles := domain.AllRenderStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore(configPath)
	if err != nil {
		return err
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if outputStyle != "" {
		settings.Style = domain.RenderStyle(outputStyle)
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}
	if err := settingsService.Validate(settings); err != nil {
		return err
	}

	renderer, err := render.ForStyle(settings.Style)
	if err != nil {
		return err
	}

	lines, err := newDemoService(renderer).Lines(cmd.Context())
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	if outputJSON {
		return outputLinesJSON(cmd, lines)
	}
	return outputLinesTable(cmd, lines)
}

// openConfigStore returns a file store for path, or an empty in-memory store
// when no path was given so that a bare run touches no files.
func openConfigStore(path string) (driven.ConfigStore, error) {
	if path == "" {
		return memory.NewConfigStore(), nil
	}
	store, err := file.NewConfigStore(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config: %s", store.Path())
	return store, nil
}

func outputLinesJSON(cmd *cobra.Command, lines []domain.Line) error {
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal lines: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func outputLinesTable(cmd *cobra.Command, lines []domain.Line) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line.String()); err != nil {
			return err
		}
	}
	return nil
}
