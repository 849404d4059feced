package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/pkg/analysis"
	"github.com/oxygene76/exoscope/pkg/catalog"
	"github.com/oxygene76/exoscope/pkg/utils"
)

const (
	appName = "exoscope"
	version = "v1.0.0"
)

var (
	// Global flags
	cfgFile     string
	catalogPath string
	verbose     bool

	config *utils.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Exoplanet detectability and habitability ranking",
	Long: `exoscope scores the planets of an exoplanet catalog for direct-imaging
detectability (SNR for a given telescope aperture), classifies their host
stars, places them relative to the habitable zone and ranks the survivors of
a configurable filter chain by distance.

The catalog is a NASA Exoplanet Archive style CSV export; lines starting
with the comment prefix are ignored.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		config, err = utils.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if catalogPath != "" {
			config.Catalog.Path = catalogPath
		}

		logger, err = utils.NewLogger(config.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// initCmd writes a default configuration file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default exoscope configuration to --config, or to
~/.exoscope/config.yaml when no path is given. An existing file is left
untouched unless --force is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = filepath.Join(utils.DefaultHome(), "config.yaml")
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		defaults := utils.DefaultConfig()
		if catalogPath != "" {
			defaults.Catalog.Path = catalogPath
		}
		if err := utils.SaveConfig(defaults, path); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration initialized at: %s\n", path)
		fmt.Fprintf(out, "Catalog path: %s\n", defaults.Catalog.Path)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "1. Download a catalog export (PSCompPars CSV) to the catalog path")
		fmt.Fprintln(out, "2. Rank planets: exoscope rank --min-snr 5 --max-distance 50")
		fmt.Fprintln(out, "3. Serve the web view: exoscope serve")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.exoscope/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog CSV path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// newPipeline builds the catalog store and analysis manager from config.
func newPipeline() (*catalog.Store, *analysis.Manager) {
	store := catalog.NewStore(config.StoreConfig(), logger)
	return store, analysis.NewManager(store, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
