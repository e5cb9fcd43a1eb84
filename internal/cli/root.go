// Package cli implements the command-line interface for cubeview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string
	verbose bool

	// v holds defaults, the config file, env and flags; cfg is decoded from
	// it once before any command runs.
	v   = config.New()
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeview",
	Short: "Animated view of a cube held by a solving service",
	Long: `cubeview shows a 3x3x3 cube whose state lives in an external solving
service. Moves, scrambles and solutions are sent to the service, and the
confirmed intermediate states are played back as animated face turns.

Use 'cubeview tui' for the terminal control panel or 'cubeview window' for
the 3D view.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./cubeview.yaml or ~/.cubeview/cubeview.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.String("server", "", "Solving service URL (default: http://localhost:8000)")
	flags.Duration("duration", 0, "Duration of one quarter-turn sweep (default: 300ms)")
	flags.String("db", "", "Journal database path (default: ~/.cubeview/cubeview.db)")
	flags.Bool("no-journal", false, "Do not record batches")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")

	bindFlag("server.url", "server")
	bindFlag("animation.duration", "duration")
	bindFlag("db.path", "db")
	bindFlag("metrics.addr", "metrics-addr")
}

// bindFlag binds a flag to a config key. Unset flags leave the key alone.
func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if noJournal, _ := cmd.Flags().GetBool("no-journal"); noJournal {
		cfg.DB.Enabled = false
	}
	return nil
}
