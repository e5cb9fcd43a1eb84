package cli

import (
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/tui"
	"github.com/SeamusWaldron/cubeview/internal/window"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal control panel",
	Long: `Start an interactive TUI showing the cube as an unfolded net.

Keyboard shortcuts:
  u l f r b d   - Queue a clockwise turn
  U L F R B D   - Queue an inverse turn
  enter         - Submit queued turns
  backspace     - Clear queued turns
  s             - Scramble
  v             - Solve
  g             - Reload state from the service
  + / -         - Faster / slower turns
  q/Esc         - Quit

Logs are written to ~/.cubeview/cubeview.log unless log.file is set.`,
	RunE: runTUI,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "3D view in a desktop window",
	Long: `Open a window drawing the cube in perspective. The keys are the same
as in the TUI; the arrow keys orbit the camera.`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(windowCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	return tui.Run(e.session, cfg.Server.Timeout)
}

func runWindow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	return window.Run(e.session, window.Options{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Timeout: cfg.Server.Timeout,
	})
}
