package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/notation"
)

var jsonOutput bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the current cube state",
	RunE:  runState,
}

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves and print each confirmed state",
	Long: `Send moves to the solving service and print the state after each
quarter turn. Moves use standard notation ("R U R' U2") or the wire
form ("R+U-U++").`,
	Example: `  cubeview apply "R U R' U'"
  cubeview apply R+ U-`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble the cube",
	RunE:  runScramble,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the cube",
	RunE:  runSolve,
}

func init() {
	stateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the 48 color ids as JSON")

	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(solveCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Server.Timeout)
	defer cancel()
	if err := e.session.Load(ctx); err != nil {
		return err
	}

	st := e.session.State()
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(st.Slice())
	}
	fmt.Print(st.String())
	fmt.Printf("\nSolved: %v\n", st.IsSolved())
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubeview.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return runBatch(cmd, func(ctx context.Context, s *cubeview.Session) error {
		return s.Apply(ctx, moves)
	})
}

func runScramble(cmd *cobra.Command, args []string) error {
	return runBatch(cmd, func(ctx context.Context, s *cubeview.Session) error {
		return s.Scramble(ctx)
	})
}

func runSolve(cmd *cobra.Command, args []string) error {
	err := runBatch(cmd, func(ctx context.Context, s *cubeview.Session) error {
		return s.Solve(ctx)
	})
	if errors.Is(err, cubeview.ErrAlreadySolved) {
		fmt.Println("Already solved")
		return nil
	}
	return err
}

// runBatch loads the state, runs one request and plays it back without
// waiting for the animation clock.
func runBatch(cmd *cobra.Command, request func(context.Context, *cubeview.Session) error) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.Server.Timeout)
	defer cancel()

	s := e.session
	if err := s.Load(ctx); err != nil {
		return err
	}

	var played []cubeview.Move
	s.OnStep(func(m cubeview.Move, st cubeview.State) {
		played = append(played, m)
		step := len(played)
		fmt.Printf("%d. %-3s %s\n", step, m, notation.Describe(m))
		if verbose {
			fmt.Println(st.String())
		}
	})

	if err := request(ctx, s); err != nil {
		return err
	}
	s.Settle()

	st := s.State()
	if len(played) > 0 {
		fmt.Printf("\nPlayed: %s\n", notation.DescribeSequence(played))
	}
	fmt.Println()
	fmt.Print(st.String())
	fmt.Printf("\nSolved: %v\n", st.IsSolved())
	return nil
}
