// Package main provides the pathsim CLI, which runs robot paths locally
// without the HTTP API.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/infrastruture/repo"
	"github.com/beka-birhanu/cleaner-api/logger"
	"github.com/beka-birhanu/cleaner-api/path"
	"github.com/beka-birhanu/cleaner-api/service"
)

var errReportNotFound = errors.New("report not found")

type runOptions struct {
	startX int
	startY int
	file   string
	store  string
}

type showOptions struct {
	store string
	id    int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pathsim",
		Short:        "Run cleaning robot paths from the command line",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a JSON list of moves and print the report",
		Example: `  pathsim run --start-x 10 --start-y 22 --file moves.json
  echo '[{"direction":"East","steps":2}]' | pathsim run --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.startX, "start-x", 0, "x coordinate of the starting cell")
	cmd.Flags().IntVar(&opts.startY, "start-y", 0, "y coordinate of the starting cell")
	cmd.Flags().StringVar(&opts.file, "file", "", "JSON file with the moves, - for stdin")
	cmd.Flags().StringVar(&opts.store, "store", "", "SQLite database to persist the report in")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a report persisted by run --store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showReport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.store, "store", "", "SQLite database holding the reports")
	cmd.Flags().IntVar(&opts.id, "id", 0, "report id")
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runPath(cmd *cobra.Command, opts *runOptions) error {
	moves, err := readMoves(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}

	robotLogger, err := logger.New("ROBOT", "", cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	start := path.Coordinate{X: opts.startX, Y: opts.startY}
	report, err := service.NewRobot(robotLogger).Run(start, moves)
	if err != nil {
		return err
	}

	if opts.store != "" {
		store, err := repo.OpenSQLiteReportRepo(opts.store)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()

		if _, err := store.Save(cmd.Context(), report); err != nil {
			return fmt.Errorf("failed to store report: %w", err)
		}
	}

	return printReport(cmd.OutOrStdout(), report)
}

func showReport(cmd *cobra.Command, opts *showOptions) error {
	store, err := repo.OpenSQLiteReportRepo(opts.store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	report, err := store.ByID(cmd.Context(), opts.id)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("%w: %d", errReportNotFound, opts.id)
	}

	return printReport(cmd.OutOrStdout(), report)
}

func readMoves(stdin io.Reader, file string) ([]path.Move, error) {
	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	var moves []path.Move
	if err := json.Unmarshal(raw, &moves); err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}
	return moves, nil
}

func printReport(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
