package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpnkit/rpnctl/internal/postfix"
)

// newBatchCommand creates the "batch" subcommand that converts newline-separated expressions.
func newBatchCommand(opts *Options) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert newline-separated infix expressions from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("keep-going") {
				var envDefaults batchEnv
				if err := parseEnv(&envDefaults); err != nil {
					return err
				}
				keepGoing = envDefaults.KeepGoing
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input file %q: %w", args[0], err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			return runBatch(in, cmd.OutOrStdout(), cfg.Capacity, keepGoing, logger)
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue past expressions that fail to convert")

	return cmd
}

// runBatch converts expressions line by line, writing one postfix result per
// line. Blank lines are skipped. With keepGoing, failed lines are logged and
// counted instead of stopping the run.
func runBatch(in io.Reader, out io.Writer, capacity int, keepGoing bool, logger *slog.Logger) error {
	conv := postfix.New(capacity)
	scanner := bufio.NewScanner(in)

	var lines, failed int
	for scanner.Scan() {
		lines++
		expr := strings.TrimSpace(scanner.Text())
		if expr == "" {
			continue
		}

		result, err := conv.ConvertString(expr)
		if err != nil {
			if !keepGoing {
				return fmt.Errorf("line %d: %w", lines, err)
			}
			failed++
			logger.Warn("skipping expression", "line", lines, "error", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to convert", failed, lines)
	}
	logger.Debug("batch finished", "lines", lines)
	return nil
}
