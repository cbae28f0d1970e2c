package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpnkit/rpnctl/internal/postfix"
)

// newConvertCommand creates the "convert" subcommand that converts a single infix expression.
func newConvertCommand(opts *Options) *cobra.Command {
	var echo bool

	cmd := &cobra.Command{
		Use:   "convert <expression>",
		Short: "Convert one infix expression to postfix notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("echo") {
				var envDefaults convertEnv
				if err := parseEnv(&envDefaults); err != nil {
					return err
				}
				echo = cfg.Echo || envDefaults.Echo
			}

			expr := args[0]
			out := cmd.OutOrStdout()

			if echo {
				fmt.Fprintf(out, "INPUT:  %s\n", expr)
				fmt.Fprint(out, "OUTPUT: ")
			}

			emitted := &countingWriter{w: out}
			conv := postfix.New(cfg.Capacity)
			if err := conv.Convert(expr, emitted); err != nil {
				// Terminate the partial result line before the error surfaces.
				if emitted.n > 0 || echo {
					fmt.Fprintln(out)
				}
				return err
			}
			fmt.Fprintln(out)

			logger.Debug("converted expression", "length", len(expr), "capacity", cfg.Capacity)
			return nil
		},
	}

	cmd.Flags().BoolVar(&echo, "echo", false, "Echo the input expression before the result")

	return cmd
}

// countingWriter tracks how many bytes passed through to the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int
}

// Write forwards p and accumulates the written byte count.
func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
