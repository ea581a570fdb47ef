package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/commands"
)

// Dispatcher executes parsed commands and returns rendered replies.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command) (string, error)
}

// Console is the interactive admin loop: read a line, dispatch, print.
type Console struct {
	dispatcher Dispatcher
	in         *bufio.Reader
	out        io.Writer
	logger     *zap.Logger
}

// New creates a console bound to the given input and output streams.
func New(dispatcher Dispatcher, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		dispatcher: dispatcher,
		in:         bufio.NewReader(in),
		out:        out,
		logger:     logger.Named("console"),
	}
}

// Run drives the REPL until exit, EOF, or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Cloth Shop Admin Console")
	fmt.Fprintln(c.out, "Type 'help' for commands, 'exit' to quit.")
	fmt.Fprintln(c.out, strings.Repeat("-", 70))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "")
				return nil
			}
			return fmt.Errorf("reading console input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd := models.ParseCommand(line)
		if cmd.Type == models.CommandExit {
			fmt.Fprintln(c.out, "Bye.")
			return nil
		}

		reply, err := c.dispatcher.HandleCommand(ctx, cmd)
		if err != nil {
			c.printError(cmd, err)
			continue
		}
		fmt.Fprintln(c.out, reply)
	}
}

// printError turns a dispatch failure into a visible console line. Data
// errors render as a "no data" state rather than aborting the loop.
func (c *Console) printError(cmd models.Command, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidArguments):
		fmt.Fprintf(c.out, "Invalid arguments for %q. Type 'help' for usage.\n", cmd.Type)
	case errors.Is(err, commands.ErrUnsupportedCommand):
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for the list.\n", strings.Fields(cmd.Raw)[0])
	default:
		c.logger.Debug("command failed", zap.String("command", string(cmd.Type)), zap.Error(err))
		fmt.Fprintf(c.out, "No data available: %v\n", err)
	}
}
