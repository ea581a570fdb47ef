package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shahzadali/clothshop/internal/console"
	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/internal/service/commands"
)

type scriptedDispatcher struct {
	replies map[models.CommandType]string
	errs    map[models.CommandType]error
	seen    []models.CommandType
}

func (d *scriptedDispatcher) HandleCommand(_ context.Context, cmd models.Command) (string, error) {
	d.seen = append(d.seen, cmd.Type)
	if err, ok := d.errs[cmd.Type]; ok {
		return "", err
	}
	return d.replies[cmd.Type], nil
}

func runConsole(t *testing.T, dispatcher console.Dispatcher, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := console.New(dispatcher, strings.NewReader(input), &out, nil)
	if err := c.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestRunDispatchesAndPrints(t *testing.T) {
	dispatcher := &scriptedDispatcher{
		replies: map[models.CommandType]string{models.CommandStats: "stats output"},
	}

	out := runConsole(t, dispatcher, "stats\nexit\n")
	if !strings.Contains(out, "stats output") {
		t.Errorf("output missing reply: %q", out)
	}
	if !strings.Contains(out, "Bye.") {
		t.Errorf("output missing exit line: %q", out)
	}
	if len(dispatcher.seen) != 1 || dispatcher.seen[0] != models.CommandStats {
		t.Errorf("dispatched = %v", dispatcher.seen)
	}
}

func TestRunSkipsBlankLinesAndEndsOnEOF(t *testing.T) {
	dispatcher := &scriptedDispatcher{replies: map[models.CommandType]string{}}

	runConsole(t, dispatcher, "\n   \n")
	if len(dispatcher.seen) != 0 {
		t.Errorf("blank lines dispatched: %v", dispatcher.seen)
	}
}

func TestRunRendersErrorsAndContinues(t *testing.T) {
	dispatcher := &scriptedDispatcher{
		replies: map[models.CommandType]string{models.CommandStats: "stats output"},
		errs: map[models.CommandType]error{
			models.CommandAnalytics: errors.New("connection refused"),
			models.CommandReport:    commands.ErrInvalidArguments,
			models.CommandUnknown:   commands.ErrUnsupportedCommand,
		},
	}

	out := runConsole(t, dispatcher, "analytics\nreport\nfrobnicate\nstats\nexit\n")

	if !strings.Contains(out, "No data available") {
		t.Errorf("data error not rendered: %q", out)
	}
	if !strings.Contains(out, "Invalid arguments") {
		t.Errorf("argument error not rendered: %q", out)
	}
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("unknown command not rendered: %q", out)
	}
	// The loop survives all three failures.
	if !strings.Contains(out, "stats output") {
		t.Errorf("loop did not continue after errors: %q", out)
	}
}
