package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-tasklist/internal/app"
	"github.com/tiwariParth/go-tasklist/internal/logger"
	"github.com/tiwariParth/go-tasklist/internal/metrics"
	"github.com/tiwariParth/go-tasklist/internal/models"
	"github.com/tiwariParth/go-tasklist/internal/storage/memory"
)

type harness struct {
	cli   *CLI
	out   *bytes.Buffer
	err   *bytes.Buffer
	level *slog.LevelVar
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()

	reg := prometheus.NewRegistry()
	todo := app.NewTodoApp(memory.NewMemoryStore(), metrics.NewRecorder(reg), logger.Discard())

	h := &harness{out: new(bytes.Buffer), err: new(bytes.Buffer), level: new(slog.LevelVar)}
	h.level.Set(slog.LevelWarn)
	h.cli = NewCLI(todo,
		WithIO(strings.NewReader(stdin), h.out, h.err),
		WithColor(false),
		WithLevel(h.level),
		WithMetrics(reg, false),
	)
	return h
}

// run executes one command line and reports errors the way main does.
func (h *harness) run(args ...string) int {
	h.out.Reset()
	h.err.Reset()
	err := h.cli.Run(args)
	if err != nil {
		h.cli.ReportError(err)
	}
	return ExitCode(err)
}

func TestAdd(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, ExitOK, h.run("add", "Buy", "groceries"))
	assert.Equal(t, "[+] Task added: [ ] 1. Buy groceries\n", h.out.String())

	require.Equal(t, ExitOK, h.run("add", "Write documentation"))
	assert.Contains(t, h.out.String(), "[ ] 2. Write documentation")
}

func TestAddRequiresDescription(t *testing.T) {
	h := newHarness(t, "")

	assert.Equal(t, ExitUsageErr, h.run("add"))
	assert.Contains(t, h.err.String(), "[-] Error:")
}

func TestScenario(t *testing.T) {
	h := newHarness(t, "")

	h.run("add", "Buy groceries")
	h.run("add", "Write documentation")
	h.run("add", "Fix bugs")

	require.Equal(t, ExitOK, h.run("complete", "1"))
	assert.Equal(t, "[+] Task 1 marked as completed.\n", h.out.String())

	require.Equal(t, ExitOK, h.run("update", "2", "Write", "comprehensive", "documentation", "with", "examples"))
	assert.Equal(t, "[+] Task 2 updated successfully.\n", h.out.String())

	require.Equal(t, ExitOK, h.run("delete", "3"))
	assert.Equal(t, "[+] Task 3 deleted successfully.\n", h.out.String())

	require.Equal(t, ExitOK, h.run("list", "--all"))
	out := h.out.String()
	assert.Contains(t, out, "TODO LIST")
	assert.Contains(t, out, "  [X] 1. Buy groceries\n")
	assert.Contains(t, out, "  [ ] 2. Write comprehensive documentation with examples\n")
	assert.NotContains(t, out, "Fix bugs")
	assert.Contains(t, out, "Total: 2 | Completed: 1 | Pending: 1")

	require.Equal(t, ExitOK, h.run("list"))
	out = h.out.String()
	assert.NotContains(t, out, "Buy groceries")
	assert.Contains(t, out, "[ ] 2. Write comprehensive documentation with examples")
	assert.Contains(t, out, "Total: 1 | Completed: 0 | Pending: 1")

	for _, args := range [][]string{
		{"complete", "999"},
		{"update", "999", "x"},
		{"delete", "999"},
	} {
		assert.Equal(t, ExitFailure, h.run(args...), args)
		assert.Equal(t, "[-] Error: Task 999 not found.\n", h.err.String())
		assert.Empty(t, h.out.String())
	}

	require.Equal(t, ExitOK, h.run("list", "--all"))
	assert.Contains(t, h.out.String(), "Total: 2 | Completed: 1 | Pending: 1")
}

func TestListEmpty(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, ExitOK, h.run("list"))
	assert.Equal(t, "No tasks found.\n", h.out.String())

	h.run("add", "done soon")
	h.run("complete", "1")

	require.Equal(t, ExitOK, h.run("list"))
	assert.Equal(t, "No tasks found.\n", h.out.String())
}

func TestListJSON(t *testing.T) {
	h := newHarness(t, "")
	h.run("add", "first")
	h.run("add", "second")
	h.run("complete", "2")

	require.Equal(t, ExitOK, h.run("list", "--all", "--format", "json"))

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Nil(t, tasks[0].CompletedAt)
	assert.True(t, tasks[1].Completed)
	assert.NotNil(t, tasks[1].CompletedAt)
}

func TestListCSV(t *testing.T) {
	h := newHarness(t, "")
	h.run("add", "with, comma")

	require.Equal(t, ExitOK, h.run("list", "-f", "csv"))

	records, err := csv.NewReader(h.out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, []string{"1", "with, comma", "false"}, records[1][:3])
	assert.Equal(t, "", records[1][4])
}

func TestListUnknownFormat(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, ExitUsageErr, h.run("list", "--format", "xml"))
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"frobnicate"}},
		{"non-numeric id", []string{"complete", "abc"}},
		{"missing id", []string{"delete"}},
		{"too many ids", []string{"delete", "1", "2"}},
		{"update without text", []string{"update", "1"}},
		{"unknown flag", []string{"list", "--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			assert.Equal(t, ExitUsageErr, h.run(tt.args...))
			assert.True(t, strings.HasPrefix(h.err.String(), "[-] Error:"), h.err.String())
		})
	}
}

func TestNoCommandPrintsHelp(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, ExitOK, h.run())
	assert.Contains(t, h.out.String(), "Usage:")
	assert.Contains(t, h.out.String(), "complete")
}

func TestVerboseLowersLevel(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, ExitOK, h.run("--verbose", "list"))
	assert.Equal(t, slog.LevelDebug, h.level.Level())
}

func TestMetricsFlag(t *testing.T) {
	h := newHarness(t, "")

	require.Equal(t, ExitOK, h.run("add", "x"))
	assert.Empty(t, h.err.String())

	require.Equal(t, ExitOK, h.run("--metrics", "complete", "1"))
	assert.Contains(t, h.err.String(), `todo_store_operations_total{op="add",result="ok"} 1`)
	assert.Contains(t, h.err.String(), `todo_store_operations_total{op="complete",result="ok"} 1`)
}

func TestShell(t *testing.T) {
	input := strings.Join([]string{
		`add "Buy groceries"`,
		`add Write documentation`,
		`add 'Fix bugs'`,
		`complete 1`,
		``,
		`update 2 "Write comprehensive documentation with examples"`,
		`delete 3`,
		`delete 3`,
		`shell`,
		`list --all`,
		`exit`,
		`add never runs`,
	}, "\n")
	h := newHarness(t, input)

	require.Equal(t, ExitOK, h.run("shell"))

	out := h.out.String()
	assert.Contains(t, out, "Welcome to Go Todo CLI!")
	assert.Contains(t, out, "[+] Task added: [ ] 1. Buy groceries")
	assert.Contains(t, out, "[+] Task added: [ ] 3. Fix bugs")
	assert.Contains(t, out, "  [X] 1. Buy groceries\n")
	assert.Contains(t, out, "  [ ] 2. Write comprehensive documentation with examples\n")
	assert.Contains(t, out, "Total: 2 | Completed: 1 | Pending: 1")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "never runs")

	errOut := h.err.String()
	assert.Contains(t, errOut, "[-] Error: Task 3 not found.")
	assert.Contains(t, errOut, "[-] Error: already in the shell")
}

func TestShellEOF(t *testing.T) {
	h := newHarness(t, "add one\nbogus \"unterminated\n")

	require.Equal(t, ExitOK, h.run("shell"))
	assert.Contains(t, h.out.String(), "[ ] 1. one")
	assert.Contains(t, h.err.String(), "[-] Error: usage error")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(&app.NotFoundError{ID: 1}))
	assert.Equal(t, ExitUsageErr, ExitCode(parseErr(t)))
}

func parseErr(t *testing.T) error {
	t.Helper()
	_, err := parseID("x")
	require.Error(t, err)
	return err
}
