package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tiwariParth/go-tasklist/internal/app"
	"github.com/tiwariParth/go-tasklist/internal/metrics"
)

// ErrUsage marks errors caused by malformed command lines.
var ErrUsage = errors.New("usage error")

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsageErr = 2
)

// CLI represents the command-line interface.
type CLI struct {
	App *app.TodoApp

	in       io.Reader
	out      io.Writer
	err      io.Writer
	colors   palette
	level    *slog.LevelVar
	gatherer prometheus.Gatherer
	dump     bool
}

// Option configures a CLI.
type Option func(*CLI)

// WithIO sets the streams used for input, output and errors.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(c *CLI) {
		c.in, c.out, c.err = in, out, errOut
	}
}

// WithColor enables or disables coloured output.
func WithColor(enabled bool) Option {
	return func(c *CLI) {
		c.colors = newPalette(enabled)
	}
}

// WithLevel lets --verbose lower the logger level.
func WithLevel(level *slog.LevelVar) Option {
	return func(c *CLI) {
		c.level = level
	}
}

// WithMetrics sets the gatherer dumped by --metrics. When enabled is true the
// dump happens even without the flag.
func WithMetrics(g prometheus.Gatherer, enabled bool) Option {
	return func(c *CLI) {
		c.gatherer = g
		c.dump = enabled
	}
}

// NewCLI initializes a new CLI.
func NewCLI(todo *app.TodoApp, opts ...Option) *CLI {
	c := &CLI{
		App:    todo,
		in:     os.Stdin,
		out:    os.Stdout,
		err:    os.Stderr,
		colors: newPalette(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the CLI based on the provided arguments.
func (c *CLI) Run(args []string) error {
	err := c.execute(args)

	if c.dump && c.gatherer != nil {
		if merr := metrics.WriteText(c.err, c.gatherer); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

// ReportError prints err the way users see failures.
func (c *CLI) ReportError(err error) {
	var nf *app.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(c.err, "%s Error: Task %d not found.\n", c.colors.fail.Sprint("[-]"), nf.ID)
		return
	}
	fmt.Fprintf(c.err, "%s Error: %v\n", c.colors.fail.Sprint("[-]"), err)
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsageErr
	default:
		return ExitFailure
	}
}

func (c *CLI) execute(args []string) error {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root := c.rootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func (c *CLI) rootCommand() *cobra.Command {
	var verbose, noColor, dump bool

	root := &cobra.Command{
		Use:   "todo",
		Short: "Manage a task list from the command line",
		Example: `  todo add Buy groceries
  todo list
  todo list --all
  todo update 1 Buy groceries and cook dinner
  todo complete 1
  todo delete 1
  todo shell`,
		Args:          usageArgs(noArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && c.level != nil {
				c.level.Set(slog.LevelDebug)
			}
			if noColor {
				c.colors = newPalette(false)
			}
			if dump {
				c.dump = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.err)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	root.PersistentFlags().BoolVar(&dump, "metrics", false, "print operation metrics to stderr on exit")

	root.AddCommand(
		c.addCommand(),
		c.listCommand(),
		c.updateCommand(),
		c.deleteCommand(),
		c.completeCommand(),
		c.shellCommand(),
	)
	return root
}

func (c *CLI) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a new task",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := c.App.AddTask(strings.Join(args, " "))
			fmt.Fprintf(c.out, "%s Task added: %s\n", c.colors.ok.Sprint("[+]"), c.colors.task(task))
			return nil
		},
	}
}

func (c *CLI) listCommand() *cobra.Command {
	var all bool
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending tasks",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := c.App.ListTasks(all)
			return c.renderTasks(tasks, format)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show all tasks including completed")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or csv")
	return cmd
}

func (c *CLI) updateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <description...>",
		Short: "Update a task's description",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.App.UpdateTask(id, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s Task %d updated successfully.\n", c.colors.ok.Sprint("[+]"), id)
			return nil
		},
	}
}

func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.App.DeleteTask(id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s Task %d deleted successfully.\n", c.colors.ok.Sprint("[+]"), id)
			return nil
		},
	}
}

func (c *CLI) completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.App.CompleteTask(id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s Task %d marked as completed.\n", c.colors.ok.Sprint("[+]"), id)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid task ID %q", ErrUsage, s)
	}
	return id, nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// usageArgs tags argument validation failures with ErrUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
