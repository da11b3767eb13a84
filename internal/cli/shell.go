package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func (c *CLI) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one task list",
		Long: `Read commands from standard input, one per line, and run them against
the same in-memory task list. Arguments follow shell quoting rules.
Type "exit" or "quit" to leave.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShell()
		},
	}
}

func (c *CLI) runShell() error {
	fmt.Fprintln(c.out, "Welcome to Go Todo CLI! Type \"help\" for commands, \"exit\" to quit.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}

		args, err := shellwords.Parse(strings.TrimSpace(scanner.Text()))
		if err != nil {
			c.ReportError(fmt.Errorf("%w: %v", ErrUsage, err))
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		case "shell":
			c.ReportError(errors.New("already in the shell"))
			continue
		}

		if err := c.execute(args); err != nil {
			c.ReportError(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(c.out)
	return nil
}
