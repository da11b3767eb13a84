package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/go-tasklist/internal/app"
	"github.com/tiwariParth/go-tasklist/internal/models"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"

	bannerWidth = 50
)

func (c *CLI) renderTasks(tasks []models.Task, format string) error {
	switch strings.ToLower(format) {
	case formatTable:
		c.renderTable(tasks)
		return nil
	case formatJSON:
		return c.renderJSON(tasks)
	case formatCSV:
		return c.renderCSV(tasks)
	default:
		return fmt.Errorf("%w: unsupported format: %s", ErrUsage, format)
	}
}

func (c *CLI) renderTable(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found.")
		return
	}

	rule := strings.Repeat("=", bannerWidth)
	title := "TODO LIST"
	pad := strings.Repeat(" ", (bannerWidth-len(title))/2)

	fmt.Fprintf(c.out, "\n%s\n%s%s\n%s\n\n", rule, pad, c.colors.bold.Sprint(title), rule)
	for _, task := range tasks {
		fmt.Fprintf(c.out, "  %s\n", c.colors.task(task))
	}

	s := app.Summarize(tasks)
	fmt.Fprintf(c.out, "\n%s\n", rule)
	fmt.Fprintf(c.out, "Total: %d | Completed: %d | Pending: %d\n", s.Total, s.Completed, s.Pending)
	fmt.Fprintf(c.out, "%s\n\n", rule)
}

func (c *CLI) renderJSON(tasks []models.Task) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(tasks); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return nil
}

func (c *CLI) renderCSV(tasks []models.Task) error {
	w := csv.NewWriter(c.out)
	if err := w.Write([]string{"ID", "Description", "Completed", "Created At", "Completed At"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.Itoa(task.ID),
			task.Description,
			strconv.FormatBool(task.Completed),
			task.CreatedAt.Format(time.RFC3339),
			completedAt,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
