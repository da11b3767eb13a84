package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tiwariParth/go-tasklist/internal/app"
	"github.com/tiwariParth/go-tasklist/internal/cli"
	"github.com/tiwariParth/go-tasklist/internal/config"
	"github.com/tiwariParth/go-tasklist/internal/logger"
	"github.com/tiwariParth/go-tasklist/internal/metrics"
	"github.com/tiwariParth/go-tasklist/internal/storage/memory"
)

func main() {
	cfg := config.Load()

	level := new(slog.LevelVar)
	level.Set(cfg.LogLevel)
	log := logger.New(os.Stderr, level)

	// Tasks live only as long as this process.
	reg := prometheus.NewRegistry()
	todo := app.NewTodoApp(memory.NewMemoryStore(), metrics.NewRecorder(reg), log)

	c := cli.NewCLI(todo,
		cli.WithColor(cfg.Color),
		cli.WithLevel(level),
		cli.WithMetrics(reg, cfg.Metrics),
	)

	err := c.Run(os.Args[1:])
	if err != nil {
		c.ReportError(err)
	}
	os.Exit(cli.ExitCode(err))
}
