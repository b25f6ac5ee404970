package src

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// RunResult summarizes a finished headless run.
type RunResult struct {
	Dir     string
	Report  WriteReport
	Success bool
}

// RunHeadless executes one generation run without the TUI, streaming
// progress lines to out.
func RunHeadless(ctx context.Context, cfg Config, client ChatClient, request string, out io.Writer) (RunResult, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	emit := func(line string) {
		fmt.Fprintln(out, line)
	}

	run := NewRun(cfg, client, request, emit, logger)
	if err := run.Execute(ctx); err != nil {
		return RunResult{}, err
	}
	return RunResult{Dir: run.Dir, Report: run.Report, Success: run.Success}, nil
}
