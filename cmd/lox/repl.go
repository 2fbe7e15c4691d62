package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golox/internal"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const banner = "Lox REPL. Ctrl+C cancels input, Ctrl+D exits."

// runPrompt keeps one interpreter for the session, an error on one line
// is reported and the next line is read
func runPrompt(cfg internal.Config, logger *logrus.Logger, console *console) int {
	console.banner(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			logger.WithError(err).WithField("path", histPath).Warn("cannot save history")
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	interp := internal.NewInterpreter(stdPrinter{}, cfg.Options(logger)...)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			fmt.Println()
			return exitOK
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if err := interp.Run(line); err != nil {
			console.report(err)
		}
	}
}
