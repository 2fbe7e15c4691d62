package main

import (
	"flag"
	"fmt"
	"os"

	"golox/internal"

	"github.com/sirupsen/logrus"
)

// Exit codes, as in sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitConfig   = 78
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

type options struct {
	configPath string
	verbose    bool
	dumpTokens bool
	dumpAst    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (default ~/"+internal.DefaultConfigFile+")")
	fs.BoolVar(&opts.verbose, "v", false, "log interpreter stages to stderr")
	fs.BoolVar(&opts.dumpTokens, "tokens", false, "print the tokens of the script and exit")
	fs.BoolVar(&opts.dumpAst, "ast", false, "print the syntax tree of the script and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: lox [flags] [script]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 || (fs.NArg() == 0 && (opts.dumpTokens || opts.dumpAst)) {
		fs.Usage()
		return exitUsage
	}

	cfg, err := internal.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfig
	}

	logger := newLogger(cfg, opts.verbose)
	console := newConsole(cfg)

	if fs.NArg() == 1 {
		return runFile(fs.Arg(0), opts, cfg, logger, console)
	}
	return runPrompt(cfg, logger, console)
}

func newLogger(cfg internal.Config, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.SetLevel(cfg.Level())
	if verbose && !logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runFile(path string, opts options, cfg internal.Config, logger *logrus.Logger, console *console) int {
	source, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("cannot read script")
		return exitNoInput
	}

	tokens, err := internal.Scan(string(source))
	if err != nil {
		console.report(err)
		return exitDataErr
	}
	if opts.dumpTokens {
		for _, tk := range tokens {
			fmt.Println(tk)
		}
		return exitOK
	}

	stmts, err := internal.Parse(tokens)
	if err != nil {
		console.report(err)
		return exitDataErr
	}
	if opts.dumpAst {
		fmt.Print(internal.PrintTree(stmts))
		return exitOK
	}

	logger.WithFields(logrus.Fields{
		"path":       path,
		"tokens":     len(tokens),
		"statements": len(stmts),
	}).Debug("running script")

	interp := internal.NewInterpreter(stdPrinter{}, cfg.Options(logger)...)
	if err := interp.Interpret(stmts); err != nil {
		console.report(err)
		return exitSoftware
	}
	return exitOK
}
