package main

import (
	"fmt"
	"io"
	"os"

	"golox/internal"

	"github.com/labstack/gommon/color"
)

// console writes diagnostics, in red when stderr is a terminal
type console struct {
	out   io.Writer
	color *color.Color
}

func newConsole(cfg internal.Config) *console {
	c := color.New()
	c.SetOutput(os.Stderr)
	if !cfg.Color {
		c.Disable()
	}
	return &console{out: os.Stderr, color: c}
}

// report prints every diagnostic carried by err on its own line
func (c *console) report(err error) {
	for _, e := range internal.Errors(err) {
		fmt.Fprintln(c.out, c.color.Red(e.Error()))
	}
}

func (c *console) banner(text string) {
	fmt.Println(c.color.Cyan(text))
}
