package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// console prints progress to out and failures to errOut. Styling is applied
// only when color is enabled.
type console struct {
	out    io.Writer
	errOut io.Writer
	color  bool

	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
}

func newConsole(out, errOut io.Writer, noColor bool) *console {
	c := &console{
		out:    out,
		errOut: errOut,
		color:  !noColor && isTerminal(out),
	}
	if c.color {
		c.info = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
		c.success = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
		c.failure = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
		c.hint = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *console) render(s lipgloss.Style, msg string) string {
	if !c.color {
		return msg
	}
	return s.Render(msg)
}

func (c *console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(c.info, fmt.Sprintf(format, args...)))
}

func (c *console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(c.success, fmt.Sprintf(format, args...)))
}

func (c *console) Hintf(format string, args ...any) {
	fmt.Fprintln(c.out, c.render(c.hint, fmt.Sprintf(format, args...)))
}

// ErrorHintf prints a follow-up hint to the error stream.
func (c *console) ErrorHintf(format string, args ...any) {
	fmt.Fprintln(c.errOut, c.render(c.hint, fmt.Sprintf(format, args...)))
}

// Error prints err to the error stream.
func (c *console) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(c.errOut, c.render(c.failure, err.Error()))
}
