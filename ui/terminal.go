package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 60
)

type TerminalUI struct {
	level  int
	out    io.Writer
	au     aurora.Aurora
	colors bool
	isTerm bool
}

// NewTerminalUI writes to stdout. Colours are on only when stdout is a
// terminal and colors is true.
func NewTerminalUI(colors bool) *TerminalUI {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	return NewWriterUI(os.Stdout, colors && isTerm, isTerm)
}

// NewWriterUI writes to out. The spinner only runs when animate is set.
func NewWriterUI(out io.Writer, colors, animate bool) *TerminalUI {
	return &TerminalUI{
		out:    out,
		au:     aurora.NewAurora(colors),
		colors: colors,
		isTerm: animate,
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.level)
}

func (u *TerminalUI) line(s string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), s)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	}
	return t.Text
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.line(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.line(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.line(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.line(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.line(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

// Section prints
//
//	---------------- Deposits ----------------
//
// with a blank line around it.
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := max(sectionWidth-runewidth.StringWidth(titled), 6)
	left := bars / 2
	fmt.Fprintf(u.out, "\n%s%s%s%s\n\n", u.prefix(),
		strings.Repeat("-", left), u.au.Bold(titled), strings.Repeat("-", bars-left))
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, visibleWidth(r[0]))
	}
	for _, r := range rows {
		u.line(padRight(r[0], width) + "  " + r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	u.TableWithGroups(headers, [][][]string{rows})
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func padRight(s string, width int) string {
	if w := visibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func (u *TerminalUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(groups) == 0 {
		return
	}
	ncols := len(headers)
	for _, g := range groups {
		for _, r := range g {
			ncols = max(ncols, len(r))
		}
	}
	if ncols == 0 {
		return
	}

	widths := make([]int, ncols)
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], visibleWidth(c))
		}
	}
	measure(headers)
	for _, g := range groups {
		for _, r := range g {
			measure(r)
		}
	}

	style := lipgloss.NewStyle()
	if u.colors {
		style = style.Foreground(lipgloss.Color("240"))
	}
	rule := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return style.Render(left + strings.Join(parts, mid) + right)
	}
	row := func(cells []string) string {
		parts := make([]string, ncols)
		for i := range parts {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = " " + padRight(cell, widths[i]) + " "
		}
		bar := style.Render("│")
		return bar + strings.Join(parts, bar) + bar
	}

	u.line(rule("┌", "┬", "┐"))
	if len(headers) > 0 {
		u.line(row(headers))
		u.line(rule("├", "┼", "┤"))
	}
	for i, g := range groups {
		if i > 0 {
			u.line(rule("├", "┼", "┤"))
		}
		for _, r := range g {
			u.line(row(r))
		}
	}
	u.line(rule("└", "┴", "┘"))
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.isTerm {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.level++
	return &child
}

func (u *TerminalUI) Writer() io.Writer {
	if u.level == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
