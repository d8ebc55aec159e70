package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ToineBo/brackets/internal/types"
)

// ANSI color codes
const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	dim       = "\033[2m"
	underline = "\033[4m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	cyan      = "\033[36m"
)

const (
	lineWidth    = 72
	messageWidth = 56
)

// TerminalFormatter renders the problems panel as text: a one-line status
// summary followed by one section per provider, rows in provider order.
type TerminalFormatter struct {
	NoColor bool
	Verbose bool
}

func (f *TerminalFormatter) color(code, text string) string {
	if f.NoColor {
		return text
	}
	return code + text + reset
}

func (f *TerminalFormatter) Format(w io.Writer, report *types.Report) error {
	if !f.NoColor {
		if os.Getenv("NO_COLOR") != "" {
			f.NoColor = true
		}
	}

	f.printHeader(w, report)
	f.printStatus(w, report.Status)

	for _, sec := range report.Sections {
		f.printSection(w, sec)
	}

	f.printFooter(w, report)
	return nil
}

func (f *TerminalFormatter) separator() string {
	return strings.Repeat("─", lineWidth)
}

func (f *TerminalFormatter) sectionHeader(title string) string {
	prefix := "── " + title + " "
	displayLen := utf8.RuneCountInString(prefix)
	remaining := max(lineWidth-displayLen, 0)
	return prefix + strings.Repeat("─", remaining)
}

func (f *TerminalFormatter) printHeader(w io.Writer, report *types.Report) {
	sep := f.separator()
	fmt.Fprintf(w, "\n%s\n", f.color(dim, sep))
	fmt.Fprintf(w, "  %s\n", f.color(bold, "CODE INSPECTION"))

	var parts []string
	if report.FilePath != "" {
		parts = append(parts, fmt.Sprintf("File: %s", report.FilePath))
	}
	if report.Language != "" {
		parts = append(parts, report.Language)
	}
	if report.ProvidersRun > 0 {
		noun := "providers"
		if report.ProvidersRun == 1 {
			noun = "provider"
		}
		parts = append(parts, fmt.Sprintf("%d %s", report.ProvidersRun, noun))
	}
	if report.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%.2fs", report.Duration.Seconds()))
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ·  "))
	}
	fmt.Fprintf(w, "%s\n", f.color(dim, sep))
}

func (f *TerminalFormatter) printStatus(w io.Writer, status types.Status) {
	var icon string
	switch status.Kind {
	case types.StatusClean:
		icon = f.color(green, "✔")
	case types.StatusProblems:
		icon = f.color(red, "✖")
	default:
		icon = f.color(dim, "○")
	}
	fmt.Fprintf(w, "\n  %s %s\n", icon, f.color(bold, status.Summary()))
}

func (f *TerminalFormatter) printSection(w io.Writer, sec types.ProviderReport) {
	label := fmt.Sprintf("%d", sec.ProblemCount)
	if sec.Aborted {
		label += "+"
	}
	header := f.sectionHeader(fmt.Sprintf("%s (%s)", sec.ProviderName, label))
	fmt.Fprintf(w, "\n%s\n", f.color(bold, header))

	for _, p := range sec.Problems {
		f.printProblem(w, p)
	}
	if sec.Aborted {
		fmt.Fprintf(w, "    %s\n", f.color(dim, "(scan did not finish; there may be more problems)"))
	}
}

func (f *TerminalFormatter) printProblem(w io.Writer, p types.Problem) {
	// Lines are stored zero-based; render them one-based.
	loc := fmt.Sprintf("line %d, ch %d", p.Pos.Line+1, p.Pos.Ch)
	locPadded := fmt.Sprintf("%-18s", loc)
	msg := p.Message
	if !f.Verbose {
		msg = truncate(msg, messageWidth)
	}

	fmt.Fprintf(w, "    %s %s %s\n",
		f.typeIcon(p.Type),
		f.color(cyan, locPadded),
		msg,
	)
	if f.Verbose && p.EndPos != nil {
		fmt.Fprintf(w, "      %s %s\n",
			f.color(dim, "│"),
			f.color(dim, fmt.Sprintf("through line %d, ch %d", p.EndPos.Line+1, p.EndPos.Ch)),
		)
	}
}

func (f *TerminalFormatter) typeIcon(t types.ProblemType) string {
	switch t {
	case types.TypeError:
		return f.color(red, "✖")
	case types.TypeMeta:
		return f.color(dim, "ℹ")
	default:
		return f.color(yellow, "⚠")
	}
}

func (f *TerminalFormatter) printFooter(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "\n%s\n", f.color(dim, f.separator()))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
