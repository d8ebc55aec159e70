package output

import (
	"fmt"
	"io"

	"github.com/ToineBo/brackets/internal/types"
)

// MarkdownFormatter outputs the report as GitHub-flavored markdown,
// designed for GitHub Actions Job Summaries and PR comments.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, report *types.Report) error {
	if len(report.Sections) == 0 {
		f.printClean(w, report)
		return nil
	}

	f.printSummary(w, report)
	for _, sec := range report.Sections {
		f.printSection(w, sec)
	}
	f.printFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) printClean(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "### :white_check_mark: Code Inspection — %s\n\n", report.Status.Summary())
	if report.FilePath != "" {
		fmt.Fprintf(w, "> `%s` · %d providers · %.2fs\n",
			report.FilePath, report.ProvidersRun, report.Duration.Seconds())
	}
}

func (f *MarkdownFormatter) printSummary(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "### :warning: Code Inspection — %s problems\n\n", report.Status.CountLabel())
	fmt.Fprintf(w, "> **File:** `%s` · %d providers · %.2fs\n\n",
		report.FilePath, report.ProvidersRun, report.Duration.Seconds())
}

func (f *MarkdownFormatter) printSection(w io.Writer, sec types.ProviderReport) {
	label := fmt.Sprintf("%d", sec.ProblemCount)
	if sec.Aborted {
		label += "+"
	}
	fmt.Fprintf(w, "<details open>\n<summary><b>%s</b> (%s)</summary>\n\n", sec.ProviderName, label)
	fmt.Fprintf(w, "| Line | Ch | Type | Message |\n")
	fmt.Fprintf(w, "|-----:|---:|------|---------|\n")
	for _, p := range sec.Problems {
		fmt.Fprintf(w, "| %d | %d | %s | %s |\n", p.Pos.Line+1, p.Pos.Ch, p.Type, p.Message)
	}
	if sec.Aborted {
		fmt.Fprintf(w, "\n_Scan did not finish; there may be more problems._\n")
	}
	fmt.Fprintf(w, "\n</details>\n\n")
}

func (f *MarkdownFormatter) printFooter(w io.Writer, report *types.Report) {
	fmt.Fprintf(w, "---\n\n_%s_\n", report.Status.Summary())
}
