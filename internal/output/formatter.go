// Package output formats inspection reports for terminal (ANSI), JSON,
// SARIF, and Markdown output.
package output

import (
	"io"

	"github.com/ToineBo/brackets/internal/types"
)

// Formatter is the interface for outputting inspection reports.
type Formatter interface {
	Format(w io.Writer, report *types.Report) error
}
