// Package inspect selects the providers applicable to a document, invokes
// them in registration order, and merges their results into a single ordered
// report with a derived status.
package inspect

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ToineBo/brackets/internal/registry"
	"github.com/ToineBo/brackets/internal/types"
)

// Runner runs registered providers against one document at a time. It holds
// no state of its own beyond the registry reference; every Run recomputes the
// report from scratch.
type Runner struct {
	registry *registry.Registry
}

// New creates a Runner backed by reg.
func New(reg *registry.Registry) *Runner {
	return &Runner{registry: reg}
}

// Registry returns the registry this runner consults.
func (r *Runner) Registry() *registry.Registry {
	return r.registry
}

// DisabledReport builds the report published when inspection is globally
// disabled. No provider is consulted.
func DisabledReport(doc *types.Document) *types.Report {
	rep := &types.Report{Status: types.Status{Kind: types.StatusDisabled}}
	if doc != nil {
		rep.FilePath = doc.Path
		rep.Language = doc.Language
	}
	return rep
}

// Run inspects doc with every enabled provider registered for its language
// and aggregates the results. A nil document or a document whose language has
// no providers yields a no-document / no-provider status and an empty report.
// The only error returned is context cancellation between providers.
func (r *Runner) Run(ctx context.Context, doc *types.Document) (*types.Report, error) {
	start := time.Now()

	if doc == nil || doc.Path == "" {
		return &types.Report{
			Status:   types.Status{Kind: types.StatusNoDocument},
			Duration: time.Since(start),
		}, nil
	}

	providers := r.registry.ProvidersFor(doc.Language)
	if len(providers) == 0 {
		return &types.Report{
			FilePath: doc.Path,
			Language: doc.Language,
			Status:   types.Status{Kind: types.StatusNoProvider, Language: doc.Language},
			Duration: time.Since(start),
		}, nil
	}

	var (
		sections     []types.ProviderReport
		total        int
		aborted      bool
		providersRun int
	)

	for _, p := range providers {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !r.registry.IsEnabled(p) {
			continue
		}
		providersRun++

		result := scanOne(ctx, p, doc)
		if result == nil {
			continue
		}
		// One abort marks the whole run, even from a provider that
		// reported no errors.
		if result.Aborted {
			aborted = true
		}
		if len(result.Errors) == 0 {
			continue
		}

		count := types.CountNonMeta(result.Errors)
		total += count
		sections = append(sections, types.ProviderReport{
			ProviderName: p.Name(),
			Problems:     result.Errors,
			ProblemCount: count,
			Aborted:      result.Aborted,
		})
	}

	return &types.Report{
		FilePath:     doc.Path,
		Language:     doc.Language,
		Sections:     sections,
		ProblemCount: total,
		Aborted:      aborted,
		Status:       DeriveStatus(total, aborted),
		ProvidersRun: providersRun,
		Duration:     time.Since(start),
	}, nil
}

// DeriveStatus maps an aggregated count and abort flag to a status. A zero
// count with an abort still surfaces as problems ("0+"): the provider could
// not finish, so the file is not known to be clean.
func DeriveStatus(total int, aborted bool) types.Status {
	if total == 0 && !aborted {
		return types.Status{Kind: types.StatusClean}
	}
	return types.Status{Kind: types.StatusProblems, ProblemCount: total, Aborted: aborted}
}

// scanOne invokes a single provider, isolating the run from provider
// failures: an error or panic becomes a synthetic abort for that provider
// instead of taking down the aggregation of the others.
func scanOne(ctx context.Context, p registry.Provider, doc *types.Document) (result *types.ScanResult) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "brackets-inspect: warning: provider %s panicked on %s: %v\n", p.Name(), doc.Path, rec)
			result = &types.ScanResult{Aborted: true}
		}
	}()

	out, err := p.ScanFile(ctx, doc.Text, doc.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brackets-inspect: warning: provider %s failed on %s: %v\n", p.Name(), doc.Path, err)
		return &types.ScanResult{Aborted: true}
	}
	return out
}
