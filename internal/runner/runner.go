// internal/runner/runner.go
package runner

import (
	"context"

	"github.com/fatih/color"

	"github.com/bl4cksku11/rto-toolkit/internal/core/logger"
	"github.com/bl4cksku11/rto-toolkit/internal/intel"
)

// Entry pairs one asset with the outcome of its lookup.
type Entry struct {
	Asset  string
	Result intel.Result
}

// Batch is the ordered outcome of one run, same order as the input list.
type Batch []Entry

// Successes counts entries that produced a report.
func (b Batch) Successes() int {
	n := 0
	for _, e := range b {
		if e.Result.Status == intel.StatusSuccess {
			n++
		}
	}
	return n
}

// Failures counts entries whose lookup errored.
func (b Batch) Failures() int {
	n := 0
	for _, e := range b {
		if e.Result.Status == intel.StatusFailure {
			n++
		}
	}
	return n
}

// Run looks up every asset in order, one at a time, against the provider.
// A failed lookup is recorded and the batch continues; there are no retries.
// Cancellation is checked between iterations only, so an in-flight lookup
// finishes before the runner stops. On cancellation the returned Batch holds
// exactly the entries obtained so far; otherwise its length always equals
// len(assets).
func Run(ctx context.Context, assets []string, provider intel.Provider) Batch {
	log := logger.GetLogger()
	batch := make(Batch, 0, len(assets))

	for i, asset := range assets {
		select {
		case <-ctx.Done():
			log.Warnf("Cancelled after %d of %d assets", len(batch), len(assets))
			return batch
		default:
		}

		log.Infof("[%d/%d] querying %s", i+1, len(assets), asset)
		res := provider.Lookup(ctx, asset)
		switch res.Status {
		case intel.StatusSuccess:
			color.Green("✅ %s: data found", asset)
		case intel.StatusEmpty:
			color.Yellow("⚠️  %s: no data", asset)
			log.Debugf("%s returned no data", asset)
		case intel.StatusFailure:
			color.Red("❌ %s: %v", asset, res.Err)
			log.Warnf("Query for %s failed: %v", asset, res.Err)
		}
		batch = append(batch, Entry{Asset: asset, Result: res})
	}
	return batch
}
