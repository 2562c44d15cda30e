package report

import (
	"context"
	"fmt"

	"github.com/finopsforge/azcm/internal/message"
	"github.com/finopsforge/azcm/pkg/azure"
	"github.com/finopsforge/azcm/pkg/types"
)

// Runner drives the load and join phases across subscriptions, accumulating
// every row into a single report in fetch order. A failure for any
// subscription aborts the whole run; no partial report is produced.
type Runner struct {
	Queries azure.Querier
	Names   azure.SubscriptionNamer

	// Progress is invoked once per recommendation joined. Nil disables
	// per-item reporting.
	Progress func(current, total int)
}

func (r *Runner) Run(ctx context.Context, subscriptionIDs []string) ([]types.ReportRow, error) {
	var rows []types.ReportRow

	for _, subscriptionID := range subscriptionIDs {
		name, err := r.Names.DisplayName(ctx, subscriptionID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subscription %s: %w", subscriptionID, err)
		}

		message.Info("Processing subscription %s (%s)", name, subscriptionID)

		datasets, err := LoadDatasets(ctx, r.Queries, subscriptionID)
		if err != nil {
			return nil, err
		}

		message.Info("Found %d cost recommendations in subscription %s", len(datasets.Recommendations), name)

		for i, rec := range datasets.Recommendations {
			rows = append(rows, Correlate(rec, name, datasets.VMs, datasets.NICs))
			if r.Progress != nil {
				r.Progress(i+1, len(datasets.Recommendations))
			}
		}
	}

	return rows, nil
}
