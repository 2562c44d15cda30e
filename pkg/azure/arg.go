package azure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
)

// MaxRows is the row cap the Resource Graph service enforces per query. A
// result set of exactly this size must be treated as possibly truncated.
const MaxRows = 5000

// Querier executes a Resource Graph query scoped to a single subscription and
// returns the result rows plus the service-reported total record count.
type Querier interface {
	Query(ctx context.Context, subscriptionID, query string) ([]map[string]any, int64, error)
}

// ARGClient wraps the ARG client for easier use
type ARGClient struct {
	client *armresourcegraph.Client
	logger *slog.Logger
}

// NewARGClient creates a new ARG client using default credentials
func NewARGClient(ctx context.Context) (*ARGClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	client, err := armresourcegraph.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ARG client: %w", err)
	}

	return &ARGClient{
		client: client,
		logger: slog.Default().With("component", "ARGClient"),
	}, nil
}

// Query runs an ARG query against one subscription with Top fixed at MaxRows.
// Rows beyond the cap are dropped by the service, not by this client; callers
// detect that with Truncated.
func (c *ARGClient) Query(ctx context.Context, subscriptionID, query string) ([]map[string]any, int64, error) {
	request := armresourcegraph.QueryRequest{
		Query:         &query,
		Subscriptions: []*string{&subscriptionID},
		Options: &armresourcegraph.QueryRequestOptions{
			Top:          to.Ptr(int32(MaxRows)),
			ResultFormat: to.Ptr(armresourcegraph.ResultFormatObjectArray),
		},
	}

	response, err := c.client.Resources(ctx, request, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute ARG query for subscription %s: %w", subscriptionID, err)
	}

	var total int64
	if response.TotalRecords != nil {
		total = *response.TotalRecords
	}

	rows, err := objectArray(response.Data)
	if err != nil {
		return nil, 0, err
	}

	c.logger.Debug("ARG query complete", "subscription", subscriptionID, "rows", len(rows), "total", total)
	return rows, total, nil
}

// Truncated reports whether a result set hit the service row cap. TotalRecords
// can exceed the returned count, or the service can cap both, so either signal
// counts.
func Truncated(returned int, total int64) bool {
	return returned >= MaxRows || total > int64(returned)
}

func objectArray(data any) ([]map[string]any, error) {
	if data == nil {
		return nil, nil
	}

	raw, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected ARG response data type %T", data)
	}

	rows := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected ARG row type %T", item)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
