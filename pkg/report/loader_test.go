package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finopsforge/azcm/internal/message"
	"github.com/finopsforge/azcm/pkg/azure"
)

// fakeQuerier serves canned rows keyed by subscription id and query text.
type fakeQuerier struct {
	rows   map[string][]map[string]any
	totals map[string]int64
	err    error
}

func (f *fakeQuerier) Query(ctx context.Context, subscriptionID, query string) ([]map[string]any, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	key := subscriptionID + "|" + query
	rows := f.rows[key]
	total := f.totals[key]
	if total == 0 {
		total = int64(len(rows))
	}
	return rows, total, nil
}

func key(subscriptionID, query string) string {
	return subscriptionID + "|" + query
}

func TestLoadDatasets(t *testing.T) {
	message.SetOutput(&bytes.Buffer{})

	q := &fakeQuerier{rows: map[string][]map[string]any{
		key("sub1", azure.QueryCostRecommendations): {
			{
				"id":             "rec1",
				"problem":        "Right-size underutilized virtual machines",
				"subscriptionId": "sub1",
				"resourceGroup":  "rg1",
				"vmName":         "vm1",
				"currentSku":     "Standard_D2",
				"targetSku":      "Standard_D1",
				"cpuPercent":     "4",
				"memoryPercent":  "12",
				"networkPercent": "1",
				"vmId":           "vm1",
			},
		},
		key("sub1", azure.QueryVirtualMachines): {
			{"vmId": "vm1", "name": "vm1", "location": "westeurope", "applicationId": "APP-1", "marketTag": "EMEA", "nicId": "nic1"},
			{"vmId": "vm1", "name": "vm1-duplicate", "location": "eastus"},
			{"vmId": "", "name": "unkeyed"},
		},
		key("sub1", azure.QueryNetworkInterfaces): {
			{"nicId": "nic1", "accelNet": true},
			{"nicId": "nic2", "accelNet": false},
		},
	}}

	ds, err := LoadDatasets(context.Background(), q, "sub1")
	require.NoError(t, err)

	require.Len(t, ds.Recommendations, 1)
	assert.Equal(t, "Standard_D1", ds.Recommendations[0].RecommendedSKU)
	assert.Equal(t, "vm1", ds.Recommendations[0].VMResourceID)

	// Duplicate ids keep the first-seen record; rows without an id are dropped.
	require.Len(t, ds.VMs, 1)
	assert.Equal(t, "vm1", ds.VMs["vm1"].Name)
	assert.Equal(t, "westeurope", ds.VMs["vm1"].Location)

	require.Len(t, ds.NICs, 2)
	assert.True(t, ds.NICs["nic1"].AcceleratedNetworkingEnabled)
	assert.False(t, ds.NICs["nic2"].AcceleratedNetworkingEnabled)
}

func TestLoadDatasetsQueryFailure(t *testing.T) {
	message.SetOutput(&bytes.Buffer{})

	q := &fakeQuerier{err: errors.New("query is invalid")}

	_, err := LoadDatasets(context.Background(), q, "sub1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub1")
	assert.Contains(t, err.Error(), "recommendations")
}

func TestLoadDatasetsTruncationWarning(t *testing.T) {
	var out bytes.Buffer
	message.SetOutput(&out)
	message.SetNoColor(true)
	t.Cleanup(func() { message.SetOutput(&bytes.Buffer{}) })

	vmRows := make([]map[string]any, azure.MaxRows)
	for i := range vmRows {
		vmRows[i] = map[string]any{"vmId": fmt.Sprintf("vm%d", i), "name": fmt.Sprintf("vm%d", i)}
	}

	q := &fakeQuerier{
		rows:   map[string][]map[string]any{key("sub1", azure.QueryVirtualMachines): vmRows},
		totals: map[string]int64{key("sub1", azure.QueryVirtualMachines): 7500},
	}

	ds, err := LoadDatasets(context.Background(), q, "sub1")
	require.NoError(t, err)
	assert.Len(t, ds.VMs, azure.MaxRows)

	assert.Contains(t, out.String(), "virtualMachines")
	assert.Contains(t, out.String(), "row cap")
}
