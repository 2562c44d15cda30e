package report

import (
	"context"
	"fmt"

	"github.com/finopsforge/azcm/internal/message"
	"github.com/finopsforge/azcm/pkg/azure"
	"github.com/finopsforge/azcm/pkg/types"
)

// Datasets holds one subscription's fetched records, indexed for the join
// phase. The maps are rebuilt for every subscription and contain only that
// subscription's rows.
type Datasets struct {
	Recommendations []types.RecommendationRecord
	VMs             map[string]types.VirtualMachineRecord
	NICs            map[string]types.NetworkInterfaceRecord
}

// LoadDatasets issues the three report queries for one subscription and
// materializes the results. Any query failure aborts the load; truncated
// result sets are reported as warnings and loading continues.
func LoadDatasets(ctx context.Context, q azure.Querier, subscriptionID string) (*Datasets, error) {
	recRows, err := fetch(ctx, q, subscriptionID, "recommendations", azure.QueryCostRecommendations)
	if err != nil {
		return nil, err
	}

	vmRows, err := fetch(ctx, q, subscriptionID, "virtualMachines", azure.QueryVirtualMachines)
	if err != nil {
		return nil, err
	}

	nicRows, err := fetch(ctx, q, subscriptionID, "networkInterfaces", azure.QueryNetworkInterfaces)
	if err != nil {
		return nil, err
	}

	return &Datasets{
		Recommendations: parseRecommendations(recRows),
		VMs:             indexVMs(vmRows),
		NICs:            indexNICs(nicRows),
	}, nil
}

func fetch(ctx context.Context, q azure.Querier, subscriptionID, dataset, query string) ([]map[string]any, error) {
	rows, total, err := q.Query(ctx, subscriptionID, query)
	if err != nil {
		return nil, fmt.Errorf("%s query failed for subscription %s: %w", dataset, subscriptionID, err)
	}

	if azure.Truncated(len(rows), total) {
		message.Warning("%s result set for subscription %s hit the %d row cap, joins may be incomplete",
			dataset, subscriptionID, azure.MaxRows)
	}

	return rows, nil
}

func parseRecommendations(rows []map[string]any) []types.RecommendationRecord {
	recs := make([]types.RecommendationRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, types.RecommendationRecord{
			ID:             str(row, "id"),
			Problem:        str(row, "problem"),
			SubscriptionID: str(row, "subscriptionId"),
			ResourceGroup:  str(row, "resourceGroup"),
			VMName:         str(row, "vmName"),
			CurrentSKU:     str(row, "currentSku"),
			RecommendedSKU: str(row, "targetSku"),
			CPUPercent:     str(row, "cpuPercent"),
			MemoryPercent:  str(row, "memoryPercent"),
			NetworkPercent: str(row, "networkPercent"),
			VMResourceID:   str(row, "vmId"),
		})
	}
	return recs
}

func indexVMs(rows []map[string]any) map[string]types.VirtualMachineRecord {
	vms := make(map[string]types.VirtualMachineRecord, len(rows))
	for _, row := range rows {
		vm := types.VirtualMachineRecord{
			ResourceID:    str(row, "vmId"),
			Name:          str(row, "name"),
			Location:      str(row, "location"),
			ApplicationID: str(row, "applicationId"),
			MarketTag:     str(row, "marketTag"),
			NICResourceID: str(row, "nicId"),
		}
		if vm.ResourceID == "" {
			continue
		}
		// First record wins on duplicate ids.
		if _, seen := vms[vm.ResourceID]; seen {
			continue
		}
		vms[vm.ResourceID] = vm
	}
	return vms
}

func indexNICs(rows []map[string]any) map[string]types.NetworkInterfaceRecord {
	nics := make(map[string]types.NetworkInterfaceRecord, len(rows))
	for _, row := range rows {
		nic := types.NetworkInterfaceRecord{
			ResourceID:                   str(row, "nicId"),
			AcceleratedNetworkingEnabled: boolean(row, "accelNet"),
		}
		if nic.ResourceID == "" {
			continue
		}
		if _, seen := nics[nic.ResourceID]; seen {
			continue
		}
		nics[nic.ResourceID] = nic
	}
	return nics
}

func str(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func boolean(row map[string]any, key string) bool {
	if v, ok := row[key].(bool); ok {
		return v
	}
	return false
}
