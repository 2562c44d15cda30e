package report

import "github.com/finopsforge/azcm/pkg/types"

// Correlate joins one recommendation against the VM and NIC indexes and
// returns the denormalized report row. The function is total: a
// recommendation whose VM is outside the fetched set still produces a row
// with nil VM and NIC fields, and a VM whose NIC is unresolved leaves
// AccelNetEnabled nil rather than false.
func Correlate(rec types.RecommendationRecord, subscriptionName string, vms map[string]types.VirtualMachineRecord, nics map[string]types.NetworkInterfaceRecord) types.ReportRow {
	row := types.ReportRow{
		Recommendation:   rec.Problem,
		SubscriptionName: subscriptionName,
		SubscriptionID:   rec.SubscriptionID,
		ResourceID:       rec.VMResourceID,
		VMSKU:            rec.CurrentSKU,
		RecommendedSKU:   rec.RecommendedSKU,
		CPUPercent:       rec.CPUPercent,
		MemoryPercent:    rec.MemoryPercent,
		NetworkPercent:   rec.NetworkPercent,
	}

	vm, ok := vms[rec.VMResourceID]
	if !ok {
		return row
	}

	row.VMName = &vm.Name
	row.VMLocation = &vm.Location
	row.MarketTag = &vm.MarketTag
	row.ApplicationID = &vm.ApplicationID

	if vm.NICResourceID == "" {
		return row
	}

	nic, ok := nics[vm.NICResourceID]
	if !ok {
		return row
	}

	row.AccelNetEnabled = &nic.AcceleratedNetworkingEnabled
	return row
}
