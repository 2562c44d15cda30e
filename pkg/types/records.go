package types

// RecommendationRecord is one Azure Advisor cost recommendation as projected
// by the recommendations ARG query. The id is not guaranteed unique by the
// service; nothing downstream may key on it.
type RecommendationRecord struct {
	ID             string
	Problem        string
	SubscriptionID string
	ResourceGroup  string
	VMName         string
	CurrentSKU     string
	RecommendedSKU string
	CPUPercent     string
	MemoryPercent  string
	NetworkPercent string
	// VMResourceID references VirtualMachineRecord.ResourceID. The target may
	// be outside the fetched VM set (truncation, deletion races).
	VMResourceID string
}

// VirtualMachineRecord is one VM as projected by the virtual machines ARG query.
type VirtualMachineRecord struct {
	ResourceID    string
	Name          string
	Location      string
	ApplicationID string
	MarketTag     string
	// NICResourceID references NetworkInterfaceRecord.ResourceID. Empty when
	// the VM carries no primary NIC reference.
	NICResourceID string
}

// NetworkInterfaceRecord is one NIC as projected by the network interfaces ARG query.
type NetworkInterfaceRecord struct {
	ResourceID                   string
	AcceleratedNetworkingEnabled bool
}

// ReportRow is the denormalized join of a recommendation with its VM and NIC.
// Exactly one row exists per recommendation processed. VM- and NIC-derived
// fields are pointers: nil means the referenced resource was not in the
// fetched set, which is distinct from an empty or false value.
type ReportRow struct {
	Recommendation   string
	VMName           *string
	SubscriptionName string
	SubscriptionID   string
	ResourceID       string
	VMSKU            string
	RecommendedSKU   string
	VMLocation       *string
	MarketTag        *string
	ApplicationID    *string
	CPUPercent       string
	MemoryPercent    string
	NetworkPercent   string
	// AccelNetEnabled is nil when the VM or its NIC was unresolved. A false
	// here always means the NIC was found with the feature disabled.
	AccelNetEnabled *bool
}
