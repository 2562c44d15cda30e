package azure

// The three report queries. Each projects flat columns so the loader can read
// rows without walking nested property bags, and lowercases every resource id
// used as a join key since ARM ids are not case-stable across services.
const (
	QueryCostRecommendations = `advisorresources
| where type == 'microsoft.advisor/recommendations'
| where properties.category == 'Cost' and properties.impactedField == 'Microsoft.Compute/virtualMachines'
| project id,
    problem = tostring(properties.shortDescription.problem),
    subscriptionId,
    resourceGroup,
    vmName = tostring(properties.impactedValue),
    currentSku = tostring(properties.extendedProperties.currentSku),
    targetSku = tostring(properties.extendedProperties.targetSku),
    cpuPercent = tostring(properties.extendedProperties.MaxCpuP95),
    memoryPercent = tostring(properties.extendedProperties.MaxMemoryP95),
    networkPercent = tostring(properties.extendedProperties.MaxTotalNetworkP95),
    vmId = tolower(tostring(properties.resourceMetadata.resourceId))`

	QueryVirtualMachines = `resources
| where type == 'microsoft.compute/virtualmachines'
| project vmId = tolower(id),
    name,
    location,
    applicationId = tostring(tags['ApplicationID']),
    marketTag = tostring(tags['Market']),
    nicId = tolower(tostring(properties.networkProfile.networkInterfaces[0].id))`

	QueryNetworkInterfaces = `resources
| where type == 'microsoft.network/networkinterfaces'
| project nicId = tolower(id),
    accelNet = tobool(properties.enableAcceleratedNetworking)`
)
