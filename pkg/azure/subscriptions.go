package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// SubscriptionNamer resolves a subscription id to its display name.
type SubscriptionNamer interface {
	DisplayName(ctx context.Context, subscriptionID string) (string, error)
}

// SubscriptionClient resolves subscription metadata through the ARM
// subscriptions API.
type SubscriptionClient struct {
	client *armsubscriptions.Client
}

// NewSubscriptionClient creates a subscription metadata client using default credentials
func NewSubscriptionClient() (*SubscriptionClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get Azure credentials: %w", err)
	}

	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &SubscriptionClient{client: client}, nil
}

func (c *SubscriptionClient) DisplayName(ctx context.Context, subscriptionID string) (string, error) {
	sub, err := c.client.Get(ctx, subscriptionID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription details for %s: %w", subscriptionID, err)
	}

	if sub.DisplayName == nil {
		return "Unknown", nil
	}
	return *sub.DisplayName, nil
}
