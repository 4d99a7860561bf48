package app

import (
	"fmt"

	"github.com/pointward/gateway/internal/backend"
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	inventoryBackend "github.com/pointward/gateway/internal/backend/inventory"
	ledgerBackend "github.com/pointward/gateway/internal/backend/ledger"
	recognitionBackend "github.com/pointward/gateway/internal/backend/recognition"
)

// IdentityClient returns the identity backend client.
func (c *Container) IdentityClient() (*identityBackend.Client, error) {
	c.identityClientInit.Do(func() {
		caller, err := c.newCaller("identity", c.config.IdentityEndpoint)
		if err != nil {
			c.initErrors["identityClient"] = err
			return
		}
		c.identityClient = identityBackend.NewClient(caller)
	})
	if storedErr, exists := c.initErrors["identityClient"]; exists {
		return nil, storedErr
	}
	return c.identityClient, nil
}

// RecognitionClient returns the face recognition backend client.
func (c *Container) RecognitionClient() (*recognitionBackend.Client, error) {
	c.recognitionClientInit.Do(func() {
		caller, err := c.newCaller("recognition", c.config.RecognitionEndpoint)
		if err != nil {
			c.initErrors["recognitionClient"] = err
			return
		}
		c.recognitionClient = recognitionBackend.NewClient(caller)
	})
	if storedErr, exists := c.initErrors["recognitionClient"]; exists {
		return nil, storedErr
	}
	return c.recognitionClient, nil
}

// InventoryClient returns the shop/inventory backend client.
func (c *Container) InventoryClient() (*inventoryBackend.Client, error) {
	c.inventoryClientInit.Do(func() {
		caller, err := c.newCaller("inventory", c.config.InventoryEndpoint)
		if err != nil {
			c.initErrors["inventoryClient"] = err
			return
		}
		c.inventoryClient = inventoryBackend.NewClient(caller)
	})
	if storedErr, exists := c.initErrors["inventoryClient"]; exists {
		return nil, storedErr
	}
	return c.inventoryClient, nil
}

// LedgerClient returns the transaction ledger backend client.
func (c *Container) LedgerClient() (*ledgerBackend.Client, error) {
	c.ledgerClientInit.Do(func() {
		caller, err := c.newCaller("ledger", c.config.LedgerEndpoint)
		if err != nil {
			c.initErrors["ledgerClient"] = err
			return
		}
		c.ledgerClient = ledgerBackend.NewClient(caller)
	})
	if storedErr, exists := c.initErrors["ledgerClient"]; exists {
		return nil, storedErr
	}
	return c.ledgerClient, nil
}

// newCaller builds a Caller for one downstream service with the shared
// timeout and upstream metrics.
func (c *Container) newCaller(service, endpoint string) (*backend.Caller, error) {
	upstreamMetrics, err := c.UpstreamMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get upstream metrics for %s caller: %w", service, err)
	}

	caller := backend.NewCaller(service, endpoint, c.config.BackendTimeout, c.Logger()).
		WithMetrics(upstreamMetrics)
	return caller, nil
}
