package vtex

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

const catalogFetchConcurrency = 8

// CatalogClient resolves SKU weights from the Catalog API.
type CatalogClient struct {
	client *Client
}

func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// GetSkuWeights fetches each SKU's details and returns the weights in
// kilograms. SKUs the catalog does not know, or that carry no weight, are
// left out of the map rather than failing the whole run.
func (c *CatalogClient) GetSkuWeights(ctx context.Context, skuIDs []string) (map[string]float64, error) {
	logger := zerolog.Ctx(ctx)

	weights := make(map[string]float64, len(skuIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(catalogFetchConcurrency)
	for _, skuID := range skuIDs {
		skuID := skuID
		g.Go(func() error {
			var details vtex.SKUDetails
			status, err := c.client.getJSON(gctx, "/api/catalog/pvt/stockkeepingunit/"+skuID, &details)
			if err != nil {
				if status == http.StatusNotFound {
					logger.Warn().Str("sku_id", skuID).Msg("sku not found in catalog, skipping weight")
					return nil
				}
				return err
			}
			if details.WeightKg == nil {
				return nil
			}
			mu.Lock()
			weights[skuID] = *details.WeightKg
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return weights, nil
}
