package vtex

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

var (
	plainIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	queryParamPattern  = regexp.MustCompile(`(?i)orderFormId=([a-zA-Z0-9-]+)`)
	pathSegmentPattern = regexp.MustCompile(`(?i)orderForm/([a-zA-Z0-9-]+)`)
	hexIDPattern       = regexp.MustCompile(`(?i)([a-f0-9]{32,})`)
)

// ExtractOrderFormID pulls the orderForm id out of a checkout URL. Accepts a
// raw id, an orderFormId query parameter, an /orderForm/{id} path segment or
// a bare 32+ character hex id embedded anywhere in the URL.
func ExtractOrderFormID(url string) (string, error) {
	if plainIDPattern.MatchString(url) && len(url) > 10 {
		return url, nil
	}
	if m := queryParamPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	if m := pathSegmentPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	if m := hexIDPattern.FindStringSubmatch(url); m != nil {
		return m[1], nil
	}
	return "", apperrors.NewValidation("orderFormUrl",
		fmt.Sprintf("could not extract an orderForm id from %q; provide the full cart URL or the id itself", url))
}

// CheckoutClient fetches live carts from the Checkout API.
type CheckoutClient struct {
	client *Client
}

func NewCheckoutClient(client *Client) *CheckoutClient {
	return &CheckoutClient{client: client}
}

func (c *CheckoutClient) GetOrderForm(ctx context.Context, orderFormID string) (*vtex.OrderForm, error) {
	var orderForm vtex.OrderForm
	status, err := c.client.getJSON(ctx, "/api/checkout/pub/orderForm/"+orderFormID, &orderForm)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, apperrors.NewNotFound("order form", orderFormID)
		}
		return nil, err
	}
	return &orderForm, nil
}
