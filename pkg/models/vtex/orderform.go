// Package vtex holds the raw VTEX document shapes as returned by the
// Checkout, Master Data and Catalog APIs. Monetary fields on the OrderForm
// side are integer minor currency units (cents).
package vtex

// OrderForm is the partial live-cart document from the Checkout API.
type OrderForm struct {
	OrderFormID          string                `json:"orderFormId"`
	Items                []OrderFormItem       `json:"items"`
	Totalizers           []Totalizer           `json:"totalizers"`
	ShippingData         *ShippingData         `json:"shippingData,omitempty"`
	RatesAndBenefitsData *RatesAndBenefitsData `json:"ratesAndBenefitsData,omitempty"`
	MarketingData        *MarketingData        `json:"marketingData,omitempty"`
	Value                int64                 `json:"value"` // cents
}

type OrderFormItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`        // cents
	ListPrice    int64  `json:"listPrice"`    // cents
	SellingPrice int64  `json:"sellingPrice"` // cents
	Seller       string `json:"seller"`
	RefID        string `json:"refId,omitempty"`
	Availability string `json:"availability,omitempty"`
}

// Totalizer is a named aggregate monetary entry ("Items", "Discounts",
// "Shipping", "Tax"). Discount values are negative.
type Totalizer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"` // cents
}

type ShippingData struct {
	Address           *Address        `json:"address,omitempty"`
	LogisticsInfo     []LogisticsInfo `json:"logisticsInfo,omitempty"`
	SelectedAddresses []Address       `json:"selectedAddresses,omitempty"`
}

type Address struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
}

type LogisticsInfo struct {
	ItemIndex               int    `json:"itemIndex"`
	SelectedSLA             string `json:"selectedSla,omitempty"`
	SelectedDeliveryChannel string `json:"selectedDeliveryChannel,omitempty"`
	Price                   int64  `json:"price,omitempty"`
}

type RatesAndBenefitsData struct {
	RateAndBenefitsIdentifiers []RateAndBenefit `json:"rateAndBenefitsIdentifiers,omitempty"`
}

// RateAndBenefit identifies one applied promotion. MatchedParameters may
// carry a "marketingTags" entry as a comma or semicolon delimited string.
type RateAndBenefit struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Featured          bool              `json:"featured,omitempty"`
	Description       string            `json:"description,omitempty"`
	MatchedParameters map[string]string `json:"matchedParameters,omitempty"`
}

type MarketingData struct {
	MarketingTags []string `json:"marketingTags,omitempty"`
	UTMCampaign   string   `json:"utmCampaign,omitempty"`
	UTMSource     string   `json:"utmSource,omitempty"`
	Coupon        string   `json:"coupon,omitempty"`
}
