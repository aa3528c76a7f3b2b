package vtex

// SKUDetails is the subset of the Catalog API SKU payload the comparator
// needs. Field names follow the API's PascalCase JSON.
type SKUDetails struct {
	ID              int      `json:"Id"`
	ProductID       int      `json:"ProductId"`
	IsActive        bool     `json:"IsActive"`
	Name            string   `json:"Name"`
	ProductName     string   `json:"ProductName"`
	SkuName         string   `json:"SkuName"`
	MeasurementUnit string   `json:"MeasurementUnit"`
	UnitMultiplier  float64  `json:"UnitMultiplier"`
	WeightKg        *float64 `json:"WeightKg"`
	Height          *float64 `json:"Height"`
	Width           *float64 `json:"Width"`
	Length          *float64 `json:"Length"`
	CubicWeight     float64  `json:"CubicWeight"`
	IsKit           bool     `json:"IsKit"`
	RefID           string   `json:"RefId"`
	EAN             string   `json:"EAN"`
}
