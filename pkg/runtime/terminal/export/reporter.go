package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

type TableConfig struct {
	KeyWidth         int
	StatusWidth      int
	ImpactWidth      int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:         16,
		StatusWidth:      20,
		ImpactWidth:      10,
		DescriptionWidth: 70,
	}
}

// Reporter renders comparison results as fixed-width text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(key, status, impact, desc interface{}) string {
			return fmt.Sprintf("| %-*v | %-*v | %-*v | %-*v |",
				c.config.KeyWidth, key,
				c.config.StatusWidth, status,
				c.config.ImpactWidth, impact,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.KeyWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.ImpactWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("R$ %.2f", v)
		},
		"signed": func(v float64) string {
			return fmt.Sprintf("%+.2f", v)
		},
	}
}

func (c *Reporter) render(name, tmpl string, data interface{}) error {
	t, err := template.New(name).Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

// HandleComparison renders a budget-vs-cart comparison result.
func (c *Reporter) HandleComparison(result *domain.ComparisonResult) error {
	tmpl := `
Budget vs Cart: {{.Metadata.BudgetID}} vs {{.Metadata.OrderFormID}}
Compared At: {{.Metadata.ComparedAt.Format "2006-01-02 15:04:05"}}

Overall Impact: {{.Summary.OverallImpact}}
Differences: {{.Summary.TotalDiffs}} total ({{.Summary.CriticalDiffs}} critical, {{.Summary.HighDiffs}} high, {{.Summary.MediumDiffs}} medium)
Financial Impact: {{money .Summary.FinancialImpact}}

=== Items ===
{{separator}}
{{formatRow "SKU" "Status" "Impact" "Explanation"}}
{{separator}}
{{range .ItemDiffs}}{{formatRow .SkuID .Status .Impact .Explanation}}
{{end}}{{separator}}

=== Totals ===
Impact: {{.TotalsDiff.Impact}}
Total: {{money .TotalsDiff.Total.Budget}} vs {{money .TotalsDiff.Total.Cart}} ({{signed .TotalsDiff.Total.Diff}}, {{signed .TotalsDiff.Total.DiffPct}}%)
{{if .TotalsDiff.Explanation}}{{.TotalsDiff.Explanation}}
{{end}}
{{- if .ShippingDiff}}
=== Shipping ===
Impact: {{.ShippingDiff.Impact}}
{{if .ShippingDiff.Explanation}}{{.ShippingDiff.Explanation}}
{{end}}
{{- end}}
{{- if .PromoDiffs}}
=== Promotions ===
{{range .PromoDiffs}}- [{{.Impact}}] {{.Name}}: {{.Explanation}}
{{end}}
{{- end}}
{{- if .MarketingTagDiffs}}
=== Marketing Tags ===
{{range .MarketingTagDiffs}}- [{{.Impact}}] {{.Tag}}: {{.Explanation}}
{{end}}
{{- end}}
`
	return c.render("comparison", tmpl, result)
}

// HandleBudgetComparison renders a budget-vs-budget comparison result.
func (c *Reporter) HandleBudgetComparison(result *domain.BudgetComparisonResult) error {
	tmpl := `
Budget vs Budget: {{.Metadata.Budget1ID}} vs {{.Metadata.Budget2ID}}
Compared At: {{.Metadata.ComparedAt.Format "2006-01-02 15:04:05"}}

Overall Impact: {{.Summary.OverallImpact}}
Differences: {{.Summary.TotalDiffs}} total ({{.Summary.CriticalDiffs}} critical, {{.Summary.HighDiffs}} high, {{.Summary.MediumDiffs}} medium)
Financial Difference: {{money .Summary.FinancialDifference}}

=== Items ===
{{separator}}
{{formatRow "SKU" "Status" "Impact" "Explanation"}}
{{separator}}
{{range .ItemDiffs}}{{formatRow .SkuID .Status .Impact .Explanation}}
{{end}}{{separator}}

=== Totals ===
Impact: {{.TotalsDiff.Impact}}
Total: {{money .TotalsDiff.Total.Budget1}} vs {{money .TotalsDiff.Total.Budget2}} ({{signed .TotalsDiff.Total.Diff}}, {{signed .TotalsDiff.Total.DiffPct}}%)
{{if .TotalsDiff.Explanation}}{{.TotalsDiff.Explanation}}
{{end}}
=== Weight ===
Budget 1: {{printf "%.2f" .WeightInfo.Budget1.TotalWeight}} kg, Budget 2: {{printf "%.2f" .WeightInfo.Budget2.TotalWeight}} kg (heavier: {{.WeightInfo.Heavier}})
Same freight weight band: {{.WeightInfo.SameWeightRange}}{{if not .WeightInfo.SameWeightRange}} ({{.WeightInfo.RangeDifference}} bands apart){{end}}

=== Price Analysis ===
Cheaper budget: {{.PriceAnalysis.CheaperBudget}} ({{money .PriceAnalysis.PriceDifference}})
{{range .PriceAnalysis.Breakdown}}- {{.Category}}: {{money .Budget1Value}} vs {{money .Budget2Value}} ({{signed .Difference}}, {{.Impact}})
{{end}}
{{- if .ShippingDiff}}
=== Shipping ===
Impact: {{.ShippingDiff.Impact}}
{{if .ShippingDiff.Explanation}}{{.ShippingDiff.Explanation}}
{{end}}
{{- end}}
{{- if .PromoDiffs}}
=== Promotions ===
{{range .PromoDiffs}}- [{{.Impact}}] {{.Name}}: {{.Explanation}}
{{end}}
{{- end}}
{{- if .MarketingTagDiffs}}
=== Marketing Tags ===
{{range .MarketingTagDiffs}}- [{{.Impact}}] {{.Tag}}: {{.Explanation}}
{{end}}
{{- end}}
`
	return c.render("budget_comparison", tmpl, result)
}
