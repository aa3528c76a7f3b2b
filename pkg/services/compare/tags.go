package compare

import (
	"fmt"
	"strings"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// TagPresence records where one marketing tag was found.
type TagPresence struct {
	InBudget bool
	InCart   bool
	Match    bool
}

// CheckMarketingTag looks one tag up on both sides, case-insensitively.
func CheckMarketingTag(tag string, budgetTags, cartTags []string) TagPresence {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	inBudget := containsTag(budgetTags, normalized)
	inCart := containsTag(cartTags, normalized)
	return TagPresence{InBudget: inBudget, InCart: inCart, Match: inBudget == inCart}
}

func containsTag(tags []string, normalized string) bool {
	for _, t := range tags {
		if strings.ToLower(strings.TrimSpace(t)) == normalized {
			return true
		}
	}
	return false
}

// CompareMarketingTags verifies the watch-listed tags explicitly and then
// sweeps both tag sets for divergences. Watch-list tags carry business
// meaning so their divergences are high (budget only) or medium (cart only);
// the catch-all sweep emits low-severity informational diffs.
func CompareMarketingTags(budgetTags, cartTags, watchTags []string) []domain.MarketingTagDiff {
	if watchTags == nil {
		watchTags = []string{LoyaltyTag}
	}

	var diffs []domain.MarketingTagDiff

	normalizedBudget := normalizeTags(budgetTags)
	normalizedCart := normalizeTags(cartTags)

	for _, tag := range watchTags {
		check := CheckMarketingTag(tag, normalizedBudget, normalizedCart)
		if !check.InBudget && !check.InCart {
			continue
		}

		impact := domain.SeverityNone
		explanation := ""
		if !check.Match {
			if check.InBudget {
				impact = domain.SeverityHigh
				explanation = fmt.Sprintf(
					"Tag %q is in the budget but was not applied to the cart. The associated promotion may not apply.", tag)
			} else {
				impact = domain.SeverityMedium
				explanation = fmt.Sprintf(
					"Tag %q was applied to the cart but was not planned in the budget.", tag)
			}
		}

		diffs = append(diffs, domain.MarketingTagDiff{
			Tag:         tag,
			InBudget:    check.InBudget,
			InCart:      check.InCart,
			Match:       check.Match,
			Impact:      impact,
			Explanation: explanation,
		})
	}

	for _, budgetTag := range normalizedBudget {
		if isWatchTag(watchTags, budgetTag) || containsTag(normalizedCart, budgetTag) {
			continue
		}
		diffs = append(diffs, domain.MarketingTagDiff{
			Tag:         budgetTag,
			InBudget:    true,
			Impact:      domain.SeverityLow,
			Explanation: fmt.Sprintf("Tag %q from the budget was not found in the cart.", budgetTag),
		})
	}

	for _, cartTag := range normalizedCart {
		if isWatchTag(watchTags, cartTag) || containsTag(normalizedBudget, cartTag) {
			continue
		}
		diffs = append(diffs, domain.MarketingTagDiff{
			Tag:         cartTag,
			InCart:      true,
			Impact:      domain.SeverityLow,
			Explanation: fmt.Sprintf("Tag %q from the cart was not in the budget.", cartTag),
		})
	}

	return diffs
}

// CheckLoyaltyTag runs the loyalty redemption tag check on its own, with a
// detailed explanation for either divergence direction.
func CheckLoyaltyTag(budgetTags, cartTags []string) domain.MarketingTagDiff {
	check := CheckMarketingTag(LoyaltyTag, budgetTags, cartTags)

	diff := domain.MarketingTagDiff{
		Tag:      LoyaltyTag,
		InBudget: check.InBudget,
		InCart:   check.InCart,
		Match:    check.Match,
		Impact:   domain.SeverityNone,
	}

	switch {
	case check.InBudget && !check.InCart:
		diff.Impact = domain.SeverityHigh
		diff.Explanation = fmt.Sprintf(
			"Tag %q is in the budget but not in the cart. The customer may be unable to redeem loyalty points.", LoyaltyTag)
	case !check.InBudget && check.InCart:
		diff.Impact = domain.SeverityMedium
		diff.Explanation = fmt.Sprintf(
			"Tag %q was applied to the cart but was not planned in the budget.", LoyaltyTag)
	case check.InBudget && check.InCart:
		diff.Explanation = fmt.Sprintf(
			"Tag %q present on both sides; loyalty points can be redeemed.", LoyaltyTag)
	}

	return diff
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ToLower(strings.TrimSpace(t)))
	}
	return out
}

func isWatchTag(watchTags []string, tag string) bool {
	for _, w := range watchTags {
		if strings.ToLower(strings.TrimSpace(w)) == tag {
			return true
		}
	}
	return false
}
