// Package classify holds the rule tables that map keyword text to search
// intent, theme, and preliminary match type. Tables are declared as ordered
// slices because declaration order is the tie-break: the first matching
// indicator wins, and run-to-run reproducibility depends on it.
package classify

import (
	"strings"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// intentRule pairs an intent label with its indicator substrings.
type intentRule struct {
	Intent     string
	Indicators []string
}

var intentRules = []intentRule{
	{types.IntentInformational, []string{"what", "how", "why", "when", "where", "guide", "tips", "learn", "understand"}},
	{types.IntentNavigational, []string{"brand", "company", "website", "official", "homepage"}},
	{types.IntentCommercial, []string{"best", "top", "compare", "review", "vs", "alternative"}},
	{types.IntentTransactional, []string{"buy", "purchase", "order", "price", "cost", "deal", "discount", "sale"}},
	{types.IntentLocal, []string{"near me", "local", "nearby", "location", "address", "city", "area"}},
}

// SearchIntent classifies a keyword by scanning the intent table in order and
// returning the first intent with a matching indicator. Keywords with no
// matching indicator default to commercial.
func SearchIntent(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, rule := range intentRules {
		for _, indicator := range rule.Indicators {
			if strings.Contains(lower, indicator) {
				return rule.Intent
			}
		}
	}
	return types.IntentCommercial
}
