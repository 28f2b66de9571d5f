package classify

import "strings"

// ThemeRule pairs a theme label with its indicator substrings.
type ThemeRule struct {
	Theme      string
	Indicators []string
}

// Theme tables per business archetype. Unknown business types fall back to
// the general table.
var generalThemes = []ThemeRule{
	{"products", []string{"product", "service", "item", "solution"}},
	{"quality", []string{"best", "quality", "premium", "professional"}},
	{"pricing", []string{"price", "cost", "affordable", "cheap", "expensive"}},
	{"location", []string{"near me", "local", "location", "area"}},
	{"reviews", []string{"review", "rating", "feedback", "testimonial"}},
}

var ecommerceThemes = []ThemeRule{
	{"products", []string{"buy", "shop", "store", "online", "ecommerce"}},
	{"categories", []string{"category", "type", "brand", "model"}},
	{"shipping", []string{"shipping", "delivery", "fast", "free shipping"}},
	{"returns", []string{"return", "refund", "warranty", "guarantee"}},
}

var saasThemes = []ThemeRule{
	{"features", []string{"feature", "tool", "software", "platform"}},
	{"pricing", []string{"pricing", "plan", "subscription", "trial"}},
	{"integration", []string{"integration", "api", "connect", "sync"}},
	{"support", []string{"support", "help", "documentation", "tutorial"}},
}

var serviceThemes = []ThemeRule{
	{"services", []string{"service", "professional", "expert", "specialist"}},
	{"booking", []string{"book", "appointment", "schedule", "reservation"}},
	{"pricing", []string{"price", "quote", "estimate", "cost"}},
	{"location", []string{"near me", "local", "area", "location"}},
}

// ThemeRules selects the theme table for a business type hint. Matching is
// substring-based so hints like "ecommerce retailer" still resolve.
func ThemeRules(businessType string) []ThemeRule {
	lower := strings.ToLower(businessType)
	switch {
	case strings.Contains(lower, "ecommerce"):
		return ecommerceThemes
	case strings.Contains(lower, "saas"):
		return saasThemes
	case strings.Contains(lower, "service"):
		return serviceThemes
	default:
		return generalThemes
	}
}

// KeywordTheme classifies a keyword against the given theme table, first
// match wins. Default theme is "general".
func KeywordTheme(keyword string, rules []ThemeRule) string {
	lower := strings.ToLower(keyword)
	for _, rule := range rules {
		for _, indicator := range rule.Indicators {
			if strings.Contains(lower, indicator) {
				return rule.Theme
			}
		}
	}
	return "general"
}
