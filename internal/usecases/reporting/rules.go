package reporting

import "strings"

// RuleCategory partitions keyword rules by what a match means.
type RuleCategory string

const (
	CategoryChurn RuleCategory = "churn"
	CategorySpam  RuleCategory = "spam"
)

// Rule tags a keyword with its category. Matching is case-insensitive
// substring matching, evaluated in list order.
type Rule struct {
	Keyword  string
	Category RuleCategory
}

// RuleSet is the ordered keyword policy the classifier runs against.
// It is injected so the policy can be tuned and tested independently
// of the fetch/classify pipeline.
type RuleSet []Rule

// Matches returns the keywords of the given category found in body,
// preserving rule order.
func (rs RuleSet) Matches(body string, category RuleCategory) []string {
	lower := strings.ToLower(body)

	var matched []string
	for _, rule := range rs {
		if rule.Category != category {
			continue
		}
		if strings.Contains(lower, rule.Keyword) {
			matched = append(matched, rule.Keyword)
		}
	}

	return matched
}

// HasMatch reports whether body matches any rule of the category.
func (rs RuleSet) HasMatch(body string, category RuleCategory) bool {
	lower := strings.ToLower(body)

	for _, rule := range rs {
		if rule.Category == category && strings.Contains(lower, rule.Keyword) {
			return true
		}
	}

	return false
}

// DefaultRuleSet is the production keyword policy.
func DefaultRuleSet() RuleSet {
	churnKeywords := []string{
		"cancel", "canceling", "cancelled", "cancellation",
		"big rentals", "leaving", "frustrated", "not working",
		"broken", "doesn't work", "don't work", "stop", "quit",
		"competitor", "another provider", "switching", "port",
		"ignore", "ignoring", "no response", "refund",
	}
	spamKeywords := []string{
		"profile link", "sign up to see", "unsubscribe", "dmarc",
	}

	rules := make(RuleSet, 0, len(churnKeywords)+len(spamKeywords))
	for _, kw := range churnKeywords {
		rules = append(rules, Rule{Keyword: kw, Category: CategoryChurn})
	}
	for _, kw := range spamKeywords {
		rules = append(rules, Rule{Keyword: kw, Category: CategorySpam})
	}

	return rules
}
