package rules

import (
	"github.com/workincz/moderator/moderation"
)

func DefaultRules() moderation.RuleSet {
	rules := moderation.RuleSet{
		ContentRules: []moderation.ContentRuleFunc{
			SpamContentRule,
			ContentLimitsRule,
			DuplicateContentRule,
			ReadabilityRule,
		},
		JobPostingRules: []moderation.ContentRuleFunc{
			JobPostingCompletenessRule,
		},
		UserProfileRules: []moderation.ContentRuleFunc{
			UserProfileCompletenessRule,
		},
	}
	return rules
}
