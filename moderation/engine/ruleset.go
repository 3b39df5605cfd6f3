package engine

// Holds configuration of which rules should be run for which content types,
// and dispatches events to those rules.
type RuleSet struct {
	// run for every content type, including unknown ones
	ContentRules []ContentRuleFunc
	// per-type rules, run after the generic ones
	JobPostingRules  []ContentRuleFunc
	UserProfileRules []ContentRuleFunc
	MessageRules     []ContentRuleFunc
	ReviewRules      []ContentRuleFunc
}

// Executes the generic rules and then any type-specific rules. Only
// dispatches execution, does no other pre/post processing. Unknown content
// types get the generic rules and nothing else.
func (r *RuleSet) CallContentRules(c *ContentContext) error {
	for _, f := range r.ContentRules {
		if err := f(c); err != nil {
			return err
		}
	}
	var typed []ContentRuleFunc
	switch c.Record.ContentType {
	case ContentTypeJobPosting:
		typed = r.JobPostingRules
	case ContentTypeUserProfile:
		typed = r.UserProfileRules
	case ContentTypeMessage:
		typed = r.MessageRules
	case ContentTypeReview:
		typed = r.ReviewRules
	}
	for _, f := range typed {
		if err := f(c); err != nil {
			return err
		}
	}
	return nil
}
