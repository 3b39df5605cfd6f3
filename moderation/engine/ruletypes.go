package engine

type ContentRuleFunc = func(c *ContentContext) error
