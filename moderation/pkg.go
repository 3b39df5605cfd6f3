package moderation

import (
	"github.com/workincz/moderator/moderation/countstore"
	"github.com/workincz/moderator/moderation/engine"
)

type Engine = engine.Engine
type EngineConfig = engine.EngineConfig
type RuleSet = engine.RuleSet

type ContentContext = engine.ContentContext
type ContentRecord = engine.ContentRecord
type ContentRuleFunc = engine.ContentRuleFunc
type ModerationResult = engine.ModerationResult
type Effects = engine.Effects

type Notifier = engine.Notifier
type WebhookNotifier = engine.WebhookNotifier

var (
	NewContentContext   = engine.NewContentContext
	NewWebhookNotifier  = engine.NewWebhookNotifier
	DefaultEngineConfig = engine.DefaultEngineConfig
	EngineTestFixture   = engine.EngineTestFixture
	ExtractEffects      = engine.ExtractEffects
)

const (
	ContentTypeJobPosting  = engine.ContentTypeJobPosting
	ContentTypeUserProfile = engine.ContentTypeUserProfile
	ContentTypeMessage     = engine.ContentTypeMessage
	ContentTypeReview      = engine.ContentTypeReview

	RejectReasonSpam       = engine.RejectReasonSpam
	RejectReasonLowQuality = engine.RejectReasonLowQuality

	ReportReasonSpam          = engine.ReportReasonSpam
	ReportReasonScam          = engine.ReportReasonScam
	ReportReasonInappropriate = engine.ReportReasonInappropriate
	ReportReasonDuplicate     = engine.ReportReasonDuplicate
	ReportReasonIncomplete    = engine.ReportReasonIncomplete
	ReportReasonOther         = engine.ReportReasonOther

	PeriodTotal = countstore.PeriodTotal
	PeriodDay   = countstore.PeriodDay
	PeriodHour  = countstore.PeriodHour
)
