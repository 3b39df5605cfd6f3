// Auto-moderation rules engine for job-board content.
//
// This package (`github.com/workincz/moderator/moderation`) contains a "rules engine" to augment human moderators on a job-board platform. Batches of rules are processed for each submitted piece of content (job postings, user profiles, messages, employer reviews). Rules accumulate flags and a penalty score; the outcome can be an outright rejection (spam, low quality) or an entry in a priority-ordered queue for human review. User reports flow through the same queue, and moderator decisions feed back into per-user trust scores which influence how much scrutiny a user's future content receives.
//
// See `cmd/bouncer` for a daemon built on this package.
package moderation
