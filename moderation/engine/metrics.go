package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var contentProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "moderator_content_duration_sec",
	Help: "Total duration of content moderation processing",
}, []string{"type"})

var contentProcessCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderator_content_processed",
	Help: "Number of content items processed",
}, []string{"type"})

var contentRejectCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderator_content_rejected",
	Help: "Number of content items auto-rejected",
}, []string{"type", "reason"})

var reportCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderator_reports_filed",
	Help: "Number of user reports filed",
}, []string{"reason"})

var queueAddCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderator_queue_added",
	Help: "Number of entries added to the review queue",
}, []string{"kind", "priority"})

var queueProcessCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderator_queue_processed",
	Help: "Number of review queue entries processed by moderators",
}, []string{"action"})
