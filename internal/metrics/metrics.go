// Package metrics counts board mutations. There is no exposition
// endpoint; the counters exist for embedders that register their own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpboard_posts_created_total",
			Help: "Total number of posts submitted to the board",
		},
	)

	PostsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpboard_posts_deleted_total",
			Help: "Total number of posts removed after confirmation",
		},
	)

	LikesToggled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpboard_likes_toggled_total",
			Help: "Total number of like toggles",
		},
		[]string{"direction"},
	)

	CommentsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "helpboard_comments_added_total",
			Help: "Total number of comments appended to posts",
		},
	)
)
