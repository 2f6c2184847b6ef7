// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a CreatePost call.
const (
	OutcomeAdmitted         = "admitted"
	OutcomeAuthorNotFound   = "author_not_found"
	OutcomeUpstreamError    = "upstream_error"
	OutcomeIDCollision      = "id_collision"
	OutcomeValidationFailed = "validation_failed"
)

var (
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "defisocial_posts_create_total",
		Help: "CreatePost calls by outcome",
	}, []string{"outcome"})

	UserLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "defisocial_user_lookups_total",
		Help: "User existence checks by transport and result",
	}, []string{"transport", "result"})

	UserLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "defisocial_user_lookup_duration_seconds",
		Help:    "Latency of user existence checks",
		Buckets: prometheus.DefBuckets,
	}, []string{"transport"})

	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "defisocial_cache_requests_total",
		Help: "Cache lookups by key family and result",
	}, []string{"family", "result"})

	GraphMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "defisocial_graph_mutations_total",
		Help: "Follow and unfollow operations",
	}, []string{"operation"})

	Interactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "defisocial_interactions_total",
		Help: "Likes, unlikes and comments",
	}, []string{"kind"})
)
