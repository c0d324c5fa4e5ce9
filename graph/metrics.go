package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var usersRegistered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "graph_users_registered",
	Help: "Number of users registered",
})

var usersRemoved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "graph_users_removed",
	Help: "Number of users removed (with cascade)",
})

var postsPublished = promauto.NewCounter(prometheus.CounterOpts{
	Name: "graph_posts_published",
	Help: "Number of posts published",
})

var postsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "graph_posts_deleted",
	Help: "Number of posts deleted",
})

var likesChanged = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "graph_likes_changed",
	Help: "Number of like mutations applied",
}, []string{"op"})

var followEdges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "graph_follow_edges_changed",
	Help: "Number of derived follow edges added or removed",
}, []string{"op"})
