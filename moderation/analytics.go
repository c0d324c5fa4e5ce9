package moderation

import (
	"fmt"
	"sort"

	"github.com/flock-social/flock/graph"
)

// ControversialPosts returns every post carrying at least one report, ordered
// by the sum of its reporting weights descending, ties broken by post id
// ascending.
func (e *Engine) ControversialPosts() []*graph.Post {
	weights := map[int64]int{}
	for id, rs := range e.reports {
		total := 0
		for _, r := range rs {
			total += r.Weight
		}
		if total > 0 {
			weights[id] = total
		}
	}

	ids := make([]int64, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if weights[ids[i]] != weights[ids[j]] {
			return weights[ids[i]] > weights[ids[j]]
		}
		return ids[i] < ids[j]
	})

	posts := make([]*graph.Post, 0, len(ids))
	for _, id := range ids {
		// reported posts are always published: reports are dropped when a post
		// or its author is removed
		if p, ok := e.PostByID(id); ok {
			posts = append(posts, p)
		}
	}
	return posts
}

// ReportingsByAuthor returns every report filed by the given user, across all
// posts, by report id ascending.
func (e *Engine) ReportingsByAuthor(author string) ([]*Reporting, error) {
	if !e.IsRegistered(author) {
		return nil, fmt.Errorf("%w: %q", graph.ErrUserNotFound, author)
	}

	out := []*Reporting{}
	for _, rs := range e.reports {
		for _, r := range rs {
			if r.Author == author {
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ReportingsForPost returns the reports against the given post, by report id
// ascending. The list is empty when the post has never been reported.
func (e *Engine) ReportingsForPost(p *graph.Post) ([]*Reporting, error) {
	if !e.IsPublished(p) {
		return nil, fmt.Errorf("%w: id %d", graph.ErrPostNotFound, p.ID)
	}

	out := make([]*Reporting, len(e.reports[p.ID]))
	copy(out, e.reports[p.ID])
	return out, nil
}
