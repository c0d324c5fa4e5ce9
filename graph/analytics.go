package graph

import (
	"fmt"
	"sort"

	"github.com/flock-social/flock/keyword"
)

// WrittenBy returns every post published by the user, by id ascending.
func (g *Graph) WrittenBy(user string) ([]*Post, error) {
	if !g.IsRegistered(user) {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}

	posts := make([]*Post, 0, len(g.authored[user]))
	for _, id := range sortedIDs(g.authored[user]) {
		posts = append(posts, g.posts[id])
	}
	return posts, nil
}

// WrittenByIn filters the given posts down to those authored by the user,
// preserving input order. Every listed post must be currently published.
func (g *Graph) WrittenByIn(posts []*Post, user string) ([]*Post, error) {
	if !g.IsRegistered(user) {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}

	out := []*Post{}
	for _, p := range posts {
		if !g.IsPublished(p) {
			return nil, fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
		}
		if p.Author == user {
			out = append(out, p)
		}
	}
	return out, nil
}

// Containing returns every published post with at least one whitespace-
// delimited token case-insensitively equal to one of the given words, by id
// ascending. A post appears at most once even if several tokens match.
func (g *Graph) Containing(words []string) []*Post {
	out := []*Post{}
	for _, p := range g.Posts() {
		for _, tok := range keyword.TokenizeText(p.Text) {
			if keyword.TokenInSet(tok, words) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// MentionedUsers returns every registered user mentioned ("@name") in any
// currently-published post, sorted ascending.
func (g *Graph) MentionedUsers() []string {
	// over the engine's own published posts this can not fail
	mentioned, _ := g.MentionedUsersIn(g.Posts())
	return mentioned
}

// MentionedUsersIn returns every registered user mentioned in the given
// posts, sorted ascending. A token "@name" only counts as a mention when
// "name" is currently registered.
func (g *Graph) MentionedUsersIn(posts []*Post) ([]string, error) {
	set := map[string]bool{}
	for _, p := range posts {
		if !g.IsPublished(p) {
			return nil, fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
		}
		for _, name := range keyword.ExtractMentions(p.Text) {
			if g.IsRegistered(name) {
				set[name] = true
			}
		}
	}
	return sortedKeys(set), nil
}

// GuessFollowers derives, from the given posts, a map from each post author
// to the users who liked any of their listed posts. Follower lists are sorted
// ascending. Authors whose listed posts have no likes map to an empty list.
func (g *Graph) GuessFollowers(posts []*Post) (map[string][]string, error) {
	sets := map[string]map[string]bool{}
	for _, p := range posts {
		if !g.IsPublished(p) {
			return nil, fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
		}
		if sets[p.Author] == nil {
			sets[p.Author] = map[string]bool{}
		}
		for liker := range g.likes[p.ID] {
			sets[p.Author][liker] = true
		}
	}

	out := make(map[string][]string, len(sets))
	for author, likers := range sets {
		out[author] = sortedKeys(likers)
	}
	return out, nil
}

// Influencers ranks every registered user by derived follower count,
// descending. Ties are broken by username ascending, which also places all
// zero-follower users at the tail in username order.
func (g *Graph) Influencers() []string {
	followers, _ := g.GuessFollowers(g.Posts())

	users := g.Users()
	sort.SliceStable(users, func(i, j int) bool {
		ni, nj := len(followers[users[i]]), len(followers[users[j]])
		if ni != nj {
			return ni > nj
		}
		return users[i] < users[j]
	})
	return users
}

// Trending returns every hashtag appearing in published post text, ranked by
// occurrence count descending, ties broken by hashtag ascending. Hashtags are
// case-folded and returned without the leading '#'.
func (g *Graph) Trending() []string {
	counts := map[string]int{}
	for _, p := range g.Posts() {
		for _, tag := range keyword.ExtractHashtags(p.Text) {
			counts[tag]++
		}
	}

	tags := sortedKeys(counts)
	sort.SliceStable(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return tags
}

// Followers returns the users currently following the given user, sorted
// ascending. Derived from the follows relation.
func (g *Graph) Followers(user string) ([]string, error) {
	if !g.IsRegistered(user) {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}

	followers := []string{}
	for _, u := range g.Users() {
		if g.follows[u][user] {
			followers = append(followers, u)
		}
	}
	return followers, nil
}

// Following returns the users the given user currently follows, sorted
// ascending.
func (g *Graph) Following(user string) ([]string, error) {
	if !g.IsRegistered(user) {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}
	return sortedKeys(g.follows[user]), nil
}

func (g *Graph) DoesFollow(actor, target string) (bool, error) {
	if !g.IsRegistered(actor) {
		return false, fmt.Errorf("%w: %q", ErrUserNotFound, actor)
	}
	if !g.IsRegistered(target) {
		return false, fmt.Errorf("%w: %q", ErrUserNotFound, target)
	}
	return g.follows[actor][target], nil
}
