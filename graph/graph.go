package graph

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/flock-social/flock/syntax"
)

// Graph is the in-memory social network engine. It owns three relations:
//
//   - likes:    published post -> set of users who liked it
//   - authored: registered user -> set of posts they published
//   - follows:  registered user -> set of users they follow
//
// The follows relation is derived, never stored independently: u follows v iff
// u has liked at least one currently-published post authored by v. Every
// mutation re-establishes that equivalence before returning.
//
// The engine assumes a single writer. It performs no internal locking;
// concurrent callers must serialize access externally.
type Graph struct {
	posts    map[int64]*Post
	likes    map[int64]map[string]bool
	authored map[string]map[int64]bool
	follows  map[string]map[string]bool

	nextPostID int64

	logger *slog.Logger
}

func NewGraph() *Graph {
	return &Graph{
		posts:    map[int64]*Post{},
		likes:    map[int64]map[string]bool{},
		authored: map[string]map[int64]bool{},
		follows:  map[string]map[string]bool{},
		logger:   slog.Default().With("system", "graph"),
	}
}

func (g *Graph) NextPostID() int64 {
	id := g.nextPostID
	g.nextPostID++
	return id
}

// NewPost mints a post with the next id in the engine-owned sequence. The
// author must be syntactically valid (registration is only checked at publish
// time) and the text must be 1 to 140 characters.
//
// Minting does not publish: the post enters the network via [Graph.PublishPost].
func (g *Graph) NewPost(author, text string) (*Post, error) {
	if _, err := syntax.ParseUsername(author); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, author)
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return nil, fmt.Errorf("%w: %d chars (max %d)", ErrTextTooLong, n, MaxTextLength)
	}
	return &Post{
		ID:        g.NextPostID(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// RegisterUser adds a user to the network with empty authored and follow sets.
func (g *Graph) RegisterUser(name string) error {
	if _, err := syntax.ParseUsername(name); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, name)
	}
	if g.IsRegistered(name) {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	g.follows[name] = map[string]bool{}
	g.authored[name] = map[int64]bool{}

	usersRegistered.Inc()
	g.logger.Debug("user registered", "user", name)
	return nil
}

// RemoveUser deregisters a user and cascades: every post they authored is
// deleted (dropping derived follow edges pointing at them), their likes are
// stripped from every remaining post, and their own follow set is discarded.
func (g *Graph) RemoveUser(name string) error {
	if !g.IsRegistered(name) {
		return fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}

	for _, id := range sortedIDs(g.authored[name]) {
		g.dropPost(g.posts[id])
	}
	for id := range g.likes {
		delete(g.likes[id], name)
	}
	delete(g.follows, name)
	delete(g.authored, name)

	usersRemoved.Inc()
	g.logger.Info("user removed", "user", name)
	return nil
}

// PublishPost makes a minted post part of the network, with an empty like set.
// A post deleted earlier can be published again.
func (g *Graph) PublishPost(p *Post) error {
	if g.IsPublished(p) {
		return fmt.Errorf("%w: id %d", ErrAlreadyPublished, p.ID)
	}
	if !g.IsRegistered(p.Author) {
		return fmt.Errorf("%w: %q", ErrUserNotFound, p.Author)
	}

	g.posts[p.ID] = p
	g.likes[p.ID] = map[string]bool{}
	g.authored[p.Author][p.ID] = true

	postsPublished.Inc()
	g.logger.Debug("post published", "post", p.ID, "author", p.Author)
	return nil
}

// DeletePost removes a post from the network, along with its likes. Any user
// whose only liked post by this author was the deleted one stops following
// the author.
func (g *Graph) DeletePost(p *Post) error {
	if !g.IsPublished(p) {
		return fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
	}

	g.dropPost(p)

	g.logger.Debug("post deleted", "post", p.ID, "author", p.Author)
	return nil
}

// dropPost removes a published post and re-derives follow edges pointing at
// its author. Callers have already checked that the post is published.
func (g *Graph) dropPost(p *Post) {
	delete(g.posts, p.ID)
	delete(g.likes, p.ID)
	delete(g.authored[p.Author], p.ID)

	for user := range g.follows {
		if g.follows[user][p.Author] && !g.hasLikedAnyBy(user, p.Author) {
			delete(g.follows[user], p.Author)
			followEdges.WithLabelValues("remove").Inc()
		}
	}

	postsDeleted.Inc()
}

// Like records that a user liked a published post, and derives the follow
// edge user -> author.
func (g *Graph) Like(p *Post, user string) error {
	if !g.IsPublished(p) {
		return fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
	}
	if !g.IsRegistered(user) {
		return fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}
	if user == p.Author {
		return fmt.Errorf("%w: %q on post %d", ErrAutoLike, user, p.ID)
	}

	g.likes[p.ID][user] = true
	if !g.follows[user][p.Author] {
		g.follows[user][p.Author] = true
		followEdges.WithLabelValues("add").Inc()
	}

	likesChanged.WithLabelValues("like").Inc()
	g.logger.Debug("like added", "post", p.ID, "user", user)
	return nil
}

// Unlike removes a like. The follow edge user -> author is dropped iff the
// post was the only published post by that author the user had liked.
func (g *Graph) Unlike(p *Post, user string) error {
	if !g.IsPublished(p) {
		return fmt.Errorf("%w: id %d", ErrPostNotFound, p.ID)
	}
	if !g.IsRegistered(user) {
		return fmt.Errorf("%w: %q", ErrUserNotFound, user)
	}
	if !g.likes[p.ID][user] {
		return fmt.Errorf("%w: %q on post %d", ErrLikeNotFound, user, p.ID)
	}

	delete(g.likes[p.ID], user)
	if !g.hasLikedAnyBy(user, p.Author) {
		delete(g.follows[user], p.Author)
		followEdges.WithLabelValues("remove").Inc()
	}

	likesChanged.WithLabelValues("unlike").Inc()
	g.logger.Debug("like removed", "post", p.ID, "user", user)
	return nil
}

// hasLikedAnyBy reports whether user has liked any currently-published post
// authored by author.
func (g *Graph) hasLikedAnyBy(user, author string) bool {
	for id := range g.authored[author] {
		if g.likes[id][user] {
			return true
		}
	}
	return false
}

func (g *Graph) IsRegistered(name string) bool {
	_, ok := g.follows[name]
	return ok
}

func (g *Graph) IsPublished(p *Post) bool {
	if p == nil {
		return false
	}
	_, ok := g.posts[p.ID]
	return ok
}

func (g *Graph) PostByID(id int64) (*Post, bool) {
	p, ok := g.posts[id]
	return p, ok
}

func (g *Graph) UserCount() int {
	return len(g.follows)
}

func (g *Graph) PostCount() int {
	return len(g.posts)
}

// Users returns all registered usernames, lexicographically ascending.
func (g *Graph) Users() []string {
	return sortedKeys(g.follows)
}

// Posts returns all published posts, by id ascending.
func (g *Graph) Posts() []*Post {
	posts := make([]*Post, 0, len(g.posts))
	for _, id := range sortedIDs(g.posts) {
		posts = append(posts, g.posts[id])
	}
	return posts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}