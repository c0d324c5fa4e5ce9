package graph_test

import (
	"testing"

	"github.com/flock-social/flock/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// small fixture: returns a graph with registered users and no posts
func testGraph(t *testing.T, users ...string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, u := range users {
		require.NoError(t, g.RegisterUser(u))
	}
	return g
}

func publish(t *testing.T, g *graph.Graph, author, text string) *graph.Post {
	t.Helper()
	p, err := g.NewPost(author, text)
	require.NoError(t, err)
	require.NoError(t, g.PublishPost(p))
	return p
}

func TestWrittenBy(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "alice", "bob")
	p1 := publish(t, g, "alice", "first")
	p2 := publish(t, g, "bob", "interleaved")
	p3 := publish(t, g, "alice", "second")

	posts, err := g.WrittenBy("alice")
	require.NoError(err)
	assert.Equal([]*graph.Post{p1, p3}, posts)

	posts, err = g.WrittenBy("bob")
	require.NoError(err)
	assert.Equal([]*graph.Post{p2}, posts)

	_, err = g.WrittenBy("nobody")
	assert.ErrorIs(err, graph.ErrUserNotFound)
}

func TestWrittenByIn(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "alice", "bob")
	p1 := publish(t, g, "alice", "first")
	p2 := publish(t, g, "bob", "other")
	p3 := publish(t, g, "alice", "second")

	// input order is preserved
	posts, err := g.WrittenByIn([]*graph.Post{p3, p2, p1}, "alice")
	require.NoError(err)
	assert.Equal([]*graph.Post{p3, p1}, posts)

	unpublished, err := g.NewPost("alice", "draft")
	require.NoError(err)
	_, err = g.WrittenByIn([]*graph.Post{p1, unpublished}, "alice")
	assert.ErrorIs(err, graph.ErrPostNotFound)

	_, err = g.WrittenByIn([]*graph.Post{p1}, "nobody")
	assert.ErrorIs(err, graph.ErrUserNotFound)
}

func TestContaining(t *testing.T) {
	assert := assert.New(t)

	g := testGraph(t, "alice", "bob")
	p1 := publish(t, g, "alice", "Hello world")
	p2 := publish(t, g, "bob", "hello hello again")
	publish(t, g, "bob", "helloween party")

	found := g.Containing([]string{"HELLO"})
	assert.Equal([]*graph.Post{p1, p2}, found, "whole-token, case-insensitive, deduplicated")

	// a post matching several distinct words still appears once
	found = g.Containing([]string{"hello", "world", "again"})
	assert.Equal([]*graph.Post{p1, p2}, found)

	assert.Empty(g.Containing([]string{"absent"}))
	assert.Empty(g.Containing(nil))
}

func TestMentionedUsers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "alice", "Anna_00", "bob")
	p1 := publish(t, g, "bob", "shoutout to @Anna_00 and @alice")
	publish(t, g, "alice", "@nobody_here and @Anna_00 again")

	assert.Equal([]string{"Anna_00", "alice"}, g.MentionedUsers())

	mentioned, err := g.MentionedUsersIn([]*graph.Post{p1})
	require.NoError(err)
	assert.Equal([]string{"Anna_00", "alice"}, mentioned)

	draft, err := g.NewPost("bob", "@alice")
	require.NoError(err)
	_, err = g.MentionedUsersIn([]*graph.Post{draft})
	assert.ErrorIs(err, graph.ErrPostNotFound)
}

func TestGuessFollowers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "alice", "bob", "carol")
	p1 := publish(t, g, "alice", "one")
	p2 := publish(t, g, "alice", "two")
	p3 := publish(t, g, "carol", "three")

	require.NoError(g.Like(p1, "bob"))
	require.NoError(g.Like(p2, "carol"))

	followers, err := g.GuessFollowers([]*graph.Post{p1, p2, p3})
	require.NoError(err)
	assert.Equal(map[string][]string{
		"alice": {"bob", "carol"},
		"carol": {},
	}, followers)

	// restricting the post list restricts the derived followers
	followers, err = g.GuessFollowers([]*graph.Post{p1})
	require.NoError(err)
	assert.Equal(map[string][]string{"alice": {"bob"}}, followers)

	draft, err := g.NewPost("alice", "draft")
	require.NoError(err)
	_, err = g.GuessFollowers([]*graph.Post{draft})
	assert.ErrorIs(err, graph.ErrPostNotFound)
}

func TestInfluencers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "alice", "bob")
	p := publish(t, g, "alice", "hello #x")
	require.NoError(g.Like(p, "bob"))

	assert.Equal([]string{"alice", "bob"}, g.Influencers())

	followers, err := g.GuessFollowers([]*graph.Post{p})
	require.NoError(err)
	assert.Equal(map[string][]string{"alice": {"bob"}}, followers)
}

func TestInfluencersOrdering(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	g := testGraph(t, "dan", "carol", "bob", "alice", "zoe")
	pc := publish(t, g, "carol", "by carol")
	pb := publish(t, g, "bob", "by bob")
	pd := publish(t, g, "dan", "by dan")

	// carol: 2 followers; bob and dan: 1 each; alice, zoe: none
	require.NoError(g.Like(pc, "alice"))
	require.NoError(g.Like(pc, "zoe"))
	require.NoError(g.Like(pb, "dan"))
	require.NoError(g.Like(pd, "alice"))

	assert.Equal([]string{"carol", "bob", "dan", "alice", "zoe"}, g.Influencers())
}

func TestTrending(t *testing.T) {
	assert := assert.New(t)

	g := testGraph(t, "alice", "bob")
	publish(t, g, "alice", "#a #a #b")
	publish(t, g, "bob", "#a")

	assert.Equal([]string{"a", "b"}, g.Trending())
}

func TestTrendingCaseFoldAndTies(t *testing.T) {
	assert := assert.New(t)

	g := testGraph(t, "alice")
	publish(t, g, "alice", "#Go and #GO and #go")
	publish(t, g, "alice", "#b #a #b #a")

	// go:3, then a:2 and b:2 tied -> hashtag ascending
	assert.Equal([]string{"go", "a", "b"}, g.Trending())
}
