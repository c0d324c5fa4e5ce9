package moderation

import (
	"github.com/flock-social/flock/graph"
)

// EngineTestFixture returns a moderated engine over a fresh graph with a
// small cast of registered users and an initial forbidden-word set.
func EngineTestFixture(forbiddenWords ...string) *Engine {
	g := graph.NewGraph()
	for _, u := range []string{"alice", "bob", "carol", "marco", "anna"} {
		if err := g.RegisterUser(u); err != nil {
			panic(err)
		}
	}
	return NewEngine(g, forbiddenWords)
}
