package graph

import (
	"fmt"
	"time"
)

// Maximum length of post text, in characters.
const MaxTextLength = 140

// A single text post. Posts are minted by [Graph.NewPost], which assigns the
// id from an engine-owned sequence; ids are monotonically increasing and never
// reused, even after deletion. Fields must not be modified after minting.
//
// A minted post is not yet part of the network: only [Graph.PublishPost] makes
// it visible to queries.
type Post struct {
	ID        int64
	Author    string
	Text      string
	CreatedAt time.Time
}

func (p *Post) String() string {
	return fmt.Sprintf("post %d by %s: %q", p.ID, p.Author, p.Text)
}
