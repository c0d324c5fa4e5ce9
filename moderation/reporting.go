package moderation

import "fmt"

const (
	// weight of a report filed by a registered user
	ManualReportWeight = 2
	// weight of a report generated by forbidden-word screening at publish time
	AutoReportWeight = 1
)

// A single report against a post. Reports are minted by the moderation
// engine, which assigns ids from its own monotonically increasing sequence.
// Immutable after minting.
//
// Automatic reports carry the reserved system author (see
// [syntax.SystemAuthor]), which can never collide with a registered user.
type Reporting struct {
	ID        int64
	Author    string
	Weight    int
	Automatic bool
}

func (r *Reporting) String() string {
	kind := "manual"
	if r.Automatic {
		kind = "automatic"
	}
	return fmt.Sprintf("%s report %d by %s (weight %d)", kind, r.ID, r.Author, r.Weight)
}
