package moderation

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/flock-social/flock/graph"
	"github.com/flock-social/flock/keyword"
	"github.com/flock-social/flock/syntax"
)

// Engine layers moderation on top of a [graph.Graph]: a reports relation
// (post -> reports), a case-folded forbidden-word set, and automatic report
// generation at publish time.
//
// The base graph is embedded, so the full graph surface is available on the
// engine; PublishPost, DeletePost and RemoveUser are overridden here to keep
// the reports relation consistent with the base relations. Callers holding a
// moderated engine must mutate through it, not through the wrapped graph.
type Engine struct {
	*graph.Graph

	reports   map[int64][]*Reporting
	forbidden map[string]bool

	nextReportID int64

	logger *slog.Logger
}

func NewEngine(g *graph.Graph, forbiddenWords []string) *Engine {
	e := &Engine{
		Graph:     g,
		reports:   map[int64][]*Reporting{},
		forbidden: map[string]bool{},
		logger:    slog.Default().With("system", "moderation"),
	}
	for _, w := range forbiddenWords {
		e.forbidden[keyword.CaseFold(w)] = true
	}
	return e
}

func (e *Engine) nextID() int64 {
	id := e.nextReportID
	e.nextReportID++
	return id
}

// Report files a manual report (weight 2) by a registered user against a
// published post. A user can report a given post at most once, and never
// their own posts.
func (e *Engine) Report(author string, p *graph.Post) error {
	if !e.IsPublished(p) {
		return fmt.Errorf("%w: id %d", graph.ErrPostNotFound, p.ID)
	}
	if !e.IsRegistered(author) {
		return fmt.Errorf("%w: %q", graph.ErrUserNotFound, author)
	}
	if author == p.Author {
		return fmt.Errorf("%w: %q on post %d", ErrAutoReport, author, p.ID)
	}
	for _, r := range e.reports[p.ID] {
		if r.Author == author {
			return fmt.Errorf("%w: %q on post %d", ErrAlreadyReported, author, p.ID)
		}
	}

	e.reports[p.ID] = append(e.reports[p.ID], &Reporting{
		ID:     e.nextID(),
		Author: author,
		Weight: ManualReportWeight,
	})

	reportsFiled.WithLabelValues("manual").Inc()
	e.logger.Info("report filed", "post", p.ID, "author", author)
	return nil
}

// AddForbiddenWord adds a word to the screening set, case-folded.
func (e *Engine) AddForbiddenWord(word string) {
	e.forbidden[keyword.CaseFold(word)] = true
}

// RemoveForbiddenWord removes a word from the screening set.
func (e *Engine) RemoveForbiddenWord(word string) error {
	folded := keyword.CaseFold(word)
	if !e.forbidden[folded] {
		return fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	delete(e.forbidden, folded)
	return nil
}

// ForbiddenWords returns the current screening set, sorted ascending.
func (e *Engine) ForbiddenWords() []string {
	words := make([]string, 0, len(e.forbidden))
	for w := range e.forbidden {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// LoadForbiddenWordsFile reads a JSON array of words from a file and adds
// them, case-folded, to the screening set.
func (e *Engine) LoadForbiddenWordsFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var words []string
	if err := json.Unmarshal(raw, &words); err != nil {
		return fmt.Errorf("parsing forbidden words file: %w", err)
	}
	for _, w := range words {
		e.AddForbiddenWord(w)
	}
	return nil
}

// PublishPost publishes through the base graph, then screens the post text:
// each whitespace token whose case-folded form contains a forbidden word as a
// substring yields one automatic report per matched word.
func (e *Engine) PublishPost(p *graph.Post) error {
	if err := e.Graph.PublishPost(p); err != nil {
		return err
	}

	words := e.ForbiddenWords()
	for _, tok := range keyword.TokenizeText(p.Text) {
		folded := keyword.CaseFold(tok)
		for _, w := range words {
			if strings.Contains(folded, w) {
				e.autoReport(p, tok, w)
			}
		}
	}
	return nil
}

func (e *Engine) autoReport(p *graph.Post, token, word string) {
	e.reports[p.ID] = append(e.reports[p.ID], &Reporting{
		ID:        e.nextID(),
		Author:    syntax.SystemAuthor,
		Weight:    AutoReportWeight,
		Automatic: true,
	})

	reportsFiled.WithLabelValues("automatic").Inc()
	e.logger.Info("automatic report filed", "post", p.ID, "token", token, "word", word)
}

// DeletePost deletes through the base graph, then drops the post's reports.
func (e *Engine) DeletePost(p *graph.Post) error {
	if err := e.Graph.DeletePost(p); err != nil {
		return err
	}
	e.dropReportsForPost(p.ID)
	return nil
}

// RemoveUser removes through the base graph (which cascades post deletion),
// then drops the reports of the deleted posts and any remaining manual
// reports the removed user had filed on surviving posts.
func (e *Engine) RemoveUser(user string) error {
	authored, err := e.WrittenBy(user)
	if err != nil {
		return err
	}
	if err := e.Graph.RemoveUser(user); err != nil {
		return err
	}

	for _, p := range authored {
		e.dropReportsForPost(p.ID)
	}
	for id, rs := range e.reports {
		kept := rs[:0]
		for _, r := range rs {
			if r.Author == user {
				reportsDropped.Inc()
			} else {
				kept = append(kept, r)
			}
		}
		e.reports[id] = kept
	}
	return nil
}

func (e *Engine) dropReportsForPost(id int64) {
	if n := len(e.reports[id]); n > 0 {
		reportsDropped.Add(float64(n))
	}
	delete(e.reports, id)
}
