// Package selection holds the pure listing, search and quiz-pick logic.
// Everything here operates on id-ordered query results and has no side
// effects, so the HTTP and storage layers stay thin.
package selection

import (
	"math/rand"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Paginate returns the window of items for a 1-based page of the given size.
// A page past the end of the collection yields an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Matches reports whether text contains term as a substring under a simple
// case-insensitive comparison. An empty term matches everything.
func Matches(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// FilterByTerm returns the questions whose text matches term, preserving
// input order.
func FilterByTerm(questions []domain.Question, term string) []domain.Question {
	matched := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if Matches(q.Question, term) {
			matched = append(matched, q)
		}
	}
	return matched
}

// Exclude returns the questions whose ids are not in seen, preserving input
// order. The result is the quiz candidate set: a set difference, never a
// post-filter of a random pick.
func Exclude(questions []domain.Question, seen []int) []domain.Question {
	seenIDs := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		seenIDs[id] = struct{}{}
	}

	candidates := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seenIDs[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	return candidates
}

// PickRandom returns a uniformly random element of candidates, or nil when
// there are none left. Candidates must already be in a deterministic order so
// the draw is well-defined for a seeded rng. A nil rng falls back to the
// shared source.
func PickRandom(candidates []domain.Question, rng *rand.Rand) *domain.Question {
	if len(candidates) == 0 {
		return nil
	}

	var i int
	if rng != nil {
		i = rng.Intn(len(candidates))
	} else {
		i = rand.Intn(len(candidates))
	}

	picked := candidates[i]
	return &picked
}
