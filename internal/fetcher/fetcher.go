// Package fetcher resolves card queries against the Scryfall API, memoizing
// results through the lookup cache.
package fetcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/im-sticky/mtg-card-seer/internal/cache"
	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/scryfall"
)

// Fetcher translates card queries into API lookups. Single lookups go through
// /cards/named or the exact-printing endpoint; decklist lookups batch through
// /cards/collection in chunks of 75.
type Fetcher struct {
	client *scryfall.Client
	cache  *cache.Cache
}

// New creates a fetcher backed by the given client and cache.
func New(client *scryfall.Client, c *cache.Cache) *Fetcher {
	return &Fetcher{
		client: client,
		cache:  c,
	}
}

// FetchOne resolves a single query. Cached results are returned without a
// network round trip. When the query names an exact printing the
// set/collector endpoint is used; otherwise a fuzzy name lookup is issued
// with any present filters. A miss upstream surfaces as a
// *scryfall.NotFoundError and is not cached.
func (f *Fetcher) FetchOne(ctx context.Context, q card.Query) (card.Card, error) {
	key := q.CacheKey()
	if cached, ok := f.cache.Get(key); ok {
		return cached, nil
	}

	var (
		sc  *scryfall.Card
		err error
	)
	if q.Exact() {
		sc, err = f.client.GetCardBySetAndNumber(ctx, q.Set, q.Collector)
	} else {
		sc, err = f.client.GetCardNamed(ctx, q.Fuzzy, q.Set)
	}
	if err != nil {
		return card.Card{}, err
	}

	resolved := card.FromScryfall(sc)
	f.cache.Set(key, resolved)

	return resolved, nil
}

// BatchResult is the outcome of a batched lookup. Cards are in no particular
// order; callers match them back to queries by name, not position.
type BatchResult struct {
	Cards    []card.Card
	NotFound []scryfall.CardIdentifier
}

// FetchMany resolves a list of queries through batched collection lookups.
// Queries already present in the cache are resolved from it and excluded
// from the outgoing identifier lists. The remainder is partitioned into
// chunks of at most 75 identifiers, one request per chunk.
//
// A request-level failure on any chunk fails the whole call once.
// Identifiers unmatched within an otherwise successful chunk are logged and
// reported in the result but do not fail the batch.
func (f *Fetcher) FetchMany(ctx context.Context, queries []card.Query) (BatchResult, error) {
	var result BatchResult

	// Resolve cache hits first; dedupe the misses by cache key.
	seen := make(map[string]bool)
	var misses []card.Query
	for _, q := range queries {
		key := q.CacheKey()
		if seen[key] {
			continue
		}
		seen[key] = true

		if cached, ok := f.cache.Get(key); ok {
			result.Cards = append(result.Cards, cached)
			continue
		}
		misses = append(misses, q)
	}

	for start := 0; start < len(misses); start += scryfall.MaxBatchSize {
		end := start + scryfall.MaxBatchSize
		if end > len(misses) {
			end = len(misses)
		}
		chunk := misses[start:end]

		identifiers := make([]scryfall.CardIdentifier, len(chunk))
		for i, q := range chunk {
			identifiers[i] = identifierFor(q)
		}

		cards, notFound, err := f.client.GetCollection(ctx, identifiers)
		if err != nil {
			return BatchResult{}, fmt.Errorf("batch lookup %d-%d failed: %w", start, end, err)
		}

		for _, id := range notFound {
			log.Printf("[Fetcher] no results for: %s", id)
		}
		result.NotFound = append(result.NotFound, notFound...)

		for i := range cards {
			resolved := card.FromScryfall(&cards[i])
			if q, ok := queryForCard(chunk, cards[i]); ok {
				f.cache.Set(q.CacheKey(), resolved)
			}
			result.Cards = append(result.Cards, resolved)
		}
	}

	return result, nil
}

// identifierFor picks the strongest identifier shape the query supports:
// exact printing, name scoped to a set, or bare name.
func identifierFor(q card.Query) scryfall.CardIdentifier {
	switch {
	case q.Exact():
		return scryfall.CardIdentifier{Set: q.Set, CollectorNumber: q.Collector}
	case q.Set != "":
		return scryfall.CardIdentifier{Name: q.Fuzzy, Set: q.Set}
	default:
		return scryfall.CardIdentifier{Name: q.Fuzzy}
	}
}

// queryForCard matches a returned card back to the query that requested it.
// Names match on prefix because double-faced cards come back as
// "Front // Back" while decklists name only the front face.
func queryForCard(queries []card.Query, sc scryfall.Card) (card.Query, bool) {
	for _, q := range queries {
		if q.Exact() {
			if strings.EqualFold(q.Set, sc.SetCode) && q.Collector == sc.CollectorNumber {
				return q, true
			}
			continue
		}
		if hasNamePrefix(sc.Name, q.Fuzzy) {
			return q, true
		}
	}
	return card.Query{}, false
}

// hasNamePrefix reports whether the resolved card name starts with the
// queried name, ignoring case.
func hasNamePrefix(cardName, queried string) bool {
	if len(queried) > len(cardName) {
		return false
	}
	return strings.EqualFold(cardName[:len(queried)], queried)
}
