// Package match scores target-catalog candidates against source tracks
// and picks the best one.
//
// # Scoring
//
// Scoring is pure and deterministic: title similarity (edit distance
// with exact and substring fast paths), artist-set overlap, and
// duration proximity combine into a weighted score in [0,1], which
// [Classify] buckets into a [Confidence] tier.
//
// # Matching
//
// [Matcher.FindMatch] builds a search query from a source track,
// retrieves candidates from the target catalog, scores each one, and
// returns the best candidate with its confidence tier. Search results
// are cached by query string and match results by a composite track
// key, so repeated titles never trigger duplicate network calls.
// Lookup failures are absorbed into none-confidence results; FindMatch
// never fails the caller.
package match
