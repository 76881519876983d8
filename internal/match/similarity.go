package match

import (
	"strings"

	"github.com/xrash/smetrics"
	"golang.org/x/text/unicode/norm"
)

// Confidence buckets a match score into a coarse tier.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Score weights. Title similarity dominates, artist overlap confirms,
// duration proximity breaks near-ties.
const (
	titleWeight    = 0.5
	artistWeight   = 0.3
	durationWeight = 0.2
)

// durationTolerance is the fraction of the larger duration beyond which
// a candidate contributes no duration score.
const durationTolerance = 0.3

// Normalize lowercases a string and applies canonical Unicode
// normalization. Every comparison goes through this first.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Similarity returns a similarity score in [0,1] for two strings.
//
// Equal normalized strings score 1.0 and a substring relation scores
// 0.9; otherwise the score is (L - editDistance) / L with L the longer
// length. Two empty strings are considered identical.
func Similarity(a, b string) float64 {
	s1 := Normalize(a)
	s2 := Normalize(b)

	if s1 == s2 {
		return 1.0
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.9
	}

	longer := len(s1)
	if len(s2) > longer {
		longer = len(s2)
	}
	if longer == 0 {
		return 1.0
	}

	dist := smetrics.WagnerFischer(s1, s2, 1, 1, 1)
	sim := float64(longer-dist) / float64(longer)
	if sim < 0 {
		return 0
	}
	return sim
}

// ArtistsOverlap reports whether any source artist name overlaps any
// candidate artist name. Names are normalized and trimmed first; a
// substring relation in either direction counts as overlap.
func ArtistsOverlap(sourceArtists, candidateArtists []string) bool {
	src := normalizeNames(sourceArtists)
	cand := normalizeNames(candidateArtists)

	for _, s := range src {
		for _, c := range cand {
			if strings.Contains(c, s) || strings.Contains(s, c) {
				return true
			}
		}
	}
	return false
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(Normalize(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// DurationScore returns a proximity score in [0,1] for two durations in
// seconds. A missing duration on either side is neutral (0.5); equal
// durations score 1.0; otherwise the score decays linearly to zero at
// 30% of the larger duration.
func DurationScore(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0.5
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return 1.0
	}

	larger := a
	if b > larger {
		larger = b
	}
	maxDiff := float64(larger) * durationTolerance
	if float64(diff) <= maxDiff {
		return 1 - float64(diff)/maxDiff
	}
	return 0
}

// Classify buckets a score into a [Confidence] tier.
func Classify(score float64) Confidence {
	switch {
	case score >= 0.85:
		return ConfidenceHigh
	case score >= 0.70:
		return ConfidenceMedium
	case score >= 0.50:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}
