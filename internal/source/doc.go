// Package source implements the playlist source adapters.
//
// An [Adapter] turns arbitrary user input (bare ID, URI, web URL) into
// a canonical playlist ID, fetches the playlist's metadata and track
// list from its catalog, and validates accessibility. Adapters degrade
// instead of failing: an unresolvable input or an inaccessible playlist
// yields a nil result, and a Spotify playlist behind authentication
// yields a partial, metadata-only result so the caller can report a
// precise error.
package source
