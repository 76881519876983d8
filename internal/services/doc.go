// Package services defines the [MusicService] interface for the target
// music catalog and implements it for YouTube Music.
//
// # MusicService Interface
//
// The matcher and the YouTube source adapter consume the target catalog
// through two operations: text search and playlist retrieval. Both take
// a context and may fail with network errors; callers are responsible
// for converting those into structured results.
//
// # YouTube Music Implementation
//
// [YouTubeMusicClient] communicates with the FastAPI proxy server
// wrapping ytmusicapi. The auth_file path is sent via X-Auth-File
// header on each request. Outbound calls pass through a
// [rate.Limiter] so imports of large playlists do not hammer the proxy.
//
// # Error Handling
//
// The client wraps failures with typed errors from the shared package:
//   - [shared.ErrAPIRequest] : HTTP request failed
//   - [shared.ErrPlaylistNotFound] : playlist ID not found (404)
package services
