package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrTrackNotFound      = fmt.Errorf("track not found")

	// Import errors
	ErrImportCancelled  = fmt.Errorf("import cancelled")
	ErrImportInProgress = fmt.Errorf("import already in progress")
	ErrRequiresAuth     = fmt.Errorf("playlist requires authentication")
	ErrEmptyPlaylist    = fmt.Errorf("playlist has no tracks")
	ErrInvalidPlaylist  = fmt.Errorf("invalid playlist URL or ID")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
