package domain

import "errors"

var (
	// ErrMissingAPIKey means no CWA credential was configured
	ErrMissingAPIKey = errors.New("CWA API key is not configured")

	// ErrNoLocations means the upstream answered without any location
	ErrNoLocations = errors.New("no locations in upstream response")

	// ErrUpstream covers network failures, non-2xx answers and undecodable bodies
	ErrUpstream = errors.New("upstream request failed")

	// ErrTransform means the upstream payload could not be aggregated
	ErrTransform = errors.New("malformed forecast data")
)
