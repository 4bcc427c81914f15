// Package pypi implements a client for PEP 503 "Simple API" package indexes.
//
// The Simple API is the lowest common denominator across PyPI, Nexus,
// Artifactory, and DevPI: one HTML page per project listing released file
// names as anchors. The client fetches that page, extracts version numbers
// from wheel and sdist filenames, validates them against the PEP 440
// grammar, and returns them newest first.
//
// Files marked withdrawn with a data-yanked attribute are excluded unless
// explicitly requested.
//
// Responses are cached through a [cache.Cache] backend with a configurable
// TTL, and transient failures are retried with exponential backoff. A
// fallback index URL can be supplied for network (not 404) failures.
//
// [cache.Cache]: github.com/reqs-dev/reqs/pkg/cache
package pypi
