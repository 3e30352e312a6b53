package dedupe

// Package dedupe provides the shared singleflight group used to
// deduplicate concurrent category-generation requests. Using a
// centralized singleflight.Group ensures only one generation job runs
// per session while other callers wait for the same result.

import "golang.org/x/sync/singleflight"

// CategoryGroup deduplicates category generation requests keyed by the
// session join code.
var CategoryGroup singleflight.Group
