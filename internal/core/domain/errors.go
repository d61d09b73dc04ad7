package domain

import "errors"

// ErrPayloadUnavailable marks a load where the primary export document
// could not be fetched or parsed. The record list is cleared when this
// happens; no stale data is kept.
var ErrPayloadUnavailable = errors.New("export payload unavailable")

// ErrRefreshThrottled is returned when a manual refresh is rejected
// because another refresh ran too recently.
var ErrRefreshThrottled = errors.New("refresh throttled")
