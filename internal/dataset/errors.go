// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

package dataset

import "errors"

// Error classes. Callers classify with errors.Is; the HTTP layer maps
// each class to a status code and error code.
var (
	// ErrDataUnavailable marks a failed load: the source cannot be
	// opened or parsed. Fatal at startup - nothing can render without
	// the relation.
	ErrDataUnavailable = errors.New("dataset unavailable")

	// ErrEmptyResult marks a single-record lookup that matched no rows.
	// Recoverable: the caller renders an explicit no-data state.
	ErrEmptyResult = errors.New("empty result")

	// ErrSelectionOutOfBounds marks a country comparison request that
	// exceeds the selection cap.
	ErrSelectionOutOfBounds = errors.New("selection out of bounds")
)
