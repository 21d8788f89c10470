// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package assets answers where recorded sign media lives and whether it
// exists. The translation core only asks; the concrete stores (local disk,
// GCS) answer.
package assets

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a label has no recorded media.
var ErrNotFound = errors.New("assets: no media for label")

// Store resolves sign labels to recorded media.
type Store interface {
	// Availability reports, per label, whether recorded media exists.
	// Labels without a vocabulary entry map to false; the map always has
	// one key per input label.
	Availability(ctx context.Context, labels []string) (map[string]bool, error)

	// MediaURL returns a URL a client can fetch the label's media from.
	// Local stores return plain paths; remote stores return signed URLs.
	MediaURL(ctx context.Context, label string) (string, error)

	// UnitLabel returns the asset label for a reduced letter unit and
	// whether a landmark recording exists for it. Satisfies the spelling
	// fallback's asset interface.
	UnitLabel(unit string) (string, bool)

	// Landmarks returns the raw landmark JSON recorded for a reduced
	// letter unit, or ErrNotFound.
	Landmarks(ctx context.Context, unit string) ([]byte, error)
}
