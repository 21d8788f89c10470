// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"time"

	"github.com/google/uuid"
)

// SpellRequest is the body of POST /v1/spell: render one word letter by
// letter regardless of whether a whole-word sign exists.
type SpellRequest struct {
	RequestID string `json:"request_id" validate:"omitempty,uuid4"`
	Timestamp int64  `json:"timestamp" validate:"omitempty,gt=0"`
	Text      string `json:"text" validate:"required,maxbytes"`
}

// EnsureDefaults fills in the server-generated fields when absent.
func (r *SpellRequest) EnsureDefaults() {
	if r.RequestID == "" {
		r.RequestID = uuid.New().String()
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UTC().UnixMilli()
	}
}

// Validate checks the request against its validation tags.
func (r *SpellRequest) Validate() error {
	return translateValidate.Struct(r)
}

// SpellResponse is the body returned by POST /v1/spell.
type SpellResponse struct {
	RequestID string        `json:"request_id"`
	Timestamp int64         `json:"timestamp"`
	Units     []SpelledUnit `json:"units"`
}
