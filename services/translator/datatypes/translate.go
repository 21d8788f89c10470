// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides request and response structures for the
// translator service.
//
// This file contains the types for the translation endpoints. For the
// spelling endpoint types, see spell.go.
package datatypes

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// MaxTextBytes is the maximum size of the input text. Checks byte
	// length, not rune count, to bound memory regardless of script.
	MaxTextBytes = 16 * 1024 // 16KB

	// MaxExtraUnitThreshold bounds the configurable spelling-override
	// threshold to something sane for real words.
	MaxExtraUnitThreshold = 16
)

// =============================================================================
// Shared Validator Instance
// =============================================================================

// translateValidate is the validator instance for translator datatypes.
var translateValidate *validator.Validate

func init() {
	translateValidate = validator.New()
	_ = translateValidate.RegisterValidation("maxbytes", validateMaxBytes)
}

// validateMaxBytes validates that a string field does not exceed MaxTextBytes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxTextBytes
}

// =============================================================================
// Translation Request Types
// =============================================================================

// TranslateRequest is the body of POST /v1/translate.
//
// # Description
//
// Carries the Sinhala source text plus optional knobs for the spelling
// fallback. Every request gets a unique ID and timestamp for audit trails;
// both are filled in server-side when the client omits them.
//
// # Fields
//
//   - RequestID: Optional. UUID v4 for tracing and audit logging.
//   - Timestamp: Optional. Unix timestamp in milliseconds (UTC).
//   - Text: Required. Sinhala source text, at most 16KB.
//   - SourceLanguage: Optional. ISO 639-1 code of the source text. Only
//     "si" is accepted today; the field exists so adding a language is not
//     a wire change. Defaults to "si".
//   - ExtraUnitThreshold: Optional. Overrides the default surplus threshold
//     for the spelling fallback. Nil keeps the server default.
//   - IncludeMedia: Optional. When true, resolved labels are returned with
//     signed media URLs.
type TranslateRequest struct {
	RequestID          string `json:"request_id" validate:"omitempty,uuid4"`
	Timestamp          int64  `json:"timestamp" validate:"omitempty,gt=0"`
	Text               string `json:"text" validate:"required,maxbytes"`
	SourceLanguage     string `json:"source_language,omitempty" validate:"omitempty,oneof=si"`
	ExtraUnitThreshold *int   `json:"extra_unit_threshold,omitempty" validate:"omitempty,gte=0,lte=16"`
	IncludeMedia       bool   `json:"include_media,omitempty"`
}

// EnsureDefaults fills in the server-generated fields when absent.
func (r *TranslateRequest) EnsureDefaults() {
	if r.RequestID == "" {
		r.RequestID = uuid.New().String()
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UTC().UnixMilli()
	}
	if r.SourceLanguage == "" {
		r.SourceLanguage = "si"
	}
}

// Validate checks the request against its validation tags.
func (r *TranslateRequest) Validate() error {
	return translateValidate.Struct(r)
}

// =============================================================================
// Translation Response Types
// =============================================================================

// SignVariant is one weighted candidate rendering of a token.
type SignVariant struct {
	Labels []string `json:"labels"`
	Weight float64  `json:"weight"`

	// MediaURLs holds one signed URL per label, populated only when the
	// request asked for media and the asset store can sign.
	MediaURLs []string `json:"media_urls,omitempty"`
}

// TokenResult is the translation outcome for one restructured token.
//
// Exactly one of Variants or Spelled is populated on success; Error is set
// when no sign could be inferred. Failed tokens stay in the sequence so the
// caller sees what was skipped.
type TokenResult struct {
	Token    string        `json:"token"`
	Tag      string        `json:"tag"`
	Rule     string        `json:"rule,omitempty"`
	Variants []SignVariant `json:"variants,omitempty"`
	Spelled  []SpelledUnit `json:"spelled,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// SpelledUnit is one unit of a letter-spelling sequence.
type SpelledUnit struct {
	Unit      string `json:"unit"`
	Label     string `json:"label,omitempty"`
	Available bool   `json:"available"`
	MediaURL  string `json:"media_url,omitempty"`

	// Landmark is the unit's raw landmark JSON, attached for available
	// units when the caller asked for assets.
	Landmark json.RawMessage `json:"landmark,omitempty"`
}

// TranslateResponse is the body returned by POST /v1/translate.
type TranslateResponse struct {
	RequestID string        `json:"request_id"`
	Timestamp int64         `json:"timestamp"`
	Tokens    []TokenResult `json:"tokens"`
}

// =============================================================================
// Vocabulary Summary Types
// =============================================================================

// VocabularySummary is the body returned by GET /v1/vocabulary/summary.
type VocabularySummary struct {
	Words   int      `json:"words"`
	Letters int      `json:"letters"`
	Units   []string `json:"units"`
}
