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
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTranslateRequest_EnsureDefaults(t *testing.T) {
	req := TranslateRequest{Text: "පොත"}
	req.EnsureDefaults()

	if _, err := uuid.Parse(req.RequestID); err != nil {
		t.Errorf("generated RequestID is not a UUID: %q", req.RequestID)
	}
	if req.Timestamp <= 0 {
		t.Errorf("Timestamp not filled in: %d", req.Timestamp)
	}
	if req.SourceLanguage != "si" {
		t.Errorf("SourceLanguage = %q, want si", req.SourceLanguage)
	}
}

func TestTranslateRequest_EnsureDefaultsKeepsClientValues(t *testing.T) {
	id := uuid.New().String()
	req := TranslateRequest{RequestID: id, Timestamp: 1700000000000, Text: "පොත"}
	req.EnsureDefaults()

	if req.RequestID != id {
		t.Error("client RequestID was overwritten")
	}
	if req.Timestamp != 1700000000000 {
		t.Error("client Timestamp was overwritten")
	}
}

func TestTranslateRequest_Validate(t *testing.T) {
	threshold := 3
	tooHigh := 100

	cases := []struct {
		name    string
		req     TranslateRequest
		wantErr bool
	}{
		{"valid minimal", TranslateRequest{Text: "පොත"}, false},
		{"valid with threshold", TranslateRequest{Text: "පොත", ExtraUnitThreshold: &threshold}, false},
		{"missing text", TranslateRequest{}, true},
		{"oversized text", TranslateRequest{Text: strings.Repeat("අ", MaxTextBytes)}, true},
		{"bad request id", TranslateRequest{RequestID: "not-a-uuid", Text: "පොත"}, true},
		{"threshold too high", TranslateRequest{Text: "පොත", ExtraUnitThreshold: &tooHigh}, true},
		{"unsupported language", TranslateRequest{Text: "පොත", SourceLanguage: "ta"}, true},
		{"sinhala language", TranslateRequest{Text: "පොත", SourceLanguage: "si"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestSpellRequest_Validate(t *testing.T) {
	req := SpellRequest{Text: "අම්මා"}
	req.EnsureDefaults()
	if err := req.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	empty := SpellRequest{}
	if err := empty.Validate(); err == nil {
		t.Error("empty text accepted")
	}
}
