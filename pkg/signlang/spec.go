// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package signlang

// SignSpec is one weighted candidate rendering of a token: an ordered
// sequence of sign labels plus the probability weight of this variant.
// When a word has N recorded variants, each receives weight 1/N and the
// weights sum to 1.0.
type SignSpec struct {
	// Labels reference recorded assets in the vocabulary store. The core
	// carries them opaquely; only the asset layer interprets them.
	Labels []string `json:"labels"`

	// Weight is this variant's share of the probability mass for its word.
	Weight float64 `json:"weight"`
}

// LetterSign is one unit of a letter-spelling sequence: the reduced grapheme
// unit's textual identity and the label of its recorded asset, if any. Units
// without an asset keep an empty Label so the caller can report the gap
// instead of losing the unit.
type LetterSign struct {
	Unit      string `json:"unit"`
	Label     string `json:"label,omitempty"`
	Available bool   `json:"available"`
}

// equalWeightSpecs builds one SignSpec per label sequence with the equal
// weight policy: weight = 1 / number of variants.
func equalWeightSpecs(sequences [][]string) []SignSpec {
	if len(sequences) == 0 {
		return nil
	}
	w := 1.0 / float64(len(sequences))
	specs := make([]SignSpec, 0, len(sequences))
	for _, seq := range sequences {
		labels := make([]string, len(seq))
		copy(labels, seq)
		specs = append(specs, SignSpec{Labels: labels, Weight: w})
	}
	return specs
}
