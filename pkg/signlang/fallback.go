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

import "github.com/AleutianAI/signosi/pkg/sinhala"

// DefaultExtraUnitThreshold is the surplus of reduced units over base
// letters above which a mark-dense word is spelled letter by letter even
// when a whole-word sign exists.
const DefaultExtraUnitThreshold = 1

// UnitAssets answers availability questions about letter-level recorded
// assets. The asset layer implements it; the core only asks.
type UnitAssets interface {
	// UnitLabel returns the asset label for a reduced letter unit and
	// whether a recording exists for it.
	UnitLabel(unit string) (string, bool)
}

// vocabUnitAssets adapts the vocabulary's letter table to UnitAssets, for
// deployments without a separate landmark store.
type vocabUnitAssets struct {
	vocab *Vocabulary
}

// NewVocabularyUnitAssets wraps a vocabulary's single-rune entries as a
// UnitAssets source.
func NewVocabularyUnitAssets(vocab *Vocabulary) UnitAssets {
	return &vocabUnitAssets{vocab: vocab}
}

func (a *vocabUnitAssets) UnitLabel(unit string) (string, bool) {
	runes := []rune(unit)
	if len(runes) != 1 {
		return "", false
	}
	spec, ok := a.vocab.LetterSign(runes[0])
	if !ok || len(spec.Labels) == 0 {
		return "", false
	}
	return spec.Labels[0], true
}

// ShouldOverride reports whether a token should be letter-spelled instead
// of using its whole-word sign. Mark-dense words expand when decomposed;
// when the surplus of reduced units over base letters exceeds the
// threshold, the word-level recording is judged too coarse and spelling
// wins. Tokens without combining marks never override.
func ShouldOverride(text string, threshold int) bool {
	if !sinhala.ContainsCombiningMarks(text) {
		return false
	}
	return sinhala.ExtraUnits(text) > threshold
}

// Spell renders text as a letter-spelling sequence over its reduced units.
// Units with no recorded asset are kept as placeholders with an empty
// label, never dropped, so callers can show the gap to the user.
func Spell(text string, assets UnitAssets) []LetterSign {
	units := sinhala.Reduce(text)
	out := make([]LetterSign, 0, len(units))
	for _, unit := range units {
		label, ok := assets.UnitLabel(unit)
		out = append(out, LetterSign{Unit: unit, Label: label, Available: ok})
	}
	return out
}
