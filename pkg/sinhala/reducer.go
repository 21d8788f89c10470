// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sinhala

// NormalizeMarks corrects storage-order artifacts of combining marks before
// segmentation. Two classes of artifact appear in real input:
//
//   - A pre-base vowel sign (kombuva family) stored before its consonant.
//     The sign is swapped behind the base so the segmenter's one-rune
//     lookahead sees consonant-then-sign.
//   - A vowel sound typed as two separate marks (e.g. kombuva + aela-pilla
//     instead of the precomposed "o" sign). The pair is folded into the
//     composed sign the asset set is keyed by.
//
// The pass is table-driven and order-preserving: it only reorders or folds
// marks relative to their own base, never moves content across bases.
// Calling it twice yields the same result as calling it once.
func NormalizeMarks(text string) string {
	runes := []rune(text)
	n := len(runes)
	out := make([]rune, 0, n)

	i := 0
	for i < n {
		r := runes[i]

		// Pre-base sign stored before its consonant: swap. A sign preceded
		// by a consonant is already attached to it and stays put; only a
		// sign with no base behind it is misplaced.
		if preBaseSigns[r] && i+1 < n && IsConsonant(runes[i+1]) &&
			(i == 0 || !IsConsonant(runes[i-1])) {
			out = append(out, runes[i+1])
			r = runes[i] // the sign, now after its base
			i += 2
			// The swapped sign may still start a split pair.
			if i < n {
				if folded, ok := splitVowelFolds[[2]rune{r, runes[i]}]; ok {
					out = append(out, folded)
					i++
					continue
				}
			}
			out = append(out, r)
			continue
		}

		// Split vowel pair: fold into the composed sign.
		if i+1 < n {
			if folded, ok := splitVowelFolds[[2]rune{r, runes[i+1]}]; ok {
				out = append(out, folded)
				i += 2
				continue
			}
		}

		out = append(out, r)
		i++
	}

	return string(out)
}

// ReduceGraphemes collapses a detailed grapheme sequence into the reduced
// letter sequence that recorded assets exist for, using one unit of
// lookahead:
//
//   - consonant + inherent "a": the vowel carries no separate sign, so only
//     the base consonant is emitted (ක් + අ -> ක).
//   - consonant + any other vowel: both are emitted as separate units,
//     the consonant as its base letter (ක් + ඊ -> ක, ඊ).
//   - a pure consonant with no following vowel is emitted as its base
//     letter alone.
//   - independent vowels and passthrough units are emitted unchanged.
//     Passthrough units survive so the lookup stage can report them as
//     "no asset" instead of silently dropping input.
//
// The virama distinction exists only in the detailed form; recorded assets
// are keyed by base letters.
func ReduceGraphemes(units []Grapheme) []string {
	reduced := make([]string, 0, len(units))

	i := 0
	for i < len(units) {
		u := units[i]

		if u.Kind == ConsonantWithVirama && i+1 < len(units) &&
			units[i+1].Kind == IndependentVowel {
			v := units[i+1]
			if v.Base == 'අ' {
				reduced = append(reduced, string(u.Base))
			} else {
				reduced = append(reduced, string(u.Base), v.Text())
			}
			i += 2
			continue
		}

		if u.Kind == ConsonantWithVirama {
			reduced = append(reduced, string(u.Base))
			i++
			continue
		}

		reduced = append(reduced, u.Text())
		i++
	}

	return reduced
}

// Reduce normalizes, segments, and reduces text in one call. The result is
// the ordered list of letter units to look up recorded assets for, one unit
// per sign.
func Reduce(text string) []string {
	return ReduceGraphemes(Segment(NormalizeMarks(text)))
}

// ExtraUnits reports how many reduced units text produces beyond its count
// of base (non-combining-mark) letters. Each dependent vowel sign that
// survives reduction as its own letter adds one extra unit; words dense in
// marks expand when decomposed. Callers use the surplus to decide between a
// whole-word sign and letter spelling.
func ExtraUnits(text string) int {
	bases := 0
	for _, r := range text {
		if !IsCombiningMark(r) {
			bases++
		}
	}
	return len(Reduce(text)) - bases
}

// ContainsCombiningMarks reports whether text carries any dependent vowel
// sign or hal kirima.
func ContainsCombiningMarks(text string) bool {
	for _, r := range text {
		if IsCombiningMark(r) {
			return true
		}
	}
	return false
}
