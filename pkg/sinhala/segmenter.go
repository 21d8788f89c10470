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

import "strings"

// GraphemeKind identifies the variant of a segmented unit.
type GraphemeKind int

const (
	// ConsonantBase is a consonant that still carries its inherent vowel.
	// The segmenter never emits this directly (the implicit vowel is made
	// explicit), but reducers and callers may construct it.
	ConsonantBase GraphemeKind = iota

	// ConsonantWithVirama is a pure consonant: the base letter with its
	// inherent vowel cancelled, written with the hal kirima (e.g. ක්).
	ConsonantWithVirama

	// IndependentVowel is a freestanding vowel letter (e.g. අ, ඊ).
	IndependentVowel

	// Passthrough is any character the segmenter does not recognize as part
	// of the Sinhala phonetic system: punctuation, digits, Latin letters,
	// zero-width joiners, or an isolated combining mark. It is carried
	// through untouched so no input position is ever lost.
	Passthrough
)

// String returns the variant name, for logs and test failure messages.
func (k GraphemeKind) String() string {
	switch k {
	case ConsonantBase:
		return "ConsonantBase"
	case ConsonantWithVirama:
		return "ConsonantWithVirama"
	case IndependentVowel:
		return "IndependentVowel"
	case Passthrough:
		return "Passthrough"
	default:
		return "Unknown"
	}
}

// Grapheme is one unit of the detailed segmentation: a consonant (with or
// without its vowel cancelled), an independent vowel, or a passthrough
// character. Base is the letter itself; for ConsonantWithVirama the hal
// kirima is implied and appears in the textual form, not in Base.
type Grapheme struct {
	Kind GraphemeKind
	Base rune
}

// Text returns the unit in the textual form recorded assets are keyed by:
// pure consonants carry the hal kirima (ක → "ක්"), everything else is the
// bare character.
func (g Grapheme) Text() string {
	if g.Kind == ConsonantWithVirama {
		return string([]rune{g.Base, HalKirima})
	}
	return string(g.Base)
}

// Segment splits text into its detailed grapheme sequence with a single
// left-to-right scan and one rune of lookahead.
//
// Consonant handling follows the standard phonetic decomposition used when
// fingerspelling Sinhala:
//
//	ක  (bare consonant)      -> ක් + අ   (implicit inherent vowel)
//	කී (consonant + sign)    -> ක් + ඊ   (sign mapped to its vowel letter)
//	ක් (consonant + virama)  -> ක්        (pure consonant, no vowel)
//
// A consonant at the end of the input still receives the implicit vowel.
// Unrecognized characters are emitted as Passthrough, never dropped and
// never an error: segmentation is total over arbitrary Unicode input, and
// "no asset exists for this unit" is decided later at lookup time.
func Segment(text string) []Grapheme {
	runes := []rune(text)
	n := len(runes)
	units := make([]Grapheme, 0, n+n/2)

	i := 0
	for i < n {
		r := runes[i]

		switch {
		case IsConsonant(r):
			i++
			if i < n {
				next := runes[i]
				if letter, ok := VowelLetterFor(next); ok {
					units = append(units,
						Grapheme{Kind: ConsonantWithVirama, Base: r},
						Grapheme{Kind: IndependentVowel, Base: letter})
					i++
					continue
				}
				if next == HalKirima {
					units = append(units, Grapheme{Kind: ConsonantWithVirama, Base: r})
					i++
					continue
				}
			}
			// Unmarked consonant, possibly at end of input: implicit "a".
			units = append(units,
				Grapheme{Kind: ConsonantWithVirama, Base: r},
				Grapheme{Kind: IndependentVowel, Base: 'අ'})

		case IsIndependentVowel(r):
			units = append(units, Grapheme{Kind: IndependentVowel, Base: r})
			i++

		default:
			units = append(units, Grapheme{Kind: Passthrough, Base: r})
			i++
		}
	}

	return units
}

// Spell renders the detailed segmentation of text as a single string, one
// unit per rune cluster. Intended for debug output and CLI display.
func Spell(text string) string {
	units := Segment(text)
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = u.Text()
	}
	return strings.Join(parts, " ")
}
