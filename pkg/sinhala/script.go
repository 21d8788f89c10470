// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package sinhala segments Sinhala-script text into the grapheme units that
// individually recorded sign assets exist for.
//
// Sinhala Unicode block: U+0D80 - U+0DFF. Consonants carry an implicit
// short "a" vowel unless cancelled by the hal kirima (virama) or replaced
// by a dependent vowel sign. Recorded letter assets exist only for pure
// consonants (consonant + hal kirima) and independent vowel letters, so the
// package provides two views of a string: the detailed grapheme sequence
// (Segment) and the reduced letter sequence used for asset lookup (Reduce).
//
// All functions are pure and safe for concurrent use.
package sinhala

// HalKirima is the Sinhala virama. It cancels a consonant's inherent vowel,
// leaving the pure consonant sound.
const HalKirima = '්' // ්

// consonants covers the Sinhala consonant letters used by the recorded
// vocabulary, including the rare prenasalized forms.
var consonants = map[rune]bool{
	'ක': true, 'ඛ': true, 'ග': true, 'ඝ': true, 'ඞ': true, 'ඟ': true,
	'ච': true, 'ඡ': true, 'ජ': true, 'ඣ': true, 'ඤ': true, 'ඥ': true, 'ඦ': true,
	'ට': true, 'ඨ': true, 'ඩ': true, 'ඪ': true, 'ණ': true, 'ඬ': true,
	'ත': true, 'ථ': true, 'ද': true, 'ධ': true, 'න': true, 'ඳ': true,
	'ප': true, 'ඵ': true, 'බ': true, 'භ': true, 'ම': true, 'ඹ': true,
	'ය': true, 'ර': true, 'ල': true, 'ව': true,
	'ශ': true, 'ෂ': true, 'ස': true, 'හ': true, 'ළ': true, 'ෆ': true,
}

// independentVowels are the freestanding vowel letters.
var independentVowels = map[rune]bool{
	'අ': true, 'ආ': true, 'ඇ': true, 'ඈ': true, 'ඉ': true, 'ඊ': true,
	'උ': true, 'ඌ': true, 'ඍ': true, 'ඎ': true, 'ඏ': true, 'ඐ': true,
	'එ': true, 'ඒ': true, 'ඓ': true, 'ඔ': true, 'ඕ': true, 'ඖ': true,
}

// vowelSignToLetter maps each dependent vowel sign to the independent vowel
// letter with the same sound. A consonant followed by a sign is pronounced
// as the pure consonant plus that vowel, which is how signers fingerspell it.
var vowelSignToLetter = map[rune]rune{
	'ා': 'ආ', 'ැ': 'ඇ', 'ෑ': 'ඈ', 'ි': 'ඉ', 'ී': 'ඊ',
	'ු': 'උ', 'ූ': 'ඌ', 'ෘ': 'ඍ', 'ෲ': 'ඎ',
	'ෙ': 'එ', 'ේ': 'ඒ', 'ෛ': 'ඓ', 'ො': 'ඔ', 'ෝ': 'ඕ', 'ෞ': 'ඖ',
}

// splitVowelFolds maps two-mark sequences that jointly denote one vowel
// sound to the composed dependent sign. Some input methods emit the kombuva
// and the second mark as separate codepoints instead of the precomposed
// sign; recorded assets only exist for the composed forms.
var splitVowelFolds = map[[2]rune]rune{
	{'ෙ', 'ා'}: 'ො', // kombuva + aela-pilla  -> o
	{'ෙ', 'ෟ'}: 'ෞ', // kombuva + gayanukitta -> au
	{'ේ', 'ා'}: 'ෝ', // kombuva+halant + aela-pilla -> oo
	{'ෙ', 'ෙ'}: 'ෛ', // doubled kombuva -> ai
}

// preBaseSigns are dependent signs that are rendered before the consonant
// glyph. Broken input sometimes stores them before the consonant codepoint
// as well; NormalizeMarks swaps them back behind the base.
var preBaseSigns = map[rune]bool{
	'ෙ': true, 'ේ': true, 'ෛ': true,
}

// IsConsonant reports whether r is a Sinhala consonant letter.
func IsConsonant(r rune) bool {
	return consonants[r]
}

// IsIndependentVowel reports whether r is a freestanding vowel letter.
func IsIndependentVowel(r rune) bool {
	return independentVowels[r]
}

// IsVowelSign reports whether r is a dependent vowel sign (combining mark
// attached to a consonant).
func IsVowelSign(r rune) bool {
	_, ok := vowelSignToLetter[r]
	return ok
}

// IsCombiningMark reports whether r is any Sinhala combining mark: a
// dependent vowel sign or the hal kirima.
func IsCombiningMark(r rune) bool {
	return r == HalKirima || IsVowelSign(r)
}

// IsSinhala reports whether r falls inside the Sinhala Unicode block.
func IsSinhala(r rune) bool {
	return r >= 0x0D80 && r <= 0x0DFF
}

// VowelLetterFor returns the independent vowel letter corresponding to a
// dependent vowel sign, and whether the sign is recognized.
func VowelLetterFor(sign rune) (rune, bool) {
	letter, ok := vowelSignToLetter[sign]
	return letter, ok
}
