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

import "strings"

// stopwords are function words that sign language grammar drops: the
// conjunctions, case particles, and copulas that carry no sign of their own.
var stopwords = map[string]struct{}{
	"සහ":   {},
	"හා":   {},
	"වෙත":  {},
	"වෙතට": {},
	"තුළ":  {},
	"ය":    {},
	"වේ":   {},
}

// IsStopword reports whether the word is dropped during restructuring.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Restructure converts a tokenized sentence into the sign-order token
// stream:
//
//   - space and punctuation tokens are dropped (signing has no separators),
//   - stopwords are dropped,
//   - numeric tokens lose their grouping commas,
//   - everything else passes through in original order.
//
// The returned slice is freshly allocated; the input is never mutated.
func Restructure(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Tag {
		case TagSpace, TagPunctuation:
			continue
		case TagNumber:
			out = append(out, Token{
				Text:    strings.ReplaceAll(tok.Text, ",", ""),
				Tag:     TagNumber,
				Context: tok.Context,
			})
		default:
			if IsStopword(tok.Text) {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}
