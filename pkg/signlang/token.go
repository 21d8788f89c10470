// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package signlang resolves tagged text tokens into ordered, weighted
// sign-label sequences using a priority-ranked rule dispatcher with a
// letter-spelling fallback.
//
// The vocabulary tables are built once at startup and are read-only for the
// lifetime of the process; all resolution state is per call, so concurrent
// requests share an Engine without locking.
package signlang

import (
	"strings"
	"unicode"

	"github.com/AleutianAI/signosi/pkg/sinhala"
)

// Tag classifies a token for rule applicability checks.
type Tag int

const (
	TagDefault Tag = iota
	TagNumber
	TagName
	TagUnknown
	TagSpace
	TagPunctuation
)

// String returns the tag name, for logs and error messages.
func (t Tag) String() string {
	switch t {
	case TagDefault:
		return "default"
	case TagNumber:
		return "number"
	case TagName:
		return "name"
	case TagUnknown:
		return "unknown"
	case TagSpace:
		return "space"
	case TagPunctuation:
		return "punctuation"
	default:
		return "invalid"
	}
}

// Token is one unit of the input stream: a word, number, or separator with
// its tag. Tokens are immutable once constructed and live only for the
// duration of one resolution.
type Token struct {
	Text    string
	Tag     Tag
	Context string
}

// Tokenize splits text on whitespace, separates trailing/leading
// punctuation into their own tokens, and tags each token. The tagger is
// deliberately shallow: digits (with optional grouping commas) are Number,
// text containing Sinhala codepoints is Default, anything else is Unknown.
// Space tokens are emitted between words so the restructurer sees the full
// stream.
func Tokenize(text string) []Token {
	var tokens []Token
	fields := strings.Fields(text)

	for i, field := range fields {
		if i > 0 {
			tokens = append(tokens, Token{Text: " ", Tag: TagSpace})
		}
		tokens = append(tokens, splitPunct(field)...)
	}

	return tokens
}

// splitPunct peels leading and trailing punctuation off a whitespace-free
// field and tags the remaining core.
func splitPunct(field string) []Token {
	runes := []rune(field)
	start, end := 0, len(runes)

	for start < end && isPunct(runes[start]) {
		start++
	}
	for end > start && isPunct(runes[end-1]) {
		end--
	}

	var tokens []Token
	for _, r := range runes[:start] {
		tokens = append(tokens, Token{Text: string(r), Tag: TagPunctuation})
	}
	if start < end {
		core := string(runes[start:end])
		tokens = append(tokens, Token{Text: core, Tag: classify(core)})
	}
	for _, r := range runes[end:] {
		tokens = append(tokens, Token{Text: string(r), Tag: TagPunctuation})
	}
	return tokens
}

func classify(text string) Tag {
	if isNumeric(text) {
		return TagNumber
	}
	for _, r := range text {
		if sinhala.IsSinhala(r) {
			return TagDefault
		}
	}
	return TagUnknown
}

// isNumeric reports whether text is digits with optional grouping commas
// and at most one decimal point.
func isNumeric(text string) bool {
	if text == "" {
		return false
	}
	digits := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',' || r == '.':
		default:
			return false
		}
	}
	return digits > 0
}

func isPunct(r rune) bool {
	if r == '෴' { // kunddaliya, the Sinhala section mark
		return true
	}
	return unicode.IsPunct(r)
}
