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

import (
	"github.com/AleutianAI/signosi/pkg/sinhala"
)

// RuleKind discriminates the rule variants. Rules are data, not behavior:
// a single dispatcher interprets each kind, so adding a variant means one
// new case, not a new type hierarchy.
type RuleKind int

const (
	// RuleDirect maps a whole token to its recorded word signs.
	RuleDirect RuleKind = iota

	// RuleNumber renders a numeric token digit by digit.
	RuleNumber

	// RuleSpelling renders a token letter by letter from its reduced units.
	RuleSpelling
)

// String returns the kind name, for logs and error messages.
func (k RuleKind) String() string {
	switch k {
	case RuleDirect:
		return "direct"
	case RuleNumber:
		return "number"
	case RuleSpelling:
		return "spelling"
	default:
		return "invalid"
	}
}

// Rule is one entry of the dispatch chain.
//
// # Description
//
// A rule pairs a kind with the dispatch metadata the engine needs: its
// priority rank and the token tags it accepts. Lower priority values win;
// the chain is sorted once at construction and the first applicable rule
// is the only one that fires.
type Rule struct {
	// Kind selects the resolution strategy.
	Kind RuleKind

	// Priority ranks the rule in the chain. Lower fires first.
	Priority int

	// Tags are the token tags this rule accepts.
	Tags []Tag
}

// DefaultRules returns the standard chain: direct lookup first, numbers
// next, spelling as the catch-all. The direct rule accepts every tag: a
// recorded word sign wins on the table key alone, so a number written out
// in the vocabulary resolves directly without a relaxed retry.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: RuleDirect, Priority: 1, Tags: []Tag{TagDefault, TagNumber, TagName, TagUnknown}},
		{Kind: RuleNumber, Priority: 3, Tags: []Tag{TagNumber}},
		{Kind: RuleSpelling, Priority: 5, Tags: []Tag{TagDefault, TagName, TagUnknown}},
	}
}

// Applicable reports whether this rule accepts the token's tag.
func (r Rule) Applicable(tok Token) bool {
	for _, t := range r.Tags {
		if t == tok.Tag {
			return true
		}
	}
	return false
}

// apply resolves the token under this rule. A false second return means the
// rule matched the tag but could not produce signs (word not in vocabulary,
// no letter assets at all); the engine then tries the next rule in the
// chain.
func (r Rule) apply(tok Token, vocab *Vocabulary) ([]SignSpec, bool) {
	switch r.Kind {
	case RuleDirect:
		specs, ok := vocab.WordSigns(tok.Text)
		return specs, ok

	case RuleNumber:
		return applyNumber(tok, vocab)

	case RuleSpelling:
		return applySpelling(tok, vocab)

	default:
		return nil, false
	}
}

// applyNumber renders a numeric token one digit sign after another, one
// SignSpec per digit: digits are chunked, never grouped into a combined
// sign. Each digit carries weight 1.0 since there is exactly one way to
// sign it. Non-digit characters (grouping commas, a decimal point) are
// skipped; the rule fails only when a present digit has no recorded sign
// or the token carries no digits at all.
func applyNumber(tok Token, vocab *Vocabulary) ([]SignSpec, bool) {
	var specs []SignSpec
	for _, r := range tok.Text {
		if r < '0' || r > '9' {
			continue
		}
		digit, ok := vocab.WordSigns(string(r))
		if !ok || len(digit) == 0 {
			return nil, false
		}
		labels := make([]string, len(digit[0].Labels))
		copy(labels, digit[0].Labels)
		specs = append(specs, SignSpec{Labels: labels, Weight: 1.0})
	}
	if len(specs) == 0 {
		return nil, false
	}
	return specs, true
}

// applySpelling renders a token from its reduced letter units, one SignSpec
// per unit. Every unit must have a recorded letter sign; a single gap fails
// the whole rule so the engine can report the token instead of emitting a
// partial spelling.
func applySpelling(tok Token, vocab *Vocabulary) ([]SignSpec, bool) {
	units := sinhala.Reduce(tok.Text)
	if len(units) == 0 {
		return nil, false
	}

	specs := make([]SignSpec, 0, len(units))
	for _, unit := range units {
		runes := []rune(unit)
		if len(runes) != 1 {
			return nil, false
		}
		letter, ok := vocab.LetterSign(runes[0])
		if !ok || len(letter.Labels) == 0 {
			return nil, false
		}
		labels := make([]string, len(letter.Labels))
		copy(labels, letter.Labels)
		specs = append(specs, SignSpec{Labels: labels, Weight: 1.0})
	}
	return specs, true
}
