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
	"errors"
	"sort"
)

// Engine dispatches tokens through the rule chain.
//
// # Description
//
// The chain is sorted by priority at construction and never mutated
// afterwards; exactly one rule fires per token. When the strict pass finds
// no producing rule, the engine retries once with the token's tag relaxed
// to the default, which opens the spelling rule to tokens the shallow
// tagger misjudged.
//
// # Thread Safety
//
// Safe for concurrent use after construction.
type Engine struct {
	vocab *Vocabulary
	rules []Rule
}

// Resolution is the outcome of one token's dispatch: the weighted variants
// plus which rule produced them and whether the relaxed retry was needed.
type Resolution struct {
	Specs   []SignSpec
	Rule    RuleKind
	Relaxed bool
}

// NewEngine builds an engine over the vocabulary with the given rule chain.
// A nil or empty chain gets the default rules.
func NewEngine(vocab *Vocabulary, rules []Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &Engine{vocab: vocab, rules: sorted}
}

// ResolveToken maps one token to its weighted sign variants. The strict
// pass walks the chain in priority order and fires the first applicable
// rule that produces signs. If the strict pass yields nothing, the tag is
// relaxed to the default for one retry; if that also fails the token is
// reported as NoSignInferredError.
func (e *Engine) ResolveToken(tok Token) (Resolution, error) {
	res, err := e.resolveStrict(tok)
	if err == nil {
		return res, nil
	}

	var noRule *NoApplicableRuleError
	if !errors.As(err, &noRule) {
		return Resolution{}, err
	}

	if tok.Tag != TagDefault {
		relaxed := Token{Text: tok.Text, Tag: TagDefault, Context: tok.Context}
		if res, err := e.resolveStrict(relaxed); err == nil {
			res.Relaxed = true
			return res, nil
		}
	}

	return Resolution{}, &NoSignInferredError{Text: tok.Text, Tag: tok.Tag}
}

// Resolve is ResolveToken without the dispatch detail.
func (e *Engine) Resolve(tok Token) ([]SignSpec, error) {
	res, err := e.ResolveToken(tok)
	if err != nil {
		return nil, err
	}
	return res.Specs, nil
}

func (e *Engine) resolveStrict(tok Token) (Resolution, error) {
	for _, rule := range e.rules {
		if !rule.Applicable(tok) {
			continue
		}
		if specs, ok := rule.apply(tok, e.vocab); ok {
			return Resolution{Specs: specs, Rule: rule.Kind}, nil
		}
	}
	return Resolution{}, &NoApplicableRuleError{Text: tok.Text, Tag: tok.Tag}
}

// Vocabulary exposes the engine's tables to the asset and fallback layers.
func (e *Engine) Vocabulary() *Vocabulary { return e.vocab }
