// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package services holds the translation orchestration: the pipeline from
// raw Sinhala text to per-token sign results, between the HTTP handlers
// above and the signlang core below.
package services

import (
	"context"
	"log/slog"

	"github.com/AleutianAI/signosi/pkg/signlang"
	"github.com/AleutianAI/signosi/services/translator/assets"
	"github.com/AleutianAI/signosi/services/translator/datatypes"
	"github.com/AleutianAI/signosi/services/translator/observability"
)

// TranslationService runs the text-to-sign pipeline.
//
// # Description
//
// One instance is built at startup and shared by all handlers. The pipeline
// per request is: tokenize, restructure to sign order, resolve each token
// through the rule engine, apply the spelling override for mark-dense
// words, then attach media availability and URLs from the asset store.
//
// # Thread Safety
//
// Safe for concurrent use; all per-request state is local.
type TranslationService struct {
	engine    *signlang.Engine
	store     assets.Store
	metrics   *observability.TranslationMetrics
	threshold int
}

// Options configures a TranslationService.
type Options struct {
	// ExtraUnitThreshold is the default surplus threshold for the spelling
	// override. Requests may override it per call.
	ExtraUnitThreshold int
}

// NewTranslationService wires the engine and asset store together.
func NewTranslationService(engine *signlang.Engine, store assets.Store,
	metrics *observability.TranslationMetrics, opts Options) *TranslationService {
	return &TranslationService{
		engine:    engine,
		store:     store,
		metrics:   metrics,
		threshold: opts.ExtraUnitThreshold,
	}
}

// Translate runs the full pipeline over the request text. Failed tokens are
// reported in place, never dropped; one unmapped word must not discard the
// rest of the sentence.
func (s *TranslationService) Translate(ctx context.Context, req datatypes.TranslateRequest) (datatypes.TranslateResponse, error) {
	threshold := s.threshold
	if req.ExtraUnitThreshold != nil {
		threshold = *req.ExtraUnitThreshold
	}

	tokens := signlang.Restructure(signlang.Tokenize(req.Text))
	results := make([]datatypes.TokenResult, 0, len(tokens))

	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return datatypes.TranslateResponse{}, err
		}
		results = append(results, s.translateToken(ctx, tok, threshold, req.IncludeMedia))
	}

	return datatypes.TranslateResponse{
		RequestID: req.RequestID,
		Timestamp: req.Timestamp,
		Tokens:    results,
	}, nil
}

// translateToken resolves one token and renders its result. Resolution
// failures and mark-density overrides both fall back to letter spelling;
// only when spelling produces nothing at all is the token reported failed.
func (s *TranslationService) translateToken(ctx context.Context, tok signlang.Token,
	threshold int, includeMedia bool) datatypes.TokenResult {

	result := datatypes.TokenResult{Token: tok.Text, Tag: tok.Tag.String()}

	res, err := s.engine.ResolveToken(tok)
	if err != nil {
		// No rule produced signs; spell what we can.
		spelled := signlang.Spell(tok.Text, s.store)
		if anyAvailable(spelled) {
			result.Rule = signlang.RuleSpelling.String()
			result.Spelled = s.renderSpelled(ctx, spelled, includeMedia)
			s.recordOutcome(observability.OutcomeSpelling)
			return result
		}
		slog.Warn("no sign inferred for token", "token", tok.Text, "tag", tok.Tag.String())
		result.Error = err.Error()
		s.recordOutcome(observability.OutcomeFailed)
		return result
	}

	// A word-level hit on a mark-dense token is judged too coarse; prefer
	// the letter sequence when it expands past the threshold.
	if res.Rule == signlang.RuleDirect && signlang.ShouldOverride(tok.Text, threshold) {
		spelled := signlang.Spell(tok.Text, s.store)
		if anyAvailable(spelled) {
			result.Rule = signlang.RuleSpelling.String()
			result.Spelled = s.renderSpelled(ctx, spelled, includeMedia)
			s.recordOutcome(observability.OutcomeOverride)
			if s.metrics != nil {
				s.metrics.RecordOverride()
			}
			return result
		}
	}

	// A resolved label whose recording is missing from the store is no
	// better than an unknown word; spell it instead.
	if res.Rule == signlang.RuleDirect && !s.anyVariantAvailable(ctx, res.Specs) {
		spelled := signlang.Spell(tok.Text, s.store)
		if anyAvailable(spelled) {
			result.Rule = signlang.RuleSpelling.String()
			result.Spelled = s.renderSpelled(ctx, spelled, includeMedia)
			s.recordOutcome(observability.OutcomeSpelling)
			return result
		}
	}

	result.Rule = res.Rule.String()
	result.Variants = s.renderVariants(ctx, res.Specs, includeMedia)
	s.recordOutcome(outcomeForRule(res.Rule))
	return result
}

// anyVariantAvailable reports whether at least one variant has recorded
// media for every one of its labels. Store errors keep the variants; a
// flaky backend must not degrade a valid resolution to spelling.
func (s *TranslationService) anyVariantAvailable(ctx context.Context, specs []signlang.SignSpec) bool {
	var labels []string
	for _, spec := range specs {
		labels = append(labels, spec.Labels...)
	}
	avail, err := s.store.Availability(ctx, labels)
	if err != nil {
		slog.Warn("media availability check failed", "error", err)
		return true
	}
	for _, spec := range specs {
		complete := true
		for _, label := range spec.Labels {
			if !avail[label] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// Spell renders one word letter by letter, bypassing the rule chain. The
// per-unit landmark payloads always ride along; they are what a spelling
// client renders.
func (s *TranslationService) Spell(ctx context.Context, req datatypes.SpellRequest) (datatypes.SpellResponse, error) {
	spelled := signlang.Spell(req.Text, s.store)
	return datatypes.SpellResponse{
		RequestID: req.RequestID,
		Timestamp: req.Timestamp,
		Units:     s.renderSpelled(ctx, spelled, true),
	}, nil
}

// VocabularySummary reports table sizes and letter coverage.
func (s *TranslationService) VocabularySummary() datatypes.VocabularySummary {
	vocab := s.engine.Vocabulary()
	letters := vocab.Letters()
	units := make([]string, 0, len(letters))
	for _, r := range letters {
		units = append(units, string(r))
	}
	return datatypes.VocabularySummary{
		Words:   vocab.WordCount(),
		Letters: vocab.LetterCount(),
		Units:   units,
	}
}

// renderVariants converts engine output to response form, attaching media
// URLs when asked.
func (s *TranslationService) renderVariants(ctx context.Context, specs []signlang.SignSpec,
	includeMedia bool) []datatypes.SignVariant {

	variants := make([]datatypes.SignVariant, 0, len(specs))
	for _, spec := range specs {
		v := datatypes.SignVariant{Labels: spec.Labels, Weight: spec.Weight}
		if includeMedia {
			v.MediaURLs = make([]string, len(spec.Labels))
			for i, label := range spec.Labels {
				url, err := s.store.MediaURL(ctx, label)
				if err != nil {
					slog.Warn("failed to resolve media URL", "label", label, "error", err)
					if s.metrics != nil {
						s.metrics.RecordSignedURLError()
					}
					continue
				}
				v.MediaURLs[i] = url
			}
		}
		variants = append(variants, v)
	}
	return variants
}

// renderSpelled converts a spelling sequence to response form. withAssets
// attaches each available unit's landmark payload and, when the store can
// serve one, a media URL.
func (s *TranslationService) renderSpelled(ctx context.Context, spelled []signlang.LetterSign,
	withAssets bool) []datatypes.SpelledUnit {

	units := make([]datatypes.SpelledUnit, 0, len(spelled))
	for _, ls := range spelled {
		u := datatypes.SpelledUnit{Unit: ls.Unit, Label: ls.Label, Available: ls.Available}
		if withAssets && ls.Available {
			if url, err := s.store.MediaURL(ctx, ls.Label); err == nil {
				u.MediaURL = url
			}
			payload, err := s.store.Landmarks(ctx, ls.Unit)
			if err != nil {
				slog.Warn("failed to load landmark payload", "unit", ls.Unit, "error", err)
			} else {
				u.Landmark = payload
			}
		}
		units = append(units, u)
	}
	return units
}

func (s *TranslationService) recordOutcome(outcome observability.Outcome) {
	if s.metrics != nil {
		s.metrics.RecordOutcome(outcome)
	}
}

func anyAvailable(spelled []signlang.LetterSign) bool {
	for _, ls := range spelled {
		if ls.Available {
			return true
		}
	}
	return false
}

func outcomeForRule(kind signlang.RuleKind) observability.Outcome {
	switch kind {
	case signlang.RuleDirect:
		return observability.OutcomeDirect
	case signlang.RuleNumber:
		return observability.OutcomeNumber
	default:
		return observability.OutcomeSpelling
	}
}
