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
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AleutianAI/signosi/pkg/sinhala"
)

// Entry is one record of the dictionary mapping file: a sign label mapped
// to the words that gloss it per language, plus where its recorded media
// lives.
type Entry struct {
	// Text maps a language code ("si", "en") to the words this sign glosses.
	Text map[string][]string `json:"text"`

	// MediaPath is the store-relative path of the recorded media.
	MediaPath string `json:"media_path,omitempty"`

	// MediaType is the primary media kind: "video", "animation" or
	// "landmarks".
	MediaType string `json:"media_type,omitempty"`
}

// Vocabulary holds the flattened lookup tables built from the dictionary
// mapping at startup. It is read-only after construction and safe to share
// across concurrent resolutions without locking.
type Vocabulary struct {
	// entries is the raw mapping, keyed by sign label.
	entries map[string]Entry

	// words maps a lowercased word to its weighted sign variants.
	words map[string][]SignSpec

	// letters maps a single Sinhala rune to its sign, built from the
	// single-character entries of the dictionary.
	letters map[rune]SignSpec
}

// LoadVocabulary reads a dictionary mapping JSON file and flattens it into
// lookup tables.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}

	return NewVocabulary(entries), nil
}

// NewVocabulary flattens the label→entry mapping into the word and letter
// tables. Each word that glosses N distinct labels yields N variants with
// weight 1/N. Single-rune Sinhala words additionally populate the letter
// table used for character-by-character spelling.
func NewVocabulary(entries map[string]Entry) *Vocabulary {
	v := &Vocabulary{
		entries: entries,
		words:   make(map[string][]SignSpec),
		letters: make(map[rune]SignSpec),
	}

	// Word -> ordered distinct label sequences. Iterate labels in sorted
	// order so variant order (and therefore output order) is deterministic.
	wordToSequences := make(map[string][][]string)
	labels := make([]string, 0, len(entries))
	for label := range entries {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		entry := entries[label]
		for _, words := range entry.Text {
			for _, word := range words {
				key := strings.ToLower(word)
				if key == "" {
					continue
				}
				seqs := wordToSequences[key]
				if !containsSequence(seqs, label) {
					wordToSequences[key] = append(seqs, []string{label})
				}
			}
		}
	}

	for word, seqs := range wordToSequences {
		specs := equalWeightSpecs(seqs)
		v.words[word] = specs

		runes := []rune(word)
		if len(runes) == 1 && sinhala.IsSinhala(runes[0]) {
			v.letters[runes[0]] = specs[0]
		}
	}

	return v
}

func containsSequence(seqs [][]string, label string) bool {
	for _, seq := range seqs {
		if len(seq) == 1 && seq[0] == label {
			return true
		}
	}
	return false
}

// WordSigns returns the weighted sign variants for a word, matching
// case-insensitively.
func (v *Vocabulary) WordSigns(word string) ([]SignSpec, bool) {
	specs, ok := v.words[strings.ToLower(word)]
	return specs, ok
}

// LetterSign returns the sign for a single Sinhala rune.
func (v *Vocabulary) LetterSign(r rune) (SignSpec, bool) {
	spec, ok := v.letters[r]
	return spec, ok
}

// Entry returns the raw dictionary record for a sign label.
func (v *Vocabulary) Entry(label string) (Entry, bool) {
	e, ok := v.entries[label]
	return e, ok
}

// WordCount returns the number of distinct words in the word table.
func (v *Vocabulary) WordCount() int { return len(v.words) }

// LetterCount returns the number of single-rune Sinhala entries.
func (v *Vocabulary) LetterCount() int { return len(v.letters) }

// Letters returns the runes present in the letter table, sorted, for
// coverage reporting.
func (v *Vocabulary) Letters() []rune {
	runes := make([]rune, 0, len(v.letters))
	for r := range v.letters {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
