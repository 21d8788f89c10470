// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/signosi/pkg/signlang"
)

func loadVocab() *signlang.Vocabulary {
	vocab, err := signlang.LoadVocabulary(vocabPath)
	if err != nil {
		log.Fatalf("Error loading vocabulary: %v", err)
	}
	return vocab
}

func runVocabSummary(cmd *cobra.Command, args []string) {
	vocab := loadVocab()

	letters := vocab.Letters()
	units := make([]string, 0, len(letters))
	for _, r := range letters {
		units = append(units, string(r))
	}

	if jsonOutput {
		printJSON(map[string]any{
			"words":   vocab.WordCount(),
			"letters": vocab.LetterCount(),
			"units":   units,
		})
		return
	}
	fmt.Printf("words:   %d\n", vocab.WordCount())
	fmt.Printf("letters: %d\n", vocab.LetterCount())
	fmt.Printf("units:   %s\n", strings.Join(units, " "))
}

func runVocabLookup(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		log.Fatal("Usage: signosi vocab lookup [word]")
	}
	vocab := loadVocab()

	specs, ok := vocab.WordSigns(args[0])
	if !ok {
		log.Fatalf("No sign recorded for %q", args[0])
	}

	if jsonOutput {
		printJSON(specs)
		return
	}
	for _, spec := range specs {
		fmt.Printf("%.3f  %s\n", spec.Weight, strings.Join(spec.Labels, " "))
	}
}
