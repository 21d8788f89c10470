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
	"github.com/AleutianAI/signosi/pkg/sinhala"
)

func runReduce(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: signosi reduce [text]")
	}
	text := strings.Join(args, " ")

	normalized := sinhala.NormalizeMarks(text)
	if normalized != text {
		fmt.Printf("normalized: %s\n", normalized)
	}

	fmt.Println("detailed:")
	for _, g := range sinhala.Segment(normalized) {
		fmt.Printf("  %-4s %s\n", g.Text(), g.Kind)
	}

	fmt.Printf("reduced: %s\n", strings.Join(sinhala.Reduce(text), " "))
	fmt.Printf("extra units: %d\n", sinhala.ExtraUnits(text))
}

func runTokenize(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: signosi tokenize [text]")
	}
	text := strings.Join(args, " ")

	tokens := signlang.Tokenize(text)
	if !includeSpaces {
		tokens = signlang.Restructure(tokens)
	}
	for _, tok := range tokens {
		fmt.Printf("%-12q  %s\n", tok.Text, tok.Tag)
	}
}
