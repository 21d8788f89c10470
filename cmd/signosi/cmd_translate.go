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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/signosi/pkg/signlang"
	"github.com/AleutianAI/signosi/services/translator/assets"
	"github.com/AleutianAI/signosi/services/translator/datatypes"
	"github.com/AleutianAI/signosi/services/translator/services"
)

// newLocalService builds a translation service over local directories, the
// offline analogue of what the server wires at startup.
func newLocalService() *services.TranslationService {
	vocab, err := signlang.LoadVocabulary(vocabPath)
	if err != nil {
		log.Fatalf("Error loading vocabulary: %v", err)
	}
	store, err := assets.NewLocalStore(vocab, mediaRoot, landmarkRoot)
	if err != nil {
		log.Fatalf("Error opening local media store: %v", err)
	}
	return services.NewTranslationService(signlang.NewEngine(vocab, nil), store, nil,
		services.Options{ExtraUnitThreshold: extraUnits})
}

func runTranslate(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: signosi translate [text]")
	}
	text := strings.Join(args, " ")

	svc := newLocalService()
	req := datatypes.TranslateRequest{Text: text}
	req.EnsureDefaults()

	resp, err := svc.Translate(context.Background(), req)
	if err != nil {
		log.Fatalf("Translation failed: %v", err)
	}

	if jsonOutput {
		printJSON(resp)
		return
	}
	for _, tok := range resp.Tokens {
		switch {
		case tok.Error != "":
			fmt.Printf("%-12s  [%s]  ERROR: %s\n", tok.Token, tok.Tag, tok.Error)
		case len(tok.Spelled) > 0:
			units := make([]string, 0, len(tok.Spelled))
			for _, u := range tok.Spelled {
				if u.Available {
					units = append(units, u.Unit)
				} else {
					units = append(units, u.Unit+"(?)")
				}
			}
			fmt.Printf("%-12s  [%s]  spelled: %s\n", tok.Token, tok.Rule, strings.Join(units, " "))
		default:
			for _, v := range tok.Variants {
				fmt.Printf("%-12s  [%s]  %.3f  %s\n",
					tok.Token, tok.Rule, v.Weight, strings.Join(v.Labels, " "))
			}
		}
	}
}

func runSpell(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		log.Fatal("Usage: signosi spell [word]")
	}

	svc := newLocalService()
	req := datatypes.SpellRequest{Text: args[0]}
	req.EnsureDefaults()

	resp, err := svc.Spell(context.Background(), req)
	if err != nil {
		log.Fatalf("Spelling failed: %v", err)
	}

	if jsonOutput {
		printJSON(resp)
		return
	}
	for _, u := range resp.Units {
		mark := "missing"
		if u.Available {
			mark = u.Label
		}
		fmt.Printf("%-4s  %s\n", u.Unit, mark)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}
}
