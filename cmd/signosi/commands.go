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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/signosi/pkg/logging"
)

// --- Global Command Variables ---
var (
	vocabPath     string
	mediaRoot     string
	landmarkRoot  string
	logDir        string
	verbose       bool
	extraUnits    int
	jsonOutput    bool
	includeSpaces bool

	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "signosi",
		Short: "A cli for the Signosi Sinhala sign language translator",
		Long: `Signosi translates Sinhala text into ordered sign label
				sequences, offline, against a local vocabulary file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.LevelInfo
			if verbose {
				level = logging.LevelDebug
			}
			logger = logging.New(logging.Config{
				Level:   level,
				LogDir:  logDir,
				Service: "cli",
			})
			slog.SetDefault(logger.Slog())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Close()
			}
		},
	}

	// --- Translation ---
	translateCmd = &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate Sinhala text into a sign label sequence",
		Run:   runTranslate, // Defined in cmd_translate.go
	}
	spellCmd = &cobra.Command{
		Use:   "spell [word]",
		Short: "Render a word letter by letter from its reduced units",
		Run:   runSpell, // Defined in cmd_translate.go
	}

	// --- Script Inspection ---
	reduceCmd = &cobra.Command{
		Use:   "reduce [text]",
		Short: "Show the detailed and reduced grapheme forms of a text",
		Run:   runReduce, // Defined in cmd_inspect.go
	}
	tokenizeCmd = &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Show the tagged token stream before and after restructuring",
		Run:   runTokenize, // Defined in cmd_inspect.go
	}

	// --- Vocabulary ---
	vocabCmd = &cobra.Command{
		Use:   "vocab",
		Short: "Inspect the sign vocabulary",
	}
	vocabSummaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Summarize the vocabulary tables and letter coverage",
		Run:   runVocabSummary, // Defined in cmd_vocab.go
	}
	vocabLookupCmd = &cobra.Command{
		Use:   "lookup [word]",
		Short: "Show the weighted sign variants recorded for a word",
		Run:   runVocabLookup, // Defined in cmd_vocab.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "assets/vocabulary.json",
		"path to the dictionary mapping JSON file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"emit machine-readable JSON instead of text")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"also write logs to this directory (e.g. ~/.signosi/logs)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"enable debug logging")

	translateCmd.Flags().StringVar(&mediaRoot, "media-root", "assets/media",
		"local media directory for availability checks")
	translateCmd.Flags().StringVar(&landmarkRoot, "landmark-root", "assets/landmarks",
		"local letter landmark directory")
	translateCmd.Flags().IntVar(&extraUnits, "extra-unit-threshold", 1,
		"surplus of reduced units over base letters before spelling overrides a word sign")
	spellCmd.Flags().StringVar(&landmarkRoot, "landmark-root", "assets/landmarks",
		"local letter landmark directory")
	tokenizeCmd.Flags().BoolVar(&includeSpaces, "raw", false,
		"show the raw token stream, separators and stopwords included")

	vocabCmd.AddCommand(vocabSummaryCmd)
	vocabCmd.AddCommand(vocabLookupCmd)

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(spellCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(vocabCmd)
}
