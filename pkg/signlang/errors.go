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

import "fmt"

// NoApplicableRuleError reports that no rule in the chain accepted a token
// on the strict pass. The engine retries once with a relaxed tag before
// giving up.
type NoApplicableRuleError struct {
	Text string
	Tag  Tag
}

func (e *NoApplicableRuleError) Error() string {
	return fmt.Sprintf("no applicable rule for token %q (tag %s)", e.Text, e.Tag)
}

// NoSignInferredError reports that the relaxed retry also produced nothing.
// This is the terminal per-token failure; callers surface it per token and
// keep translating the rest of the input.
type NoSignInferredError struct {
	Text string
	Tag  Tag
}

func (e *NoSignInferredError) Error() string {
	return fmt.Sprintf("no sign inferred for token %q (tag %s)", e.Text, e.Tag)
}
