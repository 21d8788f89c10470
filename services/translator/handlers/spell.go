// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/signosi/services/translator/datatypes"
	"github.com/AleutianAI/signosi/services/translator/observability"
	"github.com/AleutianAI/signosi/services/translator/services"
)

// HandleSpell handles POST /v1/spell: letter spelling on demand, bypassing
// the word-level rules entirely.
func HandleSpell(svc *services.TranslationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.SpellRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("malformed spell request", "error", err)
			recordRequest(observability.EndpointSpell, false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		req.EnsureDefaults()
		if err := req.Validate(); err != nil {
			recordRequest(observability.EndpointSpell, false)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := svc.Spell(c.Request.Context(), req)
		if err != nil {
			slog.Error("spelling failed", "requestId", req.RequestID, "error", err)
			recordRequest(observability.EndpointSpell, false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "spelling failed"})
			return
		}

		recordRequest(observability.EndpointSpell, true)
		c.JSON(http.StatusOK, resp)
	}
}
