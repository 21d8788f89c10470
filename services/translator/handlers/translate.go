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
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/signosi/services/translator/datatypes"
	"github.com/AleutianAI/signosi/services/translator/observability"
	"github.com/AleutianAI/signosi/services/translator/services"
)

// HandleTranslate handles POST /v1/translate.
func HandleTranslate(svc *services.TranslationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("malformed translate request", "error", err)
			recordRequest(observability.EndpointTranslate, false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		req.EnsureDefaults()
		if err := req.Validate(); err != nil {
			slog.Warn("translate request failed validation",
				"requestId", req.RequestID, "error", err)
			recordRequest(observability.EndpointTranslate, false)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slog.Info("Received translate request",
			"requestId", req.RequestID, "bytes", len(req.Text))

		resp, err := svc.Translate(c.Request.Context(), req)
		if err != nil {
			slog.Error("translation pipeline failed",
				"requestId", req.RequestID, "error", err)
			recordRequest(observability.EndpointTranslate, false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "translation failed"})
			return
		}

		recordRequest(observability.EndpointTranslate, true)
		recordDuration(observability.EndpointTranslate, time.Since(start).Seconds())
		c.JSON(http.StatusOK, resp)
	}
}

func recordRequest(endpoint observability.Endpoint, success bool) {
	if observability.DefaultMetrics != nil {
		observability.DefaultMetrics.RecordRequest(endpoint, success)
	}
}

func recordDuration(endpoint observability.Endpoint, seconds float64) {
	if observability.DefaultMetrics != nil {
		observability.DefaultMetrics.RecordDuration(endpoint, seconds)
	}
}
