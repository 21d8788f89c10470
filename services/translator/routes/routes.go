// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/signosi/services/translator/handlers"
	"github.com/AleutianAI/signosi/services/translator/services"
)

func SetupRoutes(router *gin.Engine, svc *services.TranslationService) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.POST("/translate", handlers.HandleTranslate(svc))
		v1.POST("/spell", handlers.HandleSpell(svc))
		// Vocabulary inspection routes
		vocabulary := v1.Group("/vocabulary")
		{
			vocabulary.GET("/summary", handlers.GetVocabularySummary(svc))
		}
	}
}
