// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the translation endpoints

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/signosi/pkg/signlang"
	"github.com/AleutianAI/signosi/services/translator/datatypes"
	"github.com/AleutianAI/signosi/services/translator/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore answers availability from fixed maps.
type fakeStore struct {
	media map[string]bool
	units map[string]string
}

func (s *fakeStore) Availability(_ context.Context, labels []string) (map[string]bool, error) {
	out := make(map[string]bool, len(labels))
	for _, l := range labels {
		out[l] = s.media[l]
	}
	return out, nil
}

func (s *fakeStore) MediaURL(_ context.Context, label string) (string, error) {
	if !s.media[label] {
		return "", fmt.Errorf("no media for %s", label)
	}
	return "https://media.test/" + label, nil
}

func (s *fakeStore) UnitLabel(unit string) (string, bool) {
	label, ok := s.units[unit]
	return label, ok
}

func (s *fakeStore) Landmarks(_ context.Context, unit string) ([]byte, error) {
	if _, ok := s.units[unit]; !ok {
		return nil, fmt.Errorf("no landmark for %s", unit)
	}
	return []byte(`{"unit":"` + unit + `"}`), nil
}

func newTestRouter() *gin.Engine {
	vocab := signlang.NewVocabulary(map[string]signlang.Entry{
		"lk-custom-002_Potha": {
			Text:      map[string][]string{"si": {"පොත"}},
			MediaPath: "videos/Book/Book_001.mp4",
		},
	})
	store := &fakeStore{
		media: map[string]bool{"lk-custom-002_Potha": true},
		units: map[string]string{"ප": "landmarks/ප.json", "ඔ": "landmarks/ඔ.json", "ත": "landmarks/ත.json"},
	}
	svc := services.NewTranslationService(signlang.NewEngine(vocab, nil), store, nil,
		services.Options{ExtraUnitThreshold: signlang.DefaultExtraUnitThreshold})

	router := gin.New()
	router.GET("/health", HealthCheck)
	v1 := router.Group("/v1")
	v1.POST("/translate", HandleTranslate(svc))
	v1.POST("/spell", HandleSpell(svc))
	v1.GET("/vocabulary/summary", GetVocabularySummary(svc))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleTranslate_Success(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/v1/translate", gin.H{"text": "පොත"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.TranslateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	require.Len(t, resp.Tokens, 1)
	assert.Equal(t, "direct", resp.Tokens[0].Rule)
}

func TestHandleTranslate_MalformedBody(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/translate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTranslate_MissingText(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/v1/translate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTranslate_UnmappedTokenReported(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/v1/translate", gin.H{"text": "xyz"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.TranslateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 1)
	assert.NotEmpty(t, resp.Tokens[0].Error)
}

func TestHandleSpell_Success(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/v1/spell", gin.H{"text": "පොත"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp datatypes.SpellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Units, 3)
	assert.Equal(t, "ප", resp.Units[0].Unit)
	assert.True(t, resp.Units[0].Available)
	assert.JSONEq(t, `{"unit":"ප"}`, string(resp.Units[0].Landmark))
}

func TestGetVocabularySummary(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/vocabulary/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var sum datatypes.VocabularySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 1, sum.Words)
}
