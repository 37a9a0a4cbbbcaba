package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"MindMirrorGo/models"
	"MindMirrorGo/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondGenerationError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{services.ErrAPIKeyMissing, http.StatusInternalServerError, `"api_key_missing"`},
		{fmt.Errorf("wrapped: %w", services.ErrUnauthorized), http.StatusUnauthorized, `"api_key_invalid"`},
		{services.ErrRateLimited, http.StatusTooManyRequests, `"rate_limit_exceeded"`},
		{services.ErrModelNotFound, http.StatusNotFound, `"model_not_found"`},
		{fmt.Errorf("boom"), http.StatusInternalServerError, `"Failed to analyze relationship. Please try again later."`},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondGenerationError(c, models.TaskRelationship, tc.err)
		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), tc.body)
	}
}

func TestRespondBadRequest(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{models.ErrTextOrMoodRequired, "Either text or mood selection is required"},
		{fmt.Errorf("analyze: %w", models.ErrTextRequired), "Text is required"},
		{errors.New("invalid character '}'"), "invalid character '}'"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondBadRequest(c, tc.err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"message": %q}`, tc.message), w.Body.String())
	}
	assert.Equal(t, "text is required", models.ErrTextRequired.Error())
}

func TestBindOptionalJSON(t *testing.T) {
	bind := func(body string) (models.DailyTipsRequest, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var req models.DailyTipsRequest
		err := bindOptionalJSON(c, &req)
		return req, err
	}

	_, err := bind("")
	assert.NoError(t, err)

	req, err := bind(`{"mood": "sad", "language": "hi"}`)
	assert.NoError(t, err)
	assert.Equal(t, "sad", req.Mood)

	_, err = bind(`{"mood": `)
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), today())
	assert.Equal(t, "en", languageOrDefault(""))
	assert.Equal(t, "ta", languageOrDefault("ta"))
}
