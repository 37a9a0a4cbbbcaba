package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName(""))
	assert.Equal(t, "Sinhala", LanguageName("si"))
	assert.Equal(t, "Tamil", LanguageName("TA"))
	assert.Equal(t, "fr", LanguageName("fr"))
}

func TestPromptsContainPersonaLanguageAndText(t *testing.T) {
	text := `I feel "stuck" {today}`
	prompts := map[string]string{
		"mood":         BuildMoodPrompt(text, "si"),
		"thoughts":     BuildThoughtsPrompt(text, "si"),
		"relationship": BuildRelationshipPrompt(text, "si"),
		"social-media": BuildSocialMediaPrompt(text, "si"),
	}
	for name, p := range prompts {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, p, "Sanasa (CalmMind)")
			assert.Contains(t, p, "in Sinhala language")
			assert.Contains(t, p, "User Text: "+text)
		})
	}
}

func TestPromptShapes(t *testing.T) {
	assert.Contains(t, BuildMoodPrompt("x", "en"), `"very-sad" | "sad" | "neutral" | "happy" | "very-happy"`)
	assert.Contains(t, BuildThoughtsPrompt("x", "en"), `"actionSteps"`)
	assert.Contains(t, BuildRelationshipPrompt("x", "en"), `"communicationQuality"`)
	assert.Contains(t, BuildSocialMediaPrompt("x", "en"), `"socialImpression"`)
}

func TestDailyTipsPromptMood(t *testing.T) {
	assert.Contains(t, BuildDailyTipsPrompt("", "en"), "based on the user's mood: unknown.")
	assert.Contains(t, BuildDailyTipsPrompt("sad", "es"), "based on the user's mood: sad.")
	assert.Contains(t, BuildDailyTipsPrompt("sad", "es"), "in Spanish language")
	assert.NotContains(t, BuildDailyTipsPrompt("sad", "es"), "User Text:")
}
