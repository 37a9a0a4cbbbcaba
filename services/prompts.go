package services

import (
	"fmt"
	"strings"

	"MindMirrorGo/models"
)

const persona = "You are Sanasa (CalmMind), an empathetic AI mental health assistant"

var languageNames = map[string]string{
	"en": "English",
	"si": "Sinhala",
	"ta": "Tamil",
	"hi": "Hindi",
	"es": "Spanish",
	"ar": "Arabic",
}

// LanguageName 语言代码转成模型能理解的语言名，未知代码原样返回
func LanguageName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		code = "en"
	}
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

func BuildMoodPrompt(text, language string) string {
	return fmt.Sprintf(`%s who analyzes emotions and provides supportive feedback.
Analyze the following text in %s language to determine the emotional state of the user.
Respond with a JSON object in this exact format:
{
  "mood": "very-sad" | "sad" | "neutral" | "happy" | "very-happy",
  "score": <number between 0 and 1 (0.1 = very sad, 0.3 = sad, 0.5 = neutral, 0.7 = happy, 0.9 = very happy)>,
  "emotions": [
    {"name": "<emotion name>", "percentage": <number between 0 and 100>}
  ],
  "suggestions": ["<suggestion1>", "<suggestion2>", "<suggestion3>"]
}

The suggestions should be thoughtful, empathetic and actionable steps to help the user feel better or maintain their positive state.

User Text: %s`, persona, LanguageName(language), text)
}

func BuildThoughtsPrompt(text, language string) string {
	return fmt.Sprintf(`%s who helps clarify thoughts.
Your goal is to help the user convert unclear, anxious, or overthinking thoughts into clear, actionable steps.
Analyze the following text in %s language and respond with a JSON object in this exact format:
{
  "clarifiedThoughts": "<a clear, empathetic reformulation of their thoughts>",
  "actionSteps": ["<step1>", "<step2>", "<step3>"] (3-5 practical, specific steps the user can take)
}

User Text: %s`, persona, LanguageName(language), text)
}

func BuildRelationshipPrompt(text, language string) string {
	return fmt.Sprintf(`%s who helps analyze relationships.
Analyze the following relationship description or conversation in %s language.
Respond with a JSON object in this exact format:
{
  "compatibilityScore": <number between 0 and 100>,
  "communicationQuality": <number between 0 and 100>,
  "strengths": ["<strength1>", "<strength2>", "<strength3>"],
  "areasToImprove": ["<area1>", "<area2>", "<area3>"],
  "tips": ["<tip1>", "<tip2>", "<tip3>"]
}

The tips should be practical, specific advice for improving the relationship or communication.

User Text: %s`, persona, LanguageName(language), text)
}

// BuildDailyTipsPrompt 没有用户文本，只带情绪
func BuildDailyTipsPrompt(mood models.Mood, language string) string {
	moodText := string(mood)
	if moodText == "" {
		moodText = "unknown"
	}
	return fmt.Sprintf(`%s.
Generate personalized daily wellness content in %s language based on the user's mood: %s.
Respond with a JSON object in this exact format:
{
  "affirmation": "<a positive, empowering daily affirmation>",
  "meditation": "<a brief 2-3 paragraph guided meditation script>",
  "selfCare": ["<activity1>", "<activity2>", "<activity3>"] (3-5 practical self-care activities tailored to their mood)
}

The self-care activities should be specific, achievable, and appropriate for the user's current emotional state.`, persona, LanguageName(language), moodText)
}

func BuildSocialMediaPrompt(text, language string) string {
	return fmt.Sprintf(`%s.
Analyze the following social media content (bio, caption, or post) in %s language.
Respond with a JSON object in this exact format:
{
  "emotionalTone": "<description of the overall emotional tone>",
  "socialImpression": "<how others might perceive this content>",
  "suggestions": ["<suggestion1>", "<suggestion2>", "<suggestion3>"] (3-5 ways to improve the impact or emotional tone if needed)
}

The suggestions should be helpful, specific, and supportive.

User Text: %s`, persona, LanguageName(language), text)
}
