package services

import "MindMirrorGo/models"

// 模型输出无法解析或字段缺失时使用的默认内容

var defaultMoodSuggestions = []string{
	"Take a moment to breathe and reflect.",
	"Consider journaling your thoughts.",
	"Connect with a friend or loved one.",
}

var selectedMoodSuggestions = []string{
	"Take a moment to breathe deeply and check in with yourself.",
	"Consider journaling about why you feel this way.",
	"Connect with someone you trust about your feelings.",
}

// MoodFallback 以用户选择的情绪为基础；未选择时为中性
func MoodFallback(selected models.Mood, selectedScore *float64) models.MoodAnalysis {
	mood := models.MoodNeutral
	if selected.Valid() {
		mood = selected
	}
	score := mood.Score()
	if selectedScore != nil {
		score = *selectedScore
	}
	return models.MoodAnalysis{
		Mood:        mood,
		Score:       score,
		Emotions:    []models.Emotion{{Name: "Undetermined", Percentage: 100}},
		Suggestions: append([]string(nil), defaultMoodSuggestions...),
	}
}

// SelectedMoodAnalysis 只有情绪选择、没有文本时直接返回，不调用模型
func SelectedMoodAnalysis(selected models.Mood, selectedScore *float64) models.MoodAnalysis {
	score := selected.Score()
	if selectedScore != nil {
		score = *selectedScore
	}
	return models.MoodAnalysis{
		Mood:  selected,
		Score: score,
		Emotions: []models.Emotion{
			{Name: "Primary Emotion", Percentage: 65},
			{Name: "Secondary Emotion", Percentage: 25},
			{Name: "Tertiary Emotion", Percentage: 10},
		},
		Suggestions: append([]string(nil), selectedMoodSuggestions...),
	}
}

func ThoughtsFallback() models.ThoughtClarification {
	return models.ThoughtClarification{
		ClarifiedThoughts: "I understand you're experiencing some complex thoughts. Let's break them down together.",
		ActionSteps: []string{
			"Take a moment to breathe and gather your thoughts",
			"Write down specifically what's bothering you",
			"Consider what small step you can take today",
		},
	}
}

func RelationshipFallback() models.RelationshipAnalysis {
	return models.RelationshipAnalysis{
		CompatibilityScore:   50,
		CommunicationQuality: 50,
		Strengths: []string{
			"Understanding of each other's perspectives",
			"Shared values and interests",
			"Mutual respect",
		},
		AreasToImprove: []string{
			"Communication during disagreements",
			"Active listening",
			"Expression of needs",
		},
		Tips: []string{
			"Practice active listening by repeating back what you heard",
			"Schedule regular check-ins about your relationship",
			"Express appreciation for specific things the other person does",
		},
	}
}

func DailyTipsFallback() models.DailyTips {
	return models.DailyTips{
		Affirmation: "I embrace each day with an open heart and mind, allowing myself to grow through both challenges and joys.",
		Meditation: "Find a comfortable position and close your eyes. Take a deep breath in through your nose, filling your lungs completely, and then exhale slowly through your mouth. Feel the tension leaving your body with each exhale.\n\n" +
			"Focus on the present moment, acknowledging your thoughts without judgment. With each breath, imagine a peaceful energy flowing through your body, bringing calm and clarity to your mind.",
		SelfCare: []string{
			"Take a 10-minute walk outside, focusing on the sensations around you",
			"Write down three things you're grateful for today",
			"Drink a glass of water and enjoy a nutritious snack mindfully",
		},
	}
}

func SocialMediaFallback() models.SocialMediaAnalysis {
	return models.SocialMediaAnalysis{
		EmotionalTone:    "Neutral with slight positive undertones",
		SocialImpression: "Readers are likely to perceive you as thoughtful and genuine.",
		Suggestions: []string{
			"Consider adding more personal warmth to create deeper connections",
			"Try incorporating a thoughtful question to engage your audience",
			"Adding a specific detail about your experience can make the content more relatable",
		},
	}
}
