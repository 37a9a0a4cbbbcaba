package models

// Mood 情绪档位
type Mood string

const (
	MoodVerySad   Mood = "very-sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very-happy"
)

// moodScores 每个情绪档位对应的标准分
var moodScores = map[Mood]float64{
	MoodVerySad:   0.1,
	MoodSad:       0.3,
	MoodNeutral:   0.5,
	MoodHappy:     0.7,
	MoodVeryHappy: 0.9,
}

// Valid 判断是否是已知的情绪档位
func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// Score 返回情绪档位的标准分，未知档位返回中性分
func (m Mood) Score() float64 {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return moodScores[MoodNeutral]
}

// TaskKind 分析任务类型
type TaskKind string

const (
	TaskMood         TaskKind = "mood"
	TaskThoughts     TaskKind = "thoughts"
	TaskRelationship TaskKind = "relationship"
	TaskDailyTips    TaskKind = "daily-tips"
	TaskSocialMedia  TaskKind = "social-media"
)

// Emotion 情绪成分，percentage 为 0-100，不保证总和为 100
type Emotion struct {
	Name       string  `json:"name" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

// MoodAnalysis 情绪分析结果
type MoodAnalysis struct {
	Mood        Mood      `json:"mood" validate:"oneof=very-sad sad neutral happy very-happy"`
	Score       float64   `json:"score" validate:"gte=0,lte=1"`
	Emotions    []Emotion `json:"emotions"`
	Suggestions []string  `json:"suggestions" validate:"dive,required"`
}

// ThoughtClarification 想法梳理结果
type ThoughtClarification struct {
	ClarifiedThoughts string   `json:"clarifiedThoughts" validate:"required"`
	ActionSteps       []string `json:"actionSteps" validate:"dive,required"`
}

// RelationshipAnalysis 关系分析结果
type RelationshipAnalysis struct {
	CompatibilityScore   float64  `json:"compatibilityScore" validate:"gte=0,lte=100"`
	CommunicationQuality float64  `json:"communicationQuality" validate:"gte=0,lte=100"`
	Strengths            []string `json:"strengths" validate:"dive,required"`
	AreasToImprove       []string `json:"areasToImprove" validate:"dive,required"`
	Tips                 []string `json:"tips" validate:"dive,required"`
}

// DailyTips 每日建议生成结果
type DailyTips struct {
	Affirmation string   `json:"affirmation" validate:"required"`
	Meditation  string   `json:"meditation" validate:"required"`
	SelfCare    []string `json:"selfCare" validate:"dive,required"`
}

// SocialMediaAnalysis 社交媒体内容分析结果
type SocialMediaAnalysis struct {
	EmotionalTone    string   `json:"emotionalTone" validate:"required"`
	SocialImpression string   `json:"socialImpression" validate:"required"`
	Suggestions      []string `json:"suggestions" validate:"dive,required"`
}
