package dto

import "github.com/Kevin-Guilherme/fluentify/services/gamification"

// FeedbackAnalysis is the structured evaluation returned by the feedback
// model. Field names follow the JSON contract the model is prompted with.
type FeedbackAnalysis struct {
	GrammarErrors        []GrammarError        `json:"grammarErrors"`
	VocabularyScore      int                   `json:"vocabularyScore"`
	VocabularyHighlights []VocabularyHighlight `json:"vocabularyHighlights"`
	FluencyScore         int                   `json:"fluencyScore"`
	FluencyNotes         string                `json:"fluencyNotes"`
	PronunciationIssues  []PronunciationIssue  `json:"pronunciationIssues"`
	OverallScore         int                   `json:"overallScore"`
	Suggestions          []string              `json:"suggestions"`
	Strengths            []string              `json:"strengths"`
	FocusAreas           []string              `json:"focusAreas"`
	IsFallback           bool                  `json:"isFallback"`
	Warnings             []string              `json:"warnings,omitempty"`
}

type GrammarError struct {
	Error       string `json:"error"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

type VocabularyHighlight struct {
	Word        string `json:"word"`
	Context     string `json:"context"`
	Alternative string `json:"alternative"`
}

type PronunciationIssue struct {
	Word  string `json:"word"`
	Issue string `json:"issue"`
	Tip   string `json:"tip"`
}

// GrammarScore derives a 0-100 grammar score from the number of reported
// errors, ten points per error.
func (f FeedbackAnalysis) GrammarScore() int {
	score := 100 - 10*len(f.GrammarErrors)
	if score < 0 {
		return 0
	}
	return score
}

// Scores extracts the values the XP formula consumes.
func (f FeedbackAnalysis) Scores() gamification.Scores {
	return gamification.Scores{
		Overall:    f.OverallScore,
		Vocabulary: f.VocabularyScore,
		Fluency:    f.FluencyScore,
	}
}
