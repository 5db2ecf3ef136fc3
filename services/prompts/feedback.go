package prompts

import (
	"fmt"
	"strings"

	"github.com/Kevin-Guilherme/fluentify/model"
)

// FeedbackSystemPrompt pins the feedback model to JSON-only output.
const FeedbackSystemPrompt = "You are a professional English teacher specializing in spoken English analysis. Output ONLY valid JSON."

const feedbackTask = `## YOUR TASK

Analyze the student's response and return detailed feedback as JSON.

1. GRAMMAR ERRORS: the 3-5 most important mistakes (if any). For each, give the exact incorrect phrase, the correction and a simple explanation. Focus on patterns and ignore errors that do not affect communication.
2. VOCABULARY: a 0-100 score for richness and appropriateness for the level, 2-3 highlights the student used well, and alternatives that would expand their vocabulary.
3. FLUENCY: a 0-100 score for connectivity, sentence variety and rhythm (90-100 native-like, 70-89 good, 50-69 choppy, below 50 struggles to connect ideas), plus short notes.
4. PRONUNCIATION: likely problems inferred from the transcription (odd words, missing sounds such as th -> t, stress) with an actionable tip each.
5. OVERALL SCORE: 0-100, weighted grammar 30%, vocabulary 25%, fluency 25%, pronunciation 20%.
6. SUGGESTIONS: 3-5 specific, actionable items. "Study more vocabulary" is too vague.
7. STRENGTHS: 2-3 things the student did well.
8. FOCUS AREAS: 2-3 things to practice most.

## OUTPUT FORMAT (STRICT JSON)

{
  "grammarErrors": [{"error": "I go to school yesterday", "correction": "I went to school yesterday", "explanation": "Use the past tense 'went' for finished actions"}],
  "vocabularyScore": 75,
  "vocabularyHighlights": [{"word": "sophisticated", "context": "You used 'sophisticated' correctly!", "alternative": "You could also say 'refined'"}],
  "fluencyScore": 82,
  "fluencyNotes": "Good use of connecting words like 'however'",
  "pronunciationIssues": [{"word": "thought", "issue": "Transcribed as 'tot', likely a missing 'th' sound", "tip": "Place your tongue between your teeth for 'th'"}],
  "overallScore": 78,
  "suggestions": ["Use 'because' to connect ideas instead of 'and'"],
  "strengths": ["Natural conversation flow"],
  "focusAreas": ["Irregular past tense verbs"]
}

## RULES
- Highlight strengths before weaknesses and keep feedback kind but honest
- Every suggestion must be something the student can DO
- Output ONLY the JSON object, with no markdown and no text outside it`

// BuildFeedbackPrompt renders the analysis request for one transcript.
func BuildFeedbackPrompt(transcript, topicContext string, level model.UserLevel) string {
	if !level.Valid() {
		level = model.LevelBeginner
	}
	guide := Guide(level)

	var b strings.Builder
	b.WriteString("You are a professional English teacher analyzing a student's spoken response.\n\n")
	fmt.Fprintf(&b, "**STUDENT LEVEL:** %s\n", level)
	fmt.Fprintf(&b, "**CONVERSATION TOPIC:** %s\n", topicContext)
	fmt.Fprintf(&b, "**STUDENT'S RESPONSE:**\n%q\n\n", transcript)
	fmt.Fprintf(&b, "**SCORING EXPECTATION:** %s\n\n", guide.ScoringGuide)
	b.WriteString(feedbackTask)

	return b.String()
}
