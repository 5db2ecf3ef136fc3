package prompts

import (
	"strings"
	"testing"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadderCoversEveryLevel(t *testing.T) {
	for _, lvl := range model.UserLevels {
		g, ok := Ladder[lvl]
		require.True(t, ok, "missing ladder entry for %s", lvl)
		assert.NotEmpty(t, g.Label)
		assert.NotEmpty(t, g.ScoringGuide)
		assert.NotEmpty(t, g.Vocabulary)
		assert.NotEmpty(t, g.Grammar)
		assert.NotEmpty(t, g.SentenceStructure)
		assert.NotEmpty(t, g.QuestionStyle)
		assert.NotEmpty(t, g.GoodExamples)
	}
	assert.Len(t, Ladder, len(model.UserLevels))
}

func TestGuideFallsBackToBeginner(t *testing.T) {
	assert.Equal(t, Ladder[model.LevelBeginner].Label, Guide(model.UserLevel("EXPERT")).Label)
}

func TestBuildConversationPrompt(t *testing.T) {
	prompt := BuildConversationPrompt(model.LevelIntermediate, "Airport", "Ana")

	assert.True(t, strings.HasPrefix(prompt, "You are an experienced English teacher having a natural conversation with an intermediate student named Ana."))
	assert.Contains(t, prompt, "**TOPIC:** Airport")
	assert.Contains(t, prompt, "## LEVEL: INTERMEDIATE (B1-B2)")
	assert.Contains(t, prompt, "10-20 words")
	assert.Contains(t, prompt, "under 50 words")
	assert.NotContains(t, prompt, "5-10 words")
}

func TestBuildConversationPrompt_WithoutName(t *testing.T) {
	prompt := BuildConversationPrompt(model.LevelBeginner, "Coffee Shop", "")

	assert.Contains(t, prompt, "with a beginner student.\n")
	assert.NotContains(t, prompt, "named")
	assert.Contains(t, prompt, "YES/NO")
}

func TestBuildConversationPrompt_DiffersPerLevel(t *testing.T) {
	seen := map[string]bool{}
	for _, lvl := range model.UserLevels {
		p := BuildConversationPrompt(lvl, "Travel", "")
		assert.Contains(t, p, Ladder[lvl].Label)
		seen[p] = true
	}
	assert.Len(t, seen, len(model.UserLevels))
}

func TestBuildFeedbackPrompt(t *testing.T) {
	prompt := BuildFeedbackPrompt("I go to airport yesterday", "Airport", model.LevelAdvanced)

	assert.Contains(t, prompt, "**STUDENT LEVEL:** ADVANCED")
	assert.Contains(t, prompt, "**CONVERSATION TOPIC:** Airport")
	assert.Contains(t, prompt, `"I go to airport yesterday"`)
	assert.Contains(t, prompt, Ladder[model.LevelAdvanced].ScoringGuide)
	for _, field := range []string{"grammarErrors", "vocabularyScore", "fluencyScore", "overallScore", "suggestions", "strengths", "focusAreas"} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
}

func TestBuildFeedbackPrompt_QuotesTranscript(t *testing.T) {
	prompt := BuildFeedbackPrompt("she said \"hi\"\nthen left", "Greetings", model.LevelBeginner)
	assert.Contains(t, prompt, `"she said \"hi\"\nthen left"`)
}
