package prompts

import (
	"fmt"
	"strings"

	"github.com/Kevin-Guilherme/fluentify/model"
)

const conversationStyle = `## CONVERSATION STYLE

### Adaptation
- If the student struggles, SIMPLIFY your language immediately
- If the student excels, GRADUALLY increase difficulty

### Error Correction
- Do not interrupt the flow of the conversation
- Critical error: correct gently ("Yes! Or you could say... [correction]")
- Minor error: ignore it and keep going
- Detailed corrections belong to the feedback phase

### Response Length
- Keep responses under 50 words
- ONE main idea and at most ONE question per response
- No lectures or long explanations

### Tone
- Encouraging, positive and patient
- Celebrate small wins ("Great vocabulary!", "Nice use of past tense!")

Remember: you are a conversation partner first, teacher second.`

// BuildConversationPrompt renders the tutor system prompt for a learner.
// userName is optional.
func BuildConversationPrompt(level model.UserLevel, topic, userName string) string {
	if !level.Valid() {
		level = model.LevelBeginner
	}
	guide := Guide(level)

	var b strings.Builder
	levelName := strings.ToLower(string(level))
	fmt.Fprintf(&b, "You are an experienced English teacher having a natural conversation with %s %s student", article(levelName), levelName)
	if userName != "" {
		fmt.Fprintf(&b, " named %s", userName)
	}
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "**TOPIC:** %s\n\n", topic)

	writeGuide(&b, guide)
	b.WriteString("\n")
	b.WriteString(conversationStyle)

	return b.String()
}

func writeGuide(b *strings.Builder, g LevelGuide) {
	fmt.Fprintf(b, "## LEVEL: %s\n", g.Label)
	writeSection(b, "Vocabulary Rules", g.Vocabulary, "- ")
	writeSection(b, "Grammar Rules", g.Grammar, "- ")
	writeSection(b, "Sentence Structure", g.SentenceStructure, "- ")
	writeSection(b, "Question Style", g.QuestionStyle, "- ")
	if len(g.GoodExamples) > 0 || len(g.BadExamples) > 0 {
		b.WriteString("\n### Examples:\n")
		for _, e := range g.GoodExamples {
			fmt.Fprintf(b, "DO: %q\n", e)
		}
		for _, e := range g.BadExamples {
			fmt.Fprintf(b, "DON'T: %q\n", e)
		}
	}
}

func writeSection(b *strings.Builder, title string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s:\n", title)
	for _, item := range items {
		b.WriteString(bullet)
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
