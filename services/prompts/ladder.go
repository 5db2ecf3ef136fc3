package prompts

import "github.com/Kevin-Guilherme/fluentify/model"

// LevelGuide calibrates how the tutor speaks to a learner at one tier.
type LevelGuide struct {
	Label             string
	ScoringGuide      string
	Vocabulary        []string
	Grammar           []string
	SentenceStructure []string
	QuestionStyle     []string
	GoodExamples      []string
	BadExamples       []string
}

// Ladder is the single source of level calibration. Prompt builders look
// the learner's tier up here and never branch on it.
var Ladder = map[model.UserLevel]LevelGuide{
	model.LevelBeginner: {
		Label:        "BEGINNER (A1-A2)",
		ScoringGuide: "Mistakes are normal at this level. Score vocabulary 70+ when 500+ common words are used correctly.",
		Vocabulary: []string{
			"Use ONLY high-frequency words (the 500-1000 most common)",
			"Avoid idioms, phrasal verbs and slang",
			"Define any word that might be unfamiliar",
			"Repeat key vocabulary naturally",
		},
		Grammar: []string{
			"Present simple tense primarily, simple past occasionally",
			"No conditionals, passive voice or other complex structures",
			"Subject + verb + object",
		},
		SentenceStructure: []string{
			"Keep sentences SHORT (5-10 words maximum)",
			"One idea per sentence",
			"Connect ideas with \"and\", not \"however\" or \"although\"",
		},
		QuestionStyle: []string{
			"Ask YES/NO questions primarily",
			"Use \"Do you...?\", \"Can you...?\", \"Is it...?\"",
			"Avoid \"Why\", \"How\" and open-ended questions",
		},
		GoodExamples: []string{
			"Do you like coffee? Coffee is a hot drink.",
			"What time do you wake up? I wake up at 7am.",
		},
		BadExamples: []string{
			"Could you elaborate on your morning routine?",
			"What would you say is your favorite beverage?",
		},
	},
	model.LevelIntermediate: {
		Label:        "INTERMEDIATE (B1-B2)",
		ScoringGuide: "Score vocabulary 70+ for varied vocabulary that includes some advanced terms.",
		Vocabulary: []string{
			"Use common plus some specific vocabulary (2000-4000 words)",
			"Introduce occasional idioms with context",
			"Use synonyms to expand vocabulary",
			"Include topic-specific terms",
		},
		Grammar: []string{
			"All verb tenses including present perfect and future",
			"Conditionals (if/when clauses)",
			"Passive voice occasionally",
			"Modal verbs (should, could, might, must)",
		},
		SentenceStructure: []string{
			"Mix simple and compound sentences (10-20 words)",
			"Use connectors such as because, although, however, while",
			"Vary sentence beginnings",
		},
		QuestionStyle: []string{
			"Mix YES/NO and open-ended questions",
			"Ask \"Why\" and \"How\" questions",
			"Encourage explanations: \"Can you explain...?\", \"What do you think about...?\"",
		},
		GoodExamples: []string{
			"What did you do last weekend? Did you try anything new?",
			"If you could visit any country, where would you go and why?",
		},
		BadExamples: []string{
			"I'd appreciate it if you could elucidate your perspective.",
		},
	},
	model.LevelAdvanced: {
		Label:        "ADVANCED (C1-C2)",
		ScoringGuide: "Score vocabulary 70+ only for sophisticated and nuanced vocabulary.",
		Vocabulary: []string{
			"Use sophisticated vocabulary (5000+ words)",
			"Include idioms, phrasal verbs and colloquialisms",
			"Use nuanced expressions and academic language",
			"Challenge the learner with less common words",
		},
		Grammar: []string{
			"Use all grammar structures freely",
			"Third and mixed conditionals",
			"Subjunctive mood",
			"Reported speech and embedded questions",
		},
		SentenceStructure: []string{
			"Complex sentences (20+ words)",
			"Subordinate clauses and varied punctuation",
			"Academic or professional register",
		},
		QuestionStyle: []string{
			"Thought-provoking questions",
			"Hypothetical scenarios and abstract concepts",
			"Challenge assumptions",
		},
		GoodExamples: []string{
			"How might emerging technologies reshape the landscape of education?",
			"Were you to redesign society from scratch, what principles would you prioritize?",
		},
	},
	model.LevelFluent: {
		Label:        "FLUENT (native-like)",
		ScoringGuide: "Hold the learner to a native-speaker standard; reserve 90+ for native-like fluency.",
		Vocabulary: []string{
			"Use any vocabulary naturally",
			"Full command of idioms, slang and cultural references",
			"Academic and professional terminology as appropriate",
		},
		Grammar: []string{
			"Complete mastery of all grammar structures",
			"Stylistic and regional variation",
		},
		SentenceStructure: []string{
			"Any complexity that suits the context",
			"Natural flow and rhythm with conversational ease",
		},
		QuestionStyle: []string{
			"Peer-level discussion",
			"Deep philosophical or technical topics",
			"Debate, argumentation and cultural nuance",
		},
		GoodExamples: []string{
			"How do you reconcile individual autonomy with collective responsibility?",
			"What's your take on the intersection of AI ethics and societal values?",
		},
	},
}

// Guide returns the ladder entry for level, falling back to BEGINNER.
func Guide(level model.UserLevel) LevelGuide {
	if g, ok := Ladder[level]; ok {
		return g
	}
	return Ladder[model.LevelBeginner]
}
