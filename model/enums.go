package model

type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "ACTIVE"
	ConversationCompleted ConversationStatus = "COMPLETED"
	ConversationAbandoned ConversationStatus = "ABANDONED"
)

// conversationTransitions lists every legal status change. Terminal states
// have no outgoing edges.
var conversationTransitions = map[ConversationStatus][]ConversationStatus{
	ConversationActive:    {ConversationCompleted, ConversationAbandoned},
	ConversationCompleted: {},
	ConversationAbandoned: {},
}

func (s ConversationStatus) Valid() bool {
	_, ok := conversationTransitions[s]
	return ok
}

func (s ConversationStatus) IsTerminal() bool {
	return s.Valid() && len(conversationTransitions[s]) == 0
}

func (s ConversationStatus) CanTransitionTo(next ConversationStatus) bool {
	for _, allowed := range conversationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type MessageRole string

const (
	RoleSystem    MessageRole = "SYSTEM"
	RoleUser      MessageRole = "USER"
	RoleAssistant MessageRole = "ASSISTANT"
)

func (r MessageRole) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

type UserLevel string

const (
	LevelBeginner     UserLevel = "BEGINNER"
	LevelIntermediate UserLevel = "INTERMEDIATE"
	LevelAdvanced     UserLevel = "ADVANCED"
	LevelFluent       UserLevel = "FLUENT"
)

// UserLevels is ordered from lowest to highest proficiency.
var UserLevels = []UserLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelFluent}

func (l UserLevel) Valid() bool {
	for _, lvl := range UserLevels {
		if lvl == l {
			return true
		}
	}
	return false
}
