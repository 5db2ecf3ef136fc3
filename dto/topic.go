package dto

import "github.com/Kevin-Guilherme/fluentify/model"

type TopicQuery struct {
	Difficulty string `query:"difficulty" validate:"omitempty,user_level" example:"BEGINNER"`
}

func (q TopicQuery) Validate() error {
	return GetValidator().Struct(q)
}

type TopicResponse struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Category    string          `json:"category"`
	Difficulty  model.UserLevel `json:"difficulty"`
	SortOrder   int             `json:"sort_order"`
}

func NewTopicResponse(t model.Topic) TopicResponse {
	return TopicResponse{
		ID:          t.ID,
		Slug:        t.Slug,
		Title:       t.Title,
		Description: t.Description,
		Emoji:       t.Emoji,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		SortOrder:   t.SortOrder,
	}
}
