package seeders

import (
	"log"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicSeeder installs the practice scenarios
type TopicSeeder struct {
	db *gorm.DB
}

func NewTopicSeeder(db *gorm.DB) *TopicSeeder {
	return &TopicSeeder{db: db}
}

// SeedTopics upserts every topic by slug, so rerunning refreshes content
// without changing ids.
func (s *TopicSeeder) SeedTopics() error {
	repo := repositories.NewTopicRepository(s.db)
	now := time.Now()

	for _, topic := range PracticeTopics() {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		topic.ID = id.String()
		topic.IsActive = true
		topic.CreatedAt = now
		topic.UpdatedAt = now

		if err := repo.UpsertBySlug(&topic); err != nil {
			log.Printf("Error seeding topic %s: %v", topic.Slug, err)
			return err
		}
		log.Printf("Seeded topic: %s %s", topic.Emoji, topic.Title)
	}

	log.Println("Topic seeding completed successfully")
	return nil
}

// PracticeTopics returns the built-in scenarios in display order.
func PracticeTopics() []model.Topic {
	return []model.Topic{
		{
			Slug:         "coffee-shop",
			Title:        "Coffee Shop",
			Description:  "Order drinks and snacks in a casual coffee shop setting",
			Emoji:        "☕",
			Difficulty:   model.LevelBeginner,
			Category:     "daily-life",
			SystemPrompt: "You are a friendly barista at a cozy coffee shop. Help the customer order drinks and snacks. Use simple vocabulary and short sentences. Be patient and encouraging. Ask clarifying questions if needed (size, milk preference, etc).",
			SortOrder:    1,
		},
		{
			Slug:         "hotel-checkin",
			Title:        "Hotel Check-in",
			Description:  "Check into a hotel and ask about facilities",
			Emoji:        "🏨",
			Difficulty:   model.LevelBeginner,
			Category:     "travel",
			SystemPrompt: "You are a helpful hotel receptionist. Assist the guest with check-in, explain hotel facilities, and answer questions about the room. Use clear, simple language. Be polite and professional.",
			SortOrder:    2,
		},
		{
			Slug:         "restaurant-order",
			Title:        "Restaurant Order",
			Description:  "Order food and drinks at a restaurant",
			Emoji:        "🍕",
			Difficulty:   model.LevelBeginner,
			Category:     "daily-life",
			SystemPrompt: "You are a friendly waiter/waitress at a casual restaurant. Help the customer order food and drinks. Use simple vocabulary. Describe menu items if asked. Be patient with pronunciation mistakes.",
			SortOrder:    3,
		},
		{
			Slug:         "airport",
			Title:        "Airport",
			Description:  "Navigate airport procedures and ask for directions",
			Emoji:        "✈️",
			Difficulty:   model.LevelIntermediate,
			Category:     "travel",
			SystemPrompt: "You are an airport staff member or fellow traveler. Help the student navigate airport procedures (check-in, security, boarding). Use travel-related vocabulary. Provide clear directions. Occasionally use idioms naturally.",
			SortOrder:    4,
		},
		{
			Slug:         "job-interview",
			Title:        "Job Interview",
			Description:  "Practice common job interview questions and answers",
			Emoji:        "💼",
			Difficulty:   model.LevelIntermediate,
			Category:     "professional",
			SystemPrompt: "You are a friendly but professional job interviewer. Ask common interview questions about experience, skills, and goals. Use professional vocabulary. Provide natural follow-up questions. Be encouraging but maintain a formal tone.",
			SortOrder:    5,
		},
		{
			Slug:         "doctor-visit",
			Title:        "Doctor Visit",
			Description:  "Describe symptoms and understand medical advice",
			Emoji:        "🏥",
			Difficulty:   model.LevelIntermediate,
			Category:     "daily-life",
			SystemPrompt: "You are a caring doctor. Ask about symptoms, medical history, and provide advice. Use medical vocabulary but explain complex terms. Be patient and empathetic. Give clear instructions about treatment.",
			SortOrder:    6,
		},
		{
			Slug:         "business-meeting",
			Title:        "Business Meeting",
			Description:  "Participate in a professional business discussion",
			Emoji:        "📊",
			Difficulty:   model.LevelAdvanced,
			Category:     "professional",
			SystemPrompt: "You are a business colleague in a meeting. Discuss projects, deadlines, and strategies. Use business idioms and phrasal verbs naturally. Challenge the student with follow-up questions. Maintain a professional but collaborative tone.",
			SortOrder:    7,
		},
		{
			Slug:         "university-lecture",
			Title:        "University Lecture",
			Description:  "Discuss academic topics and ask questions",
			Emoji:        "🎓",
			Difficulty:   model.LevelAdvanced,
			Category:     "academic",
			SystemPrompt: "You are a university professor. Discuss academic topics with depth and nuance. Use complex vocabulary and sentence structures. Encourage critical thinking with probing questions. Explain abstract concepts clearly.",
			SortOrder:    8,
		},
		{
			Slug:         "legal-consultation",
			Title:        "Legal Consultation",
			Description:  "Discuss legal matters in a professional setting",
			Emoji:        "⚖️",
			Difficulty:   model.LevelAdvanced,
			Category:     "professional",
			SystemPrompt: "You are a professional lawyer or legal advisor. Discuss legal matters with precision. Use formal legal terminology but explain when necessary. Ask detailed questions. Maintain a professional and serious tone.",
			SortOrder:    9,
		},
		{
			Slug:         "travel-planning",
			Title:        "Travel Planning",
			Description:  "Plan a trip and discuss travel arrangements",
			Emoji:        "🌍",
			Difficulty:   model.LevelIntermediate,
			Category:     "travel",
			SystemPrompt: "You are a helpful travel agent or experienced traveler. Help plan a trip by discussing destinations, accommodations, and activities. Use travel-related vocabulary. Provide recommendations and ask about preferences.",
			SortOrder:    10,
		},
	}
}
