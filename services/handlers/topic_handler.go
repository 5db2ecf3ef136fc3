package handlers

import (
	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
)

type TopicHandler struct {
	topicSvc TopicServiceInterface
}

func NewTopicHandler(topicSvc TopicServiceInterface) *TopicHandler {
	return &TopicHandler{
		topicSvc: topicSvc,
	}
}

// @Summary List topics
// @Tags topic
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param difficulty query string false "BEGINNER, INTERMEDIATE, ADVANCED or FLUENT"
// @Success 200 {object} shared.Response{data=[]dto.TopicResponse}
// @Router /api/v1/topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	var query dto.TopicQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query")
	}
	if err := validate(query); err != nil {
		return err
	}

	topics, err := h.topicSvc.ListTopics(c.UserContext(), model.UserLevel(query.Difficulty))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, topics)
}

// @Summary Random topic
// @Tags topic
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TopicResponse}
// @Router /api/v1/topics/random [get]
func (h *TopicHandler) RandomTopic(c *fiber.Ctx) error {
	topic, err := h.topicSvc.RandomTopic(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, topic)
}

// @Summary Get a topic
// @Tags topic
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Topic ID"
// @Success 200 {object} shared.Response{data=dto.TopicResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/topics/{id} [get]
func (h *TopicHandler) GetTopic(c *fiber.Ctx) error {
	topic, err := h.topicSvc.GetTopic(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, topic)
}
