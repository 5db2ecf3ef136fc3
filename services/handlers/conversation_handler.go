package handlers

import (
	"io"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
)

const audioFormField = "audio"

type ConversationHandler struct {
	conversationSvc ConversationServiceInterface
	tutorSvc        TutorServiceInterface
	speechSvc       SpeechServiceInterface
}

func NewConversationHandler(conversationSvc ConversationServiceInterface, tutorSvc TutorServiceInterface, speechSvc SpeechServiceInterface) *ConversationHandler {
	return &ConversationHandler{
		conversationSvc: conversationSvc,
		tutorSvc:        tutorSvc,
		speechSvc:       speechSvc,
	}
}

// @Summary Start a conversation
// @Description Start a new practice conversation on an active topic
// @Tags conversation
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param request body dto.CreateConversationRequest true "Topic to practice"
// @Success 201 {object} shared.Response{data=dto.ConversationResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/conversations [post]
func (h *ConversationHandler) CreateConversation(c *fiber.Ctx) error {
	var req dto.CreateConversationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	conversation, err := h.conversationSvc.CreateConversation(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, conversation)
}

// @Summary List conversations
// @Tags conversation
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.ConversationSummary}
// @Router /api/v1/conversations [get]
func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	conversations, err := h.conversationSvc.ListConversations(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, conversations)
}

// @Summary Get a conversation
// @Tags conversation
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Success 200 {object} shared.Response{data=dto.ConversationResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *fiber.Ctx) error {
	conversation, err := h.conversationSvc.GetConversation(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, conversation)
}

// @Summary Send a message
// @Description Append a learner turn. The tutor does not answer until /reply is called.
// @Tags conversation
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} shared.Response{data=dto.MessageResponse}
// @Failure 409 {object} shared.Response
// @Router /api/v1/conversations/{id}/messages [post]
func (h *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	msg, err := h.conversationSvc.SendMessage(c.UserContext(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, msg)
}

// @Summary Get the tutor's reply
// @Tags conversation
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Success 201 {object} shared.Response{data=dto.ReplyResponse}
// @Failure 424 {object} shared.Response
// @Failure 429 {object} shared.Response
// @Router /api/v1/conversations/{id}/reply [post]
func (h *ConversationHandler) Reply(c *fiber.Ctx) error {
	reply, err := h.tutorSvc.Reply(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, reply)
}

// @Summary Send a voice message
// @Description Upload a recording, transcribe it and get the tutor's reply
// @Tags conversation
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Param audio formData file true "Recording (mp3, wav, ogg, webm, m4a)"
// @Success 201 {object} shared.Response{data=dto.VoiceMessageResponse}
// @Failure 424 {object} shared.Response
// @Router /api/v1/conversations/{id}/audio [post]
func (h *ConversationHandler) SendVoiceMessage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(audioFormField)
	if err != nil {
		return shared.NewBadRequestError(err, "Audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return shared.NewBadRequestError(err, "Failed to read audio file")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return shared.NewBadRequestError(err, "Failed to read audio file")
	}

	result, err := h.speechSvc.SendVoiceMessage(c.UserContext(), c.Params("id"), currentUserID(c), fileHeader.Filename, audio)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, result)
}

// @Summary Complete a conversation
// @Description Score the conversation, award XP and update the streak
// @Tags conversation
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Success 200 {object} shared.Response{data=dto.CompleteConversationResponse}
// @Failure 409 {object} shared.Response
// @Failure 422 {object} shared.Response
// @Failure 424 {object} shared.Response
// @Router /api/v1/conversations/{id}/complete [post]
func (h *ConversationHandler) CompleteConversation(c *fiber.Ctx) error {
	result, err := h.conversationSvc.CompleteConversation(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, result)
}

// @Summary Get conversation feedback
// @Tags conversation
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Success 200 {object} shared.Response{data=dto.FeedbackAnalysis}
// @Failure 404 {object} shared.Response
// @Router /api/v1/conversations/{id}/feedback [get]
func (h *ConversationHandler) GetFeedback(c *fiber.Ctx) error {
	feedback, err := h.conversationSvc.GetFeedback(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, feedback)
}

// @Summary Abandon a conversation
// @Tags conversation
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Conversation ID"
// @Success 204
// @Failure 404 {object} shared.Response
// @Router /api/v1/conversations/{id}/abandon [patch]
func (h *ConversationHandler) AbandonConversation(c *fiber.Ctx) error {
	if err := h.conversationSvc.AbandonConversation(c.UserContext(), c.Params("id"), currentUserID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
