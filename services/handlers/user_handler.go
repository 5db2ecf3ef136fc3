package handlers

import (
	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary Sync user
// @Description Create or refresh the local profile from the identity provider
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param request body dto.SyncUserRequest true "Profile"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/auth/sync [post]
func (h *UserHandler) SyncUser(c *fiber.Ctx) error {
	var req dto.SyncUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userSvc.SyncUser(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, user)
}

// @Summary Get current user
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userSvc.GetMe(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, user)
}

// @Summary Update current user
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /api/v1/users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userSvc.UpdateMe(c.UserContext(), currentUserID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, user)
}

// @Summary Get user statistics
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserStatsResponse}
// @Router /api/v1/users/me/stats [get]
func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.userSvc.GetStats(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, stats)
}

// @Summary Get conversation history
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} shared.Response{data=dto.ConversationHistoryResponse}
// @Router /api/v1/users/me/history [get]
func (h *UserHandler) GetHistory(c *fiber.Ctx) error {
	var query dto.HistoryQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query")
	}
	if err := validate(query); err != nil {
		return err
	}

	history, err := h.userSvc.GetHistory(c.UserContext(), currentUserID(c), query)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, history)
}

// @Summary Get level progress
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProgressResponse}
// @Router /api/v1/users/me/progress [get]
func (h *UserHandler) GetProgress(c *fiber.Ctx) error {
	progress, err := h.userSvc.GetProgress(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, progress)
}
