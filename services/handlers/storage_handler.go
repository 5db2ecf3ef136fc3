package handlers

import (
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
)

type StorageHandler struct {
	storageSvc StorageServiceInterface
}

func NewStorageHandler(storageSvc StorageServiceInterface) *StorageHandler {
	return &StorageHandler{
		storageSvc: storageSvc,
	}
}

// @Summary Presigned audio URL
// @Description Get a short-lived download URL for one of the caller's recordings
// @Tags storage
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param key query string true "Object key"
// @Success 200 {object} shared.Response{data=dto.PresignedURLResponse}
// @Failure 403 {object} shared.Response
// @Router /api/v1/storage/presigned-url [get]
func (h *StorageHandler) PresignedURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return shared.NewBadRequestError(nil, "key is required")
	}

	url, err := h.storageSvc.PresignedURL(c.UserContext(), currentUserID(c), key)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, url)
}

// @Summary Delete a recording
// @Tags storage
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param key path string true "Key below audio/"
// @Success 200 {object} shared.Response
// @Failure 403 {object} shared.Response
// @Router /api/v1/storage/audio/{key} [delete]
func (h *StorageHandler) DeleteAudio(c *fiber.Ctx) error {
	rest := c.Params("*")
	if rest == "" {
		return shared.NewBadRequestError(nil, "key is required")
	}

	if err := h.storageSvc.DeleteAudio(c.UserContext(), currentUserID(c), "audio/"+rest); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
