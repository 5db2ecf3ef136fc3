package handlers

import (
	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/gofiber/fiber/v2"
)

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(shared.UserID).(string)
	return userID
}

// parseBody decodes the JSON body into req and runs its validation rules.
func parseBody(c *fiber.Ctx, req dto.Validator) error {
	if err := c.BodyParser(req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}
	return validate(req)
}

func validate(req dto.Validator) error {
	if err := req.Validate(); err != nil {
		return shared.NewValidationError(err, dto.FormatValidationErrors(err))
	}
	return nil
}
