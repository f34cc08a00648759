package requests

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest covers the editable user fields. Username and
// password are immutable after signup and have no form fields here.
type UpdateProfileRequest struct {
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	Email       string `form:"email" validate:"required,email"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
}

func ParseAndValidateUpdateProfileRequest(c *fiber.Ctx) (UpdateProfileRequest, map[string]string, error) {
	var req UpdateProfileRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("invalid request format")
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validate.Struct(req); err != nil {
		return req, GetUpdateProfileValidationErrors(err), errors.New("please check your profile details")
	}

	return req, make(map[string]string), nil
}

func GetUpdateProfileValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"FirstName_required": "First name is required",
		"LastName_required":  "Last name is required",
		"Email_required":     "Email is required",
		"Email_email":        "Enter a valid email address",
		"ImageURL_url":       "Enter a valid image URL",
	}
	return CommonValidationErrors(err, errorMessages)
}
