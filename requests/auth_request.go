package requests

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type SignupRequest struct {
	Username    string `form:"username" validate:"required,min=3,max=100"`
	Email       string `form:"email" validate:"required,email"`
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
	Password    string `form:"password" validate:"required,min=6"`
}

func ParseAndValidateLoginRequest(c *fiber.Ctx) (LoginRequest, map[string]string, error) {
	var req LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("invalid request format")
	}

	req.Username = strings.TrimSpace(req.Username)

	if err := validate.Struct(req); err != nil {
		return req, GetLoginValidationErrors(err), errors.New("please check your login details")
	}

	return req, make(map[string]string), nil
}

func ParseAndValidateSignupRequest(c *fiber.Ctx) (SignupRequest, map[string]string, error) {
	var req SignupRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("invalid request format")
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := validate.Struct(req); err != nil {
		return req, GetSignupValidationErrors(err), errors.New("please check your signup details")
	}

	return req, make(map[string]string), nil
}

func GetLoginValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Username_required": "Username is required",
		"Password_required": "Password is required",
	}
	return CommonValidationErrors(err, errorMessages)
}

func GetSignupValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Username_required":  "Username is required",
		"Username_min":       "Username must be at least 3 characters",
		"Username_max":       "Username must be at most 100 characters",
		"Email_required":     "Email is required",
		"Email_email":        "Enter a valid email address",
		"FirstName_required": "First name is required",
		"LastName_required":  "Last name is required",
		"ImageURL_url":       "Enter a valid image URL",
		"Password_required":  "Password is required",
		"Password_min":       "Password must be at least 6 characters",
	}
	return CommonValidationErrors(err, errorMessages)
}
