package requests

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CafeRequest backs both the add and the edit form; the two flows share
// one field set and one validation contract.
type CafeRequest struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	URL         string `form:"url" validate:"required,url"`
	Address     string `form:"address" validate:"required"`
	CityCode    string `form:"city_code" validate:"required"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
}

func ParseAndValidateCafeRequest(c *fiber.Ctx) (CafeRequest, map[string]string, error) {
	var req CafeRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("invalid request format")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.URL = strings.TrimSpace(req.URL)
	req.Address = strings.TrimSpace(req.Address)
	req.CityCode = strings.TrimSpace(req.CityCode)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	if err := validate.Struct(req); err != nil {
		return req, GetCafeValidationErrors(err), errors.New("please check the cafe details")
	}

	return req, make(map[string]string), nil
}

func GetCafeValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Name_required":     "Name is required",
		"URL_required":      "URL is required",
		"URL_url":           "Enter a valid URL",
		"Address_required":  "Address is required",
		"CityCode_required": "City is required",
		"ImageURL_url":      "Enter a valid image URL",
	}
	return CommonValidationErrors(err, errorMessages)
}
