package handlers

import (
	"net/http"

	"gocafe/packages/renderer"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Homepage(c *fiber.Ctx) error {
	return renderer.Render(c, "homepage", "layouts/main", fiber.Map{
		"Title": "Welcome",
	}, http.StatusOK)
}
