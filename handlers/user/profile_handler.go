package handlers

import (
	"net/http"

	"gocafe/middlewares"
	"gocafe/packages/flashmessages"
	"gocafe/packages/renderer"
	"gocafe/requests"
	"gocafe/services"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	userService services.IUserService
	likeService services.ILikeService
}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{
		userService: services.NewUserService(),
		likeService: services.NewLikeService(),
	}
}

func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	likedCafes, err := h.likeService.LikedCafes(c.UserContext(), user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "user/profile", "layouts/main", fiber.Map{
		"Title":      user.FullName(),
		"User":       user,
		"LikedCafes": likedCafes,
	}, http.StatusOK)
}

func (h *ProfileHandler) ShowEdit(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	req := requests.UpdateProfileRequest{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Description: user.Description,
		ImageURL:    user.ImageURL,
	}
	return h.renderEdit(c, req, nil)
}

func (h *ProfileHandler) Edit(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	req, fieldErrors, err := requests.ParseAndValidateUpdateProfileRequest(c)
	if err != nil {
		return h.renderEdit(c, req, fieldErrors)
	}

	if _, err := h.userService.UpdateProfile(c.UserContext(), user.ID, req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
			"Profile could not be updated.")
		return c.Redirect("/profile/edit", fiber.StatusSeeOther)
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"Profile updated.")
	return c.Redirect("/profile", fiber.StatusSeeOther)
}

func (h *ProfileHandler) renderEdit(c *fiber.Ctx, req requests.UpdateProfileRequest, fieldErrors map[string]string) error {
	return renderer.Render(c, "user/edit-form", "layouts/main", fiber.Map{
		"Title":  "Edit Profile",
		"Form":   req,
		"Errors": fieldErrors,
	}, http.StatusOK)
}
