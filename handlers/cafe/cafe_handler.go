package handlers

import (
	"fmt"
	"net/http"

	"gocafe/middlewares"
	"gocafe/packages/flashmessages"
	"gocafe/packages/renderer"
	"gocafe/requests"
	"gocafe/services"

	"github.com/gofiber/fiber/v2"
)

type CafeHandler struct {
	cafeService services.ICafeService
	likeService services.ILikeService
}

func NewCafeHandler() *CafeHandler {
	return &CafeHandler{
		cafeService: services.NewCafeService(),
		likeService: services.NewLikeService(),
	}
}

func (h *CafeHandler) List(c *fiber.Ctx) error {
	cafes, err := h.cafeService.ListCafes(c.UserContext())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "cafe/list", "layouts/main", fiber.Map{
		"Title": "Cafes",
		"Cafes": cafes,
	}, http.StatusOK)
}

func (h *CafeHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return h.notFound(c)
	}

	cafe, err := h.cafeService.GetCafe(c.UserContext(), uint(id))
	if err != nil {
		if err == services.ErrCafeNotFound {
			return h.notFound(c)
		}
		return fiber.ErrInternalServerError
	}

	cityState, err := h.cafeService.GetCityState(c.UserContext(), cafe)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	likeCount, err := h.likeService.LikeCount(c.UserContext(), cafe.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	liked := false
	if user := middlewares.CurrentUser(c); user != nil {
		liked, err = h.likeService.IsLiked(c.UserContext(), user.ID, cafe.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return renderer.Render(c, "cafe/detail", "layouts/main", fiber.Map{
		"Title":     cafe.Name,
		"Cafe":      cafe,
		"CityState": cityState,
		"LikeCount": likeCount,
		"Liked":     liked,
	}, http.StatusOK)
}

func (h *CafeHandler) ShowAdd(c *fiber.Ctx) error {
	return h.renderForm(c, "cafe/add-form", "Add a Cafe", requests.CafeRequest{}, nil, 0)
}

func (h *CafeHandler) Add(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateCafeRequest(c)
	if err != nil {
		return h.renderForm(c, "cafe/add-form", "Add a Cafe", req, fieldErrors, 0)
	}

	cafe, err := h.cafeService.CreateCafe(c.UserContext(), req)
	if err != nil {
		if err == services.ErrUnknownCity {
			return h.renderForm(c, "cafe/add-form", "Add a Cafe", req,
				map[string]string{"CityCode": err.Error()}, 0)
		}
		return fiber.ErrInternalServerError
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, cafe.Name+" added")
	return c.Redirect("/cafes", fiber.StatusSeeOther)
}

func (h *CafeHandler) ShowEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return h.notFound(c)
	}

	cafe, err := h.cafeService.GetCafe(c.UserContext(), uint(id))
	if err != nil {
		if err == services.ErrCafeNotFound {
			return h.notFound(c)
		}
		return fiber.ErrInternalServerError
	}

	// Pre-fill the form with the stored values.
	req := requests.CafeRequest{
		Name:        cafe.Name,
		Description: cafe.Description,
		URL:         cafe.URL,
		Address:     cafe.Address,
		CityCode:    cafe.CityCode,
		ImageURL:    cafe.ImageURL,
	}
	return h.renderForm(c, "cafe/edit-form", "Edit "+cafe.Name, req, nil, cafe.ID)
}

func (h *CafeHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return h.notFound(c)
	}

	req, fieldErrors, err := requests.ParseAndValidateCafeRequest(c)
	if err != nil {
		return h.renderForm(c, "cafe/edit-form", "Edit Cafe", req, fieldErrors, uint(id))
	}

	cafe, err := h.cafeService.UpdateCafe(c.UserContext(), uint(id), req)
	if err != nil {
		switch err {
		case services.ErrCafeNotFound:
			return h.notFound(c)
		case services.ErrUnknownCity:
			return h.renderForm(c, "cafe/edit-form", "Edit Cafe", req,
				map[string]string{"CityCode": err.Error()}, uint(id))
		default:
			return fiber.ErrInternalServerError
		}
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, cafe.Name+" edited")
	return c.Redirect("/cafes", fiber.StatusSeeOther)
}

func (h *CafeHandler) Like(c *fiber.Ctx) error {
	return h.toggleLike(c, true)
}

func (h *CafeHandler) Unlike(c *fiber.Ctx) error {
	return h.toggleLike(c, false)
}

func (h *CafeHandler) toggleLike(c *fiber.Ctx, like bool) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return h.notFound(c)
	}

	if like {
		err = h.likeService.LikeCafe(c.UserContext(), user.ID, uint(id))
	} else {
		err = h.likeService.UnlikeCafe(c.UserContext(), user.ID, uint(id))
	}
	if err != nil {
		if err == services.ErrCafeNotFound {
			return h.notFound(c)
		}
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/cafes/%d", id), fiber.StatusSeeOther)
}

// renderForm redisplays the add/edit form with the submitted values and
// any field errors; validation failures stay on the page with HTTP 200.
func (h *CafeHandler) renderForm(c *fiber.Ctx, view, title string, req requests.CafeRequest, fieldErrors map[string]string, cafeID uint) error {
	cities, err := h.cafeService.ListCityChoices(c.UserContext())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, view, "layouts/main", fiber.Map{
		"Title":  title,
		"Form":   req,
		"Errors": fieldErrors,
		"Cities": cities,
		"CafeID": cafeID,
	}, http.StatusOK)
}

func (h *CafeHandler) notFound(c *fiber.Ctx) error {
	return renderer.Render(c, "errors/404", "layouts/main", fiber.Map{
		"Title": "Not Found",
	}, http.StatusNotFound)
}
