package handlers

import (
	"net/http"

	"gocafe/configs/logconfig"
	"gocafe/configs/sessionconfig"
	"gocafe/models"
	"gocafe/packages/flashmessages"
	"gocafe/packages/renderer"
	"gocafe/requests"
	"gocafe/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// bindSession keys the session by the authenticated user's id, never by
// the submitted username.
func (h *AuthHandler) bindSession(c *fiber.Ctx, user *models.User) error {
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(sessionconfig.SessionUserKey, user.ID)
	return sess.Save()
}

// destroySession clears the binding; a missing session is a no-op.
func (h *AuthHandler) destroySession(c *fiber.Ctx) {
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		logconfig.Log.Warn("Session could not be destroyed", zap.Error(err))
		return
	}
	_ = sess.Destroy()
}

func (h *AuthHandler) ShowSignup(c *fiber.Ctx) error {
	return h.renderSignup(c, requests.SignupRequest{}, nil)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateSignupRequest(c)
	if err != nil {
		req.Password = ""
		return h.renderSignup(c, req, fieldErrors)
	}

	user, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		req.Password = ""
		if err == services.ErrUsernameTaken {
			return h.renderSignup(c, req, map[string]string{"Username": err.Error()})
		}
		return h.renderSignup(c, req, map[string]string{"Username": "signup failed, please try again"})
	}

	if err := h.bindSession(c, user); err != nil {
		logconfig.Log.Error("Session could not be saved after signup",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"You are signed up and logged in.")
	return c.Redirect("/cafes", fiber.StatusSeeOther)
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return h.renderLogin(c, requests.LoginRequest{}, nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateLoginRequest(c)
	if err != nil {
		req.Password = ""
		return h.renderLogin(c, req, fieldErrors)
	}

	user, err := h.authService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		// One generic notice for both unknown user and wrong password;
		// the submitted password is dropped before the form re-renders.
		req.Password = ""
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
			"Invalid credentials.")
		return h.renderLogin(c, req, nil)
	}

	if err := h.bindSession(c, user); err != nil {
		logconfig.Log.Error("Session could not be saved after login",
			zap.Uint("user_id", user.ID),
			zap.Error(err))
		req.Password = ""
		return h.renderLogin(c, req, map[string]string{"Username": "login failed, please try again"})
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"Hello, "+user.Username)
	return c.Redirect("/cafes", fiber.StatusSeeOther)
}

// Logout clears the session binding. Idempotent: logging out while
// anonymous is not an error.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.destroySession(c)
	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		"You have successfully logged out.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) renderSignup(c *fiber.Ctx, req requests.SignupRequest, fieldErrors map[string]string) error {
	return renderer.Render(c, "auth/signup-form", "layouts/main", fiber.Map{
		"Title":  "Sign Up",
		"Form":   req,
		"Errors": fieldErrors,
	}, http.StatusOK)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, req requests.LoginRequest, fieldErrors map[string]string) error {
	return renderer.Render(c, "auth/login-form", "layouts/main", fiber.Map{
		"Title":  "Log In",
		"Form":   req,
		"Errors": fieldErrors,
	}, http.StatusOK)
}
