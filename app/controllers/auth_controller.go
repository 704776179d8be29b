package controllers

import (
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/app/views"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
)

type AuthController struct {
	session *services.SessionService
}

func NewAuthController(session *services.SessionService) *AuthController {
	return &AuthController{session: session}
}

func (ac *AuthController) Login(c *ctx.Context) {
	var in views.LoginInput
	if !c.BindJSONMessage(&in, views.MissingFieldsMessage) {
		return
	}

	u, err := ac.session.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.Message("Logged in", u)
}

func (ac *AuthController) Register(c *ctx.Context) {
	var in views.RegisterInput
	if !c.BindJSONMessage(&in, views.MissingFieldsMessage) {
		return
	}

	u, err := ac.session.Register(c.Context(), in.Email, in.Password, in.Name, in.Phone, in.Address)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(u)
}

func (ac *AuthController) Logout(c *ctx.Context) {
	if err := ac.session.Logout(c.Context()); err != nil {
		fail(c, err)
		return
	}
	c.Message("Logged out", nil)
}

// Me returns the signed-in user, or 401 when signed out.
func (ac *AuthController) Me(c *ctx.Context) {
	u, ok := ac.session.CurrentUser()
	if !ok {
		c.Unauthorized("Not logged in")
		return
	}
	c.Success(u)
}
