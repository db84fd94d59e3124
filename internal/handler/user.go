package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-management/internal/apperr"
	"github.com/iliyamo/contact-management/internal/config"
	"github.com/iliyamo/contact-management/internal/middleware"
	"github.com/iliyamo/contact-management/internal/model"
	"github.com/iliyamo/contact-management/internal/repository"
	"github.com/iliyamo/contact-management/internal/utils"
)

// UserHandler bundles dependencies for account endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	if u == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type loginReq struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type updateUserReq struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// Register handles POST /api/users. The username pre-check only shapes the
// error message; the primary key is what actually enforces uniqueness when
// two registrations race.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Users.CountByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("Username already exists")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}

	u := model.User{Username: req.Username, Password: hash, Name: req.Name}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return apperr.Conflict("Username already exists")
		}
		return err
	}

	return c.JSON(http.StatusCreated, dataResp{Data: model.ToUserResponse(u)})
}

// Login handles POST /api/users/login. Unknown username and wrong password
// produce the same message so the response never reveals which was wrong.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Unauthorized("Incorrect username or password")
		}
		return err
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return apperr.Unauthorized("Incorrect username or password")
	}

	token := utils.NewSessionToken()
	if err := h.Users.SetToken(ctx, u.Username, token); err != nil {
		return err
	}

	resp := model.ToUserResponse(u)
	resp.Token = token
	return c.JSON(http.StatusOK, dataResp{Data: resp})
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	return c.JSON(http.StatusOK, dataResp{Data: model.ToUserResponse(u)})
}

// Update handles PATCH /api/users/current. Only the fields present in the
// body change; an empty body is a no-op. The response is built from the row
// read back after the write, not from the in-memory caller.
func (h *UserHandler) Update(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	name := u.Name
	if req.Name != "" {
		name = req.Name
	}
	password := u.Password
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return err
		}
		password = hash
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, u.Username, name, password); err != nil {
		return err
	}
	updated, err := h.Users.GetByUsername(ctx, u.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResp{Data: model.ToUserResponse(updated)})
}

// Logout handles DELETE /api/users/current. Clearing the token ends the
// single active session.
func (h *UserHandler) Logout(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.ClearToken(ctx, u.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResp{Data: model.ToUserResponse(u)})
}
