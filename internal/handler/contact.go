package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-management/internal/apperr"
	"github.com/iliyamo/contact-management/internal/middleware"
	"github.com/iliyamo/contact-management/internal/model"
	"github.com/iliyamo/contact-management/internal/repository"
)

// ContactHandler bundles dependencies for contact endpoints.
type ContactHandler struct {
	Contacts *repository.ContactRepo
	Audit    bool
}

func NewContactHandler(contacts *repository.ContactRepo, audit bool) *ContactHandler {
	if contacts == nil {
		panic("nil repository passed to NewContactHandler")
	}
	return &ContactHandler{Contacts: contacts, Audit: audit}
}

// ----- DTOs -----

type contactReq struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// searchContactReq carries the filter parameters. page and size are parsed
// separately via queryInt so an explicit zero fails the bounds check
// instead of disappearing into the int zero value.
type searchContactReq struct {
	Name  string `query:"name" validate:"omitempty,max=100"`
	Email string `query:"email" validate:"omitempty,max=200"`
	Phone string `query:"phone" validate:"omitempty,max=20"`
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}

	var req contactReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact := model.Contact{
		FirstName: req.FirstName,
		LastName:  nullString(req.LastName),
		Email:     nullString(req.Email),
		Phone:     nullString(req.Phone),
		Username:  user.Username,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Contacts.Create(ctx, &contact); err != nil {
		return err
	}

	publishAudit(h.Audit, "contact", "created", contact.ID, contact.ID, user.Username)
	return c.JSON(http.StatusCreated, dataResp{Data: model.ToContactResponse(contact)})
}

// Get handles GET /api/contacts/:id. The lookup is owner-scoped, so another
// user's contact is a 404, never a leak.
func (h *ContactHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contact, err := h.Contacts.GetByIDAndOwner(ctx, id, user.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Contact not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, dataResp{Data: model.ToContactResponse(contact)})
}

// Update handles PUT /api/contacts/:id. Existence under the caller is
// checked before anything mutates.
func (h *ContactHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req contactReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Contacts.GetByIDAndOwner(ctx, id, user.Username); err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Contact not found")
		}
		return err
	}

	contact := model.Contact{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  nullString(req.LastName),
		Email:     nullString(req.Email),
		Phone:     nullString(req.Phone),
		Username:  user.Username,
	}
	if err := h.Contacts.Update(ctx, contact); err != nil {
		return err
	}

	publishAudit(h.Audit, "contact", "updated", id, id, user.Username)
	return c.JSON(http.StatusOK, dataResp{Data: model.ToContactResponse(contact)})
}

// Remove handles DELETE /api/contacts/:id. Addresses under the contact go
// with it through the schema cascade.
func (h *ContactHandler) Remove(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contact, err := h.Contacts.GetByIDAndOwner(ctx, id, user.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Contact not found")
		}
		return err
	}
	if err := h.Contacts.Delete(ctx, id, user.Username); err != nil {
		return err
	}

	publishAudit(h.Audit, "contact", "deleted", id, id, user.Username)
	return c.JSON(http.StatusOK, dataResp{Data: model.ToContactResponse(contact)})
}

// Search handles GET /api/contacts. Absent filters are left out of the
// query entirely; an out-of-range page yields an empty data array with
// correct paging metadata rather than an error.
func (h *ContactHandler) Search(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}

	var req searchContactReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1, 1, 0)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", 10, 1, 100)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	contacts, total, err := h.Contacts.Search(ctx, repository.SearchQuery{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return err
	}

	out := make([]model.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, model.ToContactResponse(contact))
	}
	return c.JSON(http.StatusOK, pageResp{
		Data:   out,
		Paging: model.NewPaging(page, size, total),
	})
}
