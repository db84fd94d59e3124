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

// AddressHandler bundles dependencies for address endpoints. Every
// operation re-verifies the two-level ownership chain: the caller owns the
// contact, the contact owns the address, in that order.
type AddressHandler struct {
	Contacts  *repository.ContactRepo
	Addresses *repository.AddressRepo
	Audit     bool
}

func NewAddressHandler(contacts *repository.ContactRepo, addresses *repository.AddressRepo, audit bool) *AddressHandler {
	if contacts == nil || addresses == nil {
		panic("nil repository passed to NewAddressHandler")
	}
	return &AddressHandler{Contacts: contacts, Addresses: addresses, Audit: audit}
}

// ----- DTOs -----

type addressReq struct {
	Street     string `json:"street" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// checkContact verifies the parent contact exists under the caller.
func (h *AddressHandler) checkContact(ctx context.Context, contactID uint64, username string) error {
	if _, err := h.Contacts.GetByIDAndOwner(ctx, contactID, username); err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Contact not found")
		}
		return err
	}
	return nil
}

// Create handles POST /api/contacts/:id/addresses.
func (h *AddressHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addressReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkContact(ctx, contactID, user.Username); err != nil {
		return err
	}

	address := model.Address{
		Street:     nullString(req.Street),
		City:       nullString(req.City),
		Province:   nullString(req.Province),
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}
	if err := h.Addresses.Create(ctx, &address); err != nil {
		return err
	}

	publishAudit(h.Audit, "address", "created", address.ID, contactID, user.Username)
	return c.JSON(http.StatusCreated, dataResp{Data: model.ToAddressResponse(address)})
}

// Get handles GET /api/contacts/:id/addresses/:aid.
func (h *AddressHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := pathID(c, "aid")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkContact(ctx, contactID, user.Username); err != nil {
		return err
	}
	address, err := h.Addresses.GetByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Address not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, dataResp{Data: model.ToAddressResponse(address)})
}

// Update handles PUT /api/contacts/:id/addresses/:aid.
func (h *AddressHandler) Update(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := pathID(c, "aid")
	if err != nil {
		return err
	}

	var req addressReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkContact(ctx, contactID, user.Username); err != nil {
		return err
	}
	if _, err := h.Addresses.GetByIDAndContact(ctx, addressID, contactID); err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Address not found")
		}
		return err
	}

	address := model.Address{
		ID:         addressID,
		Street:     nullString(req.Street),
		City:       nullString(req.City),
		Province:   nullString(req.Province),
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}
	if err := h.Addresses.Update(ctx, address); err != nil {
		return err
	}

	publishAudit(h.Audit, "address", "updated", addressID, contactID, user.Username)
	return c.JSON(http.StatusOK, dataResp{Data: model.ToAddressResponse(address)})
}

// Remove handles DELETE /api/contacts/:id/addresses/:aid.
func (h *AddressHandler) Remove(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	addressID, err := pathID(c, "aid")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkContact(ctx, contactID, user.Username); err != nil {
		return err
	}
	address, err := h.Addresses.GetByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apperr.NotFound("Address not found")
		}
		return err
	}
	if err := h.Addresses.Delete(ctx, addressID, contactID); err != nil {
		return err
	}

	publishAudit(h.Audit, "address", "deleted", addressID, contactID, user.Username)
	return c.JSON(http.StatusOK, dataResp{Data: model.ToAddressResponse(address)})
}

// List handles GET /api/contacts/:id/addresses. All addresses of the
// contact, no pagination.
func (h *AddressHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	contactID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkContact(ctx, contactID, user.Username); err != nil {
		return err
	}
	addresses, err := h.Addresses.ListByContact(ctx, contactID)
	if err != nil {
		return err
	}

	out := make([]model.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, model.ToAddressResponse(a))
	}
	return c.JSON(http.StatusOK, dataResp{Data: out})
}
