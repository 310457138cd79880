package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/service"
	"github.com/fluxfinance/fluxfinance/internal/api/store"
	"github.com/fluxfinance/fluxfinance/pkg/httpx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"
)

// CustomerHandler serves the /api/customers routes. Create, list and get
// only; customers have no update or delete.
type CustomerHandler struct {
	CustomerService *service.CustomerService
}

// HandleCreate godoc
//
//	@Summary		Create a customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		domain.CustomerInput	true	"Customer fields, address optional"
//	@Success		201			{object}	domain.Customer
//	@Failure		400			{object}	httpx.ErrorResponse	"Name and email are required fields"
//	@Failure		401			{object}	httpx.ErrorResponse
//	@Failure		403			{object}	httpx.ErrorResponse
//	@Failure		500			{object}	httpx.ErrorResponse
//	@Router			/api/customers [post].
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var in domain.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.CustomerService.Create(ctx, in)
	if err != nil {
		var ve service.ValidationError
		if errors.As(err, &ve) {
			httpx.WriteError(w, http.StatusBadRequest, ve.Error())
			return
		}
		log.Error("create customer failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleList godoc
//
//	@Summary		List customers
//	@Description	Returns all customers, newest first.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Customer
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/customers [get].
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	customers, err := h.CustomerService.List(ctx)
	if err != nil {
		log.Error("list customers failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, customers)
}

// HandleGet godoc
//
//	@Summary		Get a customer by id
//	@Description	A non-numeric id is treated as not found, not as a bad request.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	domain.Customer
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Customer not found"
//	@Router			/api/customers/{id} [get].
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Non-numeric ids behave as unknown ids here.
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Customer not found")
		return
	}

	c, err := h.CustomerService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error("get customer failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, c)
}
