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

// DeleteInvoiceResponse confirms a deletion.
type DeleteInvoiceResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// InvoiceHandler serves the /api/invoices routes. All of them sit behind the
// auth middleware.
type InvoiceHandler struct {
	InvoiceService *service.InvoiceService
}

// HandleCreate godoc
//
//	@Summary		Create an invoice
//	@Description	Validates the input and persists an invoice with derived subtotal, VAT amount and total.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			invoice	body		domain.InvoiceInput	true	"Invoice fields"
//	@Success		201		{object}	domain.Invoice
//	@Failure		400		{object}	httpx.ErrorResponse	"Validation failure, message names the field or rule"
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/api/invoices [post].
func (h *InvoiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var in domain.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.InvoiceService.Create(ctx, in)
	if err != nil {
		var ve service.ValidationError
		if errors.As(err, &ve) {
			httpx.WriteError(w, http.StatusBadRequest, ve.Error())
			return
		}
		log.Error("create invoice failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, inv)
}

// HandleList godoc
//
//	@Summary		List invoices
//	@Description	Returns all invoices, newest first.
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Invoice
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/invoices [get].
func (h *InvoiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invoices, err := h.InvoiceService.List(ctx)
	if err != nil {
		log.Error("list invoices failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invoices)
}

// HandleGet godoc
//
//	@Summary		Get an invoice by id
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{object}	domain.Invoice
//	@Failure		400	{object}	httpx.ErrorResponse	"Invalid invoice ID"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Invoice not found"
//	@Router			/api/invoices/{id} [get].
func (h *InvoiceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.InvoiceService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		log.Error("get invoice failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inv)
}

// HandleDelete godoc
//
//	@Summary		Delete an invoice by id
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{object}	DeleteInvoiceResponse
//	@Failure		400	{object}	httpx.ErrorResponse	"Invalid invoice ID"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Invoice not found"
//	@Router			/api/invoices/{id} [delete].
func (h *InvoiceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	if _, err := h.InvoiceService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		log.Error("delete invoice failed", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DeleteInvoiceResponse{
		Message: "Invoice deleted successfully",
		ID:      id,
	})
}
