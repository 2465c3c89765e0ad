package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	notifier  *Notifier
	view      *Renderer
}

func NewRentalHandler(rentalSvc service.RentalService, notifier *Notifier, view *Renderer) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, notifier: notifier, view: view}
}

type rentalListView struct {
	Filter  service.RentalFilter
	Rentals []domain.Rental
	Total   int
}

type rentalSearchView struct {
	Criteria domain.RentalSearch
	Searched bool
	Rentals  []domain.Rental
}

type rentalItemsView struct {
	Rental *domain.Rental
	Items  []domain.RentalItem
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.RentalFilter{
		Search: q.Get("q"),
		Status: service.ParseRentalStatus(q.Get("status")),
	}

	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		h.notifier.Fail(err)
		rentals = nil
	}

	h.view.Render(w, r, http.StatusOK, "rentals", "Rentals", "rentals", rentalListView{
		Filter:  filter,
		Rentals: service.FilterRentals(rentals, filter),
		Total:   len(rentals),
	})
}

// Search asks the remote API; an empty form just shows the form
func (h *RentalHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := rentalSearchView{
		Criteria: domain.RentalSearch{
			Code:        strings.TrimSpace(q.Get("code")),
			LastName:    strings.TrimSpace(q.Get("lastName")),
			PhoneNumber: strings.TrimSpace(q.Get("phoneNumber")),
		},
	}

	rentals, err := h.rentalSvc.SearchRentals(r.Context(), data.Criteria)
	switch {
	case errors.Is(err, service.ErrEmptySearch):
	case err != nil:
		h.notifier.Fail(err)
		data.Searched = true
	default:
		data.Searched = true
		data.Rentals = rentals
	}

	h.view.Render(w, r, http.StatusOK, "rental_search", "Search rentals", "rentals", data)
}

func (h *RentalHandler) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/rentals")
		return
	}

	items, err := h.rentalSvc.ListRentalItems(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
	}

	h.view.Render(w, r, http.StatusOK, "rental_items", "Rental "+rental.Code, "rentals", rentalItemsView{
		Rental: rental,
		Items:  items,
	})
}

func (h *RentalHandler) rentalLabel(r *http.Request, id int64) string {
	if rental, err := h.rentalSvc.GetRental(r.Context(), id); err == nil {
		return rental.Code
	}
	return fmt.Sprintf("#%d", id)
}

func (h *RentalHandler) ConfirmFinish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, "confirm", "Finish rental", "rentals", confirmView{
		Heading: "Finish rental",
		Message: fmt.Sprintf("Finish rental %s? The equipment becomes available again.", h.rentalLabel(r, id)),
		Action:  fmt.Sprintf("/rentals/%d/finish", id),
		Cancel:  "/rentals",
		Button:  "Finish",
	})
}

func (h *RentalHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rental, err := h.rentalSvc.FinishRental(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
	} else {
		h.notifier.Success(fmt.Sprintf("Rental %s finished", rental.Code))
	}
	redirect(w, r, "/rentals")
}

func (h *RentalHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, "confirm", "Delete rental", "rentals", confirmView{
		Heading: "Delete rental",
		Message: fmt.Sprintf("Delete rental %s? This cannot be undone.", h.rentalLabel(r, id)),
		Action:  fmt.Sprintf("/rentals/%d/delete", id),
		Cancel:  "/rentals",
		Button:  "Delete",
	})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		h.notifier.Fail(err)
	} else {
		h.notifier.Success("Rental deleted")
	}
	redirect(w, r, "/rentals")
}
