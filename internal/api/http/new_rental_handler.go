package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
	"mountainride-backoffice/internal/wizard"
)

const newRentalPath = "/rentals/new"

// RentalWizardHandler drives the new-rental wizard: one form post per action,
// each answered with a redirect back to the wizard page
type RentalWizardHandler struct {
	wizard     *wizard.Wizard
	productSvc service.ProductService
	rentalSvc  service.RentalService
	notifier   *Notifier
	view       *Renderer
}

func NewRentalWizardHandler(w *wizard.Wizard, productSvc service.ProductService, rentalSvc service.RentalService, notifier *Notifier, view *Renderer) *RentalWizardHandler {
	return &RentalWizardHandler{
		wizard:     w,
		productSvc: productSvc,
		rentalSvc:  rentalSvc,
		notifier:   notifier,
		view:       view,
	}
}

// Show opens the wizard if needed and renders the current step
func (h *RentalWizardHandler) Show(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.Open(r.Context(), h.productSvc); err != nil {
		h.notifier.Fail(err)
	}
	h.view.Render(w, r, http.StatusOK, "new_rental", "New rental", "rentals", h.wizard.Snapshot())
}

func (h *RentalWizardHandler) Act(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := r.PostForm

	var err error
	switch mux.Vars(r)["action"] {
	case "add":
		err = h.wizard.Add(formID(form.Get("productId")))
	case "duration":
		days, convErr := strconv.Atoi(form.Get("duration"))
		if convErr != nil {
			days = 0
		}
		err = h.wizard.SetDuration(formID(form.Get("productId")), days)
	case "remove":
		err = h.wizard.Remove(formID(form.Get("productId")))
	case "filter":
		err = h.wizard.SetTypeFilter(formID(form.Get("type")))
	case "next":
		err = h.wizard.Next()
	case "back":
		if err = h.wizard.SetCustomer(customerFromForm(r)); err == nil {
			err = h.wizard.Back()
		}
	case "mode":
		if err = h.wizard.SetCustomer(customerFromForm(r)); err == nil {
			err = h.wizard.SetMode(wizard.ParseMode(form.Get("mode")))
		}
	case "customer":
		err = h.wizard.SetCustomer(customerFromForm(r))
	case "submit":
		h.submit(w, r)
		return
	case "cancel":
		h.wizard.Close()
		redirect(w, r, "/rentals")
		return
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		h.notifier.Fail(err)
	}
	redirect(w, r, newRentalPath)
}

func (h *RentalWizardHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := h.wizard.SetCustomer(customerFromForm(r)); err != nil {
		h.notifier.Fail(err)
		redirect(w, r, newRentalPath)
		return
	}

	rental, err := h.wizard.Submit(r.Context(), h.rentalSvc)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, newRentalPath)
		return
	}

	h.notifier.Success(fmt.Sprintf("Rental %s started", rental.Code))
	redirect(w, r, "/rentals")
}

func customerFromForm(r *http.Request) domain.CustomerInput {
	return domain.CustomerInput{
		FirstName:   r.PostForm.Get("firstName"),
		LastName:    r.PostForm.Get("lastName"),
		Email:       r.PostForm.Get("email"),
		PhoneNumber: r.PostForm.Get("phoneNumber"),
		Address:     r.PostForm.Get("address"),
	}
}

// formID parses an id field; anything unreadable becomes 0
func formID(v string) int64 {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
