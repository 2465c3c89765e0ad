package http

import (
	"fmt"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	notifier    *Notifier
	view        *Renderer
}

func NewCustomerHandler(customerSvc service.CustomerService, notifier *Notifier, view *Renderer) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, notifier: notifier, view: view}
}

type customerListView struct {
	Search    string
	Customers []domain.Customer
	Total     int
}

type customerFormView struct {
	ID    int64
	Input domain.CustomerInput
}

type customerRentalsView struct {
	Customer *domain.Customer
	Rentals  []domain.Rental
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		h.notifier.Fail(err)
		customers = nil
	}

	h.view.Render(w, r, http.StatusOK, "customers", "Customers", "customers", customerListView{
		Search:    search,
		Customers: service.FilterCustomers(customers, service.CustomerFilter{Search: search}),
		Total:     len(customers),
	})
}

func (h *CustomerHandler) New(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "customer_form", "New customer", "customers", customerFormView{})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	customer, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/customers")
		return
	}

	h.view.Render(w, r, http.StatusOK, "customer_form", "Edit customer", "customers", customerFormView{
		ID:    id,
		Input: customer.Input(),
	})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.save(w, r, id)
}

// save creates or updates. On failure the form is shown again with what the
// operator typed.
func (h *CustomerHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	input := domain.CustomerInput{
		FirstName:   r.PostForm.Get("firstName"),
		LastName:    r.PostForm.Get("lastName"),
		Email:       r.PostForm.Get("email"),
		PhoneNumber: r.PostForm.Get("phoneNumber"),
		Address:     r.PostForm.Get("address"),
	}

	customer, err := h.customerSvc.SaveCustomer(r.Context(), id, input)
	if err != nil {
		h.notifier.Fail(err)
		title := "New customer"
		if id != 0 {
			title = "Edit customer"
		}
		h.view.Render(w, r, http.StatusUnprocessableEntity, "customer_form", title, "customers", customerFormView{ID: id, Input: input})
		return
	}

	if id == 0 {
		h.notifier.Success(fmt.Sprintf("Customer %s created", customer.FullName()))
	} else {
		h.notifier.Success(fmt.Sprintf("Customer %s updated", customer.FullName()))
	}
	redirect(w, r, "/customers")
}

func (h *CustomerHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := fmt.Sprintf("#%d", id)
	if customer, err := h.customerSvc.GetCustomer(r.Context(), id); err == nil {
		name = customer.FullName()
	}

	h.view.Render(w, r, http.StatusOK, "confirm", "Delete customer", "customers", confirmView{
		Heading: "Delete customer",
		Message: fmt.Sprintf("Delete customer %s? This cannot be undone.", name),
		Action:  fmt.Sprintf("/customers/%d/delete", id),
		Cancel:  "/customers",
		Button:  "Delete",
	})
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		h.notifier.Fail(err)
	} else {
		h.notifier.Success("Customer deleted")
	}
	redirect(w, r, "/customers")
}

func (h *CustomerHandler) Rentals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	customer, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/customers")
		return
	}

	rentals, err := h.customerSvc.ListCustomerRentals(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
	}

	h.view.Render(w, r, http.StatusOK, "customer_rentals", "Rentals of "+customer.FullName(), "customers", customerRentalsView{
		Customer: customer,
		Rentals:  rentals,
	})
}
