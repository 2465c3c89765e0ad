package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/service"
)

var (
	ErrEmptyCart          = errors.New("add at least one product before continuing")
	ErrIncompleteCustomer = errors.New("please fill in the customer details")
	ErrUnknownProduct     = errors.New("this product is not available for rental")
	ErrWrongStep          = errors.New("this action is not available at the current step")
)

type Step int

const (
	StepClosed Step = iota
	StepSelectingItems
	StepEnteringCustomer
	StepSubmitting
)

func (s Step) String() string {
	switch s {
	case StepSelectingItems:
		return "selecting-items"
	case StepEnteringCustomer:
		return "entering-customer"
	case StepSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

type CustomerMode string

const (
	ModeExisting CustomerMode = "existing"
	ModeNew      CustomerMode = "new"
)

// ParseMode maps a form value to a mode, defaulting to an existing customer
func ParseMode(v string) CustomerMode {
	if CustomerMode(v) == ModeNew {
		return ModeNew
	}
	return ModeExisting
}

// Catalog supplies the products and product types offered in step one
type Catalog interface {
	ListCatalog(ctx context.Context) ([]domain.Product, []domain.ProductType, error)
}

// RentalStarter submits the finished rental
type RentalStarter interface {
	StartRental(ctx context.Context, req domain.StartRentalRequest) (*domain.Rental, error)
}

// View is a consistent copy of the wizard state for rendering
type View struct {
	Step       Step
	Products   []domain.Product
	Types      []domain.ProductType
	TypeFilter int64
	Lines      []Line
	Total      float64
	Mode       CustomerMode
	Customer   domain.CustomerInput
	CanAdvance bool
	CanSubmit  bool
}

// Wizard is the new-rental workflow. There is one per dashboard process.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	generation uint64 // bumped on every reset, so late results of a closed run are dropped
	products   []domain.Product
	types      []domain.ProductType
	typeFilter int64
	cart       Cart
	mode       CustomerMode
	customer   domain.CustomerInput
}

func New() *Wizard {
	return &Wizard{mode: ModeExisting}
}

// Open starts the workflow at step one and loads the available products.
// Opening a wizard that is already open keeps its state. When loading fails
// the wizard closes again so the next Open retries, and the error is returned.
func (w *Wizard) Open(ctx context.Context, catalog Catalog) error {
	w.mu.Lock()
	if w.step != StepClosed {
		w.mu.Unlock()
		return nil
	}
	w.step = StepSelectingItems
	gen := w.generation
	w.mu.Unlock()

	products, types, err := catalog.ListCatalog(ctx)
	if err != nil {
		logger.Warn("Failed to load rental catalog", "error", err)
		w.mu.Lock()
		if w.generation == gen {
			w.step = StepClosed
		}
		w.mu.Unlock()
		return err
	}

	available := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Available {
			available = append(available, p)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen {
		return nil
	}
	w.products = available
	w.types = types
	return nil
}

func (w *Wizard) State() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Add(productID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingItems {
		return ErrWrongStep
	}
	for _, p := range w.products {
		if p.ID == productID {
			w.cart.Add(p)
			return nil
		}
	}
	return ErrUnknownProduct
}

func (w *Wizard) SetDuration(productID int64, days int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingItems {
		return ErrWrongStep
	}
	w.cart.SetDuration(productID, days)
	return nil
}

func (w *Wizard) Remove(productID int64) error {
	return w.SetDuration(productID, 0)
}

// SetTypeFilter narrows the offered products to one type; 0 shows every type
func (w *Wizard) SetTypeFilter(typeID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingItems {
		return ErrWrongStep
	}
	w.typeFilter = typeID
	return nil
}

func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.cart.IsEmpty()
}

func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepSelectingItems {
		return ErrWrongStep
	}
	if w.cart.IsEmpty() {
		return ErrEmptyCart
	}
	w.step = StepEnteringCustomer
	return nil
}

// Back returns to the product selection, keeping the cart
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepEnteringCustomer {
		return ErrWrongStep
	}
	w.step = StepSelectingItems
	return nil
}

func (w *Wizard) SetMode(mode CustomerMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepEnteringCustomer {
		return ErrWrongStep
	}
	w.mode = mode
	return nil
}

func (w *Wizard) SetCustomer(input domain.CustomerInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepEnteringCustomer {
		return ErrWrongStep
	}
	w.customer = input
	return nil
}

func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSubmit()
}

func (w *Wizard) canSubmit() bool {
	if blank(w.customer.Email) {
		return false
	}
	if w.mode == ModeNew {
		return !blank(w.customer.FirstName) && !blank(w.customer.LastName) && !blank(w.customer.PhoneNumber)
	}
	return true
}

// request builds the start-rental payload. An existing customer is identified
// by email only; the other fields go out empty.
func (w *Wizard) request() domain.StartRentalRequest {
	customer := w.customer
	if w.mode == ModeExisting {
		customer = domain.CustomerInput{Email: w.customer.Email}
	}
	return domain.StartRentalRequest{
		Customer: customer,
		Items:    w.cart.Items(),
	}
}

// Submit starts the rental. On success the wizard is reset and closed. On
// failure it returns to the customer step with the cart and customer intact.
// The lock is not held during the remote call.
func (w *Wizard) Submit(ctx context.Context, starter RentalStarter) (*domain.Rental, error) {
	w.mu.Lock()
	if w.step != StepEnteringCustomer {
		w.mu.Unlock()
		return nil, ErrWrongStep
	}
	if w.cart.IsEmpty() {
		w.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if !w.canSubmit() {
		w.mu.Unlock()
		return nil, ErrIncompleteCustomer
	}
	req := w.request()
	w.step = StepSubmitting
	gen := w.generation
	w.mu.Unlock()

	rental, err := starter.StartRental(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen {
		return rental, err
	}
	if err != nil {
		w.step = StepEnteringCustomer
		return nil, err
	}
	w.reset()
	return rental, nil
}

// Close abandons the workflow and discards the cart and customer form
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

func (w *Wizard) reset() {
	w.step = StepClosed
	w.generation++
	w.products = nil
	w.types = nil
	w.typeFilter = 0
	w.cart.Reset()
	w.mode = ModeExisting
	w.customer = domain.CustomerInput{}
}

// Snapshot returns the state to render
func (w *Wizard) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	types := make([]domain.ProductType, len(w.types))
	copy(types, w.types)

	return View{
		Step:       w.step,
		Products:   service.FilterProducts(w.products, service.ProductFilter{TypeID: w.typeFilter}),
		Types:      types,
		TypeFilter: w.typeFilter,
		Lines:      w.cart.Lines(),
		Total:      w.cart.Total(),
		Mode:       w.mode,
		Customer:   w.customer,
		CanAdvance: !w.cart.IsEmpty(),
		CanSubmit:  w.canSubmit(),
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
