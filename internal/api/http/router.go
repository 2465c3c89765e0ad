package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"mountainride-backoffice/internal/service"
	"mountainride-backoffice/internal/wizard"
)

// Dependencies are the components the dashboard pages are built on
type Dependencies struct {
	Sessions     SessionState
	Notifier     *Notifier
	Wizard       *wizard.Wizard
	Auth         service.AuthService
	Dashboard    service.DashboardService
	Customers    service.CustomerService
	ProductTypes service.ProductTypeService
	Products     service.ProductService
	Rentals      service.RentalService
}

// NewRouter builds the dashboard routes. Route names are the keys of the
// route security table.
func NewRouter(deps Dependencies) (*mux.Router, error) {
	view, err := NewRenderer(deps.Sessions, deps.Notifier)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.Use(RequestLogger)
	router.Use(CrossSiteGuard)
	router.Use(NewSessionGate(deps.Sessions, view).Middleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet).Name("healthz")

	auth := NewAuthHandler(deps.Auth, deps.Sessions, deps.Wizard, deps.Notifier, view)
	router.HandleFunc("/login", auth.LoginPage).Methods(http.MethodGet).Name("login")
	router.HandleFunc("/login", auth.Login).Methods(http.MethodPost).Name("login.submit")
	router.HandleFunc("/logout", auth.Logout).Methods(http.MethodPost).Name("logout")
	router.HandleFunc("/sidebar/toggle", ToggleSidebar).Methods(http.MethodPost).Name("sidebar.toggle")

	dashboard := NewDashboardHandler(deps.Dashboard, view)
	router.HandleFunc("/", dashboard.Show).Methods(http.MethodGet).Name("home")
	router.HandleFunc("/dashboard", dashboard.Show).Methods(http.MethodGet).Name("dashboard")

	customers := NewCustomerHandler(deps.Customers, deps.Notifier, view)
	router.HandleFunc("/customers", customers.List).Methods(http.MethodGet).Name("customers.list")
	router.HandleFunc("/customers/new", customers.New).Methods(http.MethodGet).Name("customers.new")
	router.HandleFunc("/customers", customers.Create).Methods(http.MethodPost).Name("customers.create")
	router.HandleFunc("/customers/{id:[0-9]+}/edit", customers.Edit).Methods(http.MethodGet).Name("customers.edit")
	router.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPost).Name("customers.update")
	router.HandleFunc("/customers/{id:[0-9]+}/delete", customers.ConfirmDelete).Methods(http.MethodGet).Name("customers.delete.confirm")
	router.HandleFunc("/customers/{id:[0-9]+}/delete", customers.Delete).Methods(http.MethodPost).Name("customers.delete")
	router.HandleFunc("/customers/{id:[0-9]+}/rentals", customers.Rentals).Methods(http.MethodGet).Name("customers.rentals")

	types := NewProductTypeHandler(deps.ProductTypes, deps.Notifier, view)
	router.HandleFunc("/product-types", types.List).Methods(http.MethodGet).Name("product_types.list")
	router.HandleFunc("/product-types/new", types.New).Methods(http.MethodGet).Name("product_types.new")
	router.HandleFunc("/product-types", types.Create).Methods(http.MethodPost).Name("product_types.create")
	router.HandleFunc("/product-types/{id:[0-9]+}/edit", types.Edit).Methods(http.MethodGet).Name("product_types.edit")
	router.HandleFunc("/product-types/{id:[0-9]+}", types.Update).Methods(http.MethodPost).Name("product_types.update")
	router.HandleFunc("/product-types/{id:[0-9]+}/delete", types.ConfirmDelete).Methods(http.MethodGet).Name("product_types.delete.confirm")
	router.HandleFunc("/product-types/{id:[0-9]+}/delete", types.Delete).Methods(http.MethodPost).Name("product_types.delete")
	router.HandleFunc("/product-types/{id:[0-9]+}/products", types.Products).Methods(http.MethodGet).Name("product_types.products")

	products := NewProductHandler(deps.Products, deps.Notifier, view)
	router.HandleFunc("/products", products.List).Methods(http.MethodGet).Name("products.list")
	router.HandleFunc("/products/new", products.New).Methods(http.MethodGet).Name("products.new")
	router.HandleFunc("/products", products.Create).Methods(http.MethodPost).Name("products.create")
	router.HandleFunc("/products/{id:[0-9]+}/edit", products.Edit).Methods(http.MethodGet).Name("products.edit")
	router.HandleFunc("/products/{id:[0-9]+}", products.Update).Methods(http.MethodPost).Name("products.update")
	router.HandleFunc("/products/{id:[0-9]+}/delete", products.ConfirmDelete).Methods(http.MethodGet).Name("products.delete.confirm")
	router.HandleFunc("/products/{id:[0-9]+}/delete", products.Delete).Methods(http.MethodPost).Name("products.delete")
	router.HandleFunc("/products/{id:[0-9]+}/prices", products.Prices).Methods(http.MethodGet).Name("products.prices")

	newRental := NewRentalWizardHandler(deps.Wizard, deps.Products, deps.Rentals, deps.Notifier, view)
	router.HandleFunc("/rentals/new", newRental.Show).Methods(http.MethodGet).Name("rentals.new")
	router.HandleFunc("/rentals/new/{action}", newRental.Act).Methods(http.MethodPost).Name("rentals.new.action")

	rentals := NewRentalHandler(deps.Rentals, deps.Notifier, view)
	router.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet).Name("rentals.list")
	router.HandleFunc("/rentals/search", rentals.Search).Methods(http.MethodGet).Name("rentals.search")
	router.HandleFunc("/rentals/{id:[0-9]+}/items", rentals.Items).Methods(http.MethodGet).Name("rentals.items")
	router.HandleFunc("/rentals/{id:[0-9]+}/finish", rentals.ConfirmFinish).Methods(http.MethodGet).Name("rentals.finish.confirm")
	router.HandleFunc("/rentals/{id:[0-9]+}/finish", rentals.Finish).Methods(http.MethodPost).Name("rentals.finish")
	router.HandleFunc("/rentals/{id:[0-9]+}/delete", rentals.ConfirmDelete).Methods(http.MethodGet).Name("rentals.delete.confirm")
	router.HandleFunc("/rentals/{id:[0-9]+}/delete", rentals.Delete).Methods(http.MethodPost).Name("rentals.delete")

	return router, nil
}

// pathID reads the numeric {id} route variable
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// confirmView feeds the shared confirmation page
type confirmView struct {
	Heading string
	Message string
	Action  string
	Cancel  string
	Button  string
}
