package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	httpapi "mountainride-backoffice/internal/api/http"
	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository/rest"
	"mountainride-backoffice/internal/service"
	"mountainride-backoffice/internal/session"
	"mountainride-backoffice/internal/storage"
	"mountainride-backoffice/internal/wizard"
)

// remoteAPI fakes the parts of the remote service the pages call
type remoteAPI struct {
	mu            sync.Mutex
	failCustomers bool
	blockDeletes  bool
	authHeaders   []string
	started       []domain.StartRentalRequest
	startedBodies []string
	customers     []domain.Customer
	products      []domain.Product
	types         []domain.ProductType
	rentals       []domain.Rental
}

func (a *remoteAPI) routes() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.mu.Lock()
			a.authHeaders = append(a.authHeaders, r.Header.Get("Authorization"))
			a.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	api.HandleFunc("/auth/login", a.login).Methods(http.MethodPost)
	api.HandleFunc("/customer", a.listCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customer/{id}", a.deleteCustomer).Methods(http.MethodDelete)
	api.HandleFunc("/product", a.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/product-type", a.listTypes).Methods(http.MethodGet)
	api.HandleFunc("/rental", a.listRentals).Methods(http.MethodGet)
	api.HandleFunc("/rental/start", a.startRental).Methods(http.MethodPost)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *remoteAPI) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	_ = json.NewDecoder(r.Body).Decode(&creds)
	if creds.Password != "secret" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"timeStamp": "2026-01-15T10:00:00", "message": "Bad credentials", "httpStatus": 401,
		})
		return
	}
	writeJSON(w, http.StatusOK, domain.Profile{Token: "tok", Email: creds.Email, FirstName: "Ana", LastName: "Roche", Role: "ADMIN"})
}

func (a *remoteAPI) listCustomers(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failCustomers {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
		return
	}
	writeJSON(w, http.StatusOK, a.customers)
}

func (a *remoteAPI) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.blockDeletes {
		writeJSON(w, http.StatusConflict, map[string]any{
			"timeStamp": "2026-01-15T10:00:00", "message": "Customer has rentals", "httpStatus": 409,
		})
		return
	}
	id := mux.Vars(r)["id"]
	kept := a.customers[:0]
	for _, c := range a.customers {
		if strconv.FormatInt(c.ID, 10) != id {
			kept = append(kept, c)
		}
	}
	a.customers = kept
	w.WriteHeader(http.StatusNoContent)
}

func (a *remoteAPI) customerCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.customers)
}

func (a *remoteAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	writeJSON(w, http.StatusOK, a.products)
}

func (a *remoteAPI) listTypes(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	writeJSON(w, http.StatusOK, a.types)
}

func (a *remoteAPI) listRentals(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	writeJSON(w, http.StatusOK, a.rentals)
}

func (a *remoteAPI) startRental(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req domain.StartRentalRequest
	if err := json.Unmarshal(body, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.started = append(a.started, req)
	a.startedBodies = append(a.startedBodies, string(body))
	rental := domain.Rental{
		ID:        int64(len(a.started)),
		Code:      "MR-001",
		StartDate: "2026-01-15",
		Status:    domain.RentalStatusActive,
		Customer:  domain.Customer{Email: req.Customer.Email, LastName: "Martin"},
	}
	a.rentals = append(a.rentals, rental)
	writeJSON(w, http.StatusCreated, rental)
}

// testEnv behaves like the operator's browser: it keeps the session cookie
// it is given and fills in the form token on posts
type testEnv struct {
	api      *remoteAPI
	sessions *session.Store
	wizard   *wizard.Wizard
	handler  http.Handler
	cookie   *http.Cookie
}

const sessionCookieName = "mr_session"

func newTestEnv(t *testing.T, restore bool) *testEnv {
	t.Helper()

	ski := domain.ProductType{ID: 1, Name: "Ski"}
	api := &remoteAPI{
		customers: []domain.Customer{
			{ID: 1, FirstName: "Lucie", LastName: "Martin", Email: "lucie@example.com", PhoneNumber: "0612"},
			{ID: 2, FirstName: "Paul", LastName: "Durand", Email: "paul@example.com", PhoneNumber: "0698"},
		},
		types: []domain.ProductType{ski},
		products: []domain.Product{
			{ID: 1, ProductType: ski, Name: "Rossignol Experience", BasePrice: 35, Available: true},
			{ID: 2, ProductType: ski, Name: "Salomon Stance", BasePrice: 30, Available: false},
		},
	}
	srv := httptest.NewServer(api.routes())
	t.Cleanup(srv.Close)

	sessions := session.NewStore(storage.NewMemoryStorage())
	if restore {
		require.NoError(t, sessions.Restore(context.Background()))
	}

	store := rest.NewStore(rest.NewClient(srv.URL+"/api", sessions, 0))
	productSvc := service.NewProductService(store.ProductRepository, store.ProductTypeRepository)
	w := wizard.New()

	router, err := httpapi.NewRouter(httpapi.Dependencies{
		Sessions:     sessions,
		Notifier:     httpapi.NewNotifier(),
		Wizard:       w,
		Auth:         service.NewAuthService(store.AuthRepository, sessions),
		Dashboard:    service.NewDashboardService(store.ProductRepository, store.CustomerRepository, store.RentalRepository),
		Customers:    service.NewCustomerService(store.CustomerRepository),
		ProductTypes: service.NewProductTypeService(store.ProductTypeRepository),
		Products:     productSvc,
		Rentals:      service.NewRentalService(store.RentalRepository),
	})
	require.NoError(t, err)

	return &testEnv{api: api, sessions: sessions, wizard: w, handler: router}
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, e.sessions.Establish(context.Background(), domain.Profile{
		Token: "tok", Email: "ana@mountainride.fr", FirstName: "Ana", LastName: "Roche", Role: "ADMIN",
	}))
	e.cookie = &http.Cookie{Name: sessionCookieName, Value: e.sessions.SessionKey()}
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if e.cookie != nil && !form.Has("csrf_token") {
		form.Set("csrf_token", e.sessions.CSRFToken())
	}
	return e.serve(newFormRequest(path, form))
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name != sessionCookieName {
			continue
		}
		if c.MaxAge < 0 {
			e.cookie = nil
		} else {
			e.cookie = &http.Cookie{Name: c.Name, Value: c.Value}
		}
	}
	return rec
}

// serveBare sends req without the session cookie, as another client would
func (e *testEnv) serveBare(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
