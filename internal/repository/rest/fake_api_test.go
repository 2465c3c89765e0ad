package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"mountainride-backoffice/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// fakeAPI is an in-memory stand-in for the remote service covering product
// types, products and the rental lifecycle
type fakeAPI struct {
	mu       sync.Mutex
	nextID   int64
	types    map[int64]domain.ProductType
	products map[int64]domain.Product
	rentals  map[int64]domain.Rental
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{
		types:    map[int64]domain.ProductType{},
		products: map[int64]domain.Product{},
		rentals:  map[int64]domain.Rental{},
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/product-type", f.createType).Methods(http.MethodPost)
	api.HandleFunc("/product-type/{id}", f.deleteType).Methods(http.MethodDelete)
	api.HandleFunc("/product-type/{id}/products", f.productsByType).Methods(http.MethodGet)
	api.HandleFunc("/product", f.createProduct).Methods(http.MethodPost)
	api.HandleFunc("/product", f.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/rental/{id}/finish", f.finishRental).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) seedRental(rental domain.Rental) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rentals[rental.ID] = rental
}

func (f *fakeAPI) id() int64 {
	f.nextID++
	return f.nextID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"timeStamp":  "2026-01-15T10:00:00",
		"message":    message,
		"httpStatus": status,
	})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (f *fakeAPI) createType(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductTypeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad body")
		return
	}
	f.mu.Lock()
	pt := domain.ProductType{ID: f.id(), Name: input.Name}
	f.types[pt.ID] = pt
	f.mu.Unlock()
	writeJSON(w, http.StatusCreated, pt)
}

func (f *fakeAPI) deleteType(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ProductType.ID == id {
			writeError(w, http.StatusConflict, "Product type is still used by products")
			return
		}
	}
	delete(f.types, id)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) productsByType(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Product{}
	for i := int64(1); i <= f.nextID; i++ {
		if p, ok := f.products[i]; ok && p.ProductType.ID == id {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) createProduct(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	pt, ok := f.types[input.ProductTypeID]
	if !ok {
		writeError(w, http.StatusNotFound, "Product type not found")
		return
	}
	p := domain.Product{
		ID:          f.id(),
		ProductType: pt,
		Name:        input.Name,
		Size:        input.Size,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Available:   true,
	}
	f.products[p.ID] = p
	writeJSON(w, http.StatusCreated, p)
}

func (f *fakeAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Product{}
	for i := int64(1); i <= f.nextID; i++ {
		if p, ok := f.products[i]; ok {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) finishRental(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	rental, ok := f.rentals[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Rental not found")
		return
	}
	if rental.Status != domain.RentalStatusActive {
		writeError(w, http.StatusBadRequest, "Rental is already completed")
		return
	}
	end := "2026-01-20"
	rental.Status = domain.RentalStatusCompleted
	rental.EndDate = &end
	f.rentals[id] = rental
	writeJSON(w, http.StatusOK, rental)
}
