package http

import (
	"fmt"
	"net/http"
	"strconv"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
)

type ProductHandler struct {
	productSvc service.ProductService
	notifier   *Notifier
	view       *Renderer
}

func NewProductHandler(productSvc service.ProductService, notifier *Notifier, view *Renderer) *ProductHandler {
	return &ProductHandler{productSvc: productSvc, notifier: notifier, view: view}
}

type productListView struct {
	Filter   service.ProductFilter
	Products []domain.Product
	Types    []domain.ProductType
	Total    int
}

type productFormView struct {
	ID    int64
	Form  service.ProductForm
	Types []domain.ProductType
}

type productPricesView struct {
	Product *domain.Product
	Prices  []domain.ProductPrice
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	typeID, _ := strconv.ParseInt(q.Get("type"), 10, 64)
	filter := service.ProductFilter{
		Search:       q.Get("q"),
		TypeID:       typeID,
		Availability: service.ParseAvailability(q.Get("availability")),
	}

	products, types, err := h.productSvc.ListCatalog(r.Context())
	if err != nil {
		h.notifier.Fail(err)
	}

	h.view.Render(w, r, http.StatusOK, "products", "Products", "products", productListView{
		Filter:   filter,
		Products: service.FilterProducts(products, filter),
		Types:    types,
		Total:    len(products),
	})
}

// types loads the product type choices of the editor; a failure leaves the
// choice list empty
func (h *ProductHandler) types(r *http.Request) []domain.ProductType {
	types, err := h.productSvc.ListProductTypes(r.Context())
	if err != nil {
		h.notifier.Fail(err)
		return nil
	}
	return types
}

func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "product_form", "New product", "products", productFormView{
		Types: h.types(r),
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/products")
		return
	}

	h.view.Render(w, r, http.StatusOK, "product_form", "Edit product", "products", productFormView{
		ID:    id,
		Form:  service.NewProductForm(*product),
		Types: h.types(r),
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.save(w, r, id)
}

func (h *ProductHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	form := service.ProductForm{
		ProductTypeID: r.PostForm.Get("productTypeId"),
		Name:          r.PostForm.Get("name"),
		Size:          r.PostForm.Get("size"),
		Description:   r.PostForm.Get("description"),
		BasePrice:     r.PostForm.Get("basePrice"),
	}

	product, err := h.productSvc.SaveProduct(r.Context(), id, form)
	if err != nil {
		h.notifier.Fail(err)
		title := "New product"
		if id != 0 {
			title = "Edit product"
		}
		h.view.Render(w, r, http.StatusUnprocessableEntity, "product_form", title, "products", productFormView{
			ID:    id,
			Form:  form,
			Types: h.types(r),
		})
		return
	}

	if id == 0 {
		h.notifier.Success(fmt.Sprintf("Product %s created", product.Name))
	} else {
		h.notifier.Success(fmt.Sprintf("Product %s updated", product.Name))
	}
	redirect(w, r, "/products")
}

func (h *ProductHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := fmt.Sprintf("#%d", id)
	if product, err := h.productSvc.GetProduct(r.Context(), id); err == nil {
		name = product.Name
	}

	h.view.Render(w, r, http.StatusOK, "confirm", "Delete product", "products", confirmView{
		Heading: "Delete product",
		Message: fmt.Sprintf("Delete product %s? This cannot be undone.", name),
		Action:  fmt.Sprintf("/products/%d/delete", id),
		Cancel:  "/products",
		Button:  "Delete",
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		h.notifier.Fail(err)
	} else {
		h.notifier.Success("Product deleted")
	}
	redirect(w, r, "/products")
}

func (h *ProductHandler) Prices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/products")
		return
	}

	prices, err := h.productSvc.ListProductPrices(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
	}

	h.view.Render(w, r, http.StatusOK, "product_prices", "Prices of "+product.Name, "products", productPricesView{
		Product: product,
		Prices:  prices,
	})
}
