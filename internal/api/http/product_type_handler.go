package http

import (
	"fmt"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
)

type ProductTypeHandler struct {
	typeSvc  service.ProductTypeService
	notifier *Notifier
	view     *Renderer
}

func NewProductTypeHandler(typeSvc service.ProductTypeService, notifier *Notifier, view *Renderer) *ProductTypeHandler {
	return &ProductTypeHandler{typeSvc: typeSvc, notifier: notifier, view: view}
}

type productTypeListView struct {
	Search string
	Types  []domain.ProductType
	Total  int
}

type productTypeFormView struct {
	ID    int64
	Input domain.ProductTypeInput
}

type productTypeProductsView struct {
	Type     *domain.ProductType
	Products []domain.Product
}

func (h *ProductTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	types, err := h.typeSvc.ListProductTypes(r.Context())
	if err != nil {
		h.notifier.Fail(err)
		types = nil
	}

	h.view.Render(w, r, http.StatusOK, "product_types", "Product types", "product-types", productTypeListView{
		Search: search,
		Types:  service.FilterProductTypes(types, service.ProductTypeFilter{Search: search}),
		Total:  len(types),
	})
}

func (h *ProductTypeHandler) New(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "product_type_form", "New product type", "product-types", productTypeFormView{})
}

func (h *ProductTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, 0)
}

func (h *ProductTypeHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	pt, err := h.typeSvc.GetProductType(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/product-types")
		return
	}

	h.view.Render(w, r, http.StatusOK, "product_type_form", "Edit product type", "product-types", productTypeFormView{
		ID:    id,
		Input: domain.ProductTypeInput{Name: pt.Name},
	})
}

func (h *ProductTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.save(w, r, id)
}

func (h *ProductTypeHandler) save(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	input := domain.ProductTypeInput{Name: r.PostForm.Get("name")}

	pt, err := h.typeSvc.SaveProductType(r.Context(), id, input)
	if err != nil {
		h.notifier.Fail(err)
		title := "New product type"
		if id != 0 {
			title = "Edit product type"
		}
		h.view.Render(w, r, http.StatusUnprocessableEntity, "product_type_form", title, "product-types", productTypeFormView{ID: id, Input: input})
		return
	}

	if id == 0 {
		h.notifier.Success(fmt.Sprintf("Product type %s created", pt.Name))
	} else {
		h.notifier.Success(fmt.Sprintf("Product type %s updated", pt.Name))
	}
	redirect(w, r, "/product-types")
}

func (h *ProductTypeHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	name := fmt.Sprintf("#%d", id)
	if pt, err := h.typeSvc.GetProductType(r.Context(), id); err == nil {
		name = pt.Name
	}

	h.view.Render(w, r, http.StatusOK, "confirm", "Delete product type", "product-types", confirmView{
		Heading: "Delete product type",
		Message: fmt.Sprintf("Delete product type %s? Types still used by products cannot be deleted.", name),
		Action:  fmt.Sprintf("/product-types/%d/delete", id),
		Cancel:  "/product-types",
		Button:  "Delete",
	})
}

func (h *ProductTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.typeSvc.DeleteProductType(r.Context(), id); err != nil {
		h.notifier.Fail(err)
	} else {
		h.notifier.Success("Product type deleted")
	}
	redirect(w, r, "/product-types")
}

func (h *ProductTypeHandler) Products(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	pt, err := h.typeSvc.GetProductType(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
		redirect(w, r, "/product-types")
		return
	}

	products, err := h.typeSvc.ListProductsOfType(r.Context(), id)
	if err != nil {
		h.notifier.Fail(err)
	}

	h.view.Render(w, r, http.StatusOK, "product_type_products", pt.Name, "product-types", productTypeProductsView{
		Type:     pt,
		Products: products,
	})
}
