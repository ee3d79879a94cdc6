package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/omytic/storefront/internal/catalog"
)

// ListProductsHandler returns every product, newest first.
func ListProductsHandler(w http.ResponseWriter, r *http.Request, svc *catalog.Service) {
	products, err := svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// CreateProductHandler inserts a product from the admin form payload.
func CreateProductHandler(w http.ResponseWriter, r *http.Request, svc *catalog.Service) {
	var in catalog.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	product, err := svc.Create(r.Context(), in)
	if err != nil {
		if catalog.IsValidationErr(err) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Ürün başarıyla eklendi!",
		"product": product,
	})
}

// UpdateProductHandler replaces all fields of an existing product.
func UpdateProductHandler(w http.ResponseWriter, r *http.Request, svc *catalog.Service) {
	id := chi.URLParam(r, "id")

	var in catalog.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	product, err := svc.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case catalog.IsValidationErr(err):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Ürün başarıyla güncellendi!",
		"product": product,
	})
}

// DeleteProductHandler removes a product and its stored image.
func DeleteProductHandler(w http.ResponseWriter, r *http.Request, svc *catalog.Service) {
	id := chi.URLParam(r, "id")

	if err := svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Ürün başarıyla silindi!"})
}

// DashboardHandler serves the stat cards on the admin landing view.
func DashboardHandler(w http.ResponseWriter, r *http.Request, svc *catalog.Service) {
	products, err := svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	fabrics, others := catalog.Partition(products)
	lastAdded := "Henüz ürün yok"
	if len(products) > 0 {
		lastAdded = products[0].Name
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_products": len(products),
		"fabrics":        len(fabrics),
		"other":          len(others),
		"last_added":     lastAdded,
	})
}
