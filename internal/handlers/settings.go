package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/omytic/storefront/internal/settings"
	"github.com/omytic/storefront/models"
)

// GetSettingsHandler serves the settings form's current values.
func GetSettingsHandler(w http.ResponseWriter, r *http.Request, svc *settings.Service) {
	record, err := svc.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": record})
}

// SaveSettingsHandler persists the whole settings record.
func SaveSettingsHandler(w http.ResponseWriter, r *http.Request, svc *settings.Service) {
	var record models.Setting
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	saved, err := svc.Save(r.Context(), record)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Ayarlar başarıyla kaydedildi!",
		"settings": saved,
	})
}
