package handlers

import (
	"net/http"

	"github.com/omytic/storefront/internal/catalog"
	"github.com/omytic/storefront/internal/config"
	"github.com/omytic/storefront/internal/contact"
	"github.com/omytic/storefront/internal/settings"
	"github.com/omytic/storefront/models"
)

// Prefilled text for the emitted contact deep links.
const (
	whatsappGreeting = "Merhaba, OMY Ticaret hakkında bilgi almak istiyorum."
	mailSubject      = "İletişim Talebi"
	mailBody         = "Merhaba, "
)

const backendHint = "Veritabanı bağlantısını ve ortam değişkenlerini kontrol edin."

// PublicProductsHandler serves the storefront's partitioned catalog.
// Without backend credentials it degrades to the built-in placeholder
// products instead of failing.
func PublicProductsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, svc *catalog.Service) {
	if !cfg.Configured() {
		fabrics, others := catalog.Partition(catalog.Placeholders())
		writeJSON(w, http.StatusOK, map[string]any{
			"fabrics":     fabrics,
			"others":      others,
			"placeholder": true,
		})
		return
	}

	products, err := svc.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": err.Error(),
			"hint":  backendHint,
		})
		return
	}

	fabrics, others := catalog.Partition(products)
	writeJSON(w, http.StatusOK, map[string]any{
		"fabrics": fabrics,
		"others":  others,
	})
}

// PublicSettingsHandler serves the effective settings plus the outbound
// contact links the page embeds.
func PublicSettingsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, svc *settings.Service) {
	var record models.Setting
	if !cfg.Configured() {
		record = settings.Defaults()
	} else {
		var err error
		record, err = svc.Get(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": err.Error(),
				"hint":  backendHint,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"settings":     record,
		"whatsapp_url": contact.WhatsAppLink(record.Whatsapp, whatsappGreeting),
		"mailto_url":   contact.MailtoLink(record.Email, mailSubject, mailBody),
	})
}
