package catalog

import "github.com/omytic/storefront/models"

// Placeholders is the demo catalog served when no backend credentials
// are configured, so a fresh deployment still renders a full page.
func Placeholders() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Airfile Kumaş",
			Description: strptr("Hava geçirgenliği yüksek, teknik dokuma"),
			ImageURL:    strptr("/images/airfile.jpg"),
			Category:    models.CategoryFabric,
			Features:    []string{"Hava geçirgenliği yüksek", "Teknik dokuma", "Nefes alabilir yapı", "Dayanıklı"},
		},
		{
			ID:          "2",
			Name:        "Alcantara Kumaş",
			Description: strptr("Yumuşak dokulu, lüks ve dayanıklı döşemelik"),
			ImageURL:    strptr("/images/alcantara.jpg"),
			Category:    models.CategoryFabric,
			Features:    []string{"Yumuşak dokulu", "Lüks görünüm", "Dayanıklı", "Döşemelik için ideal"},
		},
		{
			ID:          "3",
			Name:        "Welsoft Kumaş",
			Description: strptr("Sıcak tutan, yumuşak ve anti-bakteriyel doku"),
			ImageURL:    strptr("/images/welsoft.png"),
			Category:    models.CategoryFabric,
			Features:    []string{"Sıcak tutan", "Yumuşak doku", "Anti-bakteriyel", "Rahat kullanım"},
		},
		{
			ID:          "4",
			Name:        "FormStep M900 Memory Foam İç Ayakkabı Tabanlık",
			Description: strptr("Ortopedik, topuk dikeni için rahat, koşu ve konfor için darbe emici memory foam tabanlık. Ayak sağlığınız için ideal çözüm."),
			ImageURL:    strptr("/images/tabanlik.jpeg"),
			Category:    models.CategoryOther,
			AmazonLink:  strptr("https://amzn.eu/d/6zPNjFa"),
			Features:    []string{"Memory Foam teknolojisi", "Ortopedik destek", "Topuk dikeni için ideal", "Darbe emici yapı"},
		},
		{
			ID:          "5",
			Name:        "Banyo Paspası",
			Description: strptr("Kaliteli banyo paspası"),
			ImageURL:    strptr("/images/paspas.jpeg"),
			Category:    models.CategoryOther,
			Features:    []string{"Su emici özellik", "Kaymaz taban", "Kolay temizlik"},
		},
	}
}

func strptr(s string) *string { return &s }
