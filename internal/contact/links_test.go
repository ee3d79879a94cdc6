package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/905535886936?text=Merhaba%2C%20bilgi%20almak%20istiyorum",
		WhatsAppLink("+90 553 588 69 36", "Merhaba, bilgi almak istiyorum"),
	)
}

func TestWhatsAppLinkWithoutText(t *testing.T) {
	assert.Equal(t, "https://wa.me/905535886936", WhatsAppLink("+90 (553) 588-69-36", ""))
}

func TestMailtoLink(t *testing.T) {
	assert.Equal(t,
		"mailto:info@omytic.com?subject=%C4%B0leti%C5%9Fim%20Talebi&body=Merhaba%2C%20",
		MailtoLink("info@omytic.com", "İletişim Talebi", "Merhaba, "),
	)
}

func TestMailtoLinkBare(t *testing.T) {
	assert.Equal(t, "mailto:info@omytic.com", MailtoLink("info@omytic.com", "", ""))
}
