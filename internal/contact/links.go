// Package contact builds the outbound deep links the storefront emits
// for its contact actions. Links are only generated, never parsed.
package contact

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link with an optional prefilled
// message. Everything but digits is stripped from the phone number.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	link := "https://wa.me/" + digits.String()
	if text != "" {
		link += "?text=" + escape(text)
	}
	return link
}

// MailtoLink builds a mailto: link with prefilled subject and body.
func MailtoLink(email, subject, body string) string {
	link := "mailto:" + email
	params := make([]string, 0, 2)
	if subject != "" {
		params = append(params, "subject="+escape(subject))
	}
	if body != "" {
		params = append(params, "body="+escape(body))
	}
	if len(params) > 0 {
		link += "?" + strings.Join(params, "&")
	}
	return link
}

// escape percent-encodes like encodeURIComponent: spaces become %20,
// not '+', since mail clients do not decode '+' in mailto URLs.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
