// internal/intake/contact.go
package intake

import "net/url"

// ContactLink builds the mailto link offered on the Kit screen.
func ContactLink(email, subject string) string {
	link := "mailto:" + email
	if subject != "" {
		link += "?subject=" + url.PathEscape(subject)
	}
	return link
}
