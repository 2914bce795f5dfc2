// Package share describes the static link offered for sharing the plate page.
package share

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultURL         = "http://localhost:8080/"
	DefaultTitle       = "Custom Arizona Plate Maker"
	DefaultDescription = "Design your own Arizona license plate and download it as a PNG."

	defaultQRCodeSizePx = 256
)

// Link is the URL/title/description triple handed to share targets.
// It does not depend on what is currently rendered.
type Link struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DefaultLink returns the link with any empty field defaulted.
func DefaultLink(rawURL string) Link {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	return Link{URL: rawURL, Title: DefaultTitle, Description: DefaultDescription}
}

// Targets returns prebuilt share URLs for common networks.
func (l Link) Targets() map[string]string {
	u := url.QueryEscape(l.URL)
	text := url.QueryEscape(l.Title)
	return map[string]string{
		"facebook": "https://www.facebook.com/sharer/sharer.php?u=" + u,
		"x":        "https://twitter.com/intent/tweet?url=" + u + "&text=" + text,
		"linkedin": "https://www.linkedin.com/sharing/share-offsite/?url=" + u,
		"email":    "mailto:?subject=" + url.PathEscape(l.Title) + "&body=" + url.PathEscape(l.Description+" "+l.URL),
	}
}

// QRCodePNG returns a PNG QR code for the link URL.
// sizePx <= 0 selects the default size.
func (l Link) QRCodePNG(sizePx int) ([]byte, error) {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return qrcode.Encode(l.URL, qrcode.Medium, sizePx)
}
