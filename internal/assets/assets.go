package assets

import (
	"embed"
	"io/fs"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Bundled Go fonts stand in for the plate typefaces.
var (
	// HeaderFontTTF renders the top line.
	HeaderFontTTF = gobold.TTF
	// FooterFontTTF renders the bottom line.
	FooterFontTTF = gomedium.TTF
	// NumberFontTTF renders the plate number until a custom font is loaded.
	NumberFontTTF = goregular.TTF
)

//go:embed web
var webFS embed.FS

// WebUI is an embedded filesystem rooted at internal/assets/web.
var WebUI fs.FS

func init() {
	// Embed paths include the leading directory; strip it for serving at '/'.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}
