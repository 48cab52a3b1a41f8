package site

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

// The effects module and its loader are built into static/ before
// embedding; without them the page still renders, just without effects.
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/ && GOOS=js GOARCH=wasm go build -o static/fx.wasm ../../wasm/fx"

//go:embed static
var staticFS embed.FS

// Static returns the page's static assets, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
