//go:build js && wasm

// Command fx runs the portfolio page's effects in the browser.
package main

import "github.com/Zachkp/folio/internal/dom"

func main() {
	dom.Mount()
	select {}
}
