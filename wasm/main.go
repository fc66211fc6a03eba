//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("QuizkeyNewSession", js.FuncOf(newSession))
	js.Global().Set("QuizkeyProcess", js.FuncOf(process))
	js.Global().Set("QuizkeyReset", js.FuncOf(reset))
	js.Global().Set("QuizkeyCloseSession", js.FuncOf(closeSession))

	// Keep WASM running
	<-make(chan struct{})
}
