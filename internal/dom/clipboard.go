//go:build js && wasm

package dom

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var errNoClipboard = errors.New("clipboard API unavailable")

// AsyncClipboard writes through navigator.clipboard. WriteText blocks
// until the browser settles the promise, so it must not run on the event
// callback itself.
type AsyncClipboard struct{}

func (AsyncClipboard) WriteText(ctx context.Context, text string) error {
	cb := js.Global().Get("navigator").Get("clipboard")
	if !cb.Truthy() || cb.Get("writeText").Type() != js.TypeFunction {
		return errNoClipboard
	}
	return await(ctx, cb.Call("writeText", text))
}

// ExecCommandClipboard copies through a hidden textarea and the legacy
// execCommand("copy").
type ExecCommandClipboard struct{}

func (ExecCommandClipboard) WriteText(_ context.Context, text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("execCommand copy: %v", r)
		}
	}()
	doc := document()
	body := doc.Get("body")
	ta := doc.Call("createElement", "textarea")
	ta.Set("value", text)
	ta.Call("setAttribute", "readonly", "")
	style := ta.Get("style")
	style.Set("position", "fixed")
	style.Set("opacity", "0")
	body.Call("appendChild", ta)
	ta.Call("select")
	ok := doc.Call("execCommand", "copy").Bool()
	body.Call("removeChild", ta)
	if !ok {
		return errors.New("execCommand copy refused")
	}
	return nil
}

// await blocks until promise settles or ctx is done.
func await(ctx context.Context, promise js.Value) error {
	done := make(chan error, 1)
	resolve := js.FuncOf(func(this js.Value, args []js.Value) any {
		done <- nil
		return nil
	})
	reject := js.FuncOf(func(this js.Value, args []js.Value) any {
		reason := "rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done <- errors.New(reason)
		return nil
	})
	defer resolve.Release()
	defer reject.Release()

	promise.Call("then", resolve, reject)
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
