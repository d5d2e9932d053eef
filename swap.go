package hxclient

import "strings"

// SwapMode defines how response content is merged into the target.
//
// Each mode corresponds to an hx-swap value. The default is SwapInner.
type SwapMode string

const (
	// SwapInner replaces the target's children with the response (innerHTML).
	// This is the default swap mode.
	SwapInner SwapMode = "innerHTML"

	// SwapOuter replaces the target element itself with the first element of
	// the response (outerHTML). A response without any element removes the
	// target.
	SwapOuter SwapMode = "outerHTML"

	// SwapAppend adds the response after the target's existing children.
	// Useful for adding items to lists.
	SwapAppend SwapMode = "append"

	// SwapPrepend adds the response before the target's existing children,
	// as one block in response order.
	SwapPrepend SwapMode = "prepend"

	// SwapNone performs no swap - the response is discarded.
	// Useful for requests that only have server-side effects.
	SwapNone SwapMode = "none"

	// SwapBeforeEnd is the htmx spelling of SwapAppend.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterBegin is the htmx spelling of SwapPrepend.
	SwapAfterBegin SwapMode = "afterbegin"
)

// ParseSwapMode reads an hx-swap value. Only the first word counts, so htmx
// modifiers such as "innerHTML swap:1s" are accepted and ignored. Empty or
// unknown values yield SwapInner.
func ParseSwapMode(s string) SwapMode {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return SwapInner
	}
	switch m := SwapMode(fields[0]); m {
	case SwapOuter, SwapAppend, SwapPrepend, SwapNone, SwapInner:
		return m
	case SwapBeforeEnd:
		return SwapAppend
	case SwapAfterBegin:
		return SwapPrepend
	}
	return SwapInner
}
