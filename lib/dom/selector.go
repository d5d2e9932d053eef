package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// compile parses a CSS selector group.
func compile(sel string) (cascadia.Selector, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, sel, err)
	}
	return s, nil
}

// queryFirst returns the first descendant of root (root excluded) matching sel.
func queryFirst(root *html.Node, sel string) (*Element, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	return wrap(cascadia.Query(root, s)), nil
}

// queryAll returns every descendant of root (root excluded) matching sel, in
// document order.
func queryAll(root *html.Node, sel string) ([]*Element, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	nodes := cascadia.QueryAll(root, s)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, wrap(n))
	}
	return out, nil
}
