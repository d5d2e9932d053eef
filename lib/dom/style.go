package dom

import "strings"

// Style returns the value of one inline style property.
func (e *Element) Style(prop string) (string, bool) {
	for _, d := range parseStyle(e) {
		if d[0] == prop {
			return d[1], true
		}
	}
	return "", false
}

// SetStyle sets one inline style property, keeping the others in place.
func (e *Element) SetStyle(prop, value string) {
	decls := parseStyle(e)
	for i, d := range decls {
		if d[0] == prop {
			decls[i][1] = value
			writeStyle(e, decls)
			return
		}
	}
	writeStyle(e, append(decls, [2]string{prop, value}))
}

// RemoveStyle drops one inline style property. The style attribute is removed
// when no declarations remain.
func (e *Element) RemoveStyle(prop string) {
	decls := parseStyle(e)
	kept := decls[:0]
	for _, d := range decls {
		if d[0] != prop {
			kept = append(kept, d)
		}
	}
	writeStyle(e, kept)
}

func parseStyle(e *Element) [][2]string {
	v, _ := e.GetAttr("style")
	var decls [][2]string
	for _, part := range strings.Split(v, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, strings.TrimSpace(val)})
	}
	return decls
}

func writeStyle(e *Element, decls [][2]string) {
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ": " + d[1]
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}
