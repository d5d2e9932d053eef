package hxclient

import (
	"net/url"
	"strings"

	"github.com/pthm/hxclient/lib/dom"
)

// ContentTypeForm is sent with every non-GET request.
const ContentTypeForm = "application/x-www-form-urlencoded"

// EncodeFields serializes form fields the way a browser submits a form.
//
// Fields without a name, disabled fields, buttons, file inputs and unchecked
// checkboxes or radios are skipped. The rest become name=value pairs in field
// order, form-urlencoded and joined with "&".
func EncodeFields(fields []dom.FormField) string {
	var sb strings.Builder
	for _, f := range fields {
		if !submittable(f) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		writePair(&sb, f.Name, f.Value)
	}
	return sb.String()
}

func submittable(f dom.FormField) bool {
	if f.Name == "" || f.Disabled {
		return false
	}
	switch f.Type {
	case "submit", "button", "reset", "image", "file":
		return false
	case "checkbox", "radio":
		return f.Checked
	}
	return true
}

func writePair(sb *strings.Builder, name, value string) {
	sb.WriteString(url.QueryEscape(name))
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(value))
}

// componentEscaper turns QueryEscape output into URI component escaping:
// space is %20 and !'()* stay literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// BuildBody produces the request payload for a source element.
//
// GET requests never carry a body. A form sends its encoded fields. Any other
// element with a name sends a single name=value pair with URI component
// escaping (space as %20), except an unchecked checkbox or radio, which sends
// nothing. The boolean is false when there is
// no payload; the request then goes out with an empty body.
func BuildBody(el *dom.Element, method string) (string, bool) {
	if method == "GET" || el == nil {
		return "", false
	}
	if el.IsForm() {
		return EncodeFields(el.Fields()), true
	}
	name := el.Name()
	if name == "" {
		return "", false
	}
	switch el.InputType() {
	case "checkbox", "radio":
		if !el.Checked() {
			return "", false
		}
	}
	return escapeComponent(name) + "=" + escapeComponent(el.Value()), true
}
