package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FormField is one form control reduced to what form encoding needs.
//
// Type is the lower-cased input type ("text", "checkbox", ...), or the tag
// name for select and textarea, or the button type for buttons.
type FormField struct {
	Name     string
	Value    string
	Type     string
	Checked  bool
	Disabled bool
}

// IsFormControl reports whether the element is a submittable control.
func (e *Element) IsFormControl() bool {
	switch e.DataAtom {
	case atom.Input, atom.Select, atom.Textarea, atom.Button:
		return true
	}
	return false
}

// IsForm reports whether the element is a <form>.
func (e *Element) IsForm() bool {
	return e.DataAtom == atom.Form
}

// InputType returns the control type used by form encoding.
func (e *Element) InputType() string {
	switch e.DataAtom {
	case atom.Input:
		t, _ := e.GetAttr("type")
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			return "text"
		}
		return t
	case atom.Button:
		t, _ := e.GetAttr("type")
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			return "submit"
		}
		return t
	}
	return e.Tag()
}

// Name returns the name attribute, or "".
func (e *Element) Name() string {
	v, _ := e.GetAttr("name")
	return v
}

// Checked reports the checked state of a checkbox or radio.
func (e *Element) Checked() bool {
	return e.HasAttr("checked")
}

// Disabled reports whether a control is disabled, either directly or through
// a disabled ancestor fieldset.
func (e *Element) Disabled() bool {
	if !e.IsFormControl() {
		return false
	}
	if e.HasAttr("disabled") {
		return true
	}
	for p := e.ParentElement(); p != nil; p = p.ParentElement() {
		if p.DataAtom == atom.Fieldset && p.HasAttr("disabled") {
			return true
		}
	}
	return false
}

// Value returns the current value of a control: the value attribute for
// inputs and buttons ("on" for a checkbox or radio without one), the text of
// a textarea, the selected option of a single select, or an option's value.
// Other elements have no value and return "".
func (e *Element) Value() string {
	switch e.DataAtom {
	case atom.Textarea:
		return e.Text()
	case atom.Select:
		opts := e.selectedOptions()
		if len(opts) == 0 {
			return ""
		}
		return optionValue(opts[0])
	case atom.Option:
		return optionValue(e)
	case atom.Input, atom.Button:
	default:
		return ""
	}
	v, ok := e.GetAttr("value")
	if !ok {
		switch e.InputType() {
		case "checkbox", "radio":
			return "on"
		}
	}
	return v
}

// Fields returns the form's controls in document order.
//
// A control belongs to the form when its form attribute names the form's id,
// or, lacking a form attribute, when the form is its nearest enclosing form.
// Elements other than <form> return the fields of their own subtree.
func (e *Element) Fields() []FormField {
	scope := e.node()
	if e.IsForm() {
		scope = topOf(scope)
	}

	var fields []FormField
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			el := wrap(c)
			if el.IsFormControl() && (!e.IsForm() || el.owner() == e) {
				fields = append(fields, el.fieldsOf()...)
			}
			if c.DataAtom != atom.Template {
				walk(c)
			}
		}
	}
	walk(scope)
	return fields
}

func topOf(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// owner returns the form a control is associated with.
func (e *Element) owner() *Element {
	if id, ok := e.GetAttr("form"); ok {
		forms, _ := queryAll(topOf(e.node()), "form")
		for _, f := range forms {
			if f.ID() == id {
				return f
			}
		}
		return nil
	}
	for p := e.ParentElement(); p != nil; p = p.ParentElement() {
		if p.IsForm() {
			return p
		}
	}
	return nil
}

func (e *Element) fieldsOf() []FormField {
	base := FormField{
		Name:     e.Name(),
		Type:     e.InputType(),
		Checked:  e.Checked(),
		Disabled: e.Disabled(),
	}
	if e.DataAtom != atom.Select {
		base.Value = e.Value()
		return []FormField{base}
	}
	var out []FormField
	for _, opt := range e.selectedOptions() {
		f := base
		f.Value = optionValue(opt)
		out = append(out, f)
	}
	return out
}

// selectedOptions follows select semantics: explicitly selected options, or
// for a single select with none selected, the first enabled option.
func (e *Element) selectedOptions() []*Element {
	opts, _ := e.QueryAll("option")
	multiple := e.HasAttr("multiple")
	var selected []*Element
	for _, o := range opts {
		if o.HasAttr("selected") && !o.HasAttr("disabled") {
			selected = append(selected, o)
			if !multiple {
				return selected
			}
		}
	}
	if len(selected) > 0 || multiple {
		return selected
	}
	for _, o := range opts {
		if !o.HasAttr("disabled") {
			return []*Element{o}
		}
	}
	return nil
}

func optionValue(o *Element) string {
	if v, ok := o.GetAttr("value"); ok {
		return v
	}
	return strings.Join(strings.Fields(o.Text()), " ")
}
