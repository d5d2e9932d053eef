package hxclient

import (
	"strings"

	"github.com/pthm/hxclient/lib/dom"
)

// DescriptorKind is the addressing mode of a descriptor.
type DescriptorKind int

const (
	// DescriptorSelf addresses the origin element ("" or "this").
	DescriptorSelf DescriptorKind = iota
	// DescriptorClosest addresses the nearest matching ancestor, or matches
	// inside it when Sub is set ("closest <sel> [<sub>]").
	DescriptorClosest
	// DescriptorFind addresses matches inside the origin ("find <sel>").
	DescriptorFind
	// DescriptorGlobal addresses matches anywhere in the document.
	DescriptorGlobal
)

// Descriptor is a parsed "where to find an element" string.
type Descriptor struct {
	Kind     DescriptorKind
	Selector string
	Sub      string
}

// ParseDescriptor parses a target, indicator or disable-target descriptor.
//
//	""                        -> self
//	"this"                    -> self
//	"closest tr"              -> nearest <tr> ancestor
//	"closest form .errors"    -> ".errors" inside the nearest <form>
//	"find .count"             -> ".count" inside the origin
//	"#out"                    -> "#out" anywhere in the document
//
// The ancestor selector of a closest descriptor is the first whitespace
// separated token; everything after it is the sub-selector.
func ParseDescriptor(s string) Descriptor {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "this":
		return Descriptor{Kind: DescriptorSelf}
	case strings.HasPrefix(s, "closest "):
		rest := strings.TrimSpace(strings.TrimPrefix(s, "closest "))
		sel, sub, _ := strings.Cut(rest, " ")
		return Descriptor{Kind: DescriptorClosest, Selector: sel, Sub: strings.TrimSpace(sub)}
	case strings.HasPrefix(s, "find "):
		return Descriptor{Kind: DescriptorFind, Selector: strings.TrimSpace(strings.TrimPrefix(s, "find "))}
	}
	return Descriptor{Kind: DescriptorGlobal, Selector: s}
}

// Resolve turns a descriptor into elements relative to origin.
//
// Queries run against the current tree on every call. A closest descriptor
// with no matching ancestor yields an empty result, not an error; an
// unparsable selector yields an error wrapping dom.ErrInvalidSelector.
func Resolve(doc *dom.Document, origin *dom.Element, descriptor string) ([]*dom.Element, error) {
	d := ParseDescriptor(descriptor)
	switch d.Kind {
	case DescriptorSelf:
		if origin == nil {
			return nil, nil
		}
		return []*dom.Element{origin}, nil
	case DescriptorClosest:
		if origin == nil {
			return nil, nil
		}
		base, err := origin.Closest(d.Selector)
		if err != nil || base == nil {
			return nil, err
		}
		if d.Sub == "" {
			return []*dom.Element{base}, nil
		}
		return base.QueryAll(d.Sub)
	case DescriptorFind:
		if origin == nil {
			return nil, nil
		}
		return origin.QueryAll(d.Selector)
	}
	return doc.QueryAll(d.Selector)
}

// ResolveFirst is Resolve narrowed to the first match, or nil.
func ResolveFirst(doc *dom.Document, origin *dom.Element, descriptor string) (*dom.Element, error) {
	found, err := Resolve(doc, origin, descriptor)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}
