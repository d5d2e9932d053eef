package hxclient

import (
	"fmt"
	"strings"

	"github.com/pthm/hxclient/lib/dom"
)

// Render merges response markup into the job's target.
//
// The markup is trimmed and parsed into a detached fragment. With a content
// selector, the first match inside the fragment is taken and its child nodes
// become the content; no match aborts with ErrSelectNoMatch. The target must
// still be part of the job's document, otherwise ErrTargetDetached.
//
// Nodes are moved out of the fragment, never copied, and every failure check
// happens before the first move, so a failed render leaves the document
// untouched.
func Render(markup string, job *Job) error {
	frag, err := dom.ParseFragment(strings.TrimSpace(markup))
	if err != nil {
		return err
	}

	content := frag.Root()
	if sel := job.Selector(); sel != "" {
		narrowed, err := frag.Query(sel)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSelectNoMatch, err)
		}
		if narrowed == nil {
			return fmt.Errorf("%w: %q", ErrSelectNoMatch, sel)
		}
		content = narrowed
	}

	target := job.Target()
	if target == nil {
		return ErrTargetNotFound
	}
	if !attached(job, target) {
		return ErrTargetDetached
	}

	switch job.Swap() {
	case SwapNone:
	case SwapOuter:
		target.ReplaceWith(content.FirstElementChild())
	case SwapAppend:
		target.AppendNodes(content)
	case SwapPrepend:
		target.PrependNodes(content)
	default:
		target.ReplaceChildren(content)
	}
	return nil
}

func attached(job *Job, el *dom.Element) bool {
	if job.Document() != nil {
		return job.Document().Contains(el)
	}
	return el.Attached()
}
