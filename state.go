package hxclient

import "github.com/pthm/hxclient/lib/dom"

// hold is the pre-dispatch state of an element disabled by one or more
// in-flight requests. The state is captured when the first request disables
// the element and put back when the last one settles.
type hold struct {
	count       int
	hadMarker   bool
	hadDisabled bool
	hadClass    bool
}

// marks is what one dispatch changed and must undo.
type marks struct {
	engine    *Engine
	disabled  []*dom.Element
	indicator *dom.Element
}

// mark disables the source and the job's disable-targets and reveals the
// indicator. Callers hold e.mu.
func (e *Engine) mark(job *Job) *marks {
	m := &marks{engine: e, indicator: job.Indicator()}

	seen := make(map[*dom.Element]bool)
	for _, el := range append([]*dom.Element{job.Source()}, job.DisableTargets()...) {
		if el == nil || seen[el] {
			continue
		}
		seen[el] = true
		e.disable(el)
		m.disabled = append(m.disabled, el)
	}

	if ind := m.indicator; ind != nil {
		if e.shown[ind] == 0 {
			ind.RemoveStyle("display")
		}
		e.shown[ind]++
	}
	return m
}

func (e *Engine) disable(el *dom.Element) {
	h, ok := e.held[el]
	if !ok {
		h = &hold{
			hadMarker:   el.HasAttr(AttrDisabled),
			hadDisabled: el.HasAttr("disabled"),
			hadClass:    el.HasClass(ClassRequest),
		}
		e.held[el] = h
		el.SetAttr(AttrDisabled, "")
		if el.IsFormControl() {
			el.SetAttr("disabled", "")
		}
		el.AddClass(ClassRequest)
	}
	h.count++
}

func (e *Engine) enable(el *dom.Element) {
	h, ok := e.held[el]
	if !ok {
		return
	}
	h.count--
	if h.count > 0 {
		return
	}
	delete(e.held, el)
	if !h.hadMarker {
		el.RemoveAttr(AttrDisabled)
	}
	if !h.hadDisabled {
		el.RemoveAttr("disabled")
	}
	if !h.hadClass {
		el.RemoveClass(ClassRequest)
	}
}

// restore is the teardown step. It hides the indicator and re-enables every
// element this dispatch disabled. Callers hold e.mu.
func (m *marks) restore() {
	e := m.engine
	if ind := m.indicator; ind != nil {
		e.shown[ind]--
		if e.shown[ind] <= 0 {
			delete(e.shown, ind)
			ind.SetStyle("display", "none")
		}
	}
	for _, el := range m.disabled {
		e.enable(el)
	}
}
