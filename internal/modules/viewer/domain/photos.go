package domain

type PhotoStatus int

const (
	PhotoPending PhotoStatus = iota
	PhotoLoaded
	PhotoFailed
)

func (s PhotoStatus) String() string {
	switch s {
	case PhotoLoaded:
		return "loaded"
	case PhotoFailed:
		return "failed"
	default:
		return "pending"
	}
}

// PhotoSection is the collapsible reference-photo state of one topic. Each
// photo tracks its own load outcome; a failed photo is hidden without
// touching its siblings or the expanded flag.
type PhotoSection struct {
	expanded bool
	status   []PhotoStatus
}

func NewPhotoSection(count int) PhotoSection {
	if count < 0 {
		count = 0
	}
	return PhotoSection{status: make([]PhotoStatus, count)}
}

func (p PhotoSection) Expanded() bool { return p.expanded }
func (p PhotoSection) Len() int       { return len(p.status) }

// Toggle flips the expanded flag and reports the new value.
func (p *PhotoSection) Toggle() bool {
	p.expanded = !p.expanded
	return p.expanded
}

func (p PhotoSection) Status(i int) PhotoStatus {
	if i < 0 || i >= len(p.status) {
		return PhotoFailed
	}
	return p.status[i]
}

func (p *PhotoSection) MarkLoaded(i int) { p.mark(i, PhotoLoaded) }
func (p *PhotoSection) MarkFailed(i int) { p.mark(i, PhotoFailed) }

// Visible lists the indices that still render, in order.
func (p PhotoSection) Visible() []int {
	out := make([]int, 0, len(p.status))
	for i, s := range p.status {
		if s != PhotoFailed {
			out = append(out, i)
		}
	}
	return out
}

// Pending lists the indices whose load outcome is unknown.
func (p PhotoSection) Pending() []int {
	var out []int
	for i, s := range p.status {
		if s == PhotoPending {
			out = append(out, i)
		}
	}
	return out
}

func (p *PhotoSection) mark(i int, s PhotoStatus) {
	if i < 0 || i >= len(p.status) || p.status[i] == s {
		return
	}
	// copy so that earlier Bubble Tea model values keep their own slice
	next := append([]PhotoStatus(nil), p.status...)
	next[i] = s
	p.status = next
}
