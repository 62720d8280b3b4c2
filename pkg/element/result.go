package element

type resultState uint8

const (
	stateHTML resultState = iota
	stateNoContent
	stateEmpty
)

// Result is the outcome of rendering inner or outer HTML.
//
//   - HTML(s): markup, possibly the empty string
//   - NoContent(): there is no inner HTML, the tag self-closes
//   - Empty(): nothing must be rendered at all
type Result struct {
	state resultState
	html  string
}

// HTML returns a result holding markup.
func HTML(s string) Result { return Result{state: stateHTML, html: s} }

// NoContent returns the self-closing result.
func NoContent() Result { return Result{state: stateNoContent} }

// Empty returns the render-nothing result.
func Empty() Result { return Result{state: stateEmpty} }

// IsEmpty reports whether nothing must be rendered.
func (r Result) IsEmpty() bool { return r.state == stateEmpty }

// IsNoContent reports whether the result is NoContent.
func (r Result) IsNoContent() bool { return r.state == stateNoContent }

// String returns the markup, or "" for NoContent and Empty.
func (r Result) String() string { return r.html }

// Append concatenates s. NoContent becomes HTML(s); Empty stays Empty.
func (r Result) Append(s string) Result {
	switch r.state {
	case stateEmpty:
		return r
	case stateNoContent:
		return HTML(s)
	}
	return HTML(r.html + s)
}
