package element

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
	"github.com/brickrouge-dev/brickrouge/pkg/i18n"
)

// ExceptionRenderer renders an error as markup. It is the last resort of
// Element.String.
type ExceptionRenderer interface {
	Render(err error) string
}

// Outcome is how a render ended.
type Outcome int

const (
	Rendered Outcome = iota
	Skipped
	Failed
)

// String returns the outcome label used by observers.
func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "rendered"
	case Skipped:
		return "empty"
	case Failed:
		return "error"
	}
	return "unknown"
}

// Observer is notified of every element render.
// BeginRender returns the context used for the render and a function called
// once with its outcome.
type Observer interface {
	BeginRender(ctx context.Context, kind string) (context.Context, func(Outcome, error))
}

type nopObserver struct{}

func (nopObserver) BeginRender(ctx context.Context, _ string) (context.Context, func(Outcome, error)) {
	return ctx, func(Outcome, error) {}
}

// Session is the state shared by every element rendered for one response:
// the id counter, the handled-assets memo and the Document, along with the
// collaborators rendering relies on.
//
// A Session is safe for concurrent use, although the elements themselves
// are not.
type Session struct {
	mu       sync.Mutex
	nextID   int
	handled  map[string]bool
	document *Document

	translator i18n.Translator
	exceptions ExceptionRenderer
	observer   Observer
	logger     *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDocument sets the document assets are collected into.
func WithDocument(d *Document) Option {
	return func(s *Session) {
		if d != nil {
			s.document = d
		}
	}
}

// WithTranslator sets the translator used for labels, titles and options.
func WithTranslator(t i18n.Translator) Option {
	return func(s *Session) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithExceptionRenderer sets the renderer used by Element.String on error.
func WithExceptionRenderer(r ExceptionRenderer) Option {
	return func(s *Session) {
		if r != nil {
			s.exceptions = r
		}
	}
}

// WithObserver sets the render observer.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session. Unset collaborators default to a fresh
// Document, a passthrough translator, the HTML exception renderer, no
// observer and slog.Default().
func NewSession(opts ...Option) *Session {
	s := &Session{
		handled:    make(map[string]bool),
		document:   NewDocument(nil),
		translator: i18n.Passthrough{},
		exceptions: errors.HTMLRenderer{},
		observer:   nopObserver{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the document assets are collected into.
func (s *Session) Document() *Document { return s.document }

// Translator returns the session translator.
func (s *Session) Translator() i18n.Translator { return s.translator }

// Exceptions returns the exception renderer.
func (s *Session) Exceptions() ExceptionRenderer { return s.exceptions }

// Observer returns the render observer.
func (s *Session) Observer() Observer { return s.observer }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// NextID returns the next automatic id number, starting at 1.
func (s *Session) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	return s.nextID
}

// HandleAssets runs the Assets hook of h unless a hook of the same kind
// already ran in this session. It reports whether the hook ran.
func (s *Session) HandleAssets(h Hooks) bool {
	kind := h.Kind()

	s.mu.Lock()
	if s.handled[kind] {
		s.mu.Unlock()
		return false
	}
	s.handled[kind] = true
	s.mu.Unlock()

	h.Assets(s.document)
	return true
}

// Reset zeroes the id counter, forgets handled assets and resets the
// document.
func (s *Session) Reset() {
	s.mu.Lock()
	s.nextID = 0
	s.handled = make(map[string]bool)
	s.mu.Unlock()

	s.document.Reset()
}

// Translate translates pattern with the session translator.
func (s *Session) Translate(pattern string, args i18n.Args, opts i18n.Options) string {
	return s.translator.Translate(pattern, args, opts)
}

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session carried by ctx, or the default session.
func SessionFrom(ctx context.Context) *Session {
	if ctx != nil {
		if s, ok := ctx.Value(sessionKey{}).(*Session); ok && s != nil {
			return s
		}
	}
	return DefaultSession()
}

var defaultSession atomic.Pointer[Session]

func init() {
	defaultSession.Store(NewSession())
}

// DefaultSession returns the session used when a context carries none.
func DefaultSession() *Session {
	return defaultSession.Load()
}

// SetDefaultSession replaces the default session.
func SetDefaultSession(s *Session) {
	if s != nil {
		defaultSession.Store(s)
	}
}

// ResetDefaultSession resets the state of the default session.
func ResetDefaultSession() {
	DefaultSession().Reset()
}

// Translate translates pattern with the translator of the session in ctx.
func Translate(ctx context.Context, pattern string, args i18n.Args, opts i18n.Options) string {
	return SessionFrom(ctx).Translate(pattern, args, opts)
}
