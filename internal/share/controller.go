package share

import (
	"strings"

	"go.uber.org/zap"
)

// Clipboard is the copy capability supplied by the presentation layer.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// Locator reports the address the dialog falls back to when no base URL is given.
type Locator interface {
	CurrentLocation() string
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func() string

func (f LocatorFunc) CurrentLocation() string { return f() }

type Capabilities struct {
	Clipboard Clipboard
	Location  Locator
}

// State is a read-only snapshot of the dialog.
type State struct {
	BaseURL  string    `json:"baseUrl"`
	Options  OptionSet `json:"-"`
	Entries  []Entry   `json:"options"`
	ShareURL string    `json:"shareUrl"`
	Embed    string    `json:"embed"`
	Markdown string    `json:"markdown"`
	HTML     string    `json:"html"`
}

type ControllerOption func(*Controller)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOptions replaces the all-false starting option set.
func WithOptions(opts OptionSet) ControllerOption {
	return func(c *Controller) { c.options = opts }
}

// Controller owns the option set and the derived share URL of one dialog.
//
// It is not safe for concurrent use: all calls are expected from the
// presentation layer's event loop.
type Controller struct {
	baseURL  string
	options  OptionSet
	shareURL string
	composed bool

	clipboard Clipboard
	log       *zap.Logger

	subs   map[int]func(State)
	order  []int
	nextID int
}

// NewController builds a dialog for baseURL.
//
// When baseURL is blank the base falls back to caps.Location and the share URL
// stays equal to that address until the first toggle. A caller-supplied base
// is composed immediately.
func NewController(baseURL string, caps Capabilities, opts ...ControllerOption) *Controller {
	c := &Controller{
		options:   DefaultOptionSet(),
		clipboard: caps.Clipboard,
		log:       zap.NewNop(),
		subs:      map[int]func(State){},
	}
	for _, opt := range opts {
		opt(c)
	}

	if strings.TrimSpace(baseURL) != "" {
		c.baseURL = baseURL
		c.recompute()
	} else {
		if caps.Location != nil {
			c.baseURL = caps.Location.CurrentLocation()
		}
		c.shareURL = c.baseURL
	}
	c.log.Debug("share dialog opened",
		zap.String("baseUrl", c.baseURL),
		zap.Bool("composed", c.composed),
	)
	return c
}

func (c *Controller) recompute() {
	c.shareURL = BuildShareURL(c.baseURL, c.options)
	c.composed = true
}

// OnToggle flips name, recomputes the share URL and notifies subscribers.
func (c *Controller) OnToggle(name Option) {
	c.options = c.options.Toggle(name)
	c.recompute()
	c.log.Debug("option toggled",
		zap.String("option", string(name)),
		zap.Bool("value", c.options.Get(name)),
		zap.String("shareUrl", c.shareURL),
	)
	c.publish()
}

// Copy hands text to the clipboard. Failures are logged and otherwise ignored.
func (c *Controller) Copy(text string) {
	if c.clipboard == nil {
		c.log.Debug("copy skipped: no clipboard")
		return
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		c.log.Debug("clipboard write failed", zap.Error(err))
		return
	}
	c.log.Debug("copied to clipboard", zap.Int("bytes", len(text)))
}

// CopyTarget copies the current text for t. Unknown targets are ignored.
func (c *Controller) CopyTarget(t Target) {
	text, ok := c.Representations().Pick(t)
	if !ok {
		c.log.Debug("copy skipped: unknown target", zap.String("target", string(t)))
		return
	}
	c.Copy(text)
}

// Subscribe registers fn to receive the state after every toggle.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.order = append(c.order, id)
	return func() {
		delete(c.subs, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Controller) publish() {
	if len(c.order) == 0 {
		return
	}
	st := c.State()
	ids := append([]int(nil), c.order...)
	for _, id := range ids {
		if fn, ok := c.subs[id]; ok {
			fn(st)
		}
	}
}

func (c *Controller) BaseURL() string { return c.baseURL }

func (c *Controller) Options() OptionSet { return c.options }

// Composed reports whether the share URL carries the option query yet.
func (c *Controller) Composed() bool { return c.composed }

func (c *Controller) ShareURL() string { return c.shareURL }

func (c *Controller) EmbedSnippet() string { return BuildEmbedSnippet(c.shareURL) }

func (c *Controller) MarkdownBadge() string { return BuildMarkdownBadge(c.shareURL) }

func (c *Controller) HTMLBadge() string { return BuildHTMLBadge(c.shareURL) }

func (c *Controller) Representations() Representations { return Compose(c.shareURL) }

func (c *Controller) State() State {
	r := c.Representations()
	return State{
		BaseURL:  c.baseURL,
		Options:  c.options,
		Entries:  c.options.Entries(),
		ShareURL: r.URL,
		Embed:    r.Embed,
		Markdown: r.Markdown,
		HTML:     r.HTML,
	}
}
