package view

import (
	"io"

	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/state"
)

// Content supplies the current content snapshot.
type Content interface {
	Snapshot() *models.Portfolio
}

// View is a mounted page: a state holder subscribed to an event source.
// Like the holder it wraps, a View is confined to one goroutine.
type View struct {
	holder   *state.Holder
	release  func()
	renderer *Renderer
	content  Content
	opts     Options
}

// Mount creates a View in the default state and subscribes it to src.
// Close must be called to drop the subscriptions.
func Mount(src state.Source, r *Renderer, content Content, opts Options) (*View, error) {
	h := state.NewHolder()
	release, err := state.Mount(h, src)
	if err != nil {
		return nil, err
	}
	return &View{
		holder:   h,
		release:  release,
		renderer: r,
		content:  content,
		opts:     opts,
	}, nil
}

// State exposes the holder for direct transitions such as a theme toggle.
func (v *View) State() *state.Holder {
	return v.holder
}

// Model builds the view model for the current state and content.
func (v *View) Model() Model {
	return NewModel(v.holder.Snapshot(), v.content.Snapshot(), v.opts)
}

// Render writes the page for the current state.
func (v *View) Render(w io.Writer) error {
	return v.renderer.Render(w, v.Model())
}

// Markdown renders the current state as Markdown.
func (v *View) Markdown() (string, error) {
	return v.renderer.Markdown(v.Model())
}

// Close releases the event subscriptions. It is safe to call more than once.
func (v *View) Close() {
	v.release()
}
