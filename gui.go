package gui

import "fmt"

// Renderer draws a finished frame and owns GPU copies of font atlases.
type Renderer interface {
	Render(dl *DrawList) error
	// UploadFont creates the atlas texture of f, sets f.TextureID and
	// registers a release hook with f.SetRelease.
	UploadFont(f *FontAsset) error
	Resize(width, height int)
}

// GUI binds a Context to a Renderer and runs frames.
type GUI struct {
	renderer Renderer
	ctx      *Context
	dl       *DrawList

	config    Config
	loader    FontLoader
	clipboard ClipboardProvider
	skin      *Skin
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithConfig sets the limits of the context.
func WithConfig(cfg Config) GUIOption {
	return func(g *GUI) { g.config = cfg }
}

// WithFontLoader sets the loader used for fonts named by style files.
func WithFontLoader(l FontLoader) GUIOption {
	return func(g *GUI) { g.loader = l }
}

// WithClipboard sets the clipboard used by text controls.
func WithClipboard(cp ClipboardProvider) GUIOption {
	return func(g *GUI) { g.clipboard = cp }
}

// WithSkin loads a skin over the default one at start.
func WithSkin(skin Skin) GUIOption {
	return func(g *GUI) { g.skin = &skin }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		config:   DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ctx = NewContext(g.config)
	g.ctx.SetFontLoader(g.loader)
	g.ctx.SetClipboard(g.clipboard)
	if g.skin != nil {
		g.ctx.LoadStyle(*g.skin)
	}
	return g
}

// Begin starts a new frame and returns the context controls are called on.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	if g.dl == nil {
		g.dl = AcquireDrawList()
	}
	g.ctx.Sink = g.dl
	g.ctx.BeginFrame(input, displaySize, deltaTime)
	if err := g.uploadFont(); err != nil {
		guiLogger.Warn("font upload failed", "err", err)
	}
	g.dl.PushClipRect(Rect{W: displaySize.X, H: displaySize.Y})
	return g.ctx
}

// uploadFont gives the current font a texture the first time it is drawn.
func (g *GUI) uploadFont() error {
	f := g.ctx.GetFont()
	if f == nil || f.TextureID != 0 || f.Atlas == nil || g.renderer == nil {
		return nil
	}
	if err := g.renderer.UploadFont(f); err != nil {
		return fmt.Errorf("upload font: %w", err)
	}
	return nil
}

// End finishes the frame, renders it and recycles the draw list.
func (g *GUI) End() error {
	if g.dl == nil {
		return nil
	}
	dl := g.dl
	g.dl = nil
	g.ctx.Sink = nil
	defer ReleaseDrawList(dl)

	dl.PopClipRect()
	dl.Finalize()
	if g.renderer == nil {
		return nil
	}
	return g.renderer.Render(dl)
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
