// Command gen renders every control with sample data under each built-in
// skin, captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//	go run ./doc/gen/ -skin dark -font fonts/Inter.ttf
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
	"github.com/go-theft-auto/rgui/fontatlas"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	skinName := flag.String("skin", "", "capture only this skin (default: all built-in skins)")
	fontPath := flag.String("font", "", "TTF/OTF font to render with instead of the built-in one")
	fontSize := flag.Int("size", 16, "font size for -font")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*skinName, *fontPath, *fontSize, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single control screenshot to capture.
type screenshot struct {
	name   string                              // filename without extension
	width  int                                 // viewport width
	height int                                 // viewport height
	draw   func(ctx *gui.Context)              // control drawing function
	input  func(frame int, in *gui.InputState) // scripted input (optional)
	frames int                                 // frames to render (0 = default 2)
}

func run(skinName, fontPath string, fontSize int, outDir string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	var font *gui.FontAsset
	if fontPath != "" {
		font, err = fontatlas.Load(fontPath, fontSize, gui.LatinCodepoints())
		if err != nil {
			return err
		}
	}

	skins := gui.SkinNames()
	if skinName != "" {
		skins = []string{skinName}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	count := 0
	for _, name := range skins {
		shots := buildScreenshots()
		skin, ok := gui.SkinByName(name)
		if !ok {
			return fmt.Errorf("unknown skin %q", name)
		}
		if font != nil {
			skin.Font = font
		}
		for _, s := range shots {
			file := s.name + "_" + name
			if err := capture(renderer, skin, s, filepath.Join(outDir, file+".jpg")); err != nil {
				return fmt.Errorf("capture %s: %w", file, err)
			}
			fmt.Printf("  %s.jpg (%dx%d)\n", file, s.width, s.height)
			count++
		}
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", count, outDir)
	return nil
}

func capture(renderer *opengl.Renderer, skin gui.Skin, s screenshot, path string) error {
	// Only update the renderer projection; do NOT call window.SetSize because
	// GLFW processes resizes asynchronously, causing framebuffer/scissor mismatches.
	// The hidden window stays at 800×600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gui.New(renderer, gui.WithSkin(skin))
	bg := ui.Context().GetStyle(gui.CtrlDefault, gui.BackgroundColor)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	in := gui.NewInputState()
	in.SetMousePos(-1, -1)
	for i := 0; i < frames; i++ {
		in.Reset()
		if s.input != nil {
			s.input(i, in)
		}

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(float32(bg>>24)/255, float32(bg>>16&0xff)/255, float32(bg>>8&0xff)/255, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(in, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// clickAt presses the left button over p on frame 0 and releases it on
// frame 1, leaving the pointer where it is.
func clickAt(p gui.Vec2) func(int, *gui.InputState) {
	return func(frame int, in *gui.InputState) {
		in.SetMousePos(p.X, p.Y)
		in.SetMouseButton(gui.MouseButtonLeft, frame == 0)
	}
}

// hoverAt keeps the pointer over p.
func hoverAt(p gui.Vec2) func(int, *gui.InputState) {
	return func(_ int, in *gui.InputState) {
		in.SetMousePos(p.X, p.Y)
	}
}

func textBuffer(text string, capacity int) []byte {
	buf := make([]byte, capacity)
	copy(buf, text)
	return buf
}

// buildScreenshots returns the list of all control screenshots to generate.
func buildScreenshots() []screenshot {
	var (
		checked   = true
		unchecked = false
		toggleIdx = 1
		comboIdx  = 2
		intValue  = 42
		spinValue = 7
		scale     = float32(3.14)
		slider    = float32(0.65)
		bar       = float32(40)
		progress  = float32(0.3)
		scroll    = 20
		color     = gui.RGBA(0xd9, 0x5b, 0x5b, 0xff)
		alpha     = float32(0.6)
		hue       = float32(200)
	)

	return []screenshot{
		{
			name: "label", width: 260, height: 70,
			draw: func(ctx *gui.Context) {
				ctx.Label(gui.Rect{X: 10, Y: 10, W: 240, H: 20}, "Plain label")
				ctx.Label(gui.Rect{X: 10, Y: 40, W: 240, H: 20}, gui.IconText(gui.IconOkTick, "Label with icon"))
			},
		},
		{
			name: "buttons", width: 320, height: 50,
			draw: func(ctx *gui.Context) {
				ctx.Button(gui.Rect{X: 10, Y: 10, W: 90, H: 28}, "Button")
				ctx.Disable()
				ctx.Button(gui.Rect{X: 110, Y: 10, W: 90, H: 28}, "Disabled")
				ctx.Enable()
				ctx.LabelButton(gui.Rect{X: 210, Y: 10, W: 100, H: 28}, "Label button")
			},
		},
		{
			name: "button_hover", width: 120, height: 50,
			input: hoverAt(gui.Vec2{X: 50, Y: 24}),
			draw: func(ctx *gui.Context) {
				ctx.Button(gui.Rect{X: 10, Y: 10, W: 100, H: 28}, "Hovered")
			},
		},
		{
			name: "toggles", width: 340, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.Toggle(gui.Rect{X: 10, Y: 10, W: 100, H: 28}, "Toggle", &checked)
				ctx.ToggleGroup(gui.Rect{X: 10, Y: 50, W: 100, H: 28}, "One;Two;Three", &toggleIdx)
			},
		},
		{
			name: "checkbox", width: 220, height: 70,
			draw: func(ctx *gui.Context) {
				ctx.CheckBox(gui.Rect{X: 10, Y: 12, W: 16, H: 16}, "Checked", &checked)
				ctx.CheckBox(gui.Rect{X: 10, Y: 42, W: 16, H: 16}, "Unchecked", &unchecked)
			},
		},
		{
			name: "combobox", width: 240, height: 50,
			draw: func(ctx *gui.Context) {
				ctx.ComboBox(gui.Rect{X: 10, Y: 10, W: 220, H: 28}, "Red;Green;Blue;Alpha", &comboIdx)
			},
		},
		{
			name: "textbox", width: 300, height: 50,
			draw: func(ctx *gui.Context) {
				ctx.TextBox(gui.Rect{X: 10, Y: 10, W: 280, H: 28}, textBuffer("Hello, world!", 64), false)
			},
		},
		{
			name: "textbox_editing", width: 300, height: 50,
			input:  clickAt(gui.Vec2{X: 150, Y: 24}),
			frames: 3,
			draw: func() func(ctx *gui.Context) {
				buf := textBuffer("Editing #22# text", 64)
				editing := false
				return func(ctx *gui.Context) {
					if ctx.TextBox(gui.Rect{X: 10, Y: 10, W: 280, H: 28}, buf, editing) {
						editing = !editing
					}
				}
			}(),
		},
		{
			name: "textbox_ellipsis", width: 200, height: 50,
			draw: func(ctx *gui.Context) {
				ctx.TextBox(gui.Rect{X: 10, Y: 10, W: 180, H: 28},
					textBuffer("This text is much too long to fit in the box", 128), false)
			},
		},
		{
			name: "valuebox", width: 260, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.ValueBox(gui.Rect{X: 70, Y: 10, W: 100, H: 28}, "Count", &intValue, 0, 100, false)
				ctx.ValueBoxFloat(gui.Rect{X: 70, Y: 50, W: 100, H: 28}, "Scale", &scale, false)
			},
		},
		{
			name: "spinner", width: 240, height: 50,
			draw: func(ctx *gui.Context) {
				ctx.Spinner(gui.Rect{X: 70, Y: 10, W: 120, H: 28}, "Speed", &spinValue, 0, 10, false)
			},
		},
		{
			name: "sliders", width: 320, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.Slider(gui.Rect{X: 70, Y: 10, W: 180, H: 16}, "Slider", fmt.Sprintf("%.2f", slider), &slider, 0, 1)
				ctx.SliderBar(gui.Rect{X: 70, Y: 40, W: 180, H: 16}, "Bar", fmt.Sprintf("%.0f", bar), &bar, 0, 100)
				ctx.ProgressBar(gui.Rect{X: 70, Y: 70, W: 180, H: 16}, "Load", fmt.Sprintf("%d%%", int(progress*100)), &progress, 0, 1)
			},
		},
		{
			name: "scrollbars", width: 240, height: 140,
			draw: func(ctx *gui.Context) {
				ctx.ScrollBar(gui.Rect{X: 10, Y: 10, W: 180, H: 14}, &scroll, 0, 100)
				ctx.ScrollBar(gui.Rect{X: 210, Y: 10, W: 14, H: 120}, &scroll, 0, 100)
			},
		},
		{
			name: "color_picker", width: 260, height: 240,
			draw: func(ctx *gui.Context) {
				ctx.ColorPicker(gui.Rect{X: 10, Y: 10, W: 200, H: 190}, &color)
				ctx.ColorBarAlpha(gui.Rect{X: 10, Y: 210, W: 200, H: 16}, &alpha)
				ctx.ColorBarHue(gui.Rect{X: 234, Y: 10, W: 16, H: 190}, &hue)
			},
		},
		{
			name: "containers", width: 360, height: 260,
			draw: func(ctx *gui.Context) {
				ctx.WindowBox(gui.Rect{X: 10, Y: 10, W: 340, H: 140}, "Window box")
				ctx.GroupBox(gui.Rect{X: 20, Y: 50, W: 150, H: 90}, "Group")
				ctx.Panel(gui.Rect{X: 185, Y: 50, W: 155, H: 90}, "Panel")
				ctx.Line(gui.Rect{X: 10, Y: 160, W: 340, H: 12}, "Line")
				ctx.DummyRec(gui.Rect{X: 10, Y: 180, W: 340, H: 36}, "Dummy")
				ctx.StatusBar(gui.Rect{X: 0, Y: 230, W: 360, H: 24}, "Status bar")
			},
		},
		{
			name: "icons", width: 300, height: 40,
			draw: func(ctx *gui.Context) {
				ids := []int{gui.IconOkTick, gui.IconCross, gui.IconArrowLeftFill, gui.IconArrowRightFill}
				color := gui.HexColor(ctx.GetStyle(gui.CtrlLabel, gui.TextColorNormal))
				for i, id := range ids {
					ctx.DrawIcon(id, gui.Vec2{X: float32(10 + i*40), Y: 4}, 2, color)
				}
			},
		},
	}
}
