// Example opens a window with the text, number and slider controls and a
// skin selector.
//
// Prerequisites:
//
//	devbox shell              # Go + OpenGL/X11 headers
//	go run ./example/         # built-in font and default skin
//	go run ./example/ -style mine.toml -v
//
// A style file given with -style is reloaded whenever it changes on disk.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
	"github.com/go-theft-auto/rgui/fontatlas"
)

const (
	windowWidth  = 720
	windowHeight = 520
	windowTitle  = "rgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	stylePath := flag.String("style", "", "style file to load and watch (.rgs, .txt.rgs, .toml, .yaml)")
	iconsPath := flag.String("icons", "", "icon file (.rgi) to load")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	gui.SetVerbose(*verbose)
	if err := run(*stylePath, *iconsPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demo is the application state the controls edit.
type demo struct {
	name      []byte
	nameEdit  bool
	notes     []byte
	notesEdit bool

	count     int
	countEdit bool
	speed     int
	speedEdit bool
	scale     float32
	scaleEdit bool

	volume   float32
	balance  float32
	progress float32
	scroll   int

	skin      int
	mode      int
	enabled   bool
	tooltips  bool
	color     uint32
	alpha     float32
	lastEvent string
}

func newDemo() *demo {
	d := &demo{
		name:    make([]byte, 64),
		notes:   make([]byte, 256),
		count:   50,
		speed:   3,
		scale:   1.5,
		volume:  40,
		balance: 0.5,
		enabled: true,
		color:   gui.RGBA(0x5b, 0xb2, 0xd9, 0xff),
		alpha:   1,
	}
	copy(d.name, "Hello, world")
	copy(d.notes, "Notes #112#")
	return d
}

func run(stylePath, iconsPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer,
		gui.WithFontLoader(fontatlas.NewLoader()),
		gui.WithClipboard(opengl.Clipboard{Window: window}),
	)
	ctx := ui.Context()

	if iconsPath != "" {
		if err := ctx.LoadIcons(iconsPath, true); err != nil {
			return err
		}
	}

	reload := make(chan struct{}, 1)
	if stylePath != "" {
		if err := ctx.LoadStyleFile(stylePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		watcher, err := watchStyle(stylePath, reload)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	d := newDemo()
	skins := gui.SkinNames()

	for !window.ShouldClose() {
		input.Update()
		glfw.PollEvents()

		select {
		case <-reload:
			ctx.LoadStyleDefault()
			if err := ctx.LoadStyleFile(stylePath); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		default:
		}

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		bg := ctx.GetStyle(gui.CtrlDefault, gui.BackgroundColor)
		gl.ClearColor(float32(bg>>24)/255, float32(bg>>16&0xff)/255, float32(bg>>8&0xff)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx = ui.Begin(input.Input(), gui.Vec2{X: float32(w), Y: float32(h)}, 1.0/60.0)
		d.draw(ctx, skins)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

// watchStyle signals reload when the style file is written. The directory
// is watched so editors that replace the file are seen too.
func watchStyle(path string, reload chan<- struct{}) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("style watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				select {
				case reload <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintln(os.Stderr, "style watcher:", err)
			}
		}
	}()
	return watcher, nil
}

var speedID = gui.HashID("example.speed")

func (d *demo) draw(ctx *gui.Context, skins []string) {
	if ctx.WindowBox(gui.Rect{X: 10, Y: 10, W: 700, H: 470}, gui.IconText(gui.IconOkTick, "Controls")) {
		d.lastEvent = "close pressed"
	}

	if d.tooltips {
		ctx.EnableTooltip()
	} else {
		ctx.DisableTooltip()
	}
	if !d.enabled {
		ctx.Disable()
	}

	ctx.GroupBox(gui.Rect{X: 25, Y: 50, W: 320, H: 200}, "Text")
	text := gui.VStack(gui.Rect{X: 35, Y: 65, W: 300, H: 63}, gui.Gap(7), gui.Align(gui.AlignStretch))
	if ctx.TextBox(text.Next(0, 28), d.name, d.nameEdit, gui.WithTooltip("Ctrl+V pastes")) {
		d.nameEdit = !d.nameEdit
		d.lastEvent = "name: " + string(bytes.TrimRight(d.name, "\x00"))
	}
	if ctx.TextBox(text.Next(0, 28), d.notes, d.notesEdit) {
		d.notesEdit = !d.notesEdit
	}
	numbers := gui.VStack(gui.Rect{X: 95, Y: 135, W: 120, H: 98}, gui.Gap(7))
	if ctx.ValueBox(numbers.Next(100, 28), "Count", &d.count, 0, 100, d.countEdit) {
		d.countEdit = !d.countEdit
	}
	// Steps also signal, so edit mode follows the session owner instead.
	ctx.Spinner(numbers.Next(120, 28), "Speed", &d.speed, 0, 10, d.speedEdit, gui.WithID(speedID))
	d.speedEdit = ctx.EditSession().Owns(speedID)
	if ctx.ValueBoxFloat(numbers.Next(100, 28), "Scale", &d.scale, d.scaleEdit) {
		d.scaleEdit = !d.scaleEdit
	}

	ctx.GroupBox(gui.Rect{X: 25, Y: 270, W: 320, H: 120}, "Sliders")
	bars := gui.VStack(gui.Rect{X: 90, Y: 285, W: 180, H: 89}, gui.Gap(9), gui.Align(gui.AlignStretch))
	ctx.Slider(bars.Next(0, 16), "Volume", fmt.Sprintf("%.0f", d.volume), &d.volume, 0, 100)
	ctx.SliderBar(bars.Next(0, 16), "Balance", fmt.Sprintf("%.2f", d.balance), &d.balance, 0, 1)
	d.progress += 0.002
	if d.progress > 1 {
		d.progress = 0
	}
	ctx.ProgressBar(bars.Next(0, 16), "Load", fmt.Sprintf("%d%%", int(d.progress*100)), &d.progress, 0, 1)
	ctx.ScrollBar(bars.Next(0, 14), &d.scroll, 0, 50)

	ctx.Enable()

	ctx.GroupBox(gui.Rect{X: 365, Y: 50, W: 330, H: 340}, "Style")
	ctx.Label(gui.Rect{X: 375, Y: 62, W: 60, H: 24}, "Skin")
	if ctx.ComboBox(gui.Rect{X: 435, Y: 62, W: 250, H: 24}, strings.Join(skins, ";"), &d.skin) {
		if skin, ok := gui.SkinByName(skins[d.skin]); ok {
			ctx.LoadStyleDefault()
			ctx.LoadStyle(skin)
		}
	}
	ctx.ToggleGroup(gui.Rect{X: 375, Y: 95, W: 100, H: 24}, "Left;Center;Right", &d.mode)
	ctx.SetStyle(gui.CtrlTextBox, gui.TextAlignment, uint32(d.mode))
	ctx.CheckBox(gui.Rect{X: 375, Y: 130, W: 16, H: 16}, "Enabled", &d.enabled)
	ctx.CheckBox(gui.Rect{X: 480, Y: 130, W: 16, H: 16}, "Tooltips", &d.tooltips)
	ctx.ColorPicker(gui.Rect{X: 375, Y: 160, W: 200, H: 180}, &d.color)
	if ctx.ColorBarAlpha(gui.Rect{X: 375, Y: 350, W: 200, H: 16}, &d.alpha) {
		ctx.SetAlpha(d.alpha)
	}
	if ctx.Button(gui.Rect{X: 590, Y: 350, W: 95, H: 24}, "Reset") {
		ctx.LoadStyleDefault()
		for i, name := range skins {
			if name == "default" {
				d.skin = i
			}
		}
		d.alpha = 1
		ctx.SetAlpha(1)
	}

	ctx.Line(gui.Rect{X: 25, Y: 395, W: 670, H: 12}, "")
	ctx.DummyRec(gui.Rect{X: 25, Y: 412, W: 670, H: 50}, "#113# immediate mode")
	ctx.StatusBar(gui.Rect{X: 0, Y: 490, W: windowWidth, H: 24}, d.lastEvent)
}

