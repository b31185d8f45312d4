/*
Package gui provides an immediate-mode GUI library of rectangle-placed
controls, built around a dedicated Context type that owns the style table,
the font and the edit and drag sessions.

# Overview

The UI is rebuilt every frame. Each control is a single call that takes its
bounds and a pointer to the caller's value, draws itself through the
context's DrawSink, and reports interaction with its return value. The only
state kept between frames is the shared text edit session, the shared drag
session, and the scratch text of numeric boxes being edited.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gui.New(renderer, gui.WithFontLoader(fontatlas.NewLoader()))
	input := opengl.NewGLFWInputAdapter(window)

	name := make([]byte, 64)
	editing := false

	// Frame loop
	for !window.ShouldClose() {
	    input.Update()
	    glfw.PollEvents()

	    ctx := ui.Begin(input.Input(), gui.Vec2{X: 1280, Y: 720}, deltaTime)

	    if ctx.TextBox(gui.Rect{X: 10, Y: 10, W: 200, H: 28}, name, editing) {
	        editing = !editing
	    }
	    if ctx.Button(gui.Rect{X: 10, Y: 50, W: 100, H: 28}, "Save") {
	        // Button was released over its bounds
	    }

	    ui.End()
	    window.SwapBuffers()
	}

# Edit Mode

Text controls (TextBox, ValueBox, ValueBoxFloat, Spinner) follow the
editMode handshake: a click inside a box that is not being edited takes the
edit session and returns true; the host then passes editMode=true. Enter or a
click outside commits, releases the session and returns true again. Only one
control owns the session at a time.

A TextBox edits a NUL-terminated UTF-8 buffer in place. The length of the
buffer is its capacity; an insert that would leave no room for the
terminator is dropped. A ValueBox edits its own copy of the text and only
parses and clamps the value on commit.

# Keyboard Reference

While a text control owns the edit session:

	Left / Right     Move one codepoint
	Home / End       Jump to start / end of text
	Backspace        Delete the codepoint before the cursor
	Delete           Delete the codepoint after the cursor
	Ctrl+V           Paste from the clipboard until the buffer is full
	Ctrl+C           Copy the whole text
	Enter            Commit (newline in multiline boxes)

Held arrows, Backspace and Delete repeat after Config.RepeatCooldown frames,
then every Config.RepeatDelay frames.

# Drag Controls

Slider, SliderBar, ScrollBar, ColorPanel and the color bars take the drag
session when pressed inside their bounds and follow the pointer until the
button is released, even when it leaves the bounds. No other control reacts
to the pointer while a drag is active. The mouse wheel steps a ScrollBar.

# Control List

Containers and decoration:

	ctx.WindowBox(bounds, title, opts...) bool   Returns true when close is pressed
	ctx.GroupBox(bounds, text)
	ctx.Line(bounds, text)
	ctx.Panel(bounds, text)
	ctx.StatusBar(bounds, text)
	ctx.DummyRec(bounds, text)

Basic controls:

	ctx.Label(bounds, text)
	ctx.Button(bounds, text, opts...) bool
	ctx.LabelButton(bounds, text, opts...) bool
	ctx.Toggle(bounds, text, *bool, opts...) bool
	ctx.ToggleGroup(bounds, "A;B;C", *int, opts...) bool
	ctx.CheckBox(bounds, text, *bool, opts...) bool
	ctx.ComboBox(bounds, "A;B;C", *int, opts...) bool

Text and numbers:

	ctx.TextBox(bounds, buf, editMode, opts...) bool
	ctx.ValueBox(bounds, label, *int, min, max, editMode, opts...) bool
	ctx.ValueBoxFloat(bounds, label, *float32, editMode, opts...) bool
	ctx.Spinner(bounds, label, *int, min, max, editMode, opts...) bool

Ranges and color:

	ctx.Slider(bounds, left, right, *float32, min, max, opts...) bool
	ctx.SliderBar(bounds, left, right, *float32, min, max, opts...) bool
	ctx.ProgressBar(bounds, left, right, *float32, min, max) bool
	ctx.ScrollBar(bounds, *int, min, max, opts...) bool
	ctx.ColorPanel(bounds, *uint32, opts...) bool
	ctx.ColorBarAlpha(bounds, *float32, opts...) bool
	ctx.ColorBarHue(bounds, *float32, opts...) bool
	ctx.ColorPicker(bounds, *uint32, opts...) bool

Text given to any control may start with an icon marker, "#NNN#", which
draws icon NNN before the text. IconText builds one.

# Options

	WithID(id)              Stable identity for the control (loops, moved bounds)
	WithTooltip(text)       Tooltip shown on hover while tooltips are enabled
	WithMultiline()         TextBox accepts Enter as a newline
	WithReadOnly()          TextBox displays but never edits
	WithCharFilter(f)       Reject typed or pasted codepoints
	WithFormat(verb)        Display format of ValueBoxFloat
	WithStep(n)             Spinner button step

Custom keys are declared with NewOptKey and read with GetOpt.

# Styles

Every control reads its colors and metrics from a StyleTable of
ControlCount × PropertyCount slots. Setting a base property on CtrlDefault
writes it to every control. Skins are lists of (control, property, value)
triples applied as an overlay with LoadStyle; LoadStyleDefault restores the
default skin. Styles are read from binary ".rgs" files, the line-based text
form, TOML and YAML with ReadStyleFile, and written with WriteStyle,
WriteStyleText and WriteStyleTOML.

# Logging

Diagnostics go through log/slog. SetVerbose(true) enables debug records for
edit, drag and style events.
*/
package gui
