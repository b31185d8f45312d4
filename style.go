package gui

import (
	"fmt"
	"strconv"
	"strings"
)

// Control identifies a control kind in the style table.
type Control int

const (
	CtrlDefault Control = iota
	CtrlLabel
	CtrlButton
	CtrlToggle
	CtrlSlider
	CtrlProgressBar
	CtrlCheckBox
	CtrlComboBox
	CtrlDropdownBox
	CtrlTextBox
	CtrlValueBox
	CtrlSpinner
	CtrlListView
	CtrlColorPicker
	CtrlScrollBar
	CtrlStatusBar

	ControlCount
)

// Property identifies a slot of the style table.
// Slots below BasePropertyCount are shared by every control; slots above are
// either global (on CtrlDefault) or reused with a per-control meaning.
type Property int

// Base properties.
const (
	BorderColorNormal Property = iota
	BaseColorNormal
	TextColorNormal
	BorderColorFocused
	BaseColorFocused
	TextColorFocused
	BorderColorPressed
	BaseColorPressed
	TextColorPressed
	BorderColorDisabled
	BaseColorDisabled
	TextColorDisabled
	BorderWidth
	TextPadding
	TextAlignment
)

const (
	BasePropertyCount     = 16
	ExtendedPropertyCount = 8
	PropertyCount         = BasePropertyCount + ExtendedPropertyCount
)

// Global extended properties, stored on CtrlDefault.
const (
	TextSize Property = BasePropertyCount + iota
	TextSpacing
	LineColor
	BackgroundColor
	TextLineSpacing
	TextAlignmentVertical
	TextWrapMode
)

// Control-specific extended properties. The same slot means different
// things for different controls.
const (
	GroupPadding Property = BasePropertyCount // Toggle

	SliderWidth   Property = BasePropertyCount     // Slider
	SliderPadding Property = BasePropertyCount + 1 // Slider

	ProgressPadding Property = BasePropertyCount // ProgressBar

	ArrowsSize          Property = BasePropertyCount     // ScrollBar
	ArrowsVisible       Property = BasePropertyCount + 1 // ScrollBar
	ScrollSliderPadding Property = BasePropertyCount + 2 // ScrollBar
	ScrollSliderSize    Property = BasePropertyCount + 3 // ScrollBar
	ScrollPadding       Property = BasePropertyCount + 4 // ScrollBar
	ScrollSpeed         Property = BasePropertyCount + 5 // ScrollBar

	CheckPadding Property = BasePropertyCount // CheckBox

	ComboButtonWidth   Property = BasePropertyCount     // ComboBox
	ComboButtonSpacing Property = BasePropertyCount + 1 // ComboBox

	ArrowPadding         Property = BasePropertyCount     // DropdownBox
	DropdownItemsSpacing Property = BasePropertyCount + 1 // DropdownBox
	DropdownArrowHidden  Property = BasePropertyCount + 2 // DropdownBox
	DropdownRollUp       Property = BasePropertyCount + 3 // DropdownBox

	TextReadonly Property = BasePropertyCount // TextBox

	SpinButtonWidth   Property = BasePropertyCount     // Spinner
	SpinButtonSpacing Property = BasePropertyCount + 1 // Spinner

	ListItemsHeight  Property = BasePropertyCount     // ListView
	ListItemsSpacing Property = BasePropertyCount + 1 // ListView
	ScrollbarWidth   Property = BasePropertyCount + 2 // ListView
	ScrollbarSide    Property = BasePropertyCount + 3 // ListView

	ColorSelectorSize      Property = BasePropertyCount     // ColorPicker
	HuebarWidth            Property = BasePropertyCount + 1 // ColorPicker
	HuebarPadding          Property = BasePropertyCount + 2 // ColorPicker
	HuebarSelectorHeight   Property = BasePropertyCount + 3 // ColorPicker
	HuebarSelectorOverflow Property = BasePropertyCount + 4 // ColorPicker
)

// TextAlign is a horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextVAlign is a vertical text alignment.
type TextVAlign int

const (
	TextAlignTop TextVAlign = iota
	TextAlignMiddle
	TextAlignBottom
)

// WrapMode controls how the layout engine breaks long lines.
type WrapMode int

const (
	WrapNone WrapMode = iota // Single line, ellipsis on overflow
	WrapChar                 // Break anywhere
	WrapWord                 // Break on spaces, char fallback for long words
)

// StyleProperty is one (control, property, value) triple of a skin.
type StyleProperty struct {
	Control  Control
	Property Property
	Value    uint32
}

// StyleTable is the flat property table shared by every control.
// The zero value is ready to use: it loads the default skin on first access.
type StyleTable struct {
	props  [ControlCount][PropertyCount]uint32
	loaded bool
}

func (t *StyleTable) ensure() {
	if t.loaded {
		return
	}
	// Mark first so the skin's own writes do not recurse.
	t.loaded = true
	for _, p := range DefaultSkin().Properties {
		t.Set(p.Control, p.Property, p.Value)
	}
}

// Get returns the value stored for a control property.
// Indices outside the table are the caller's responsibility.
func (t *StyleTable) Get(ctrl Control, prop Property) uint32 {
	t.ensure()
	return t.props[ctrl][prop]
}

// Set stores a control property. Writing a base property on CtrlDefault
// overwrites that slot on every control.
func (t *StyleTable) Set(ctrl Control, prop Property, value uint32) {
	t.ensure()
	t.props[ctrl][prop] = value
	if ctrl == CtrlDefault && prop < BasePropertyCount {
		for c := CtrlDefault + 1; c < ControlCount; c++ {
			t.props[c][prop] = value
		}
	}
}

// GetInt returns a property interpreted as a signed integer.
func (t *StyleTable) GetInt(ctrl Control, prop Property) int {
	return int(int32(t.Get(ctrl, prop)))
}

// Apply writes a list of triples in order.
func (t *StyleTable) Apply(props []StyleProperty) {
	for _, p := range props {
		t.Set(p.Control, p.Property, p.Value)
	}
}

// Reset discards every slot and reloads the default skin.
func (t *StyleTable) Reset() {
	t.props = [ControlCount][PropertyCount]uint32{}
	t.loaded = false
	t.ensure()
}

// Diff returns the triples that turn the default skin into this table.
// Replaying them in order through Set reproduces every slot.
func (t *StyleTable) Diff() []StyleProperty {
	t.ensure()
	var ref StyleTable
	ref.ensure()

	var out []StyleProperty
	for p := Property(0); p < PropertyCount; p++ {
		if v := t.props[CtrlDefault][p]; v != ref.props[CtrlDefault][p] {
			out = append(out, StyleProperty{Control: CtrlDefault, Property: p, Value: v})
			ref.Set(CtrlDefault, p, v)
		}
	}
	for c := CtrlDefault + 1; c < ControlCount; c++ {
		for p := Property(0); p < PropertyCount; p++ {
			if v := t.props[c][p]; v != ref.props[c][p] {
				out = append(out, StyleProperty{Control: c, Property: p, Value: v})
			}
		}
	}
	return out
}

var controlNames = [ControlCount]string{
	"DEFAULT", "LABEL", "BUTTON", "TOGGLE", "SLIDER", "PROGRESSBAR", "CHECKBOX",
	"COMBOBOX", "DROPDOWNBOX", "TEXTBOX", "VALUEBOX", "SPINNER", "LISTVIEW",
	"COLORPICKER", "SCROLLBAR", "STATUSBAR",
}

var basePropertyNames = [BasePropertyCount]string{
	"BORDER_COLOR_NORMAL", "BASE_COLOR_NORMAL", "TEXT_COLOR_NORMAL",
	"BORDER_COLOR_FOCUSED", "BASE_COLOR_FOCUSED", "TEXT_COLOR_FOCUSED",
	"BORDER_COLOR_PRESSED", "BASE_COLOR_PRESSED", "TEXT_COLOR_PRESSED",
	"BORDER_COLOR_DISABLED", "BASE_COLOR_DISABLED", "TEXT_COLOR_DISABLED",
	"BORDER_WIDTH", "TEXT_PADDING", "TEXT_ALIGNMENT", "RESERVED",
}

var defaultExtendedNames = [ExtendedPropertyCount]string{
	"TEXT_SIZE", "TEXT_SPACING", "LINE_COLOR", "BACKGROUND_COLOR",
	"TEXT_LINE_SPACING", "TEXT_ALIGNMENT_VERTICAL", "TEXT_WRAP_MODE", "EXTENDED23",
}

var controlExtendedNames = map[Control][]string{
	CtrlToggle:      {"GROUP_PADDING"},
	CtrlSlider:      {"SLIDER_WIDTH", "SLIDER_PADDING"},
	CtrlProgressBar: {"PROGRESS_PADDING"},
	CtrlScrollBar:   {"ARROWS_SIZE", "ARROWS_VISIBLE", "SCROLL_SLIDER_PADDING", "SCROLL_SLIDER_SIZE", "SCROLL_PADDING", "SCROLL_SPEED"},
	CtrlCheckBox:    {"CHECK_PADDING"},
	CtrlComboBox:    {"COMBO_BUTTON_WIDTH", "COMBO_BUTTON_SPACING"},
	CtrlDropdownBox: {"ARROW_PADDING", "DROPDOWN_ITEMS_SPACING", "DROPDOWN_ARROW_HIDDEN", "DROPDOWN_ROLL_UP"},
	CtrlTextBox:     {"TEXT_READONLY"},
	CtrlSpinner:     {"SPIN_BUTTON_WIDTH", "SPIN_BUTTON_SPACING"},
	CtrlListView:    {"LIST_ITEMS_HEIGHT", "LIST_ITEMS_SPACING", "SCROLLBAR_WIDTH", "SCROLLBAR_SIDE"},
	CtrlColorPicker: {"COLOR_SELECTOR_SIZE", "HUEBAR_WIDTH", "HUEBAR_PADDING", "HUEBAR_SELECTOR_HEIGHT", "HUEBAR_SELECTOR_OVERFLOW"},
}

// String returns the upper-case control name used in style files.
func (c Control) String() string {
	if c >= 0 && c < ControlCount {
		return controlNames[c]
	}
	return fmt.Sprintf("CONTROL%02d", int(c))
}

// PropertyName returns the style-file name of a property for a control.
func PropertyName(ctrl Control, prop Property) string {
	switch {
	case prop >= 0 && prop < BasePropertyCount:
		return basePropertyNames[prop]
	case prop >= PropertyCount || prop < 0:
		return fmt.Sprintf("PROPERTY%02d", int(prop))
	case ctrl == CtrlDefault:
		return defaultExtendedNames[prop-BasePropertyCount]
	}
	names := controlExtendedNames[ctrl]
	if i := int(prop - BasePropertyCount); i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("EXTENDED%02d", int(prop))
}

// ParseControl resolves a control by name or by decimal index.
func ParseControl(s string) (Control, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= int(ControlCount) {
			return 0, fmt.Errorf("control index %d out of range", n)
		}
		return Control(n), nil
	}
	for i, name := range controlNames {
		if strings.EqualFold(name, s) {
			return Control(i), nil
		}
	}
	return 0, fmt.Errorf("unknown control %q", s)
}

// ParseProperty resolves a property name (or decimal index) for a control.
func ParseProperty(ctrl Control, s string) (Property, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= PropertyCount {
			return 0, fmt.Errorf("property index %d out of range", n)
		}
		return Property(n), nil
	}
	for i, name := range basePropertyNames {
		if strings.EqualFold(name, s) {
			return Property(i), nil
		}
	}
	ext := controlExtendedNames[ctrl]
	if ctrl == CtrlDefault {
		ext = defaultExtendedNames[:]
	}
	for i, name := range ext {
		if strings.EqualFold(name, s) {
			return Property(BasePropertyCount + i), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q for %s", s, ctrl)
}
