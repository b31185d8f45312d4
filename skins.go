package gui

import (
	"sort"
	"strings"
)

// Skin is a named set of style triples plus an optional font.
// Loading a skin applies its triples in order; slots it does not list keep
// their current value.
type Skin struct {
	Name       string
	Properties []StyleProperty
	Font       *FontAsset // nil keeps the current font
}

// DefaultSkin returns the built-in light skin. Every control's base slots
// are derived from the DEFAULT entries.
func DefaultSkin() Skin {
	return Skin{
		Name: "default",
		Properties: []StyleProperty{
			{CtrlDefault, BorderColorNormal, 0x838383ff},
			{CtrlDefault, BaseColorNormal, 0xc9c9c9ff},
			{CtrlDefault, TextColorNormal, 0x686868ff},
			{CtrlDefault, BorderColorFocused, 0x5bb2d9ff},
			{CtrlDefault, BaseColorFocused, 0xc9effeff},
			{CtrlDefault, TextColorFocused, 0x6c9bbcff},
			{CtrlDefault, BorderColorPressed, 0x0492c7ff},
			{CtrlDefault, BaseColorPressed, 0x97e8ffff},
			{CtrlDefault, TextColorPressed, 0x368bafff},
			{CtrlDefault, BorderColorDisabled, 0xb5c1c2ff},
			{CtrlDefault, BaseColorDisabled, 0xe6e9e9ff},
			{CtrlDefault, TextColorDisabled, 0xaeb7b8ff},
			{CtrlDefault, BorderWidth, 1},
			{CtrlDefault, TextPadding, 0},
			{CtrlDefault, TextAlignment, uint32(TextAlignCenter)},

			{CtrlDefault, TextSize, DefaultFontSize},
			{CtrlDefault, TextSpacing, 1},
			{CtrlDefault, LineColor, 0x90abb5ff},
			{CtrlDefault, BackgroundColor, 0xf5f5f5ff},
			{CtrlDefault, TextLineSpacing, 15},
			{CtrlDefault, TextAlignmentVertical, uint32(TextAlignMiddle)},
			{CtrlDefault, TextWrapMode, uint32(WrapNone)},

			{CtrlLabel, TextAlignment, uint32(TextAlignLeft)},
			{CtrlButton, BorderWidth, 2},
			{CtrlSlider, TextPadding, 4},
			{CtrlProgressBar, TextPadding, 4},
			{CtrlCheckBox, TextPadding, 4},
			{CtrlCheckBox, TextAlignment, uint32(TextAlignRight)},
			{CtrlDropdownBox, TextPadding, 0},
			{CtrlDropdownBox, TextAlignment, uint32(TextAlignCenter)},
			{CtrlTextBox, TextPadding, 4},
			{CtrlTextBox, TextAlignment, uint32(TextAlignLeft)},
			{CtrlValueBox, TextPadding, 0},
			{CtrlValueBox, TextAlignment, uint32(TextAlignLeft)},
			{CtrlSpinner, TextPadding, 0},
			{CtrlSpinner, TextAlignment, uint32(TextAlignLeft)},
			{CtrlStatusBar, TextPadding, 8},
			{CtrlStatusBar, TextAlignment, uint32(TextAlignLeft)},

			{CtrlToggle, GroupPadding, 2},
			{CtrlSlider, SliderWidth, 16},
			{CtrlSlider, SliderPadding, 1},
			{CtrlProgressBar, ProgressPadding, 1},
			{CtrlCheckBox, CheckPadding, 1},
			{CtrlComboBox, ComboButtonWidth, 32},
			{CtrlComboBox, ComboButtonSpacing, 2},
			{CtrlDropdownBox, ArrowPadding, 16},
			{CtrlDropdownBox, DropdownItemsSpacing, 2},
			{CtrlSpinner, SpinButtonWidth, 24},
			{CtrlSpinner, SpinButtonSpacing, 2},
			{CtrlScrollBar, BorderWidth, 0},
			{CtrlScrollBar, ArrowsVisible, 0},
			{CtrlScrollBar, ArrowsSize, 6},
			{CtrlScrollBar, ScrollSliderPadding, 0},
			{CtrlScrollBar, ScrollSliderSize, 16},
			{CtrlScrollBar, ScrollPadding, 0},
			{CtrlScrollBar, ScrollSpeed, 12},
			{CtrlListView, ListItemsHeight, 28},
			{CtrlListView, ListItemsSpacing, 2},
			{CtrlListView, ScrollbarWidth, 12},
			{CtrlListView, ScrollbarSide, 1},
			{CtrlColorPicker, ColorSelectorSize, 10},
			{CtrlColorPicker, HuebarWidth, 16},
			{CtrlColorPicker, HuebarPadding, 8},
			{CtrlColorPicker, HuebarSelectorHeight, 8},
			{CtrlColorPicker, HuebarSelectorOverflow, 2},
		},
	}
}

// DarkSkin returns a dark overlay for the default skin.
func DarkSkin() Skin {
	return Skin{
		Name: "dark",
		Properties: []StyleProperty{
			{CtrlDefault, BorderColorNormal, 0x878787ff},
			{CtrlDefault, BaseColorNormal, 0x2c2c2cff},
			{CtrlDefault, TextColorNormal, 0xc3c3c3ff},
			{CtrlDefault, BorderColorFocused, 0xe1e1e1ff},
			{CtrlDefault, BaseColorFocused, 0x848484ff},
			{CtrlDefault, TextColorFocused, 0x181818ff},
			{CtrlDefault, BorderColorPressed, 0x000000ff},
			{CtrlDefault, BaseColorPressed, 0xefefefff},
			{CtrlDefault, TextColorPressed, 0x202020ff},
			{CtrlDefault, BorderColorDisabled, 0x6a6a6aff},
			{CtrlDefault, BaseColorDisabled, 0x818181ff},
			{CtrlDefault, TextColorDisabled, 0x606060ff},
			{CtrlDefault, LineColor, 0x9d9d9dff},
			{CtrlDefault, BackgroundColor, 0x3c3c3cff},
			{CtrlLabel, TextColorFocused, 0xf7f7f7ff},
			{CtrlLabel, TextColorPressed, 0x898989ff},
			{CtrlSlider, TextColorFocused, 0xb0b0b0ff},
			{CtrlProgressBar, TextColorFocused, 0x848484ff},
			{CtrlTextBox, TextColorFocused, 0xf5f5f5ff},
			{CtrlValueBox, TextColorFocused, 0xf6f6f6ff},
		},
	}
}

// CandySkin returns a warm pastel overlay for the default skin.
func CandySkin() Skin {
	return Skin{
		Name: "candy",
		Properties: []StyleProperty{
			{CtrlDefault, BorderColorNormal, 0xe58b68ff},
			{CtrlDefault, BaseColorNormal, 0xfeda96ff},
			{CtrlDefault, TextColorNormal, 0xe59b5fff},
			{CtrlDefault, BorderColorFocused, 0xee813fff},
			{CtrlDefault, BaseColorFocused, 0xfcd85bff},
			{CtrlDefault, TextColorFocused, 0xfc6955ff},
			{CtrlDefault, BorderColorPressed, 0xb34848ff},
			{CtrlDefault, BaseColorPressed, 0xeb7272ff},
			{CtrlDefault, TextColorPressed, 0xbd4a4aff},
			{CtrlDefault, BorderColorDisabled, 0x94795dff},
			{CtrlDefault, BaseColorDisabled, 0xc2a37aff},
			{CtrlDefault, TextColorDisabled, 0x9c8369ff},
			{CtrlDefault, LineColor, 0xd77575ff},
			{CtrlDefault, BackgroundColor, 0xfff5e1ff},
			{CtrlDefault, TextSpacing, 0},
		},
	}
}

var builtinSkins = map[string]func() Skin{
	"default": DefaultSkin,
	"dark":    DarkSkin,
	"candy":   CandySkin,
}

// SkinByName returns a built-in skin by case-insensitive name.
func SkinByName(name string) (Skin, bool) {
	fn, ok := builtinSkins[strings.ToLower(name)]
	if !ok {
		return Skin{}, false
	}
	return fn(), true
}

// SkinNames lists the built-in skins in sorted order.
func SkinNames() []string {
	names := make([]string, 0, len(builtinSkins))
	for name := range builtinSkins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
