package gui

import "errors"

// Errors returned by the style and icon file readers.
var (
	ErrBadSignature       = errors.New("gui: bad file signature")
	ErrUnsupportedVersion = errors.New("gui: unsupported file version")
	ErrTruncated          = errors.New("gui: truncated data")
	ErrIconSize           = errors.New("gui: unsupported icon size")
	ErrFontLoad           = errors.New("gui: style font could not be loaded")
)
