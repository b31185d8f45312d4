package gui

// Config holds the fixed limits and timings of a Context.
type Config struct {
	// MaxTextLines bounds the lines laid out per text block.
	MaxTextLines int
	// MaxSplitItems bounds the items TextSplit returns.
	MaxSplitItems int
	// MaxTextBufferSize bounds the bytes TextSplit reads.
	MaxTextBufferSize int
	// RepeatCooldown is how many frames a key must be held before it repeats.
	RepeatCooldown int
	// RepeatDelay is the number of frames between repeats.
	RepeatDelay int
	// EllipsisText is drawn where a single-line text is cut.
	EllipsisText string
	// MaxValueBoxChars bounds the text typed into a ValueBox.
	MaxValueBoxChars int
}

// DefaultConfig returns the standard limits.
func DefaultConfig() Config {
	return Config{
		MaxTextLines:      DefaultMaxTextLines,
		MaxSplitItems:     128,
		MaxTextBufferSize: 1024,
		RepeatCooldown:    40,
		RepeatDelay:       1,
		EllipsisText:      "...",
		MaxValueBoxChars:  32,
	}
}

// normalized replaces unset fields with their defaults.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxTextLines <= 0 {
		c.MaxTextLines = d.MaxTextLines
	}
	if c.MaxSplitItems <= 0 {
		c.MaxSplitItems = d.MaxSplitItems
	}
	if c.MaxTextBufferSize <= 0 {
		c.MaxTextBufferSize = d.MaxTextBufferSize
	}
	if c.RepeatCooldown <= 0 {
		c.RepeatCooldown = d.RepeatCooldown
	}
	if c.RepeatDelay <= 0 {
		c.RepeatDelay = d.RepeatDelay
	}
	if c.EllipsisText == "" {
		c.EllipsisText = d.EllipsisText
	}
	if c.MaxValueBoxChars <= 0 {
		c.MaxValueBoxChars = d.MaxValueBoxChars
	}
	return c
}
