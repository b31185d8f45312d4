package gui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ReadStyleText parses the line-based style form:
//
//	# comment
//	f <size> <charset> <font file>
//	p <control> <property> <value>
//
// Controls and properties are indices or names; values are decimal or
// 0x-prefixed hex. charset is "0" for Latin-1 or a UTF-8 file listing the
// characters to rasterize. Paths are relative to dir. Malformed lines are
// skipped with a warning.
func ReadStyleText(r io.Reader, dir string, loader FontLoader) (Skin, error) {
	var skin Skin
	var fontErr error
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		switch text[0] {
		case 'p':
			fields := strings.Fields(text[1:])
			if len(fields) < 3 {
				styleLogger.Warn("skipping style line", "line", line, "text", text)
				continue
			}
			p, err := parseStyleTriple(fields[0], fields[1], fields[2])
			if err != nil {
				styleLogger.Warn("skipping style line", "line", line, "err", err)
				continue
			}
			skin.Properties = append(skin.Properties, p)
		case 'f':
			fields := strings.SplitN(strings.TrimSpace(text[1:]), " ", 3)
			if len(fields) < 3 {
				styleLogger.Warn("skipping font line", "line", line, "text", text)
				continue
			}
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				styleLogger.Warn("skipping font line", "line", line, "err", err)
				continue
			}
			skin.Font, fontErr = loadStyleFont(loader, dir, strings.TrimSpace(fields[2]), fields[1], size)
		default:
			styleLogger.Warn("skipping style line", "line", line, "text", text)
		}
	}
	if err := sc.Err(); err != nil {
		return Skin{}, fmt.Errorf("read style text: %w", err)
	}
	return skin, fontErr
}

// WriteStyleText writes the properties of a skin in the line-based form.
// An embedded font cannot be referenced by file and is noted in a comment.
func WriteStyleText(w io.Writer, skin Skin) error {
	bw := bufio.NewWriter(w)
	if skin.Name != "" {
		fmt.Fprintf(bw, "# style: %s\n", skin.Name)
	}
	if f := skin.Font; f != nil {
		fmt.Fprintf(bw, "# font: embedded, base size %d, %d glyphs\n", f.BaseSize, f.GlyphCount())
	}
	for _, p := range skin.Properties {
		fmt.Fprintf(bw, "p %02d %02d 0x%08x    %s.%s\n",
			int(p.Control), int(p.Property), p.Value, p.Control, PropertyName(p.Control, p.Property))
	}
	return bw.Flush()
}

// styleDoc is the TOML/YAML form of a skin.
type styleDoc struct {
	Name     string         `toml:"name,omitempty" yaml:"name,omitempty"`
	Font     *styleFontDoc  `toml:"font,omitempty" yaml:"font,omitempty"`
	Property []stylePropDoc `toml:"property" yaml:"property"`
}

type styleFontDoc struct {
	Size    int    `toml:"size" yaml:"size"`
	File    string `toml:"file" yaml:"file"`
	Charset string `toml:"charset,omitempty" yaml:"charset,omitempty"`
}

type stylePropDoc struct {
	Control  string `toml:"control" yaml:"control"`
	Property string `toml:"property" yaml:"property"`
	Value    any    `toml:"value" yaml:"value"`
}

// ReadStyleTOML parses a skin written as TOML:
//
//	name = "mine"
//
//	[font]
//	size = 16
//	file = "fonts/mine.ttf"
//
//	[[property]]
//	control = "BUTTON"
//	property = "BORDER_WIDTH"
//	value = 2
func ReadStyleTOML(r io.Reader, dir string, loader FontLoader) (Skin, error) {
	var doc styleDoc
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Skin{}, fmt.Errorf("decode toml style: %w", err)
	}
	return doc.skin(dir, loader)
}

// ReadStyleYAML parses a skin written as YAML, with the same fields as
// ReadStyleTOML.
func ReadStyleYAML(r io.Reader, dir string, loader FontLoader) (Skin, error) {
	var doc styleDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Skin{}, fmt.Errorf("decode yaml style: %w", err)
	}
	return doc.skin(dir, loader)
}

// WriteStyleTOML writes the properties of a skin as TOML. Color slots are
// written as hex strings.
func WriteStyleTOML(w io.Writer, skin Skin) error {
	doc := styleDoc{Name: skin.Name}
	for _, p := range skin.Properties {
		name := PropertyName(p.Control, p.Property)
		var v any = int64(int32(p.Value))
		if strings.Contains(name, "COLOR") {
			v = fmt.Sprintf("0x%08x", p.Value)
		}
		doc.Property = append(doc.Property, stylePropDoc{Control: p.Control.String(), Property: name, Value: v})
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode toml style: %w", err)
	}
	return nil
}

func (doc styleDoc) skin(dir string, loader FontLoader) (Skin, error) {
	skin := Skin{Name: doc.Name, Properties: make([]StyleProperty, 0, len(doc.Property))}
	for i, pd := range doc.Property {
		p, err := parseStyleTriple(pd.Control, pd.Property, pd.Value)
		if err != nil {
			return Skin{}, fmt.Errorf("property %d: %w", i, err)
		}
		skin.Properties = append(skin.Properties, p)
	}
	if doc.Font == nil || doc.Font.File == "" {
		return skin, nil
	}
	var err error
	skin.Font, err = loadStyleFont(loader, dir, doc.Font.File, doc.Font.Charset, doc.Font.Size)
	return skin, err
}

func parseStyleTriple(control, property string, value any) (StyleProperty, error) {
	ctrl, err := ParseControl(control)
	if err != nil {
		return StyleProperty{}, err
	}
	prop, err := ParseProperty(ctrl, property)
	if err != nil {
		return StyleProperty{}, err
	}
	v, err := parseStyleValue(value)
	if err != nil {
		return StyleProperty{}, fmt.Errorf("%s.%s: %w", ctrl, property, err)
	}
	return StyleProperty{Control: ctrl, Property: prop, Value: v}, nil
}

// parseStyleValue accepts integers and decimal or 0x hex strings.
func parseStyleValue(v any) (uint32, error) {
	switch n := v.(type) {
	case int:
		return uint32(n), nil
	case int64:
		return uint32(n), nil
	case uint64:
		return uint32(n), nil
	case string:
		s := strings.TrimSpace(n)
		if strings.HasPrefix(s, "-") {
			i, err := strconv.ParseInt(s, 10, 32)
			return uint32(int32(i)), err
		}
		u, err := strconv.ParseUint(s, 0, 32)
		return uint32(u), err
	}
	return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
}

// loadStyleFont loads the font a style names. Failures wrap ErrFontLoad.
func loadStyleFont(loader FontLoader, dir, file, charset string, size int) (*FontAsset, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: no font loader for %s", ErrFontLoad, file)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	cps, err := loadCharset(dir, charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	f, err := loader.LoadFont(resolvePath(dir, file), size, cps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return f, nil
}

// loadCharset returns Latin-1 for "" or "0", or the distinct characters of
// a UTF-8 file.
func loadCharset(dir, charset string) ([]rune, error) {
	if charset == "" || charset == "0" {
		return LatinCodepoints(), nil
	}
	data, err := os.ReadFile(resolvePath(dir, charset))
	if err != nil {
		return nil, fmt.Errorf("read charset: %w", err)
	}
	seen := make(map[rune]bool)
	cps := []rune{' '}
	seen[' '] = true
	for i := 0; i < len(data); {
		cp, size := DecodeNext(data, i)
		i += size
		if cp < 32 || seen[cp] {
			continue
		}
		seen[cp] = true
		cps = append(cps, cp)
	}
	return cps, nil
}

func resolvePath(dir, file string) string {
	if filepath.IsAbs(file) || dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}
