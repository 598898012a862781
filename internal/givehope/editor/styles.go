// Типы визуальных стилей блоков конструктора.
// Стили хранятся в типизированной структуре, но сериализуются в свободную
// CSS-подобную карту, совместимую с рукописными пресетами.
//
// Основные возможности:
//   - Парсинг цветов в форматах hex и rgb()/rgba().
//   - Парсинг CSS-сокращений отступов (1-4 значения, auto).
//   - Сохранение неизвестных ключей стилей при (де)сериализации.
package editor

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type TextAlign string

const (
	AlignNone   TextAlign = ""
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Удаляет только обёртку записи цвета: префикс rgb()/rgba(), решётку,
// кавычки и пробелы. Голые буквы не трогаем, иначе пострадают hex-цифры a/b.
var colorReg = regexp.MustCompile(`^\s*"?rgba?\(|[)#\s"]`)

type Color color.RGBA

// ParseColor разбирает цвет в форматах "#rrggbb", "#rrggbbaa" и "rgb(r,g,b)".
func ParseColor(raw string) (Color, error) {
	if raw == "" {
		return Color{}, errors.New("empty color")
	}
	isDecRGB := strings.Contains(raw, "rgb")
	raw = colorReg.ReplaceAllString(raw, "")
	if isDecRGB {
		c := Color{}
		for i, n := range strings.Split(raw, ",") {
			nn, err := strconv.ParseUint(strings.TrimSpace(n), 10, 8)
			if err != nil {
				return c, err
			}

			switch i {
			case 0:
				c.R = uint8(nn)
			case 1:
				c.G = uint8(nn)
			case 2:
				c.B = uint8(nn)
			case 3:
				c.A = uint8(nn)
			}
		}
		return c, nil
	}

	// HEX
	if len(raw) == 3 {
		raw = fmt.Sprintf("%c%c%c%c%c%c", raw[0], raw[0], raw[1], raw[1], raw[2], raw[2])
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Color{}, err
	}
	if len(b) < 3 {
		return Color{}, errors.New("unsupported color format")
	}
	c := Color{R: b[0], G: b[1], B: b[2]}
	if len(b) > 3 {
		c.A = b[3]
	}
	return c, nil
}

func (c Color) Hex() string {
	if c.A != 0 {
		return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
	}
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B})
}

func (c Color) String() string { return c.Hex() }

func (c Color) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "%q", c.Hex()), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	cc, err := ParseColor(string(data))
	*c = cc

	return err
}

// Spacing - четырехсторонний отступ в пикселях. Auto* используется для
// горизонтального центрирования ("margin: 0 auto").
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int

	AutoLeft  bool
	AutoRight bool
}

// ParseSpacing разбирает CSS-сокращение отступа из 1-4 значений.
func ParseSpacing(raw string) (Spacing, error) {
	var s Spacing
	fields := strings.Fields(raw)
	if len(fields) == 0 || len(fields) > 4 {
		return s, fmt.Errorf("unsupported spacing format: %q", raw)
	}

	values := make([]int, len(fields))
	autos := make([]bool, len(fields))
	for i, f := range fields {
		if f == "auto" {
			autos[i] = true
			continue
		}
		v, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
		if err != nil {
			return s, err
		}
		values[i] = v
	}

	switch len(fields) {
	case 1:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[0], values[0], values[0]
		s.AutoLeft, s.AutoRight = autos[0], autos[0]
	case 2:
		s.Top, s.Bottom = values[0], values[0]
		s.Right, s.Left = values[1], values[1]
		s.AutoLeft, s.AutoRight = autos[1], autos[1]
	case 3:
		s.Top, s.Right, s.Bottom = values[0], values[1], values[2]
		s.Left = values[1]
		s.AutoLeft, s.AutoRight = autos[1], autos[1]
	case 4:
		s.Top, s.Right, s.Bottom, s.Left = values[0], values[1], values[2], values[3]
		s.AutoRight, s.AutoLeft = autos[1], autos[3]
	}
	return s, nil
}

func (s Spacing) String() string {
	side := func(v int, auto bool) string {
		if auto {
			return "auto"
		}
		return strconv.Itoa(v) + "px"
	}
	return strings.Join([]string{
		side(s.Top, false),
		side(s.Right, s.AutoRight),
		side(s.Bottom, false),
		side(s.Left, s.AutoLeft),
	}, " ")
}

// Size - ширина блока в пикселях или процентах.
type Size struct {
	Value   int
	Percent bool
}

func ParseSize(raw string) (Size, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.Atoi(strings.TrimSuffix(raw, "%"))
		return Size{Value: v, Percent: true}, err
	}
	v, err := strconv.Atoi(strings.TrimSuffix(raw, "px"))
	return Size{Value: v}, err
}

func (s Size) String() string {
	if s.Percent {
		return strconv.Itoa(s.Value) + "%"
	}
	return strconv.Itoa(s.Value) + "px"
}

func (s Size) IsZero() bool { return s.Value == 0 && !s.Percent }

// Styles - визуальные стили одного блока. Неизвестные ключи исходной карты
// стилей сохраняются в Extra и возвращаются при сериализации без изменений.
type Styles struct {
	Padding *Spacing
	Margin  *Spacing

	Color      *Color
	Background *Color

	FontSize   int
	FontWeight string
	FontFamily string
	FontStyle  string
	LineHeight float64

	TextAlign      TextAlign
	TextDecoration string

	Width        Size
	BorderRadius int
	BorderTop    string
	Display      string

	Extra map[string]string
}

// Clone возвращает глубокую копию стилей: копии указателей и карты Extra.
func (s Styles) Clone() Styles {
	c := s
	if s.Padding != nil {
		p := *s.Padding
		c.Padding = &p
	}
	if s.Margin != nil {
		m := *s.Margin
		c.Margin = &m
	}
	if s.Color != nil {
		cc := *s.Color
		c.Color = &cc
	}
	if s.Background != nil {
		b := *s.Background
		c.Background = &b
	}
	if s.Extra != nil {
		c.Extra = make(map[string]string, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// Merge накладывает заданные поля patch поверх текущих стилей.
func (s *Styles) Merge(patch Styles) {
	if patch.Padding != nil {
		p := *patch.Padding
		s.Padding = &p
	}
	if patch.Margin != nil {
		m := *patch.Margin
		s.Margin = &m
	}
	if patch.Color != nil {
		c := *patch.Color
		s.Color = &c
	}
	if patch.Background != nil {
		b := *patch.Background
		s.Background = &b
	}
	if patch.FontSize != 0 {
		s.FontSize = patch.FontSize
	}
	if patch.FontWeight != "" {
		s.FontWeight = patch.FontWeight
	}
	if patch.FontFamily != "" {
		s.FontFamily = patch.FontFamily
	}
	if patch.FontStyle != "" {
		s.FontStyle = patch.FontStyle
	}
	if patch.LineHeight != 0 {
		s.LineHeight = patch.LineHeight
	}
	if patch.TextAlign != AlignNone {
		s.TextAlign = patch.TextAlign
	}
	if patch.TextDecoration != "" {
		s.TextDecoration = patch.TextDecoration
	}
	if !patch.Width.IsZero() {
		s.Width = patch.Width
	}
	if patch.BorderRadius != 0 {
		s.BorderRadius = patch.BorderRadius
	}
	if patch.BorderTop != "" {
		s.BorderTop = patch.BorderTop
	}
	if patch.Display != "" {
		s.Display = patch.Display
	}
	for k, v := range patch.Extra {
		if s.Extra == nil {
			s.Extra = make(map[string]string)
		}
		s.Extra[k] = v
	}
}

// Map разворачивает стили в CSS-подобную карту свойств.
func (s Styles) Map() map[string]string {
	m := make(map[string]string)
	for k, v := range s.Extra {
		m[k] = v
	}
	if s.Padding != nil {
		m["padding"] = s.Padding.String()
	}
	if s.Margin != nil {
		m["margin"] = s.Margin.String()
	}
	if s.Color != nil {
		m["color"] = s.Color.Hex()
	}
	if s.Background != nil {
		m["backgroundColor"] = s.Background.Hex()
	}
	if s.FontSize != 0 {
		m["fontSize"] = strconv.Itoa(s.FontSize) + "px"
	}
	if s.FontWeight != "" {
		m["fontWeight"] = s.FontWeight
	}
	if s.FontFamily != "" {
		m["fontFamily"] = s.FontFamily
	}
	if s.FontStyle != "" {
		m["fontStyle"] = s.FontStyle
	}
	if s.LineHeight != 0 {
		m["lineHeight"] = strconv.FormatFloat(s.LineHeight, 'f', -1, 64)
	}
	if s.TextAlign != AlignNone {
		m["textAlign"] = string(s.TextAlign)
	}
	if s.TextDecoration != "" {
		m["textDecoration"] = s.TextDecoration
	}
	if !s.Width.IsZero() {
		m["width"] = s.Width.String()
	}
	if s.BorderRadius != 0 {
		m["borderRadius"] = strconv.Itoa(s.BorderRadius) + "px"
	}
	if s.BorderTop != "" {
		m["borderTop"] = s.BorderTop
	}
	if s.Display != "" {
		m["display"] = s.Display
	}
	return m
}

// StylesFromMap собирает типизированные стили из свободной карты свойств.
// Нераспознанные ключи и значения складываются в Extra как есть.
func StylesFromMap(m map[string]string) Styles {
	var s Styles
	for k, v := range m {
		switch k {
		case "padding":
			if sp, err := ParseSpacing(v); err == nil {
				s.Padding = &sp
				continue
			}
		case "margin":
			if sp, err := ParseSpacing(v); err == nil {
				s.Margin = &sp
				continue
			}
		case "color":
			if c, err := ParseColor(v); err == nil {
				s.Color = &c
				continue
			}
		case "backgroundColor", "background":
			if c, err := ParseColor(v); err == nil {
				s.Background = &c
				continue
			}
		case "fontSize":
			if fs, err := strconv.Atoi(strings.TrimSuffix(v, "px")); err == nil {
				s.FontSize = fs
				continue
			}
		case "fontWeight":
			s.FontWeight = v
			continue
		case "fontFamily":
			s.FontFamily = v
			continue
		case "fontStyle":
			s.FontStyle = v
			continue
		case "lineHeight":
			if lh, err := strconv.ParseFloat(v, 64); err == nil {
				s.LineHeight = lh
				continue
			}
		case "textAlign":
			switch v {
			case "left", "center", "right":
				s.TextAlign = TextAlign(v)
				continue
			}
		case "textDecoration":
			s.TextDecoration = v
			continue
		case "width":
			if size, err := ParseSize(v); err == nil {
				s.Width = size
				continue
			}
		case "borderRadius":
			if br, err := strconv.Atoi(strings.TrimSuffix(v, "px")); err == nil {
				s.BorderRadius = br
				continue
			}
		case "borderTop":
			s.BorderTop = v
			continue
		case "display":
			s.Display = v
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]string)
		}
		s.Extra[k] = v
	}
	return s
}

func (s Styles) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

func (s *Styles) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = StylesFromMap(m)
	return nil
}

// InlineCSS возвращает стили как значение атрибута style.
func (s Styles) InlineCSS() string {
	m := s.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, toKebabCase(k)+": "+m[k])
	}
	return strings.Join(parts, "; ")
}

var kebabReg = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func toKebabCase(str string) string {
	return strings.ToLower(kebabReg.ReplaceAllString(str, "${1}-${2}"))
}

// BodyStyles - стили документа в целом: применяются к контейнеру холста,
// а не к отдельным блокам.
type BodyStyles struct {
	Background *Color  `json:"backgroundColor,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   int     `json:"fontSize,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
	Color      *Color  `json:"color,omitempty"`
	LinkColor  *Color  `json:"linkColor,omitempty"`
	Width      int     `json:"width,omitempty"`
}

// Merge накладывает заданные поля other поверх текущих, не трогая остальные.
func (b *BodyStyles) Merge(other BodyStyles) {
	if other.Background != nil {
		c := *other.Background
		b.Background = &c
	}
	if other.FontFamily != "" {
		b.FontFamily = other.FontFamily
	}
	if other.FontSize != 0 {
		b.FontSize = other.FontSize
	}
	if other.LineHeight != 0 {
		b.LineHeight = other.LineHeight
	}
	if other.Color != nil {
		c := *other.Color
		b.Color = &c
	}
	if other.LinkColor != nil {
		c := *other.LinkColor
		b.LinkColor = &c
	}
	if other.Width != 0 {
		b.Width = other.Width
	}
}

func (b BodyStyles) Clone() BodyStyles {
	c := b
	if b.Background != nil {
		v := *b.Background
		c.Background = &v
	}
	if b.Color != nil {
		v := *b.Color
		c.Color = &v
	}
	if b.LinkColor != nil {
		v := *b.LinkColor
		c.LinkColor = &v
	}
	return c
}
