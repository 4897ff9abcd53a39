package cascade

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a normalized (r,g,b,a) quadruple with every channel in [0,1].
// Alpha defaults to 1 when a notation omits it.
type Color struct {
	R, G, B, A float64
}

// errBadColor flags a value that is not a recognizable color.
var errBadColor = errors.New("cascade: not a valid color value")

// channel tolerance for comparing colors that went through different
// conversions (hex vs. hsl rounding)
const colorEps = 0.5 / 255.0

// Equal reports whether two colors normalize to the same quadruple.
func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) <= colorEps &&
		math.Abs(c.G-o.G) <= colorEps &&
		math.Abs(c.B-o.B) <= colorEps &&
		math.Abs(c.A-o.A) <= colorEps
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f,%.3f,%.3f,%.3f)", c.R, c.G, c.B, c.A)
}

// ParseColor normalizes a CSS color value in any supported notation: hex
// (3, 4, 6 or 8 nibbles), rgb()/rgba(), hsl()/hsla(), or a named CSS color.
func ParseColor(value string) (Color, error) {
	v := strings.ToLower(strings.Join(strings.Fields(value), ""))
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	case strings.HasPrefix(v, "rgba("), strings.HasPrefix(v, "rgb("):
		return parseRGB(argsOf(v))
	case strings.HasPrefix(v, "hsla("), strings.HasPrefix(v, "hsl("):
		return parseHSL(argsOf(v))
	default:
		if c, ok := colornames.Map[v]; ok {
			return Color{
				R: float64(c.R) / 255, G: float64(c.G) / 255,
				B: float64(c.B) / 255, A: float64(c.A) / 255,
			}, nil
		}
		return Color{}, fmt.Errorf("%w: %q", errBadColor, value)
	}
}

// argsOf extracts the comma-separated arguments of a functional notation.
func argsOf(v string) []string {
	open := strings.IndexByte(v, '(')
	end := strings.LastIndexByte(v, ')')
	if open < 0 || end < open {
		return nil
	}
	return strings.Split(v[open+1:end], ",")
}

func parseHex(hex string) (Color, error) {
	nibble := func(s string) (float64, error) {
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: #%s", errBadColor, hex)
		}
		if len(s) == 1 {
			return float64(n) / 15, nil
		}
		return float64(n) / 255, nil
	}
	var parts [4]string
	alpha := false
	switch len(hex) {
	case 3:
		parts = [4]string{hex[0:1], hex[1:2], hex[2:3], ""}
	case 4:
		parts = [4]string{hex[0:1], hex[1:2], hex[2:3], hex[3:4]}
		alpha = true
	case 6:
		parts = [4]string{hex[0:2], hex[2:4], hex[4:6], ""}
	case 8:
		parts = [4]string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
		alpha = true
	default:
		return Color{}, fmt.Errorf("%w: #%s", errBadColor, hex)
	}
	var c Color
	var err error
	if c.R, err = nibble(parts[0]); err != nil {
		return Color{}, err
	}
	if c.G, err = nibble(parts[1]); err != nil {
		return Color{}, err
	}
	if c.B, err = nibble(parts[2]); err != nil {
		return Color{}, err
	}
	c.A = 1
	if alpha {
		if c.A, err = nibble(parts[3]); err != nil {
			return Color{}, err
		}
	}
	return c, nil
}

// parseChannel normalizes one rgb() channel: percentages divide by 100,
// 8-bit values divide by 255, and fractions pass through.
func parseChannel(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		return f / 100, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f > 1 {
		return f / 255, nil
	}
	if f == 1 && !strings.Contains(s, ".") {
		return 1.0 / 255, nil
	}
	return f, nil
}

func parseRGB(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, errBadColor
	}
	var c Color
	for i, dst := range []*float64{&c.R, &c.G, &c.B} {
		f, err := parseChannel(args[i])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
		}
		*dst = f
	}
	c.A = 1
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
		}
		c.A = a
	}
	return c, nil
}

// parseHSL converts hsl()/hsla() through go-colorful: hue in degrees,
// saturation and lightness as percentages or fractions.
func parseHSL(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, errBadColor
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
	}
	fraction := func(s string) (float64, error) {
		if strings.HasSuffix(s, "%") {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			return f / 100, err
		}
		return strconv.ParseFloat(s, 64)
	}
	s, err := fraction(args[1])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
	}
	l, err := fraction(args[2])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
	}
	rgb := colorful.Hsl(h, s, l)
	c := Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %v", errBadColor, err)
		}
		c.A = a
	}
	return c, nil
}
