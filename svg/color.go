package svg

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rgbRegexp = regexp.MustCompile(`^rgb\(\s*([+-]?[0-9.]+%?)\s*(?:,\s*|\s+)([+-]?[0-9.]+%?)\s*(?:,\s*|\s+)([+-]?[0-9.]+%?)\s*\)$`)

// ShortenColor returns the shortest notation of a color value: keywords and rgb() become
// hexadecimal, hexadecimal is lowercased and shortened, and a keyword is used when it is shorter.
// Unknown values and currentColor are returned unchanged.
func ShortenColor(val string) string {
	color := strings.ToLower(strings.TrimSpace(val))
	if color == "currentcolor" {
		return val
	}
	if hex, ok := colorNames[color]; ok {
		color = hex
	} else if m := rgbRegexp.FindStringSubmatch(color); m != nil {
		rgb := [3]int{}
		for i := range rgb {
			c, ok := rgbComponent(m[i+1])
			if !ok {
				return val
			}
			rgb[i] = c
		}
		color = fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
	} else if !isHexColor(color) {
		return val
	}

	if len(color) == 7 && color[1] == color[2] && color[3] == color[4] && color[5] == color[6] {
		color = string([]byte{'#', color[1], color[3], color[5]})
	}
	if name, ok := shortColorNames[color]; ok {
		color = name
	}
	return color
}

func rgbComponent(s string) (int, bool) {
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f *= 2.55
	}
	return int(math.Max(0.0, math.Min(255.0, math.Round(f)))), true
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range []byte(s[1:]) {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
