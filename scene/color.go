package scene

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA colour with float channels in [0,1]. The editor writes it
// as a four element array; YAML scenes may also use "#rrggbb" or "#rrggbbaa".
type Color struct {
	R, G, B, A float32
}

// White is the default tint.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// NRGBA converts c to an 8-bit colour, clamping out-of-range channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{c.R, c.G, c.B, c.A})
}

func (c Color) MarshalYAML() (any, error) {
	return []float32{c.R, c.G, c.B, c.A}, nil
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var arr []float32
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("color must be an array of floats: %w", err)
	}
	return c.fromSlice(arr)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var arr []float32
		if err := value.Decode(&arr); err != nil {
			return err
		}
		return c.fromSlice(arr)
	case yaml.ScalarNode:
		return c.fromHex(value.Value)
	default:
		return fmt.Errorf("color must be a hex string or a sequence")
	}
}

func (c *Color) fromSlice(arr []float32) error {
	switch len(arr) {
	case 3:
		*c = Color{R: arr[0], G: arr[1], B: arr[2], A: 1}
	case 4:
		*c = Color{R: arr[0], G: arr[1], B: arr[2], A: arr[3]}
	default:
		return fmt.Errorf("color needs 3 or 4 channels, got %d", len(arr))
	}
	return nil
}

func (c *Color) fromHex(v string) error {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (float32, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float32(n) / 255, err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := float32(1)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	*c = Color{R: r, G: g, B: b, A: a}
	return nil
}
