package color

import "fmt"

// Depth is a terminal color capability tier.
type Depth int

// Supported color depths.
const (
	DepthMono Depth = 1
	Depth16   Depth = 16
	Depth256  Depth = 256
	Depth24   Depth = 1 << 24
)

// ParseDepth converts a numeric depth value into a Depth.
func ParseDepth(n int) (Depth, error) {
	switch Depth(n) {
	case DepthMono, Depth16, Depth256, Depth24:
		return Depth(n), nil
	}
	return 0, fmt.Errorf("unsupported color depth %d (want 1, 16, 256 or 16777216)", n)
}

func (d Depth) String() string {
	switch d {
	case DepthMono:
		return "monochrome"
	case Depth16:
		return "16-color"
	case Depth256:
		return "256-color"
	case Depth24:
		return "24-bit"
	}
	return fmt.Sprintf("depth(%d)", int(d))
}
