package physics

import (
	"fmt"
	"strings"
)

// Layer is a collision category bit.
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerPlayer
	LayerTrigger
)

// AllLayers matches every category.
const AllLayers = ^uint(0)

var layerNames = map[string]Layer{
	"ground":  LayerGround,
	"player":  LayerPlayer,
	"trigger": LayerTrigger,
}

// ParseLayer resolves a layer by name.
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("physics: unknown layer %q", name)
	}
	return l, nil
}

// ParseMask ORs the named layers together. An empty list yields LayerGround.
func ParseMask(names []string) (uint, error) {
	if len(names) == 0 {
		return uint(LayerGround), nil
	}
	var mask uint
	for _, name := range names {
		l, err := ParseLayer(name)
		if err != nil {
			return 0, err
		}
		mask |= uint(l)
	}
	return mask, nil
}
