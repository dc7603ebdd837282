// Package render turns generated map layers into RGBA pixel buffers for the
// PNG exporter and the interactive viewer.
package render

// Layer selects which generated layer a render pass visualizes.
type Layer int

const (
	LayerGeology Layer = iota
	LayerTopography
	LayerHydrology
	LayerVegetation
	LayerStructures
	LayerFeatures
	LayerComposite

	LayerCount
)

func (l Layer) String() string {
	names := [...]string{
		"geology", "topography", "hydrology",
		"vegetation", "structures", "features", "composite",
	}
	if l < 0 || int(l) >= len(names) {
		return "unknown"
	}
	return names[l]
}

// Next cycles to the following layer, wrapping past the composite.
func (l Layer) Next() Layer {
	return (l + 1) % LayerCount
}
