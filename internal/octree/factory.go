package octree

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/converters"
)

// Builds an octree handle from a location string
type OctreeConstructor func(location string, elevationCorrector converters.ElevationCorrector) (IOctree, error)

// Maps location scheme prefixes (e.g. "gs://") to octree constructors.
// Locations without a registered scheme are opened from the local filesystem.
// The factory is scoped to one run configuration, there is no global registry.
type OctreeFactory struct {
	constructors       map[string]OctreeConstructor
	elevationCorrector converters.ElevationCorrector
}

func NewOctreeFactory(elevationCorrector converters.ElevationCorrector) *OctreeFactory {
	return &OctreeFactory{
		constructors:       make(map[string]OctreeConstructor),
		elevationCorrector: elevationCorrector,
	}
}

// Registers a constructor for the given location scheme prefix. Returns the
// factory to allow chaining registrations.
func (f *OctreeFactory) Register(prefix string, constructor OctreeConstructor) *OctreeFactory {
	f.constructors[prefix] = constructor
	return f
}

// Opens the octree at the given location using the constructor registered for
// its scheme prefix. Longer prefixes win so "https://" is never shadowed by
// "http://".
func (f *OctreeFactory) CreateOctreeFromLocation(location string) (IOctree, error) {
	prefixes := make([]string, 0, len(f.constructors))
	for prefix := range f.constructors {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if strings.HasPrefix(location, prefix) {
			return f.constructors[prefix](location, f.elevationCorrector)
		}
	}
	if strings.Contains(location, "://") {
		return nil, errors.Errorf("unsupported octree location scheme in %q", location)
	}
	return NewDiskOctree(location, f.elevationCorrector)
}
