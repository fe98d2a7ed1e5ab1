package octree

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/converters"
)

type diskFetcher struct {
	root string
}

// Opens an octree stored in a local folder
func NewDiskOctree(path string, elevationCorrector converters.ElevationCorrector) (IOctree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "octree folder %s not found", path)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("octree location %s is not a folder", path)
	}
	return newStandardOctree(path, &diskFetcher{root: path}, elevationCorrector)
}

func (f *diskFetcher) readMeta() ([]byte, error) {
	return os.ReadFile(filepath.Join(f.root, MetaFileName))
}

func (f *diskFetcher) readNode(id string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(f.root, NodesFolderName, id+".bin"))
}
