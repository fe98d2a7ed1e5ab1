package octree

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/data"
	"github.com/ecopia-map/xray_tiler/internal/geometry"
	"github.com/ecopia-map/xray_tiler/tools"
)

// Writes an octree in the on-disk layout read by NewDiskOctree: a meta.json
// document plus one blob per node, keyed by octant path id. Node contents are
// written as given, the writer does not re-balance points between nodes.
func WriteDiskOctree(path string, srid int, boundingBox *geometry.BoundingBox, nodes map[string][]*data.Point) error {
	if err := tools.CreateDirectoryIfDoesNotExist(path); err != nil {
		return errors.Wrapf(err, "cannot create octree folder %s", path)
	}
	if err := tools.CreateDirectoryIfDoesNotExist(filepath.Join(path, NodesFolderName)); err != nil {
		return errors.Wrapf(err, "cannot create octree nodes folder in %s", path)
	}

	if srid <= 0 {
		return errors.Errorf("invalid octree srid %d", srid)
	}
	meta := &Meta{
		Version:     supportedMetaVersion,
		Srid:        srid,
		BoundingBox: NewMetaBoundingBox(boundingBox),
	}
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		points := nodes[id]
		if !isValidNodeID(id) {
			return errors.Errorf("invalid octree node id %q", id)
		}
		if err := writeNodeBlob(filepath.Join(path, NodesFolderName, id+".bin"), points); err != nil {
			return err
		}
		meta.Nodes = append(meta.Nodes, NodeEntry{ID: id, NumPoints: int64(len(points))})
		meta.NumPoints += int64(len(points))
	}

	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot marshal octree metadata")
	}
	return errors.Wrapf(os.WriteFile(filepath.Join(path, MetaFileName), raw, 0644), "cannot write octree metadata in %s", path)
}

func writeNodeBlob(path string, points []*data.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create octree node blob %s", path)
	}
	defer func() { _ = file.Close() }()
	return EncodePoints(file, points)
}
