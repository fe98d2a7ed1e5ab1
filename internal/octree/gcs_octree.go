package octree

import (
	"context"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/converters"
)

const GCSLocationPrefix = "gs://"

type gcsFetcher struct {
	ctx    context.Context
	bucket *storage.BucketHandle
	prefix string
}

// Opens an octree stored in a Google Cloud Storage bucket. The location has
// the form gs://bucket/path/to/octree.
func NewGCSOctree(location string, elevationCorrector converters.ElevationCorrector) (IOctree, error) {
	trimmed := strings.TrimPrefix(location, GCSLocationPrefix)
	bucketName, prefix, _ := strings.Cut(trimmed, "/")
	if bucketName == "" {
		return nil, errors.Errorf("octree location %s has no bucket name", location)
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create storage client for %s", location)
	}

	fetch := &gcsFetcher{
		ctx:    ctx,
		bucket: client.Bucket(bucketName),
		prefix: strings.TrimSuffix(prefix, "/"),
	}
	return newStandardOctree(location, fetch, elevationCorrector)
}

func (f *gcsFetcher) readMeta() ([]byte, error) {
	reader, err := f.bucket.Object(path.Join(f.prefix, MetaFileName)).NewReader(f.ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()
	return io.ReadAll(reader)
}

func (f *gcsFetcher) readNode(id string) (io.ReadCloser, error) {
	return f.bucket.Object(path.Join(f.prefix, NodesFolderName, id+".bin")).NewReader(f.ctx)
}
