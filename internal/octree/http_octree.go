package octree

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/converters"
)

const (
	HTTPLocationPrefix  = "http://"
	HTTPSLocationPrefix = "https://"
)

type httpFetcher struct {
	baseURL string
	client  *http.Client
}

// Opens an octree served over plain HTTP(S). The location is the base URL of
// the folder holding the metadata document and the node blobs.
func NewHTTPOctree(location string, elevationCorrector converters.ElevationCorrector) (IOctree, error) {
	fetch := &httpFetcher{
		baseURL: strings.TrimSuffix(location, "/"),
		client:  http.DefaultClient,
	}
	return newStandardOctree(location, fetch, elevationCorrector)
}

func (f *httpFetcher) get(relativePath string) (io.ReadCloser, error) {
	url := f.baseURL + "/" + relativePath
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.Errorf("GET %s returned status %s", url, resp.Status)
	}
	return resp.Body, nil
}

func (f *httpFetcher) readMeta() ([]byte, error) {
	body, err := f.get(MetaFileName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	return io.ReadAll(body)
}

func (f *httpFetcher) readNode(id string) (io.ReadCloser, error) {
	return f.get(NodesFolderName + "/" + id + ".bin")
}
