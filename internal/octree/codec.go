package octree

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/data"
)

// Node blobs are sequences of fixed size little endian point records:
// X,Y,Z as float64 followed by R,G,B,Intensity,Classification as single bytes.
const PointRecordSize = 3*8 + 5

// Writes the given points to w in the node blob format
func EncodePoints(w io.Writer, points []*data.Point) error {
	buffered := bufio.NewWriter(w)
	record := make([]byte, PointRecordSize)
	for _, point := range points {
		binary.LittleEndian.PutUint64(record[0:], math.Float64bits(point.X))
		binary.LittleEndian.PutUint64(record[8:], math.Float64bits(point.Y))
		binary.LittleEndian.PutUint64(record[16:], math.Float64bits(point.Z))
		record[24] = point.R
		record[25] = point.G
		record[26] = point.B
		record[27] = point.Intensity
		record[28] = point.Classification
		if _, err := buffered.Write(record); err != nil {
			return errors.Wrap(err, "cannot write point record")
		}
	}
	return errors.Wrap(buffered.Flush(), "cannot flush point records")
}

// Reads node blob records from r invoking fn once per decoded point. A
// trailing partial record is reported as an error.
func DecodePoints(r io.Reader, fn func(point *data.Point) error) error {
	buffered := bufio.NewReader(r)
	record := make([]byte, PointRecordSize)
	for {
		_, err := io.ReadFull(buffered, record)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "truncated point record")
		}
		point := data.NewPoint(
			math.Float64frombits(binary.LittleEndian.Uint64(record[0:])),
			math.Float64frombits(binary.LittleEndian.Uint64(record[8:])),
			math.Float64frombits(binary.LittleEndian.Uint64(record[16:])),
			record[24], record[25], record[26], record[27], record[28],
		)
		if err := fn(point); err != nil {
			return err
		}
	}
}
