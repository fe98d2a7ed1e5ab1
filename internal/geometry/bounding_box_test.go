package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBoxComputesMidpoints(t *testing.T) {
	box := NewBoundingBox(0, 10, -4, 4, 2, 8)

	assert.Equal(t, 5.0, box.Xmid)
	assert.Equal(t, 0.0, box.Ymid)
	assert.Equal(t, 5.0, box.Zmid)
	assert.Equal(t, 10.0, box.Dx())
	assert.Equal(t, 8.0, box.Dy())
	assert.Equal(t, 6.0, box.Dz())
}

func TestNewBoundingBoxFromParent(t *testing.T) {
	parent := NewBoundingBox(0, 8, 0, 8, 0, 8)

	tests := []struct {
		octant   uint8
		expected *BoundingBox
	}{
		{0, NewBoundingBox(0, 4, 0, 4, 0, 4)},
		{1, NewBoundingBox(4, 8, 0, 4, 0, 4)},
		{2, NewBoundingBox(0, 4, 4, 8, 0, 4)},
		{4, NewBoundingBox(0, 4, 0, 4, 4, 8)},
		{7, NewBoundingBox(4, 8, 4, 8, 4, 8)},
	}
	for _, tt := range tests {
		octant := tt.octant
		child := NewBoundingBoxFromParent(parent, &octant)
		assert.Equal(t, tt.expected, child, "octant %d", tt.octant)
	}
}

func TestNewBoundingBoxFromRectIntersection(t *testing.T) {
	tests := []struct {
		name     string
		rect     *Rect
		box      *BoundingBox
		expected *BoundingBox
	}{
		{
			name:     "request larger than source",
			rect:     NewRect(0, 10, 0, 10),
			box:      NewBoundingBox(5, 8, 5, 8, 0, 3),
			expected: NewBoundingBox(5, 8, 5, 8, 0, 3),
		},
		{
			name:     "request inside source",
			rect:     NewRect(2, 4, 2, 4),
			box:      NewBoundingBox(0, 10, 0, 10, -5, 5),
			expected: NewBoundingBox(2, 4, 2, 4, -5, 5),
		},
		{
			name:     "partial overlap",
			rect:     NewRect(-5, 5, -5, 5),
			box:      NewBoundingBox(0, 10, 0, 10, 1, 2),
			expected: NewBoundingBox(0, 5, 0, 5, 1, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := NewBoundingBoxFromRectIntersection(tt.rect, tt.box)
			assert.Equal(t, tt.expected, resolved)
			assert.False(t, resolved.IsEmpty())
		})
	}
}

func TestNewBoundingBoxFromRectIntersectionKeepsSourceZ(t *testing.T) {
	rect := NewRect(0, 1, 0, 1)
	box := NewBoundingBox(0, 1, 0, 1, -123.5, 456.25)

	resolved := NewBoundingBoxFromRectIntersection(rect, box)

	assert.Equal(t, box.Zmin, resolved.Zmin)
	assert.Equal(t, box.Zmax, resolved.Zmax)
}

func TestNewBoundingBoxFromRectIntersectionWithoutOverlapIsEmpty(t *testing.T) {
	rect := NewRect(20, 30, 20, 30)
	box := NewBoundingBox(0, 10, 0, 10, 0, 5)

	resolved := NewBoundingBoxFromRectIntersection(rect, box)

	require.True(t, resolved.IsEmpty())
	assert.Greater(t, resolved.Xmin, resolved.Xmax)
	assert.Greater(t, resolved.Ymin, resolved.Ymax)
}

func TestMergeBoundingBoxes(t *testing.T) {
	assert.Nil(t, MergeBoundingBoxes(nil))

	merged := MergeBoundingBoxes([]*BoundingBox{
		NewBoundingBox(0, 5, 0, 5, 0, 5),
		NewBoundingBox(3, 10, -2, 4, 1, 8),
	})
	assert.Equal(t, NewBoundingBox(0, 10, -2, 5, 0, 8), merged)
}

func TestIntersectsWith(t *testing.T) {
	box := NewBoundingBox(0, 10, 0, 10, 0, 10)

	assert.True(t, box.IntersectsWith(NewBoundingBox(5, 15, 5, 15, 5, 15)))
	assert.True(t, box.IntersectsWith(NewBoundingBox(10, 20, 0, 10, 0, 10)), "touching boxes intersect")
	assert.False(t, box.IntersectsWith(NewBoundingBox(11, 20, 0, 10, 0, 10)))

	empty := NewBoundingBox(5, 3, 0, 10, 0, 10)
	assert.False(t, box.IntersectsWith(empty), "empty boxes never intersect")
	assert.False(t, empty.IntersectsWith(box))
}

func TestContains(t *testing.T) {
	box := NewBoundingBox(0, 10, 0, 10, 0, 10)

	assert.True(t, box.Contains(5, 5, 5))
	assert.True(t, box.Contains(0, 10, 0), "boundary points are contained")
	assert.False(t, box.Contains(5, 5, 11))
	assert.False(t, box.Contains(-0.001, 5, 5))
}
