package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4_MultiplyMatrices(t *testing.T) {
	tests := []struct {
		a        *Matrix4
		b        *Matrix4
		expected *Matrix4
	}{
		{
			a:        NewMatrix4(),
			b:        NewMatrix4(),
			expected: NewMatrix4(),
		},
		{
			a:        NewMatrix4().MakeTranslation(1, 2, 3),
			b:        NewMatrix4(),
			expected: NewMatrix4().MakeTranslation(1, 2, 3),
		},
		{
			a:        NewMatrix4().MakeTranslation(1, 0, 0),
			b:        NewMatrix4().MakeTranslation(0, 2, 0),
			expected: NewMatrix4().MakeTranslation(1, 2, 0),
		},
		{
			a:        NewMatrix4().MakeScale(2, 2, 2),
			b:        NewMatrix4().MakeTranslation(1, 0, 0),
			expected: NewMatrix4().Set(2, 0, 0, 2, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1),
		},
	}

	for i, test := range tests {
		actual := NewMatrix4().MultiplyMatrices(test.a, test.b)
		assert.Equalf(t, test.expected, actual, "Failed test %v", i)
	}
}

func TestMatrix4_Compose(t *testing.T) {

	m := NewMatrix4().Compose(
		NewVector3(1, 2, 3),
		NewQuaternion(0, 0, 0, 1),
		NewVector3(2, 2, 2),
	)
	expected := NewMatrix4().Set(
		2, 0, 0, 1,
		0, 2, 0, 2,
		0, 0, 2, 3,
		0, 0, 0, 1,
	)
	assert.Equal(t, expected, m)
}

func TestMatrix4_MakeRotationFromQuaternion(t *testing.T) {

	// 180 degrees about Z.
	m := NewMatrix4().MakeRotationFromQuaternion(NewQuaternion(0, 0, 1, 0))
	assert.InDelta(t, -1, float64(m[0]), 1e-6)
	assert.InDelta(t, -1, float64(m[5]), 1e-6)
	assert.InDelta(t, 1, float64(m[10]), 1e-6)
}

func TestMatrix4_FromToArray(t *testing.T) {

	src := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	m := NewMatrix4().FromArray(src, 0)
	dst := make([]float32, 16)
	m.ToArray(dst, 0)
	assert.Equal(t, src, dst)
}

func TestQuaternionNormalize(t *testing.T) {

	q := NewQuaternion(0, 0, 2, 0).Normalize()
	assert.InDelta(t, 1, float64(q.Length()), 1e-6)
	assert.InDelta(t, 1, float64(q.Z), 1e-6)

	q = NewQuaternion(0, 0, 0, 0).Normalize()
	assert.Equal(t, float32(1), q.W)
}
