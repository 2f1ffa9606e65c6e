// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 implements float32 linear algebra for asset transforms:
// 3D vectors, quaternions and column-major 4x4 matrices.
package math32

import "math"

const Pi = math.Pi

func Abs(v float32) float32 {

	return float32(math.Abs(float64(v)))
}

func Sqrt(v float32) float32 {

	return float32(math.Sqrt(float64(v)))
}

func Sin(v float32) float32 {

	return float32(math.Sin(float64(v)))
}

func Cos(v float32) float32 {

	return float32(math.Cos(float64(v)))
}
