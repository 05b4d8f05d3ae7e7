package matrix

import "gonum.org/v1/gonum/floats"

// Buffer kernels. float64 buffers go through gonum/floats; other cell types
// use the plain loops.

func fill[T Float](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}

func addTo[T Float](dst, s []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Add(d, any(s).([]float64))
		return
	}
	for i, v := range s {
		dst[i] += v
	}
}

func subFrom[T Float](dst, s []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Sub(d, any(s).([]float64))
		return
	}
	for i, v := range s {
		dst[i] -= v
	}
}

func mulBy[T Float](dst, s []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Mul(d, any(s).([]float64))
		return
	}
	for i, v := range s {
		dst[i] *= v
	}
}

func addConst[T Float](c T, dst []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddConst(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] += c
	}
}

func scale[T Float](c T, dst []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Scale(float64(c), d)
		return
	}
	for i := range dst {
		dst[i] *= c
	}
}

func sum[T Float](s []T) T {
	if f, ok := any(s).([]float64); ok {
		return T(floats.Sum(f))
	}
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// maxOf and minOf require a non-empty slice.
func maxOf[T Float](s []T) T {
	if f, ok := any(s).([]float64); ok {
		return T(floats.Max(f))
	}
	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func minOf[T Float](s []T) T {
	if f, ok := any(s).([]float64); ok {
		return T(floats.Min(f))
	}
	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
