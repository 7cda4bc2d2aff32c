//go:build !goexperiment.simd || !amd64

// Portable kernels for Lane. Each is a fixed four-iteration loop the
// compiler unrolls; used whenever the archsimd kernels in lane_simd.go are
// not built.

package board

func and4(a, b Lane) Lane {
	return Lane{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

func or4(a, b Lane) Lane {
	return Lane{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func xor4(a, b Lane) Lane {
	return Lane{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func andNot4(a, b Lane) Lane {
	return Lane{a[0] &^ b[0], a[1] &^ b[1], a[2] &^ b[2], a[3] &^ b[3]}
}

func shl4(a Lane, n uint) Lane {
	return Lane{a[0] << n, a[1] << n, a[2] << n, a[3] << n}
}

func shr4(a Lane, n uint) Lane {
	return Lane{a[0] >> n, a[1] >> n, a[2] >> n, a[3] >> n}
}

// isZero4 sets a slot to all ones when it is zero. The high bit of v|-v is
// set exactly when v is non-zero.
func isZero4(a Lane) Lane {
	var m Lane
	for i, v := range a {
		m[i] = (v|-v)>>63 - 1
	}
	return m
}
