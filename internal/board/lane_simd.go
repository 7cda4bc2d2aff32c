//go:build goexperiment.simd && amd64

// AVX2 kernels for Lane using the experimental simd/archsimd package.
// Requires Go 1.26+ with GOEXPERIMENT=simd on AMD64; lane_scalar.go is the
// fallback everywhere else. Results must be bit-identical to the fallback.

package board

import (
	"simd/archsimd"
)

func load(l *Lane) archsimd.Uint64x4 {
	return archsimd.LoadUint64x4(l[:])
}

func store(v archsimd.Uint64x4) Lane {
	var out Lane
	archsimd.StoreUint64x4(out[:], v)
	return out
}

func and4(a, b Lane) Lane {
	return store(load(&a).And(load(&b)))
}

func or4(a, b Lane) Lane {
	return store(load(&a).Or(load(&b)))
}

func xor4(a, b Lane) Lane {
	return store(load(&a).Xor(load(&b)))
}

func andNot4(a, b Lane) Lane {
	return store(load(&a).AndNot(load(&b)))
}

func shl4(a Lane, n uint) Lane {
	return store(load(&a).ShiftLeft(int(n)))
}

func shr4(a Lane, n uint) Lane {
	return store(load(&a).ShiftRight(int(n)))
}

// isZero4 computes ((v | -v) >> 63) - 1 per slot, all ones exactly when v
// is zero.
func isZero4(a Lane) Lane {
	v := load(&a)
	neg := archsimd.Uint64x4{}.Sub(v)
	nonZero := v.Or(neg).ShiftRight(63)
	return store(nonZero.Sub(archsimd.BroadcastUint64x4(1)))
}
