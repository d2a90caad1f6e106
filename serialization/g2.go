package serialization

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
)

// DeserializeG2Point implements safe_g2_affine_from_bytes: it decodes a
// 96-byte compressed G2 encoding, rejecting malformed compression flags,
// off-curve points and points outside the prime-order subgroup with
// ErrBadArgs.
func DeserializeG2Point(b G2Compressed) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: %s", kzgerrors.ErrBadArgs, err)
	}
	return p, nil
}

// SerializeG2Point implements the canonical 96-byte compressed encoding of a
// G2 point.
func SerializeG2Point(p bls12381.G2Affine) G2Compressed {
	return G2Compressed(p.Bytes())
}
