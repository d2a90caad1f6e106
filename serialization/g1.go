package serialization

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
)

// DeserializeG1Point implements safe_g1_affine_from_bytes: it decodes a
// 48-byte compressed G1 encoding, rejecting malformed compression flags,
// off-curve points and points outside the prime-order subgroup with
// ErrBadArgs. A validly encoded point at infinity is accepted.
//
// (*bls12381.G1Affine).SetBytes performs the curve and subgroup checks
// itself; this function's only job is mapping its error to the taxonomy.
func DeserializeG1Point(b G1Compressed) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: %s", kzgerrors.ErrBadArgs, err)
	}
	return p, nil
}

// SerializeG1Point implements the canonical 48-byte compressed encoding of a
// G1 point.
func SerializeG1Point(p bls12381.G1Affine) G1Compressed {
	return G1Compressed(p.Bytes())
}

// DeserializeCommitment decodes a Commitment's underlying bytes as a G1
// point.
func DeserializeCommitment(c Commitment) (bls12381.G1Affine, error) {
	return DeserializeG1Point(G1Compressed(c))
}

// DeserializeProof decodes a Proof's underlying bytes as a G1 point.
func DeserializeProof(p Proof) (bls12381.G1Affine, error) {
	return DeserializeG1Point(G1Compressed(p))
}

// SerializeCommitment implements the canonical encoding of a commitment.
func SerializeCommitment(p bls12381.G1Affine) Commitment {
	return Commitment(p.Bytes())
}

// SerializeProof implements the canonical encoding of a proof.
func SerializeProof(p bls12381.G1Affine) Proof {
	return Proof(p.Bytes())
}
