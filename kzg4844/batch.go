package kzg4844

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/internal/fiatshamir"
	"github.com/ethereum/go-blob-kzg/internal/kzg"
	"github.com/ethereum/go-blob-kzg/kzgerrors"
	"github.com/ethereum/go-blob-kzg/serialization"
)

// VerifyBlobKZGProofBatch implements verify_blob_kzg_proof_batch (C10): it
// checks n (blob, commitment, proof) tuples with a single pairing, folded
// by a Fiat-Shamir-derived random linear combination. blobs, commitments
// and proofs must all have the same length, or the call fails with
// ErrInvalidBytesLength. An empty batch is vacuously true; a single-element
// batch returns the same result as VerifyBlobKZGProof on that element.
func VerifyBlobKZGProofBatch(blobs []serialization.Blob, commitments []serialization.Commitment, proofs []serialization.Proof, settings *Settings) (bool, error) {
	n := len(blobs)
	if len(commitments) != n || len(proofs) != n {
		return false, fmt.Errorf("%w: blobs (%d), commitments (%d) and proofs (%d) must have equal length", kzgerrors.ErrInvalidBytesLength, n, len(commitments), len(proofs))
	}
	if n == 0 {
		return true, nil
	}
	if n == 1 {
		return VerifyBlobKZGProof(blobs[0], commitments[0], proofs[0], settings)
	}

	commitmentPoints := make([]bls12381.G1Affine, n)
	proofPoints := make([]bls12381.G1Affine, n)
	zs := make([]fr.Element, n)
	ys := make([]fr.Element, n)
	tuples := make([]fiatshamir.BatchTuple, n)

	for i := 0; i < n; i++ {
		commitmentPoint, err := serialization.DeserializeCommitment(commitments[i])
		if err != nil {
			return false, err
		}
		proofPoint, err := serialization.DeserializeProof(proofs[i])
		if err != nil {
			return false, err
		}
		polynomial, err := blobs[i].Polynomial()
		if err != nil {
			return false, err
		}

		z := fiatshamir.ComputeChallenge(blobs[i], commitments[i])
		y, err := kzg.EvaluatePolyInEvaluationForm(polynomial, settings.domain, z)
		if err != nil {
			return false, err
		}

		commitmentPoints[i] = commitmentPoint
		proofPoints[i] = proofPoint
		zs[i] = z
		ys[i] = y
		tuples[i] = fiatshamir.BatchTuple{
			Commitment: commitments[i],
			Z:          serialization.SerializeScalar(z),
			Y:          serialization.SerializeScalar(y),
			Proof:      proofs[i],
		}
	}

	factors := fiatshamir.ComputeRPowers(tuples)

	return kzg.VerifyBatch(commitmentPoints, proofPoints, zs, ys, factors, settings.srs)
}
