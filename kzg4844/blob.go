package kzg4844

import (
	"github.com/ethereum/go-blob-kzg/internal/fiatshamir"
	"github.com/ethereum/go-blob-kzg/internal/kzg"
	"github.com/ethereum/go-blob-kzg/serialization"
)

// VerifyBlobKZGProof implements verify_blob_kzg_proof (C9): it decodes the
// blob and commitment, derives the per-blob Fiat-Shamir challenge z,
// barycentric-evaluates the polynomial at z to get y, then delegates to
// the single-proof pairing check.
func VerifyBlobKZGProof(blob serialization.Blob, commitment serialization.Commitment, proof serialization.Proof, settings *Settings) (bool, error) {
	commitmentPoint, err := serialization.DeserializeCommitment(commitment)
	if err != nil {
		return false, err
	}
	proofPoint, err := serialization.DeserializeProof(proof)
	if err != nil {
		return false, err
	}
	polynomial, err := blob.Polynomial()
	if err != nil {
		return false, err
	}

	z := fiatshamir.ComputeChallenge(blob, commitment)

	y, err := kzg.EvaluatePolyInEvaluationForm(polynomial, settings.domain, z)
	if err != nil {
		return false, err
	}

	return kzg.Verify(commitmentPoint, proofPoint, z, y, settings.srs)
}
