package kzg4844

import (
	"github.com/ethereum/go-blob-kzg/internal/kzg"
	"github.com/ethereum/go-blob-kzg/serialization"
)

// VerifyKZGProof implements verify_kzg_proof_impl (C8): it checks that
// commitment opens, at z, to the claimed value y, given proof. A `false`
// return with a nil error is the normal outcome for a well-formed but
// invalid proof; only malformed inputs or an arithmetic-oracle failure
// produce an error.
func VerifyKZGProof(commitment serialization.Commitment, z, y serialization.ScalarBytes, proof serialization.Proof, settings *Settings) (bool, error) {
	commitmentPoint, err := serialization.DeserializeCommitment(commitment)
	if err != nil {
		return false, err
	}
	proofPoint, err := serialization.DeserializeProof(proof)
	if err != nil {
		return false, err
	}
	zScalar, err := serialization.DeserializeScalar(z)
	if err != nil {
		return false, err
	}
	yScalar, err := serialization.DeserializeScalar(y)
	if err != nil {
		return false, err
	}

	return kzg.Verify(commitmentPoint, proofPoint, zScalar, yScalar, settings.srs)
}
