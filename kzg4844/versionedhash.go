package kzg4844

import (
	"crypto/sha256"

	"github.com/ethereum/go-blob-kzg/params"
	"github.com/ethereum/go-blob-kzg/serialization"
)

// VersionedHash is the 32-byte commitment digest blob transactions carry on
// a blob_versioned_hashes field in place of the raw commitment.
type VersionedHash [32]byte

// CalcBlobHashV1 derives the version-1 versioned hash of a commitment:
// SHA-256(commitment) with its first byte replaced by
// BlobCommitmentVersionKZG. It does not itself verify anything; it is the
// small piece of EIP-4844 surface a caller needs to go from "here is a
// commitment the batch verifier accepted" to "here is what belongs in a
// blob transaction".
func CalcBlobHashV1(commitment serialization.Commitment) VersionedHash {
	digest := sha256.Sum256(commitment[:])
	digest[0] = params.BlobCommitmentVersionKZG
	return VersionedHash(digest)
}
