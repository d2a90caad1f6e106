// Package fiatshamir derives the two deterministic challenge scalars the
// verification core needs in place of an interactive verifier's randomness:
// the per-blob evaluation point and the batch-combination powers. Both are
// domain-separated SHA-256 digests reduced modulo the scalar field modulus.
package fiatshamir

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/params"
)

// perBlobDomain is the 16-byte domain separation tag for ComputeChallenge.
const perBlobDomain = "FSBLOBVERIFY_V1_"

// batchDomain is the 16-byte domain separation tag for ComputeRPowers.
const batchDomain = "RCKZGBATCH___V1_"

// ComputeChallenge derives the per-blob evaluation point z from a blob and
// its commitment. The transcript is:
//
//	domain tag (16B) || 0u64-BE || N-u64-BE || blob (131072B) || commitment (48B)
//
// The leading zero is not a placeholder: it is the on-wire "number of
// polynomials" field the consensus spec's transcript reserves and always
// sets to zero for a single-blob challenge.
func ComputeChallenge(blob [params.BytesPerBlob]byte, commitment [params.BytesPerCommitment]byte) fr.Element {
	h := sha256.New()
	h.Write([]byte(perBlobDomain))
	writeUint64BE(h, 0)
	writeUint64BE(h, params.FieldElementsPerBlob)
	h.Write(blob[:])
	h.Write(commitment[:])
	return reduceModQ(h.Sum(nil))
}

// BatchTuple is one (commitment, z, y, proof) entry folded into the batch
// transcript by ComputeRPowers.
type BatchTuple struct {
	Commitment [params.BytesPerCommitment]byte
	Z          [params.BytesPerFieldElement]byte
	Y          [params.BytesPerFieldElement]byte
	Proof      [params.BytesPerProof]byte
}

// ComputeRPowers derives the random linear-combination scalar r from the
// full list of batch tuples, and returns its powers [r^0, r^1, ..., r^(n-1)].
// The transcript is:
//
//	domain tag (16B) || N-u64-BE || n-u64-BE || for each tuple: commitment || z || y || proof
func ComputeRPowers(tuples []BatchTuple) []fr.Element {
	h := sha256.New()
	h.Write([]byte(batchDomain))
	writeUint64BE(h, params.FieldElementsPerBlob)
	writeUint64BE(h, uint64(len(tuples)))
	for _, t := range tuples {
		h.Write(t.Commitment[:])
		h.Write(t.Z[:])
		h.Write(t.Y[:])
		h.Write(t.Proof[:])
	}
	r := reduceModQ(h.Sum(nil))

	powers := make([]fr.Element, len(tuples))
	if len(powers) == 0 {
		return powers
	}
	powers[0].SetOne()
	for i := 1; i < len(powers); i++ {
		powers[i].Mul(&powers[i-1], &r)
	}
	return powers
}

func writeUint64BE(h interface{ Write([]byte) (int, error) }, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// reduceModQ interprets digest as a big-endian integer and reduces it
// modulo the scalar field modulus q, per the consensus spec's
// hash_to_bls_field: a direct reduction, not reject-and-resample.
func reduceModQ(digest []byte) fr.Element {
	var asInt big.Int
	asInt.SetBytes(digest)
	asInt.Mod(&asInt, fr.Modulus())

	var out fr.Element
	out.SetBigInt(&asInt)
	return out
}
