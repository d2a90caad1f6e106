// Package serialization implements the typed byte containers and
// field/curve decoders for the KZG verification core (components C1, C2 and
// C5 of the design): fixed-size opaque byte wrappers for scalars, G1/G2
// encodings and blobs, plus the decoders that turn them into gnark-crypto
// field and curve elements.
package serialization

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
	"github.com/ethereum/go-blob-kzg/params"
)

// ScalarBytes is the canonical 32-byte big-endian encoding of a Scalar.
type ScalarBytes [params.BytesPerFieldElement]byte

// G1Compressed is a compressed 48-byte encoding of a G1 point.
type G1Compressed [params.BytesPerG1Compressed]byte

// G2Compressed is a compressed 96-byte encoding of a G2 point.
type G2Compressed [params.BytesPerG2Compressed]byte

// Commitment is a 48-byte compressed G1 KZG commitment.
type Commitment [params.BytesPerCommitment]byte

// Proof is a 48-byte compressed G1 KZG opening proof.
type Proof [params.BytesPerProof]byte

// Blob is the 131072-byte payload carrying 4096 canonical scalar encodings.
type Blob [params.BytesPerBlob]byte

// NewScalarBytes builds a ScalarBytes from a slice, rejecting any length
// other than 32. No semantic (range) check happens here; that is C2's job.
func NewScalarBytes(b []byte) (ScalarBytes, error) {
	var out ScalarBytes
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a scalar, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewG1Compressed builds a G1Compressed from a slice, rejecting any length
// other than 48.
func NewG1Compressed(b []byte) (G1Compressed, error) {
	var out G1Compressed
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a G1 point, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewG2Compressed builds a G2Compressed from a slice, rejecting any length
// other than 96.
func NewG2Compressed(b []byte) (G2Compressed, error) {
	var out G2Compressed
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a G2 point, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewCommitment builds a Commitment from a slice, rejecting any length
// other than 48.
func NewCommitment(b []byte) (Commitment, error) {
	var out Commitment
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a commitment, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewProof builds a Proof from a slice, rejecting any length other than 48.
func NewProof(b []byte) (Proof, error) {
	var out Proof
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a proof, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// NewBlob builds a Blob from a slice, rejecting any length other than
// params.BytesPerBlob.
func NewBlob(b []byte) (Blob, error) {
	var out Blob
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: expected %d bytes for a blob, got %d", kzgerrors.ErrInvalidBytesLength, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// MarshalText renders a Commitment as a 0x-prefixed hex string, matching the
// teacher's convention for its [48]byte wire types.
func (c Commitment) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(c[:])), nil
}

func (c Commitment) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

// MarshalText renders a Proof as a 0x-prefixed hex string.
func (p Proof) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(p[:])), nil
}

func (p Proof) String() string {
	return "0x" + hex.EncodeToString(p[:])
}
