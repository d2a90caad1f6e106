package serialization

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/params"
)

// Polynomial implements the blob-to-polynomial decode (component C5): it
// splits the blob into FieldElementsPerBlob contiguous 32-byte chunks, in
// order, and decodes each with DeserializeScalar. The result is a
// polynomial in the bit-reversal-permuted Lagrange form described by the
// evaluation domain (internal/kzg.Domain) — the blob's on-wire chunk order
// is that bit-reversed order directly; no reshuffling happens here.
func (b Blob) Polynomial() ([]fr.Element, error) {
	poly := make([]fr.Element, params.FieldElementsPerBlob)
	for i := 0; i < params.FieldElementsPerBlob; i++ {
		var chunk ScalarBytes
		copy(chunk[:], b[i*params.BytesPerFieldElement:(i+1)*params.BytesPerFieldElement])
		scalar, err := DeserializeScalar(chunk)
		if err != nil {
			return nil, fmt.Errorf("blob chunk %d: %w", i, err)
		}
		poly[i] = scalar
	}
	return poly, nil
}
