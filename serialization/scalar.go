package serialization

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
)

// DeserializeScalar implements safe_scalar_from_bytes: it decodes a 32-byte
// big-endian value, rejecting it with ErrBadArgs unless it is strictly less
// than the scalar field modulus q.
//
// fr.Element.SetBytes reduces its input modulo q instead of rejecting
// out-of-range values, so the canonical-range check has to happen before
// handing the bytes to gnark-crypto.
func DeserializeScalar(b ScalarBytes) (fr.Element, error) {
	var asInt big.Int
	asInt.SetBytes(b[:])
	if asInt.Cmp(fr.Modulus()) >= 0 {
		return fr.Element{}, fmt.Errorf("%w: scalar %s is not less than the field modulus", kzgerrors.ErrBadArgs, asInt.String())
	}
	var out fr.Element
	out.SetBytes(b[:])
	return out, nil
}

// SerializeScalar implements the canonical 32-byte big-endian encoding of a
// Scalar.
func SerializeScalar(s fr.Element) ScalarBytes {
	return ScalarBytes(s.Bytes())
}
