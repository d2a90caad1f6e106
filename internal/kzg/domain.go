// Package kzg implements the evaluation-domain construction, trusted-setup
// loading, barycentric polynomial evaluation and pairing verification that
// back the public kzg4844 API. It mirrors the shape of the teacher's
// crypto/kzg package, generalized from the deprecated aggregate-proof scheme
// to per-blob and batch KZG verification over gnark-crypto's BLS12-381
// implementation.
package kzg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
	"github.com/ethereum/go-blob-kzg/params"
)

// primitiveRootOfUnityStr is a primitive 2^32-th root of unity of the BLS12-381
// scalar field, the same generator the consensus-layer reference
// implementation builds all of its smaller-order domains from.
const primitiveRootOfUnityStr = "10238227357739495823651030575849232062558860180284477541189508159991286009131"

// maxRootOfUnityLog2 is the order, as a power of two, of
// primitiveRootOfUnityStr.
const maxRootOfUnityLog2 = 32

// Domain holds the bit-reversal-permuted FieldElementsPerBlob-th roots of
// unity a blob's coefficients are implicitly indexed by. Roots is stored
// pre-permuted so that Roots[i] lines up, index for index, with a trusted
// setup's bit-reversal-permuted Lagrange-basis G1 points and with a blob's
// on-wire chunk order.
type Domain struct {
	Roots []fr.Element
}

// NewDomain builds the evaluation domain of the given size, which must be a
// power of two no larger than 2^32. Roots[0] is always 1;
// the rest are in bit-reversal permuted order.
func NewDomain(size int) (*Domain, error) {
	natural, err := naturalOrderRoots(size)
	if err != nil {
		return nil, err
	}
	return &Domain{Roots: bitReversalPermutation(natural)}, nil
}

// naturalOrderRoots returns the size-th roots of unity omega^0..omega^(size-1)
// in natural (unpermuted) power-of-the-generator order. This is also the
// on-disk order a trusted setup's Lagrange-basis points are stored in,
// which is why NewInsecureTestSRS builds from it directly rather than
// going through NewDomain's bit-reversal permutation.
func naturalOrderRoots(size int) ([]fr.Element, error) {
	logSize, ok := log2Exact(size)
	if !ok {
		return nil, fmt.Errorf("%w: domain size %d is not a power of two", kzgerrors.ErrBadArgs, size)
	}
	if logSize > maxRootOfUnityLog2 {
		return nil, fmt.Errorf("%w: domain size %d exceeds the available root of unity order", kzgerrors.ErrBadArgs, size)
	}

	var root fr.Element
	if _, err := root.SetString(primitiveRootOfUnityStr); err != nil {
		return nil, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}
	// Exponentiate down from the maximal 2^32 root to a generator of the
	// order-`size` subgroup.
	exponent := new(big.Int).Lsh(big.NewInt(1), uint(maxRootOfUnityLog2-logSize))
	generator := new(fr.Element).Exp(root, exponent)

	natural := make([]fr.Element, size)
	natural[0].SetOne()
	for i := 1; i < size; i++ {
		natural[i].Mul(&natural[i-1], generator)
	}
	return natural, nil
}

// BlobDomain is the fixed evaluation domain used for blob polynomials.
func BlobDomain() (*Domain, error) {
	return NewDomain(params.FieldElementsPerBlob)
}

func log2Exact(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	log := 0
	for v := n; v > 1; v >>= 1 {
		if v&1 != 0 {
			return 0, false
		}
		log++
	}
	return log, true
}
