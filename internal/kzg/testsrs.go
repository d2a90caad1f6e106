package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/params"
)

// InsecureTestSecret is the toxic waste of NewInsecureTestSRS. Its value is
// arbitrary and public; an SRS built from it must never be used for
// anything but tests, exactly like the reference implementations' own
// "secret is 1337" embedded test trusted setup.
const InsecureTestSecret = 1337

// NewInsecureTestSRS builds a full FieldElementsPerBlob/NumG2Points-sized
// SRS directly from a known secret scalar, without a ceremony. It exists
// purely so tests and benchmarks across this module can exercise the real
// verification path without shipping a multi-megabyte ceremony file.
func NewInsecureTestSRS(secret uint64) (*SRS, error) {
	domain, err := BlobDomain()
	if err != nil {
		return nil, err
	}
	natural, err := naturalOrderRoots(len(domain.Roots))
	if err != nil {
		return nil, err
	}

	var s fr.Element
	s.SetUint64(secret)

	n := big.NewInt(int64(len(natural)))
	var sPowN, one, numerator fr.Element
	sPowN.Exp(s, n)
	one.SetOne()
	numerator.Sub(&sPowN, &one)

	var nInv fr.Element
	nInv.SetUint64(uint64(len(natural)))
	nInv.Inverse(&nInv)
	numerator.Mul(&numerator, &nInv) // (s^N - 1) / N

	_, _, g1Gen, g2Gen := bls12381.Generators()

	// Lagrange basis points in natural (on-disk) order: G1Lagrange[i] is a
	// commitment to the i-th Lagrange basis polynomial, evaluated at the
	// secret via its barycentric weight omega_i/(s-omega_i) * (s^N-1)/N.
	lagrangeNatural := make([]bls12381.G1Affine, len(natural))
	for i, omega := range natural {
		var diff, weight fr.Element
		diff.Sub(&s, &omega)
		diff.Inverse(&diff)
		weight.Mul(&omega, &diff)
		weight.Mul(&weight, &numerator)

		var weightBig big.Int
		weight.BigInt(&weightBig)
		lagrangeNatural[i].ScalarMultiplication(&g1Gen, &weightBig)
	}

	var sBig big.Int
	s.BigInt(&sBig)
	g2Points := make([]bls12381.G2Affine, params.NumG2Points)
	g2Points[0] = g2Gen
	g2Points[1].ScalarMultiplication(&g2Gen, &sBig)
	power := new(big.Int).Set(&sBig)
	for i := 2; i < params.NumG2Points; i++ {
		power.Mul(power, &sBig)
		g2Points[i].ScalarMultiplication(&g2Gen, power)
	}

	return &SRS{
		G1Lagrange: bitReversalPermutation(lagrangeNatural),
		G2:         g2Points,
	}, nil
}
