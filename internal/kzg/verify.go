package kzg

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
)

// Verify checks a single KZG opening proof: that commitment opens, at the
// point z, to the value y.
//
// It builds [y]G1 - [z]proof - commitment and checks
//
//	e([y]G1 - [z]proof - commitment, [1]G2) . e(proof, [tau]G2) == 1
//
// which holds iff the committed polynomial f satisfies f(z) == y. Modified
// from the reference pairing check to take z and y as scalars directly,
// rather than bundling them into an OpeningProof struct.
func Verify(commitment, proof bls12381.G1Affine, z, y fr.Element, srs *SRS) (bool, error) {
	_, _, g1Gen, _ := bls12381.Generators()

	var yInt, negZInt big.Int
	y.BigInt(&yInt)
	var negZ fr.Element
	negZ.Neg(&z)
	negZ.BigInt(&negZInt)

	// [y]G1 + [-z]proof = [y - z*H(z)]G1
	var totalG1 bls12381.G1Jac
	totalG1.JointScalarMultiplication(&g1Gen, &proof, &yInt, &negZInt)

	var commitmentJac bls12381.G1Jac
	commitmentJac.FromAffine(&commitment)
	totalG1.SubAssign(&commitmentJac)

	var lhs bls12381.G1Affine
	lhs.FromJacobian(&totalG1)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{lhs, proof},
		[]bls12381.G2Affine{srs.G2Generator(), srs.G2Tau()},
	)
	if err != nil {
		return false, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}
	return ok, nil
}

// VerifyBatch checks n KZG opening proofs at once using a random linear
// combination: commitments, proofs, zs and ys must all have length n, and
// factors (the Fiat-Shamir-derived powers of a random challenge r) must
// have length n as well.
//
// Folding with externally supplied factors, rather than sampling them
// locally with crypto/rand the way a single-verifier library would, is
// what makes the combination deterministic and therefore safe to drive
// from a Fiat-Shamir transcript instead of a live RNG.
func VerifyBatch(commitments, proofs []bls12381.G1Affine, zs, ys, factors []fr.Element, srs *SRS) (bool, error) {
	n := len(commitments)
	if len(proofs) != n || len(zs) != n || len(ys) != n || len(factors) != n {
		return false, kzgerrors.ErrBadArgs
	}
	if n == 0 {
		return true, nil
	}
	if n == 1 {
		return Verify(commitments[0], proofs[0], zs[0], ys[0], srs)
	}

	config := ecc.MultiExpConfig{}

	var foldedProofs bls12381.G1Affine
	if _, err := foldedProofs.MultiExp(proofs, factors, config); err != nil {
		return false, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}

	var foldedCommitments bls12381.G1Affine
	if _, err := foldedCommitments.MultiExp(commitments, factors, config); err != nil {
		return false, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}

	var foldedY fr.Element
	for i := 0; i < n; i++ {
		var term fr.Element
		term.Mul(&ys[i], &factors[i])
		foldedY.Add(&foldedY, &term)
	}

	_, _, g1Gen, _ := bls12381.Generators()
	var foldedYInt big.Int
	foldedY.BigInt(&foldedYInt)
	var foldedYCommit bls12381.G1Affine
	foldedYCommit.ScalarMultiplication(&g1Gen, &foldedYInt)

	// F = foldedCommitments - [foldedY]G1 + sum_i (factor_i*z_i)*proof_i
	foldedCommitments.Sub(&foldedCommitments, &foldedYCommit)

	zFactors := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		zFactors[i].Mul(&factors[i], &zs[i])
	}
	var foldedZProofs bls12381.G1Affine
	if _, err := foldedZProofs.MultiExp(proofs, zFactors, config); err != nil {
		return false, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}
	foldedCommitments.Add(&foldedCommitments, &foldedZProofs)

	var negFoldedProofs bls12381.G1Affine
	negFoldedProofs.Neg(&foldedProofs)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{foldedCommitments, negFoldedProofs},
		[]bls12381.G2Affine{srs.G2Generator(), srs.G2Tau()},
	)
	if err != nil {
		return false, fmt.Errorf("%w: %s", kzgerrors.ErrUnexpected, err)
	}
	return ok, nil
}
