package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
	"github.com/ethereum/go-blob-kzg/params"
)

// EvaluatePolyInEvaluationForm evaluates, at x, the unique degree-(N-1)
// polynomial whose evaluation at domain.Roots[i] is poly[i], using the
// barycentric formula:
//
//	f(x) = (x^N - 1)/N * sum_i  poly[i] * domain.Roots[i] / (x - domain.Roots[i])
//
// It first checks whether x lands exactly on a domain point, in which case
// the formula's denominator vanishes and the answer is simply poly[i] for
// the matching i; the teacher's original barycentric evaluator skips this
// check and would divide by zero for an on-domain x.
func EvaluatePolyInEvaluationForm(poly []fr.Element, domain *Domain, x fr.Element) (fr.Element, error) {
	if len(poly) != len(domain.Roots) {
		return fr.Element{}, kzgerrors.ErrBadArgs
	}

	for i, root := range domain.Roots {
		if root.Equal(&x) {
			return poly[i], nil
		}
	}

	n := big.NewInt(int64(len(poly)))

	var xPowN, one, numerator fr.Element
	xPowN.Exp(x, n)
	one.SetOne()
	numerator.Sub(&xPowN, &one)

	var nInv fr.Element
	nInv.SetUint64(uint64(len(poly)))
	nInv.Inverse(&nInv)
	numerator.Mul(&numerator, &nInv)

	var sum fr.Element
	for i, root := range domain.Roots {
		var diff, term fr.Element
		diff.Sub(&x, &root)
		diff.Inverse(&diff)
		term.Mul(&poly[i], &root)
		term.Mul(&term, &diff)
		sum.Add(&sum, &term)
	}

	var y fr.Element
	y.Mul(&sum, &numerator)
	return y, nil
}
