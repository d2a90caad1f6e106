package kzg

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
	"github.com/ethereum/go-blob-kzg/params"
)

// SRS is the parsed structured reference string: the Lagrange-basis G1
// points used to commit to and open blob polynomials, and the two G2 points
// ([1]G2 and [tau]G2) the pairing check needs. G1Lagrange is stored in
// bit-reversal permuted order, matching Domain.Roots index for index.
type SRS struct {
	G1Lagrange []bls12381.G1Affine
	G2         []bls12381.G2Affine
}

// G2Generator and G2Tau are the only two G2 points verification ever uses;
// every other entry in SRS.G2 exists only to support proof generation and
// cell proofs, out of this package's scope.
func (s *SRS) G2Generator() bls12381.G2Affine { return s.G2[0] }
func (s *SRS) G2Tau() bls12381.G2Affine       { return s.G2[1] }

// ParseSetup reads a trusted setup in the plain-text format used by the
// consensus-specs reference trusted_setup.txt: the G1 point count, the G2
// point count, then that many hex-encoded compressed G1 points (Lagrange
// basis) followed by that many hex-encoded compressed G2 points (monomial
// basis). Tokens are separated by any whitespace, one per line in the
// reference file. Every point is checked for subgroup membership by the
// underlying decoder; any parse or validity failure is reported as
// ErrInvalidTrustedSetup.
func ParseSetup(r io.Reader) (*SRS, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	n1, err := readCountLine(scanner, "G1")
	if err != nil {
		return nil, err
	}
	n2, err := readCountLine(scanner, "G2")
	if err != nil {
		return nil, err
	}
	if n1 != params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: expected %d G1 points, found %d", kzgerrors.ErrInvalidTrustedSetup, params.FieldElementsPerBlob, n1)
	}
	if n2 != params.NumG2Points {
		return nil, fmt.Errorf("%w: expected %d G2 points, found %d", kzgerrors.ErrInvalidTrustedSetup, params.NumG2Points, n2)
	}

	g1Lagrange, err := readG1Points(scanner, n1)
	if err != nil {
		return nil, err
	}
	g2Points, err := readG2Points(scanner, n2)
	if err != nil {
		return nil, err
	}

	return &SRS{
		G1Lagrange: bitReversalPermutation(g1Lagrange),
		G2:         g2Points,
	}, nil
}

func readCountLine(scanner *bufio.Scanner, label string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: missing %s point count", kzgerrors.ErrInvalidTrustedSetup, label)
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: malformed %s point count: %s", kzgerrors.ErrInvalidTrustedSetup, label, err)
	}
	return n, nil
}

func readG1Points(scanner *bufio.Scanner, n int) ([]bls12381.G1Affine, error) {
	out := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d G1 points, found %d", kzgerrors.ErrInvalidTrustedSetup, n, i)
		}
		b, err := hex.DecodeString(scanner.Text())
		if err != nil || len(b) != params.BytesPerG1Compressed {
			return nil, fmt.Errorf("%w: malformed G1 point at line %d", kzgerrors.ErrInvalidTrustedSetup, i)
		}
		if _, err := out[i].SetBytes(b); err != nil {
			return nil, fmt.Errorf("%w: G1 point at line %d: %s", kzgerrors.ErrInvalidTrustedSetup, i, err)
		}
	}
	return out, nil
}

func readG2Points(scanner *bufio.Scanner, n int) ([]bls12381.G2Affine, error) {
	out := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d G2 points, found %d", kzgerrors.ErrInvalidTrustedSetup, n, i)
		}
		b, err := hex.DecodeString(scanner.Text())
		if err != nil || len(b) != params.BytesPerG2Compressed {
			return nil, fmt.Errorf("%w: malformed G2 point at line %d", kzgerrors.ErrInvalidTrustedSetup, i)
		}
		if _, err := out[i].SetBytes(b); err != nil {
			return nil, fmt.Errorf("%w: G2 point at line %d: %s", kzgerrors.ErrInvalidTrustedSetup, i, err)
		}
	}
	return out, nil
}
