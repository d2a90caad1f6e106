package kzg4844

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/internal/fiatshamir"
	"github.com/ethereum/go-blob-kzg/internal/kzg"
	"github.com/ethereum/go-blob-kzg/params"
	"github.com/ethereum/go-blob-kzg/serialization"
)

// testSettings builds Settings around the module's insecure, secret-known
// test SRS (NewInsecureTestSRS), so these tests exercise the real
// FieldElementsPerBlob-sized verification path without a ceremony file.
func testSettings(t *testing.T) (*Settings, fr.Element) {
	t.Helper()

	domain, err := kzg.BlobDomain()
	if err != nil {
		t.Fatalf("BlobDomain: %v", err)
	}
	srs, err := kzg.NewInsecureTestSRS(kzg.InsecureTestSecret)
	if err != nil {
		t.Fatalf("NewInsecureTestSRS: %v", err)
	}
	var secret fr.Element
	secret.SetUint64(kzg.InsecureTestSecret)

	return &Settings{srs: srs, domain: domain}, secret
}

// validBlobFixture builds a self-consistent (blob, commitment, proof)
// triple by committing and opening with the test SRS's known secret —
// a test-only shortcut; a real prover never has the secret.
func validBlobFixture(t *testing.T, settings *Settings, secret fr.Element, seed uint64) (serialization.Blob, serialization.Commitment, serialization.Proof) {
	t.Helper()

	poly := make([]fr.Element, params.FieldElementsPerBlob)
	for i := range poly {
		poly[i].SetUint64(seed + uint64(i))
	}

	var blob serialization.Blob
	for i, e := range poly {
		enc := serialization.SerializeScalar(e)
		copy(blob[i*params.BytesPerFieldElement:(i+1)*params.BytesPerFieldElement], enc[:])
	}

	_, _, g1Gen, _ := bls12381.Generators()

	fs, err := kzg.EvaluatePolyInEvaluationForm(poly, settings.domain, secret)
	if err != nil {
		t.Fatalf("EvaluatePolyInEvaluationForm(secret): %v", err)
	}
	var fsBig big.Int
	fs.BigInt(&fsBig)
	var commitmentPoint bls12381.G1Affine
	commitmentPoint.ScalarMultiplication(&g1Gen, &fsBig)
	commitment := serialization.SerializeCommitment(commitmentPoint)

	z := fiatshamir.ComputeChallenge(blob, commitment)
	y, err := kzg.EvaluatePolyInEvaluationForm(poly, settings.domain, z)
	if err != nil {
		t.Fatalf("EvaluatePolyInEvaluationForm(z): %v", err)
	}

	var num, denom, q fr.Element
	num.Sub(&fs, &y)
	denom.Sub(&secret, &z)
	denom.Inverse(&denom)
	q.Mul(&num, &denom)

	var qBig big.Int
	q.BigInt(&qBig)
	var proofPoint bls12381.G1Affine
	proofPoint.ScalarMultiplication(&g1Gen, &qBig)
	proof := serialization.SerializeProof(proofPoint)

	return blob, commitment, proof
}

func TestVerifyBlobKZGProofAcceptsValidProof(t *testing.T) {
	settings, secret := testSettings(t)
	blob, commitment, proof := validBlobFixture(t, settings, secret, 1)

	ok, err := VerifyBlobKZGProof(blob, commitment, proof, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProof: %v", err)
	}
	if !ok {
		t.Fatalf("expected a valid blob proof to verify")
	}
}

func TestVerifyBlobKZGProofRejectsTamperedProof(t *testing.T) {
	settings, secret := testSettings(t)
	blob, commitment, proof := validBlobFixture(t, settings, secret, 1)

	proof[0] ^= 0xff // corrupt the compressed point's flag/high bits

	_, err := VerifyBlobKZGProof(blob, commitment, proof, settings)
	if err == nil {
		t.Fatalf("expected a decode error for a corrupted proof encoding")
	}
}

func TestVerifyBlobKZGProofRejectsMismatchedCommitment(t *testing.T) {
	settings, secret := testSettings(t)
	blob, _, proof := validBlobFixture(t, settings, secret, 1)
	_, otherCommitment, _ := validBlobFixture(t, settings, secret, 99)

	ok, err := VerifyBlobKZGProof(blob, otherCommitment, proof, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProof: %v", err)
	}
	if ok {
		t.Fatalf("expected verification to fail against a mismatched commitment")
	}
}

func TestVerifyKZGProofRejectsPointAtInfinityProof(t *testing.T) {
	settings, secret := testSettings(t)
	blob, commitment, _ := validBlobFixture(t, settings, secret, 1)

	z := fiatshamir.ComputeChallenge(blob, commitment)
	poly, err := blob.Polynomial()
	if err != nil {
		t.Fatalf("Polynomial: %v", err)
	}
	y, err := kzg.EvaluatePolyInEvaluationForm(poly, settings.domain, z)
	if err != nil {
		t.Fatalf("EvaluatePolyInEvaluationForm: %v", err)
	}

	var identity bls12381.G1Affine // zero value is the point at infinity
	infinityProof := serialization.SerializeProof(identity)

	ok, err := VerifyKZGProof(commitment, serialization.SerializeScalar(z), serialization.SerializeScalar(y), infinityProof, settings)
	if err != nil {
		t.Fatalf("VerifyKZGProof: %v", err)
	}
	if ok {
		t.Fatalf("expected a point-at-infinity proof to fail verification")
	}
}

func TestVerifyBlobKZGProofBatchEmptyIsTrue(t *testing.T) {
	settings, _ := testSettings(t)

	ok, err := VerifyBlobKZGProofBatch(nil, nil, nil, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProofBatch: %v", err)
	}
	if !ok {
		t.Fatalf("expected an empty batch to verify as true")
	}
}

func TestVerifyBlobKZGProofBatchRejectsLengthMismatch(t *testing.T) {
	settings, secret := testSettings(t)
	blob, commitment, proof := validBlobFixture(t, settings, secret, 1)

	_, err := VerifyBlobKZGProofBatch(
		[]serialization.Blob{blob, blob},
		[]serialization.Commitment{commitment},
		[]serialization.Proof{proof},
		settings,
	)
	if err == nil {
		t.Fatalf("expected an error for mismatched batch lengths")
	}
}

func TestVerifyBlobKZGProofBatchSingleMatchesVerifyBlobKZGProof(t *testing.T) {
	settings, secret := testSettings(t)
	blob, commitment, proof := validBlobFixture(t, settings, secret, 1)

	single, err := VerifyBlobKZGProof(blob, commitment, proof, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProof: %v", err)
	}

	batch, err := VerifyBlobKZGProofBatch(
		[]serialization.Blob{blob},
		[]serialization.Commitment{commitment},
		[]serialization.Proof{proof},
		settings,
	)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProofBatch: %v", err)
	}
	if batch != single {
		t.Fatalf("single-element batch result (%v) disagreed with VerifyBlobKZGProof (%v)", batch, single)
	}
}

func TestVerifyBlobKZGProofBatchAcceptsMultipleValidProofs(t *testing.T) {
	settings, secret := testSettings(t)

	const n = 3
	blobs := make([]serialization.Blob, n)
	commitments := make([]serialization.Commitment, n)
	proofs := make([]serialization.Proof, n)
	for i := 0; i < n; i++ {
		blobs[i], commitments[i], proofs[i] = validBlobFixture(t, settings, secret, uint64(i+1))
	}

	ok, err := VerifyBlobKZGProofBatch(blobs, commitments, proofs, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProofBatch: %v", err)
	}
	if !ok {
		t.Fatalf("expected a batch of valid proofs to verify")
	}
}

func TestVerifyBlobKZGProofBatchRejectsOneBadProof(t *testing.T) {
	settings, secret := testSettings(t)

	const n = 3
	blobs := make([]serialization.Blob, n)
	commitments := make([]serialization.Commitment, n)
	proofs := make([]serialization.Proof, n)
	for i := 0; i < n; i++ {
		blobs[i], commitments[i], proofs[i] = validBlobFixture(t, settings, secret, uint64(i+1))
	}
	_, _, proofs[1] = validBlobFixture(t, settings, secret, 1000) // swap in an unrelated proof

	ok, err := VerifyBlobKZGProofBatch(blobs, commitments, proofs, settings)
	if err != nil {
		t.Fatalf("VerifyBlobKZGProofBatch: %v", err)
	}
	if ok {
		t.Fatalf("expected the batch to fail when one tuple is inconsistent")
	}
}

func TestCalcBlobHashV1SetsVersionByte(t *testing.T) {
	var commitment serialization.Commitment
	commitment[0] = 0xaa

	hash := CalcBlobHashV1(commitment)
	if hash[0] != params.BlobCommitmentVersionKZG {
		t.Fatalf("expected versioned hash's first byte to be %#x, got %#x", params.BlobCommitmentVersionKZG, hash[0])
	}
}
