// Package params holds the fixed EIP-4844 size constants shared by every
// layer of the verification core. Mirrors the role of go-ethereum's own
// params package, which is where the teacher keeps FieldElementsPerBlob and
// BlobCommitmentVersionKZG.
package params

const (
	// FieldElementsPerBlob is N, the number of scalar field elements packed
	// into one blob and the size of the evaluation domain.
	FieldElementsPerBlob = 4096

	// LogFieldElementsPerBlob is log2(FieldElementsPerBlob); the evaluation
	// domain's generator is the primitive 2^32-th root of unity raised to
	// 2^(32-LogFieldElementsPerBlob).
	LogFieldElementsPerBlob = 12

	// BytesPerFieldElement is the size of one canonical scalar encoding.
	BytesPerFieldElement = 32

	// BytesPerBlob is the total wire size of a blob.
	BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

	// BytesPerCommitment and BytesPerProof are both compressed G1 encodings.
	BytesPerCommitment = 48
	BytesPerProof      = 48

	// BytesPerG1Compressed and BytesPerG2Compressed are the wire sizes of
	// compressed G1/G2 points.
	BytesPerG1Compressed = 48
	BytesPerG2Compressed = 96

	// NumG2Points is the fixed number of G2 points carried by the trusted
	// setup file; only index 0 (generator) and 1 ([tau]*G2) are used by
	// verification, the rest are reserved for proof generation / cell
	// proofs out of this core's scope.
	NumG2Points = 65

	// BlobCommitmentVersionKZG is the version byte prepended to a blob's
	// versioned hash, per EIP-4844.
	BlobCommitmentVersionKZG = 0x01
)
