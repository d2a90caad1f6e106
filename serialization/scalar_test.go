package serialization

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-blob-kzg/kzgerrors"
)

func TestDeserializeScalarRoundTrip(t *testing.T) {
	var want fr.Element
	want.SetUint64(12345)

	b := SerializeScalar(want)
	got, err := DeserializeScalar(b)
	if err != nil {
		t.Fatalf("DeserializeScalar: %v", err)
	}
	if !got.Equal(&want) {
		t.Fatalf("round trip mismatch: got %s want %s", got.String(), want.String())
	}
	if SerializeScalar(got) != b {
		t.Fatalf("re-encoding did not reproduce the original bytes")
	}
}

func TestDeserializeScalarRejectsOutOfRange(t *testing.T) {
	// The field modulus itself, q, is always out of range: [0, q) excludes q.
	modBytes := fr.Modulus().Bytes()
	var b ScalarBytes
	copy(b[len(b)-len(modBytes):], modBytes)

	_, err := DeserializeScalar(b)
	if !errors.Is(err, kzgerrors.ErrBadArgs) {
		t.Fatalf("expected ErrBadArgs, got %v", err)
	}
}

func TestDeserializeScalarRejectsAllOnes(t *testing.T) {
	var b ScalarBytes
	for i := range b {
		b[i] = 0xff
	}
	if _, err := DeserializeScalar(b); !errors.Is(err, kzgerrors.ErrBadArgs) {
		t.Fatalf("expected ErrBadArgs for all-0xff scalar, got %v", err)
	}
}

func TestNewScalarBytesRejectsWrongLength(t *testing.T) {
	if _, err := NewScalarBytes(make([]byte, 31)); !errors.Is(err, kzgerrors.ErrInvalidBytesLength) {
		t.Fatalf("expected ErrInvalidBytesLength, got %v", err)
	}
	if _, err := NewScalarBytes(make([]byte, 33)); !errors.Is(err, kzgerrors.ErrInvalidBytesLength) {
		t.Fatalf("expected ErrInvalidBytesLength, got %v", err)
	}
}
