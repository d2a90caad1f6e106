// Package kzg4844 is the public verification API for EIP-4844 blob KZG
// proofs: loading a trusted setup, and checking single and batch KZG
// opening proofs against it. It composes the internal/kzg pairing and
// domain machinery with internal/fiatshamir's challenge derivation the way
// the teacher's crypto/kzg package composed its own (now superseded)
// aggregate-proof scheme.
package kzg4844

import (
	"io"
	"os"

	"github.com/ethereum/go-blob-kzg/internal/kzg"
)

// Settings holds the parsed trusted setup and the evaluation domain it was
// built against. A Settings value is immutable after construction and safe
// for concurrent use by any number of verification calls.
type Settings struct {
	srs    *kzg.SRS
	domain *kzg.Domain
}

// LoadTrustedSetup parses a trusted setup in the consensus-specs plain-text
// schema from r and builds the matching evaluation domain.
func LoadTrustedSetup(r io.Reader) (*Settings, error) {
	srs, err := kzg.ParseSetup(r)
	if err != nil {
		return nil, err
	}
	domain, err := kzg.BlobDomain()
	if err != nil {
		return nil, err
	}
	return &Settings{srs: srs, domain: domain}, nil
}

// LoadTrustedSetupFile opens path and calls LoadTrustedSetup on it.
func LoadTrustedSetupFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTrustedSetup(f)
}
