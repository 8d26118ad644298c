package checkout

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"time"
)

const (
	SignatureDataURLPrefix = "data:image/png;base64,"
	MaxSignatureBytes      = 512 << 10
)

var (
	ErrSignerRequired      = errors.New("signer name is required")
	ErrSignatureFormat     = errors.New("signature must be a base64 PNG data URL")
	ErrSignatureTooLarge   = errors.New("signature image exceeds 512 KiB")
	ErrSignatureUnreadable = errors.New("signature image cannot be decoded")
)

type Signature struct {
	SignerName string
	SignedAt   time.Time
	PNG        []byte
	// Object key once uploaded; empty while the image is only held inline.
	StorageKey string
}

// NewSignature decodes and checks a captured signature pad image.
func NewSignature(signerName, dataURL string, signedAt time.Time) (Signature, error) {
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return Signature{}, ErrSignerRequired
	}
	if !strings.HasPrefix(dataURL, SignatureDataURLPrefix) {
		return Signature{}, ErrSignatureFormat
	}
	encoded := dataURL[len(SignatureDataURLPrefix):]
	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxSignatureBytes+2 {
		return Signature{}, ErrSignatureTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Signature{}, ErrSignatureFormat
	}
	if len(raw) > MaxSignatureBytes {
		return Signature{}, ErrSignatureTooLarge
	}
	if _, err := png.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return Signature{}, ErrSignatureUnreadable
	}
	return Signature{SignerName: signerName, SignedAt: signedAt, PNG: raw}, nil
}
