package slip39

import (
	"github.com/mrz1836/sigil/internal/crypto"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// secretshare.go implements the digest-share variant of Shamir's Secret
// Sharing the scheme relies on at every level (splitting the master
// secret into group shares, and splitting each group share into member
// shares). Unlike naive byte-wise Shamir, threshold-2 of the shares are
// random and the remaining two points are pinned: the secret itself at
// x=secretIndex, and an HMAC digest of the secret (plus random padding)
// at x=digestIndex. Recovery only succeeds if interpolating those two
// pinned points is internally consistent, which is what lets a wrong
// subset of shares be detected instead of silently reconstructing
// garbage.

// splitSecret partitions secret into shareCount shares such that any
// threshold of them reconstruct it exactly. The returned map is keyed by
// share index (x-coordinate), 0..shareCount-1.
func splitSecret(threshold, shareCount int, secret []byte) (map[byte][]byte, error) {
	if threshold < 1 || threshold > shareCount {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidGroupThreshold,
			"threshold %d must be between 1 and share count %d", threshold, shareCount)
	}
	if shareCount > maxShareCount {
		return nil, sigilerr.Wrap(sigilerr.ErrInsufficientSpace,
			"share count %d exceeds maximum of %d", shareCount, maxShareCount)
	}

	shares := make(map[byte][]byte, shareCount)

	if threshold == 1 {
		for i := 0; i < shareCount; i++ {
			value := make([]byte, len(secret))
			copy(value, secret)
			shares[byte(i)] = value
		}
		return shares, nil
	}

	randomShareCount := threshold - 2

	points := make([]point, 0, threshold)
	for i := 0; i < randomShareCount; i++ {
		randomValue, err := crypto.RandomBytes(len(secret))
		if err != nil {
			return nil, sigilerr.Wrap(err, "generating random share")
		}
		shares[byte(i)] = randomValue
		points = append(points, point{x: byte(i), y: randomValue})
	}

	randomPart, err := crypto.RandomBytes(len(secret) - digestLengthBytes)
	if err != nil {
		return nil, sigilerr.Wrap(err, "generating digest padding")
	}

	digestShareValue := make([]byte, 0, len(secret))
	digestShareValue = append(digestShareValue, digestOf(randomPart, secret)...)
	digestShareValue = append(digestShareValue, randomPart...)

	points = append(points,
		point{x: digestIndex, y: digestShareValue},
		point{x: secretIndex, y: secret},
	)

	for i := randomShareCount; i < shareCount; i++ {
		shares[byte(i)] = interpolate(points, byte(i))
	}

	return shares, nil
}

// recoverSecret reconstructs the original secret from threshold-many
// shares, verifying the embedded digest before returning. shares maps
// each share's x-coordinate to its value; all values must share the
// same length.
func recoverSecret(threshold int, shares map[byte][]byte) ([]byte, error) {
	if threshold == 1 {
		for _, v := range shares {
			out := make([]byte, len(v))
			copy(out, v)
			return out, nil
		}
		return nil, sigilerr.Wrap(sigilerr.ErrNotEnoughMemberShares, "no shares provided")
	}

	points := make([]point, 0, len(shares))
	for x, y := range shares {
		points = append(points, point{x: x, y: y})
	}

	secret := interpolate(points, secretIndex)
	digestShare := interpolate(points, digestIndex)

	if len(digestShare) < digestLengthBytes {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidShareSet, "digest share too short")
	}

	storedDigest := digestShare[:digestLengthBytes]
	randomPart := digestShare[digestLengthBytes:]
	computedDigest := digestOf(randomPart, secret)

	if !constantTimeEqual(storedDigest, computedDigest) {
		return nil, sigilerr.Wrap(sigilerr.ErrInvalidShareSet, "share digest mismatch, shares do not belong together")
	}

	return secret, nil
}

// constantTimeEqual reports whether a and b hold the same bytes without
// leaking timing information proportional to the position of the first
// mismatch.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
