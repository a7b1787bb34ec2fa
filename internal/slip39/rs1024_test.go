package slip39

import "testing"

func TestChecksumRoundtrip(t *testing.T) {
	t.Parallel()

	data := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	checksum := createChecksum(data)

	full := append(append([]uint16{}, data...), checksum[:]...)
	if !verifyChecksum(full) {
		t.Fatal("expected checksum to verify")
	}
}

func TestChecksumDetectsTampering(t *testing.T) {
	t.Parallel()

	data := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	checksum := createChecksum(data)
	full := append(append([]uint16{}, data...), checksum[:]...)

	for i := range full {
		tampered := append([]uint16{}, full...)
		tampered[i] = (tampered[i] + 1) % radix
		if verifyChecksum(tampered) {
			t.Fatalf("tampering word %d went undetected", i)
		}
	}
}
