package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainPeriod     = "periods/period/v1"
	DomainCollection = "periods/collection/v1"
	DomainTrace      = "periods/trace/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// PeriodID computes the content-addressed id of a period record.
// Two periods with the same written endpoints, precision and boundaries
// share an id; the notation is derived and does not take part.
func PeriodID(rec PeriodRecord) (string, error) {
	canonical, err := MarshalCanonical(rec.identity())
	if err != nil {
		return "", fmt.Errorf("PeriodID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainPeriod, canonical), nil
}

// CollectionID computes the content-addressed id of a collection record.
// Member order matters: a collection is a sequence, not a set.
func CollectionID(rec CollectionRecord) (string, error) {
	members := make(Array, len(rec.Periods))
	for i, p := range rec.Periods {
		members[i] = p.identity()
	}
	obj := Object{
		"name":    String(rec.Name),
		"periods": members,
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("CollectionID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainCollection, canonical), nil
}

// TraceHash fingerprints any canonical value, such as a harness trace.
func TraceHash(v any) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("TraceHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTrace, canonical), nil
}
