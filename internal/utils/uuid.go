package utils

import "github.com/google/uuid"

// UUIDGenerator produces request ids.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a generator of time-ordered UUIDs.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
