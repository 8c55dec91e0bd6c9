package utils

import "github.com/google/uuid"

// UUIDGenerator produces application identifiers. UUIDv7 is preferred
// because its time-ordered prefix keeps the primary key index append-mostly;
// the random v4 fallback covers the (theoretical) v7 generation failure.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
