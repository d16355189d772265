package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side identifiers for journal records.
// V7 UUIDs are time-ordered, which keeps journal reads in insertion order
// without an extra sort column.
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
