package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_OrderAndCaseIndependent(t *testing.T) {
	a, _ := Fingerprint([]string{"Milk", "eggs"}, nil)
	b, _ := Fingerprint(nil, []string{"  EGGS ", "milk"})

	assert.Equal(t, a, b)
}

func TestFingerprint_ListAssignmentDoesNotMatter(t *testing.T) {
	a, _ := Fingerprint([]string{"milk"}, []string{"eggs"})
	b, _ := Fingerprint([]string{"eggs"}, []string{"milk"})
	c, _ := Fingerprint([]string{"eggs", "milk"}, nil)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestFingerprint_DifferentSetsDiffer(t *testing.T) {
	a, _ := Fingerprint([]string{"milk", "eggs"}, nil)
	b, _ := Fingerprint([]string{"milk", "eggs", "butter"}, nil)

	assert.NotEqual(t, a, b)
}

func TestFingerprint_NormalizedList(t *testing.T) {
	_, normalized := Fingerprint([]string{" Milk "}, []string{"EGGS"})

	assert.Equal(t, []string{"eggs", "milk"}, normalized)
}

func TestFingerprint_EmptyInputIsValid(t *testing.T) {
	hash, normalized := Fingerprint(nil, nil)

	assert.Len(t, hash, 64)
	assert.Empty(t, normalized)
}

func TestFingerprint_Deterministic(t *testing.T) {
	a, _ := Fingerprint([]string{"milk", "eggs"}, []string{"butter"})
	b, _ := Fingerprint([]string{"milk", "eggs"}, []string{"butter"})

	assert.Equal(t, a, b)
}
