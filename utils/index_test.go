package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestApplySlicePagination(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	assert.Equal(t, rows, ApplySlicePagination(rows, nil, nil))
	assert.Equal(t, []int{1, 2}, ApplySlicePagination(rows, intPtr(2), intPtr(1)))
	assert.Equal(t, []int{3, 4}, ApplySlicePagination(rows, intPtr(2), intPtr(2)))
	assert.Equal(t, []int{5}, ApplySlicePagination(rows, intPtr(2), intPtr(3)))
	assert.Empty(t, ApplySlicePagination(rows, intPtr(2), intPtr(4)))
	assert.Equal(t, rows, ApplySlicePagination(rows, intPtr(0), intPtr(1)))
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("TKT-1234567890", 128)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic header
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
