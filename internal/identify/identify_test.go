package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"9876543210", Mobile},
		{"6000000000", Mobile},
		{"5876543210", Unknown}, // first digit outside 6-9
		{"98765432100", Unknown},
		{"987654321", Unknown},
		{"98765a4321", Unknown},

		{"234567890121", Aadhaar},
		{"999999999999", Aadhaar},
		{"034567890121", Unknown}, // Aadhaar never starts with 0
		{"134567890121", Unknown},
		{"23456789012", Unknown},

		{"24ABCDE1234F1Z5", GST},
		{"24ABCDE1234F1Z", Unknown}, // truncated
		{"24abcde1234f1z5", Unknown},
		{"24ABCDE1234F0Z5", Unknown}, // 13th char may not be 0

		{"SBIN0000000", IFSC},
		{"sbin0000000", IFSC}, // bare-text classification is case-tolerant on letters
		{"SBIN1000000", Unknown},
		{"SBIN000000", Unknown},

		{"username@bank", UPI},
		{"user@fam", Fam},
		{"@fam", Fam},

		{"GJ01AB1234", Vehicle},
		{"DL1CAB1234", Vehicle},
		{"1234567890", Unknown},

		{"", Unknown},
		{"hello there", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.input), "input %q", tt.input)
	}
}

func TestIsMobileBoundaries(t *testing.T) {
	for _, first := range []byte{'6', '7', '8', '9'} {
		assert.True(t, IsMobile(string(first)+"876543210"))
	}
	for _, first := range []byte{'0', '1', '2', '3', '4', '5'} {
		assert.False(t, IsMobile(string(first)+"876543210"))
	}
}

func TestIsIFSC(t *testing.T) {
	assert.True(t, IsIFSC("SBIN0000000"))
	assert.True(t, IsIFSC("HDFC0CAGSBK"))
	assert.False(t, IsIFSC("SBIN1000000"), "5th character must be 0")
	assert.False(t, IsIFSC("SB1N0000000"), "first 4 must be letters")
	assert.False(t, IsIFSC("SBIN00000001"), "length must be 11")
}

func TestIsVehicle(t *testing.T) {
	assert.True(t, IsVehicle("GJ01AB1234"))
	assert.True(t, IsVehicle("DL1CAB1234"))
	assert.True(t, IsVehicle("MH12ABC4321"))
	assert.False(t, IsVehicle("gj01ab1234"), "letters must be upper case")
	assert.False(t, IsVehicle("G101AB1234"))
	assert.False(t, IsVehicle("GJ01AB123"))
}

func TestUPIFamSplit(t *testing.T) {
	assert.True(t, IsUPI("someone@bank"))
	assert.False(t, IsUPI("someone@fam"), "fam addresses are not generic UPI")
	assert.False(t, IsUPI("plain text"))
	assert.True(t, IsFamID("someone@fam"))
	assert.False(t, IsFamID("someone@bank"))
}

// Mobile wins over any later kind when the priority order is applied.
func TestClassifyPriorityOrder(t *testing.T) {
	assert.Equal(t, Mobile, Classify("9876543210"))
	assert.NotEqual(t, Vehicle, Classify("9876543210"))
}
