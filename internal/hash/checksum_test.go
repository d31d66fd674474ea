package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsChange(t *testing.T) {
	a := []byte{0, 0, 0, 0, 0, 0, 0, 0xe0, 20}
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0xe0, 25}
	assert.NotEqual(t, Checksum(a), Checksum(b))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 9*1024)
	for b.Loop() {
		Checksum(data)
	}
}
