package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
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
			assert.Equal(t, tt.sum, Sum64([]byte(tt.data)))
			assert.Equal(t, tt.sum, Sum64String(tt.data))
		})
	}
}

func TestDigest_MatchesOneShot(t *testing.T) {
	data := make([]byte, 10_000)
	_, _ = rand.New(rand.NewSource(1)).Read(data) //nolint:gosec

	d := NewDigest()
	for off := 0; off < len(data); off += 777 {
		_, _ = d.Write(data[off:min(off+777, len(data))])
	}
	assert.Equal(t, Sum64(data), d.Sum64())
}

func BenchmarkSum64(b *testing.B) {
	data := make([]byte, 64*1024)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Sum64(data)
	}
}
