package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"nil bytes", nil, 0xef46db3751d8e999},
		{"empty bytes", []byte{}, 0xef46db3751d8e999},
		{"short bytes", []byte("test"), 0x4fdcca5ddb678139},
		{"long bytes", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"another", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum64(tt.data))
		})
	}
}

func TestSum64_SubsliceIndependent(t *testing.T) {
	buf := []byte("xx-test-yy")
	assert.Equal(t, Sum64([]byte("test")), Sum64(buf[3:7]))
}

func randBytes(n int) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return b
}

func BenchmarkSum64(b *testing.B) {
	data := randBytes(20)
	b.ResetTimer()
	for b.Loop() {
		Sum64(data)
	}
}
