// Package sessionid generates sortable identifiers for games and players:
// a UUIDv7 encoded as a 26-character Crockford base32 string, so ids sort
// by creation time and are safe in filenames.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail, injectable for deterministic tests
type RandSource interface {
	Intn(n int) int
}

// Generator produces session ids with configurable randomness
type Generator struct {
	randSource RandSource
	now        func() time.Time
}

// NewGenerator creates a generator. A nil RandSource uses crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource, now: time.Now}
}

// New creates an id using crypto/rand
func New() string {
	return NewGenerator(nil).New()
}

// New creates an id from the current time and the generator's randomness
func (g *Generator) New() string {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then version/variant bits per UUIDv7,
	// remainder random
	ms := g.now().UnixMilli()
	for i := 0; i < 6; i++ {
		uuid[i] = byte(ms >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.Intn(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encode(uuid)
}

// encode packs 128 bits into 26 base32 characters, 5 bits at a time
func encode(data [16]byte) string {
	out := make([]byte, 26)
	for i := range out {
		bit := i * 5
		idx, off := bit/8, bit%8

		var v uint8
		if off <= 3 {
			v = (data[idx] >> (3 - off)) & 0x1f
		} else {
			v = (data[idx] << (off - 3)) & 0x1f
			if idx+1 < len(data) {
				v |= data[idx+1] >> (11 - off)
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks an id is 26 valid base32 characters
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("session id must be exactly 26 characters, got %d", len(id))
	}
	// First character carries the top 2 bits of padding and must stay low
	if id[0] > '7' {
		return fmt.Errorf("session id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		valid := false
		for j := 0; j < len(alphabet); j++ {
			if id[i] == alphabet[j] {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
