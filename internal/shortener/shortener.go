package shortener

import (
	"math/rand/v2"

	"github.com/sqids/sqids-go"
)

// saltRange bounds the random component mixed into every slug so that
// consecutive ids do not produce guessable neighbours.
const saltRange = 1 << 16

type Shortener struct {
	sqids *sqids.Sqids
}

func New(minLength int) (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: uint8(min(max(minLength, 1), 50)),
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

// Generate returns a slug for the given link id. Distinct ids always yield
// distinct slugs.
func (s *Shortener) Generate(id int64) (string, error) {
	return s.sqids.Encode([]uint64{uint64(id), rand.Uint64N(saltRange)})
}
