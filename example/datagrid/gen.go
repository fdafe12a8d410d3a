package main

import (
	"math/rand"
	"strings"
	"time"

	lorem "github.com/drhodes/golorem"
	"github.com/google/uuid"
)

// Record is a generated row of the demo.
type Record struct {
	ID      uuid.UUID `grid:"-"`
	Name    string    `grid:"name"`
	Company string    `grid:"company"`
	City    string    `grid:"city"`
	Amount  int       `grid:"amount"`
	Joined  time.Time `grid:"joined"`
	// Notes is nil for records without notes.
	Notes *string `grid:"notes"`
}

// Generate makes n records. The same seed yields the same records, except
// for the lorem text, which draws from the global source.
func Generate(n int, seed int64) []Record {
	var (
		r     = rand.New(rand.NewSource(seed))
		epoch = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
		out   = make([]Record, n)
	)
	for i := range out {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			id = uuid.New()
		}
		rec := Record{
			ID:      id,
			Name:    title(lorem.Word(3, 8)) + " " + title(lorem.Word(4, 10)),
			Company: title(lorem.Word(4, 12)) + " Ltd",
			City:    title(lorem.Word(4, 9)),
			Amount:  r.Intn(1_000_000),
			Joined:  epoch.Add(time.Duration(r.Int63n(int64(8 * 365 * 24 * time.Hour)))),
		}
		if r.Intn(3) == 0 {
			notes := lorem.Sentence(3, 8)
			rec.Notes = &notes
		}
		out[i] = rec
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
