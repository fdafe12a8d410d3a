package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	ID   string
	Name string
}

func TestFacade(t *testing.T) {
	selected := NewKeys("b")
	var calls []string
	f := Facade[person]{
		Selected: selected,
		OnChange: func(key Key, on bool) {
			if on {
				calls = append(calls, "+"+string(key))
			} else {
				calls = append(calls, "-"+string(key))
			}
		},
		Key: func(p person, _ int) Key { return Key(p.ID) },
	}
	rows := []person{{ID: "a"}, {ID: "b"}, {ID: ""}}

	assert.False(t, f.Checked(rows[0], 0))
	assert.True(t, f.Checked(rows[1], 1))
	assert.Equal(t, Key("2"), f.KeyOf(rows[2], 2), "rows without a key fall back to their index")

	f.Toggle(rows[0], 0)
	f.Toggle(rows[1], 1)
	f.Toggle(rows[2], 2)
	assert.Equal(t, []string{"+a", "-b", "+2"}, calls)
	assert.Equal(t, []Key{"b"}, selected.Slice(), "the facade never mutates the set")
}

func TestFacadeWithoutState(t *testing.T) {
	var f Facade[person]
	assert.False(t, f.Checked(person{ID: "x"}, 0))
	assert.Equal(t, Key("7"), f.KeyOf(person{ID: "x"}, 7))
	// No callback is fine.
	f.Toggle(person{}, 0)
}

func TestKeys(t *testing.T) {
	k := NewKeys("a", "b", "a", "c")
	assert.Equal(t, []Key{"a", "b", "c"}, k.Slice())
	assert.Equal(t, 3, k.Len())

	k.Remove("b")
	assert.Equal(t, []Key{"a", "c"}, k.Slice())
	assert.False(t, k.Has("b"))
	k.Remove("missing")

	k.Set("d", true)
	k.Set("a", false)
	assert.Equal(t, []Key{"c", "d"}, k.Slice())
	assert.True(t, k.Has("d"))

	var zero Keys
	zero.Add("z")
	assert.True(t, zero.Has("z"))
}
