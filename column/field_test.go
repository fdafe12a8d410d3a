package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoice struct {
	InvoiceNumber string `grid:"number"`
	TotalAmount   float64
	Internal      string `grid:"-"`
	private       int
}

func TestField(t *testing.T) {
	byName := Field[invoice]("TotalAmount", "grid")
	byTag := Field[*invoice]("number", "grid")
	unknown := Field[invoice]("Missing", "grid")

	inv := invoice{InvoiceNumber: "2024-001", TotalAmount: 12.5, private: 1}

	v, ok := byName(inv)
	require.True(t, ok)
	assert.Equal(t, 12.5, v)

	v, ok = byTag(&inv)
	require.True(t, ok)
	assert.Equal(t, "2024-001", v)

	_, ok = byTag(nil)
	assert.False(t, ok, "nil pointer rows read as missing")

	_, ok = unknown(inv)
	assert.False(t, ok)
}

func TestFieldOnInterfaceRows(t *testing.T) {
	type other struct{ Name string }
	name := Field[any]("Name", "")

	v, ok := name(other{Name: "x"})
	require.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = name(invoice{})
	assert.False(t, ok, "a different row type without the field is missing")

	_, ok = name(nil)
	assert.False(t, ok)
}

func TestMapField(t *testing.T) {
	get := MapField("name")
	v, ok := get(map[string]any{"name": "Ada"})
	require.True(t, ok)
	assert.Equal(t, "Ada", v)
	_, ok = get(map[string]any{})
	assert.False(t, ok)
}

func TestFields(t *testing.T) {
	cols := Fields[invoice]("grid")
	require.Len(t, cols, 2)
	assert.Equal(t, Key("number"), cols[0].Key)
	assert.Equal(t, "Invoice Number", cols[0].Title)
	assert.Equal(t, Key("TotalAmount"), cols[1].Key)
	assert.Equal(t, "Total Amount", cols[1].Title)

	v, ok := cols[1].Value(invoice{TotalAmount: 3})
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	assert.Nil(t, Fields[int](""))
}

func TestSpacePascalCase(t *testing.T) {
	for name, want := range map[string]string{
		"":             "",
		"HelloWorld":   "Hello World",
		"_Hello_World": "Hello World",
		"helloWorld":   "hello World",
		"HTTPServer":   "HTTPServer",
	} {
		assert.Equal(t, want, spacePascalCase(name), name)
	}
}
