package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpt(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Opt
		wantErr bool
	}{
		{in: "", want: None},
		{in: "none", want: None},
		{in: "cpu", want: CPU},
		{in: "mem", want: Memory},
		{in: "trace", want: Trace},
		{in: "gio", want: Gio},
		{in: "heap", want: None, wantErr: true},
	} {
		got, err := ParseOpt(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			require.NoError(t, err, tc.in)
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNewProfiler(t *testing.T) {
	p := None.NewProfiler(nil)
	assert.Nil(t, p.Starter)
	// A profiler without a starter is inert.
	p.Start()
	p.Stop()

	p = CPU.NewProfiler(nil)
	assert.Equal(t, CPU, p.Type)
	assert.NotNil(t, p.Starter)
	assert.Nil(t, p.Recorder)

	p = Gio.NewProfiler(nil)
	assert.NotNil(t, p.Recorder)
	// Stopping before starting must not panic.
	p.Stop()
}
