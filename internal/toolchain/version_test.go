package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare", input: "2.9.6\n", want: "2.9.6"},
		{name: "v prefix", input: "v8.11.3", want: "8.11.3"},
		{name: "vue cli 3+", input: "@vue/cli 4.5.13", want: "4.5.13"},
		{name: "prerelease", input: "3.0.0-beta.16", want: "3.0.0-beta.16"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "command not found", wantErr: true},
		{name: "two components", input: "2.9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestVersion_AtLeast(t *testing.T) {
	tests := []struct {
		version string
		min     string
		want    bool
	}{
		{"2.8.0", "2.8.0", true},
		{"2.9.6", "2.8.0", true},
		{"3.0.0", "2.8.0", true},
		{"2.7.9", "2.8.0", false},
		{"1.10.0", "2.8.0", false},
		{"2.10.0", "2.9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+">="+tt.min, func(t *testing.T) {
			v := MustParseVersion(tt.version)
			assert.Equal(t, tt.want, v.AtLeast(MustParseVersion(tt.min)))
		})
	}
}

func TestVersion_AtLeastNil(t *testing.T) {
	var v *Version
	assert.False(t, v.AtLeast(MustParseVersion("1.0.0")))
	assert.False(t, MustParseVersion("1.0.0").AtLeast(nil))
	assert.Equal(t, "", v.String())
}
