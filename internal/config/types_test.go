package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "seconds", input: `"30s"`, expected: 30 * time.Second},
		{name: "compound", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "milliseconds", input: `"300ms"`, expected: 300 * time.Millisecond},
		{name: "empty", input: `""`, expected: 0},
		{name: "garbage", input: `"fast"`, wantErr: true},
		{name: "bare number", input: `30`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Duration
			err := yaml.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration())
		})
	}
}

func TestDuration_MarshalYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(Duration(5 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, "5s\n", string(out))
}

func TestDuration_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1m30s", Duration(90*time.Second).String())
}

func TestStringOrList_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected StringOrList
		wantErr  bool
	}{
		{name: "single string", input: `"/home"`, expected: StringOrList{"/home"}},
		{name: "list", input: `["/home", "/"]`, expected: StringOrList{"/home", "/"}},
		{name: "empty list", input: `[]`, expected: StringOrList{}},
		{name: "mapping", input: `{path: /home}`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s StringOrList
			err := yaml.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestStringOrList_MarshalYAML(t *testing.T) {
	t.Parallel()

	single, err := yaml.Marshal(StringOrList{"/home"})
	require.NoError(t, err)
	assert.Equal(t, "/home\n", string(single))

	many, err := yaml.Marshal(StringOrList{"/home", "/"})
	require.NoError(t, err)
	assert.Contains(t, string(many), "- /home")
	assert.Contains(t, string(many), "- /")
}
