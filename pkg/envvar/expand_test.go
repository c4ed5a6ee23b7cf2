package envvar_test

import (
	"testing"

	"github.com/edgectl/edgectl/pkg/envvar"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	t.Setenv("EDGECTL_TEST_TOKEN", "s3cret")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty value", input: "", want: ""},
		{name: "no placeholder", input: "plain", want: "plain"},
		{name: "set variable", input: "token=${EDGECTL_TEST_TOKEN}", want: "token=s3cret"},
		{name: "unset variable becomes empty", input: "${EDGECTL_TEST_UNSET}", want: ""},
		{name: "unset variable with default", input: "${EDGECTL_TEST_UNSET:-fallback}", want: "fallback"},
		{name: "unset variable with empty default", input: "${EDGECTL_TEST_UNSET:-}", want: ""},
		{name: "set variable ignores default", input: "${EDGECTL_TEST_TOKEN:-fallback}", want: "s3cret"},
		{
			name:  "multiple placeholders",
			input: "${EDGECTL_TEST_TOKEN}/${EDGECTL_TEST_UNSET:-v1}",
			want:  "s3cret/v1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, envvar.Expand(test.input))
		})
	}
}

func TestExpandBytes(t *testing.T) {
	t.Setenv("EDGECTL_TEST_TOKEN", "s3cret")

	assert.Equal(t, []byte("s3cret"), envvar.ExpandBytes([]byte("${EDGECTL_TEST_TOKEN}")))
}
