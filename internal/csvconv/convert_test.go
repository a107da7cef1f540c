package csvconv

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
)

const players = `Name,Position,Nationality
Wojciech Szczesny,Goalkeeper,Poland
Lukasz Fabianski,Goalkeeper,Poland
`

func readDoc(t *testing.T, input string, opts Options) *Document {
	t.Helper()
	doc, err := Read(strings.NewReader(input), opts)
	require.NoError(t, err)
	return doc
}

func TestRead_WithHeader(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, players, Options{Delimiter: ",", Header: true})

	assert.Equal(t, []string{"Name", "Position", "Nationality"}, doc.Headers)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Lukasz Fabianski", doc.Rows[1][0])
}

func TestRead_WithoutHeader(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, players, Options{Delimiter: ",", Header: false})

	assert.Empty(t, doc.Headers)
	assert.Len(t, doc.Rows, 3)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		opts    Options
		wantErr error
	}{
		{"ragged row", "a,b\n1,2,3\n", Options{Delimiter: ",", Header: true}, errors.ErrInvalidCSV},
		{"stray quote", "a,b\n1,\"x\"y\n", Options{Delimiter: ","}, errors.ErrInvalidCSV},
		{"duplicate header", "a,a\n1,2\n", Options{Delimiter: ",", Header: true}, errors.ErrInvalidArgument},
		{"empty delimiter", "a\n", Options{Delimiter: ""}, errors.ErrInvalidArgument},
		{"multi char delimiter", "a\n", Options{Delimiter: "::"}, errors.ErrInvalidArgument},
		{"quote delimiter", "a\n", Options{Delimiter: `"`}, errors.ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(tc.input), tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRead_CustomDelimiter(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, "a;b\n1;2\n", Options{Delimiter: ";", Header: true})
	assert.Equal(t, []string{"a", "b"}, doc.Headers)
	assert.Equal(t, [][]string{{"1", "2"}}, doc.Rows)
}

func TestEncode_JSONPreservesColumnOrder(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, "zeta,alpha\nz,a\n", Options{Delimiter: ",", Header: true})

	data, err := Encode(doc, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "[\n  {\n    \"zeta\": \"z\",\n    \"alpha\": \"a\"\n  }\n]\n", string(data))
}

func TestEncode_JSONWithoutHeader(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, "a,b\n1,2\n", Options{Delimiter: ","})

	data, err := Encode(doc, FormatJSON)
	require.NoError(t, err)

	var got [][]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, got)
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, "zeta,alpha,kit\nz,a,1\n", Options{Delimiter: ",", Header: true})

	data, err := Encode(doc, FormatYAML)
	require.NoError(t, err)

	assert.True(t, strings.Index(string(data), "zeta") < strings.Index(string(data), "alpha"),
		"column order lost:\n%s", data)

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, map[string]string{"zeta": "z", "alpha": "a", "kit": "1"}, got[0])
}

func TestEncode_Table(t *testing.T) {
	t.Parallel()

	doc := readDoc(t, players, Options{Delimiter: ",", Header: true})

	data, err := Encode(doc, FormatTable)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Wojciech Szczesny")
	assert.Contains(t, out, "Goalkeeper")
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Encode(&Document{}, Format("toml"))
	require.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("toml")
	require.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestFormat_DefaultOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "output.json", FormatJSON.DefaultOutput())
	assert.Equal(t, "output.yaml", FormatYAML.DefaultOutput())
	assert.Empty(t, FormatTable.DefaultOutput())
}
