package encoding_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/encoding"
)

func TestReadAll(t *testing.T) {
	const dump = `{"colaboradores":[{"nome":"Inovação Digital","tipo":"empresa"}]}`

	// "Inovação" with ç = 0xE7 and ã = 0xE3.
	latin1 := []byte(`{"colaboradores":[{"nome":"Inova` + "\xE7\xE3" + `o Digital","tipo":"empresa"}]}`)

	utf16le := []byte{0xFF, 0xFE}
	for _, r := range dump {
		utf16le = append(utf16le, byte(r), byte(r>>8))
	}

	tests := []struct {
		name    string
		input   []byte
		charset encoding.Charset
	}{
		{
			name:    "utf-8 passes through",
			input:   []byte(dump),
			charset: encoding.UTF8,
		},
		{
			name:    "utf-8 bom is stripped",
			input:   append([]byte{0xEF, 0xBB, 0xBF}, dump...),
			charset: encoding.UTF8BOM,
		},
		{
			name:  "single-byte latin is decoded",
			input: latin1,
		},
		{
			name:    "utf-16 little endian is decoded",
			input:   utf16le,
			charset: encoding.UTF16LE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cs, err := encoding.ReadAll(bytes.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, dump, string(got))
			if tt.charset != "" {
				assert.Equal(t, tt.charset, cs)
			}
		})
	}
}

func TestDetect_Empty(t *testing.T) {
	assert.Equal(t, encoding.UTF8, encoding.Detect(nil))
}
