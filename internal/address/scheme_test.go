package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncrr/locus/internal/address"
)

func TestParseScheme_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		kind      address.SchemeKind
		connName  string
		consumed  int
		remainder string
	}{
		{
			name:      "BarePath_IsRegular",
			input:     "/a/b",
			kind:      address.SchemeRegular,
			consumed:  0,
			remainder: "/a/b",
		},
		{
			name:      "EmptyInput_IsRegular",
			input:     "",
			kind:      address.SchemeRegular,
			consumed:  0,
			remainder: "",
		},
		{
			name:      "RegularPrefix",
			input:     "regular:///a",
			kind:      address.SchemeRegular,
			consumed:  10,
			remainder: "/a",
		},
		{
			name:      "SearchPrefix",
			input:     "search:///a/b",
			kind:      address.SchemeSearch,
			consumed:  9,
			remainder: "/a/b",
		},
		{
			name:      "ArchivePrefix",
			input:     "archive://a/b",
			kind:      address.SchemeArchive,
			consumed:  10,
			remainder: "a/b",
		},
		{
			name:      "SftpPrefix_NameWithSlash",
			input:     "sftp://box-1/a",
			kind:      address.SchemeSftp,
			connName:  "box-1",
			consumed:  13,
			remainder: "a",
		},
		{
			name:      "SftpPrefix_NameAtEndOfInput",
			input:     "sftp://box-1",
			kind:      address.SchemeSftp,
			connName:  "box-1",
			consumed:  12,
			remainder: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scheme, consumed, err := address.ParseScheme([]byte(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.kind, scheme.Kind())
			assert.Equal(t, tt.connName, scheme.Name())
			assert.Equal(t, tt.consumed, consumed)
			assert.Equal(t, tt.remainder, tt.input[consumed:])
		})
	}
}

func TestParseScheme_Fail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "UnknownPrefix",
			input:   "ftp://x",
			wantErr: address.ErrUnknownScheme,
		},
		{
			name:    "SeparatorInsidePath",
			input:   "/dir://x",
			wantErr: address.ErrUnknownScheme,
		},
		{
			name:    "Sftp_EmptyName",
			input:   "sftp:///a",
			wantErr: address.ErrSchemeNameEmpty,
		},
		{
			name:    "Sftp_InvalidNameChar",
			input:   "sftp://bad!/a",
			wantErr: address.ErrSchemeNameInvalid,
		},
		{
			name:    "Sftp_NameWithSpace",
			input:   "sftp://two words/a",
			wantErr: address.ErrSchemeNameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := address.ParseScheme([]byte(tt.input))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSftpScheme_Success(t *testing.T) {
	t.Parallel()

	scheme, err := address.SftpScheme("box-1")

	require.NoError(t, err)
	assert.Equal(t, address.SchemeSftp, scheme.Kind())
	assert.Equal(t, "box-1", scheme.Name())
	assert.Equal(t, "sftp://box-1/", scheme.String())
}

func TestSftpScheme_Fail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		connName string
		wantErr  error
	}{
		{name: "EmptyName", connName: "", wantErr: address.ErrSchemeNameEmpty},
		{name: "Underscore", connName: "box_1", wantErr: address.ErrSchemeNameInvalid},
		{name: "Slash", connName: "a/b", wantErr: address.ErrSchemeNameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := address.SftpScheme(tt.connName)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSchemeString_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "regular://", address.RegularScheme().String())
	assert.Equal(t, "search://", address.SearchScheme().String())
	assert.Equal(t, "search_item://", address.SearchItemScheme().String())
	assert.Equal(t, "archive://", address.ArchiveScheme().String())
}

func TestSchemeCompare_Ordering(t *testing.T) {
	t.Parallel()

	boxA, err := address.SftpScheme("box-a")
	require.NoError(t, err)

	boxB, err := address.SftpScheme("box-b")
	require.NoError(t, err)

	ordered := []address.Scheme{
		address.RegularScheme(),
		address.SearchScheme(),
		address.SearchItemScheme(),
		address.ArchiveScheme(),
		boxA,
		boxB,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Negative(t, ordered[i-1].Compare(ordered[i]))
		assert.Positive(t, ordered[i].Compare(ordered[i-1]))
	}

	assert.Zero(t, boxA.Compare(boxA))
	assert.True(t, boxA.Equal(boxA))
	assert.False(t, boxA.Equal(boxB))
}
