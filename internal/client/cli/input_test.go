package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain line", "alice\n", "alice", false},
		{"trims whitespace", "  alice  \n", "alice", false},
		{"partial line at EOF", "alice", "alice", false},
		{"empty input", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Enter username or email", &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "Enter username or email")
		})
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	t.Run("returns the terminal read", func(t *testing.T) {
		readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }

		var out bytes.Buffer
		pw, err := GetPassword(&out)
		require.NoError(t, err)
		require.Equal(t, []byte("secret"), pw)
		require.Contains(t, out.String(), "Enter password: ")
	})

	t.Run("propagates terminal errors", func(t *testing.T) {
		readPassword = func(fd int) ([]byte, error) { return nil, io.ErrUnexpectedEOF }

		var out bytes.Buffer
		_, err := GetPassword(&out)
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}
