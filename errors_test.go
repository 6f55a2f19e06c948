package codec

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormatError(t *testing.T) {
	for _, tc := range []struct {
		err  *FormatError
		want string
	}{
		{
			err:  &FormatError{Codec: "hex", Offset: 0, Char: 'z', Msg: "must be in [0-9a-fA-F]"},
			want: "hex: invalid character 'z' at offset 0: must be in [0-9a-fA-F]",
		},
		{
			err:  &FormatError{Codec: "base2", Offset: -1, Msg: "must be eight digits per byte"},
			want: "base2: must be eight digits per byte",
		},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
		if !errors.Is(tc.err, ErrFormat) {
			t.Fatalf("%v: expected errors.Is(err, ErrFormat)", tc.err)
		}
		wrapped := fmt.Errorf("decoding digest: %w", tc.err)
		if !errors.Is(wrapped, ErrFormat) {
			t.Fatalf("%v: expected wrapped error to match ErrFormat", wrapped)
		}
		var fe *FormatError
		if !errors.As(wrapped, &fe) || fe != tc.err {
			t.Fatalf("%v: errors.As failed", wrapped)
		}
	}
	if errors.Is(errors.New("other"), ErrFormat) {
		t.Fatal("unrelated error matched ErrFormat")
	}
}
