package clipboard

import (
	"errors"
	"testing"
)

func TestSceneBytes(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: `{"shapes":[]}`, want: `{"shapes":[]}`},
		{in: " \n{\"shapes\":[]}\n\x00", want: `{"shapes":[]}`},
		{in: "", err: ErrNoScene},
		{in: "hello", err: ErrNoScene},
		{in: "\x00", err: ErrNoScene},
	}
	for _, tt := range tests {
		got, err := sceneBytes([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("sceneBytes(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("sceneBytes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
