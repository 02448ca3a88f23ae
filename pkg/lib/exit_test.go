package lib

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	base := errors.New("no match")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", base, 1},
		{"with code", WithCode(base, 2), 2},
		{"wrapped", fmt.Errorf("lookup: %w", WithCode(base, 3)), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Errorf("Code(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	if WithCode(nil, 2) != nil {
		t.Error("WithCode(nil) should stay nil")
	}
	base := errors.New("no match")
	err := WithCode(base, 2)
	if !errors.Is(err, base) {
		t.Error("WithCode must keep the wrapped error")
	}
	if err.Error() != "no match" {
		t.Errorf("message changed: %q", err.Error())
	}
}
