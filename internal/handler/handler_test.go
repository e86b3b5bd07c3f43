package handler

import (
	"errors"
	"fmt"
	"testing"
)

func TestLastErrorLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single line",
			err:  errors.New("connection refused"),
			want: "connection refused",
		},
		{
			name: "wrapped single line",
			err:  fmt.Errorf("failed to create skill: %w", errors.New("connection refused")),
			want: "failed to create skill: connection refused",
		},
		{
			name: "multi line keeps only the last",
			err:  errors.New("driver error:\ndetail: something broke\nconstraint violated on insert"),
			want: "constraint violated on insert",
		},
		{
			name: "trailing newline ignored",
			err:  errors.New("first\nsecond\n"),
			want: "second",
		},
		{
			name: "empty message",
			err:  errors.New(""),
			want: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastErrorLine(tt.err); got != tt.want {
				t.Errorf("lastErrorLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
