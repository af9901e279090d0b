package cmd

import (
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/types"
)

func TestUserFacingMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation error passes through",
			err:  types.NewValidationError("Task title cannot be empty"),
			want: "Task title cannot be empty",
		},
		{
			name: "not found error passes through",
			err:  types.NewTaskNotFoundError(7),
			want: "Task ID 7 not found",
		},
		{
			name: "anything else is unexpected",
			err:  errors.New("boom"),
			want: "Unexpected error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userFacingMessage(tt.err); got != tt.want {
				t.Errorf("userFacingMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
