package commands

import (
	"testing"
)

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID([]string{"12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 12 {
		t.Errorf("expected 12, got %d", id)
	}
}

func TestParseTaskID_NoArgs(t *testing.T) {
	_, err := ParseTaskID(nil)
	if err != ErrTaskIDRequired {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
	if got := reportTaskIDError(err); got != "error: task id required" {
		t.Errorf("unexpected report %q", got)
	}
}

func TestParseTaskID_Invalid(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "invalid task id: abc"},
		{[]string{"-3"}, "invalid task id: -3"},
		{[]string{"1a"}, "invalid task id: 1a"},
		{[]string{"١"}, "invalid task id: ١"},
		{[]string{"1", "2"}, "invalid task id: 1 2"},
		{[]string{"99999999999999999999999"}, "invalid task id: 99999999999999999999999"},
	}
	for _, tt := range tests {
		_, err := ParseTaskID(tt.args)
		if err == nil {
			t.Errorf("%v: expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, err.Error())
		}
	}
}

func TestIsAllDigits(t *testing.T) {
	if isAllDigits("") {
		t.Error("empty string is not all digits")
	}
	if !isAllDigits("0123") {
		t.Error("expected 0123 to be all digits")
	}
}
