package share

import (
	"strings"
	"testing"
)

func TestInviteMessage(t *testing.T) {
	msg := InviteMessage()
	if !strings.Contains(msg, appURL) {
		t.Errorf("invite missing app URL: %q", msg)
	}
	if !strings.Contains(msg, "100 free parts") {
		t.Errorf("invite missing part count: %q", msg)
	}
}

func TestResultMessage(t *testing.T) {
	msg := ResultMessage("Raj", 40, 47)
	for _, want := range []string{"Raj", "40/47", appURL} {
		if !strings.Contains(msg, want) {
			t.Errorf("result message missing %q: %q", want, msg)
		}
	}
}
