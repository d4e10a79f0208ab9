package twilio

import (
	"strings"
	"testing"
)

func TestEmptyResponse(t *testing.T) {
	got := EmptyResponse()
	want := `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	if got != want {
		t.Errorf("EmptyResponse() = %q, want %q", got, want)
	}
}

func TestMessageResponse(t *testing.T) {
	got := MessageResponse("No budget set up for August 2026 yet.")
	want := `<?xml version="1.0" encoding="UTF-8"?><Response><Message>No budget set up for August 2026 yet.</Message></Response>`
	if got != want {
		t.Errorf("MessageResponse() = %q, want %q", got, want)
	}
}

func TestMessageResponseEscapesMarkup(t *testing.T) {
	got := MessageResponse(`Try "$25 <coffee> & donuts"`)
	if strings.Contains(got, "<coffee>") {
		t.Errorf("unescaped user text in TwiML: %q", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("ampersand not escaped: %q", got)
	}
}
