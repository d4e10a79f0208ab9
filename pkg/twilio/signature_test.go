package twilio

import "testing"

// Worked example from Twilio's webhook security documentation.
func twilioDocsRequest() (token, url string, params map[string]string) {
	return "12345",
		"https://mycompany.com/myapp.php?foo=1&bar=2",
		map[string]string{
			"CallSid": "CA1234567890ABCDE",
			"Caller":  "+12349013030",
			"Digits":  "1234",
			"From":    "+12349013030",
			"To":      "+18005551212",
		}
}

func TestComputeSignatureMatchesTwilioExample(t *testing.T) {
	token, url, params := twilioDocsRequest()

	got := NewValidator(token).ComputeSignature(url, params)
	want := "0/KCTR6DLpKmkAf8muzZqo1nDgQ="
	if got != want {
		t.Errorf("ComputeSignature = %q, want %q", got, want)
	}
}

func TestValidateAcceptsCorrectSignature(t *testing.T) {
	token, url, params := twilioDocsRequest()
	v := NewValidator(token)

	signature := v.ComputeSignature(url, params)
	if !v.Validate(signature, url, params) {
		t.Error("correct signature rejected")
	}
}

func TestValidateRejectsTamperedRequests(t *testing.T) {
	token, url, params := twilioDocsRequest()
	v := NewValidator(token)
	signature := v.ComputeSignature(url, params)

	t.Run("changed parameter value", func(t *testing.T) {
		tampered := clone(params)
		tampered["Digits"] = "9999"
		if v.Validate(signature, url, tampered) {
			t.Error("tampered params accepted")
		}
	})

	t.Run("added parameter", func(t *testing.T) {
		tampered := clone(params)
		tampered["Extra"] = "x"
		if v.Validate(signature, url, tampered) {
			t.Error("extra param accepted")
		}
	})

	t.Run("removed parameter", func(t *testing.T) {
		tampered := clone(params)
		delete(tampered, "To")
		if v.Validate(signature, url, tampered) {
			t.Error("missing param accepted")
		}
	})

	t.Run("different url", func(t *testing.T) {
		if v.Validate(signature, url+"x", params) {
			t.Error("different URL accepted")
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		if NewValidator("54321").Validate(signature, url, params) {
			t.Error("wrong auth token accepted")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if v.Validate("", url, params) {
			t.Error("empty signature accepted")
		}
	})
}

// The canonical string sorts parameters by name, so the signature is
// independent of the order the map happens to iterate in. Run the
// computation repeatedly to shake out any ordering dependence.
func TestComputeSignatureIsOrderIndependent(t *testing.T) {
	token, url, params := twilioDocsRequest()
	v := NewValidator(token)

	want := v.ComputeSignature(url, params)
	for i := 0; i < 50; i++ {
		if got := v.ComputeSignature(url, clone(params)); got != want {
			t.Fatalf("iteration %d: signature %q != %q", i, got, want)
		}
	}
}

func TestComputeSignatureNoParams(t *testing.T) {
	v := NewValidator("secret")
	// GET-style requests sign only the URL; just ensure this is stable
	// and non-empty.
	got := v.ComputeSignature("https://example.com/api/sms", nil)
	if got == "" {
		t.Error("empty signature for URL-only request")
	}
	if got != v.ComputeSignature("https://example.com/api/sms", map[string]string{}) {
		t.Error("nil and empty params should sign identically")
	}
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
