package twilio

import "encoding/xml"

// ContentType is the response content type Twilio expects from a
// messaging webhook.
const ContentType = "text/xml"

type messagingResponse struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message,omitempty"`
}

// EmptyResponse renders TwiML that sends nothing back to the sender.
// Used for silent outcomes so successful logging does not spam the user
// with confirmations.
func EmptyResponse() string {
	return renderTwiML(messagingResponse{})
}

// MessageResponse renders TwiML that replies to the sender with body.
func MessageResponse(body string) string {
	return renderTwiML(messagingResponse{Messages: []string{body}})
}

func renderTwiML(resp messagingResponse) string {
	out, err := xml.Marshal(resp)
	if err != nil {
		// A fixed two-field struct cannot fail to marshal; fall back to
		// the silent reply rather than surfacing raw XML errors to Twilio.
		return `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	}
	return `<?xml version="1.0" encoding="UTF-8"?>` + string(out)
}
