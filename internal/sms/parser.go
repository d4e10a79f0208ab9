// Package sms parses inbound message bodies into structured logging
// intents. Pure text processing; no I/O.
package sms

import (
	"regexp"
	"strconv"
	"strings"
)

// Track selects which budget a message logs against.
type Track string

const (
	TrackRegular Track = "regular"
	TrackWants   Track = "wants"
)

// ParsedMessage is the result of parsing a message body. A nil Amount
// means the body had no recognizable amount token and must be treated
// as unparseable by the caller; Parse itself never fails.
type ParsedMessage struct {
	Track  Track
	Amount *float64
	Note   *string
}

var (
	// "wants"/"want" keyword, case-insensitive, with required
	// trailing whitespace.
	trackPrefixRegex = regexp.MustCompile(`(?i)^wants?\s+`)

	// Amount token: optional $, digits, optional 1-2 decimals.
	// Leftmost match wins, so a note whose text starts with a number
	// ("2 coffees for $5") is read as amount 2, a known ambiguity of
	// the grammar, kept as observed behavior. Likewise a third decimal
	// digit falls outside the match and lands in the note ("25.999"
	// parses as 25.99 with note "9").
	amountRegex = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)
)

// Parse extracts track, amount, and note from a raw message body.
// Examples:
//
//	"$25 coffee"      -> regular, 25, "coffee"
//	"wants 25 coffee" -> wants, 25, "coffee"
//	"100"             -> regular, 100, no note
//	"hello there"     -> regular, no amount (unparseable)
func Parse(body string) ParsedMessage {
	text := strings.TrimSpace(body)

	track := TrackRegular
	if loc := trackPrefixRegex.FindStringIndex(text); loc != nil {
		track = TrackWants
		text = text[loc[1]:]
	}

	match := amountRegex.FindStringSubmatch(text)
	if match == nil {
		return ParsedMessage{Track: track}
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return ParsedMessage{Track: track}
	}

	// Remove the exact matched token (including any $) once; whatever
	// remains, trimmed, is the note verbatim.
	rest := strings.TrimSpace(strings.Replace(text, match[0], "", 1))

	parsed := ParsedMessage{Track: track, Amount: &amount}
	if rest != "" {
		parsed.Note = &rest
	}
	return parsed
}
