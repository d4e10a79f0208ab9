package sms

import "testing"

func fptr(f float64) *float64 { return &f }
func sptr(s string) *string   { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ParsedMessage
	}{
		{
			name: "amount with dollar sign and note",
			body: "$25 coffee",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(25), Note: sptr("coffee")},
		},
		{
			name: "wants prefix",
			body: "wants 25 coffee",
			want: ParsedMessage{Track: TrackWants, Amount: fptr(25), Note: sptr("coffee")},
		},
		{
			name: "want prefix singular",
			body: "want 25 coffee",
			want: ParsedMessage{Track: TrackWants, Amount: fptr(25), Note: sptr("coffee")},
		},
		{
			name: "wants prefix case insensitive",
			body: "WANTS $12.50 movie tickets",
			want: ParsedMessage{Track: TrackWants, Amount: fptr(12.50), Note: sptr("movie tickets")},
		},
		{
			name: "bare number",
			body: "100",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(100)},
		},
		{
			name: "no amount",
			body: "hello there",
			want: ParsedMessage{Track: TrackRegular},
		},
		{
			name: "wants with no amount",
			body: "wants everything",
			want: ParsedMessage{Track: TrackWants},
		},
		{
			name: "decimal amount",
			body: "25.50 groceries trader joes",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(25.50), Note: sptr("groceries trader joes")},
		},
		{
			name: "single decimal digit",
			body: "$9.5 snack",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(9.5), Note: sptr("snack")},
		},
		{
			name: "surrounding whitespace",
			body: "  $8 bagel  ",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(8), Note: sptr("bagel")},
		},
		{
			// Third decimal digit falls outside the match and lands in
			// the note. Known grammar quirk, kept deliberately.
			name: "three decimal digits",
			body: "25.999",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(25.99), Note: sptr("9")},
		},
		{
			// Leftmost number wins even when a later one was meant as
			// the amount. Known ambiguity, kept deliberately.
			name: "leftmost number wins",
			body: "2 coffees for $5",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(2), Note: sptr("coffees for $5")},
		},
		{
			name: "amount mid-sentence",
			body: "spent $40 on gas",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(40), Note: sptr("spent  on gas")},
		},
		{
			name: "wants prefix requires whitespace",
			body: "wants5",
			want: ParsedMessage{Track: TrackRegular, Amount: fptr(5), Note: sptr("wants")},
		},
		{
			name: "empty body",
			body: "",
			want: ParsedMessage{Track: TrackRegular},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.body)

			if got.Track != tt.want.Track {
				t.Errorf("Parse(%q).Track = %q, want %q", tt.body, got.Track, tt.want.Track)
			}
			if !floatPtrEqual(got.Amount, tt.want.Amount) {
				t.Errorf("Parse(%q).Amount = %v, want %v", tt.body, fmtFloatPtr(got.Amount), fmtFloatPtr(tt.want.Amount))
			}
			if !stringPtrEqual(got.Note, tt.want.Note) {
				t.Errorf("Parse(%q).Note = %v, want %v", tt.body, fmtStringPtr(got.Note), fmtStringPtr(tt.want.Note))
			}
		})
	}
}

func TestParseNoteIsNilWhenAmountMissing(t *testing.T) {
	got := Parse("just words no numbers")
	if got.Amount != nil {
		t.Fatalf("Amount = %v, want nil", *got.Amount)
	}
	if got.Note != nil {
		t.Fatalf("Note = %q, want nil", *got.Note)
	}
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtFloatPtr(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func fmtStringPtr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
