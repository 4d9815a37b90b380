package datemath_test

import (
	"testing"
	"time"

	"inbox-triage/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")

	wednesday := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	friday := time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC)    // Friday, May 3, 2024
	saturday := time.Date(2024, 5, 4, 9, 30, 0, 0, time.UTC)  // Saturday, May 4, 2024

	tests := []struct {
		name   string
		text   string
		today  time.Time
		want   string
		wantOK bool
	}{
		{
			name:   "end of week from Wednesday",
			text:   "please finish this by end of week",
			today:  wednesday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "end of the week variant",
			text:   "need it by end of the week",
			today:  wednesday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "this week from Friday rolls a full week",
			text:   "can you do it this week",
			today:  friday,
			want:   "2024-05-10",
			wantOK: true,
		},
		{
			name:   "by friday from Wednesday",
			text:   "send the report by friday",
			today:  wednesday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "by friday from Friday rolls a full week",
			text:   "send the report by friday",
			today:  friday,
			want:   "2024-05-10",
			wantOK: true,
		},
		{
			name:   "bare weekday name",
			text:   "meeting notes due monday",
			today:  wednesday,
			want:   "2024-05-06",
			wantOK: true,
		},
		{
			name:   "saturday adjusts back to friday",
			text:   "deliverable due saturday",
			today:  wednesday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "sunday adjusts forward to monday",
			text:   "submit by sunday",
			today:  wednesday,
			want:   "2024-05-06",
			wantOK: true,
		},
		{
			name:   "tomorrow",
			text:   "please respond tomorrow",
			today:  wednesday,
			want:   "2024-05-02",
			wantOK: true,
		},
		{
			name:   "tomorrow landing on saturday moves to friday",
			text:   "please respond tomorrow",
			today:  friday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "today on a saturday moves to friday",
			text:   "need this today",
			today:  saturday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "next week",
			text:   "let's sync next week",
			today:  wednesday,
			want:   "2024-05-08",
			wantOK: true,
		},
		{
			name:   "slash numeric date",
			text:   "the deadline is 3/15/2024",
			today:  wednesday,
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "dashed numeric date on a saturday",
			text:   "closes 3-16-2024",
			today:  wednesday,
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "two digit year",
			text:   "due 3/15/24",
			today:  wednesday,
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "month day assumes current year",
			text:   "presentation on march 15",
			today:  wednesday,
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "day month assumes current year",
			text:   "presentation on 15 march",
			today:  wednesday,
			want:   "2024-03-15",
			wantOK: true,
		},
		{
			name:   "month day on weekend adjusts",
			text:   "launch on june 1",
			today:  wednesday,
			want:   "2024-05-31",
			wantOK: true,
		},
		{
			name:   "invalid numeric month degrades to no date",
			text:   "ref 13/45/2024",
			today:  wednesday,
			wantOK: false,
		},
		{
			name:   "this week outranks an explicit weekday",
			text:   "by monday or this week at the latest",
			today:  wednesday,
			want:   "2024-05-03",
			wantOK: true,
		},
		{
			name:   "weekday outranks tomorrow",
			text:   "tomorrow or monday works",
			today:  wednesday,
			want:   "2024-05-06",
			wantOK: true,
		},
		{
			name:   "no cue",
			text:   "just wanted to say thanks",
			today:  wednesday,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.text, tt.today)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if gotStr := datemath.FormatDate(got); gotStr != tt.want {
				t.Errorf("Resolve() got = %s, want %s", gotStr, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	today := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first, ok1 := resolver.Resolve("finish by friday", today)
	second, ok2 := resolver.Resolve("finish by friday", today)

	if ok1 != ok2 || !first.Equal(second) {
		t.Errorf("same input and today produced different results: %v vs %v", first, second)
	}
}
