package notifications

import (
	"testing"
)

func TestSubstituteMergeTags(t *testing.T) {
	tests := []struct {
		name string
		body string
		data MergeData
		want string
	}{
		{
			name: "all tags",
			body: "Hi {{first_name}} {{last_name}} ({{email}}), you gave {{donation_amount}}.",
			data: MergeData{FirstName: "Anna", LastName: "Lee", Email: "anna@example.org", DonationAmount: 2550},
			want: "Hi Anna Lee (anna@example.org), you gave $25.50.",
		},
		{
			name: "zero donation renders empty",
			body: "Your last gift: {{donation_amount}}",
			data: MergeData{FirstName: "Anna"},
			want: "Your last gift: ",
		},
		{
			name: "unsubscribe url",
			body: `<a href="{{unsubscribe_url}}">Unsubscribe</a>`,
			data: MergeData{UnsubscribeURL: "https://example.org/unsubscribe/tok"},
			want: `<a href="https://example.org/unsubscribe/tok">Unsubscribe</a>`,
		},
		{
			name: "unknown tag survives",
			body: "Hello {{nickname}}",
			data: MergeData{FirstName: "Anna"},
			want: "Hello {{nickname}}",
		},
		{
			name: "repeated tag",
			body: "{{first_name}}, yes you, {{first_name}}!",
			data: MergeData{FirstName: "Sam"},
			want: "Sam, yes you, Sam!",
		},
		{
			name: "no tags",
			body: "plain text",
			data: MergeData{FirstName: "Anna"},
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstituteMergeTags(tt.body, tt.data); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNameSuffix(t *testing.T) {
	if got := nameSuffix(""); got != "" {
		t.Fatalf("empty name: got %q", got)
	}
	if got := nameSuffix("Anna"); got != ", Anna" {
		t.Fatalf("got %q", got)
	}
}
