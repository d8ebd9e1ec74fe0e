package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips complete data block",
			in:   "What company did you work for?\n\n<extracted_data>{\"fields\":[]}</extracted_data>",
			want: "What company did you work for?",
		},
		{
			name: "strips block in the middle",
			in:   "Got it.\n<extracted_data>{\"fields\":[]}</extracted_data>\nWhat's next?",
			want: "Got it.\n\nWhat's next?",
		},
		{
			name: "strips dangling open tag to end of text",
			in:   "Thanks!\n<extracted_data>{\"fields\":[{\"path\":\"x\"",
			want: "Thanks!",
		},
		{
			name: "multiline block contents",
			in:   "Okay.\n<extracted_data>\n{\n  \"fields\": []\n}\n</extracted_data>",
			want: "Okay.",
		},
		{
			name: "clean text passes through",
			in:   "What languages do you speak?",
			want: "What languages do you speak?",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.in))
		})
	}
}

func TestCleanResponse_Idempotent(t *testing.T) {
	in := "Got it.\n\n<extracted_data>{\"fields\":[]}</extracted_data>\n\nNext question?"
	once := CleanResponse(in)
	assert.Equal(t, once, CleanResponse(once))
}
