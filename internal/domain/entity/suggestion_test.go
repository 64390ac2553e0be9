package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPortSuggestion(t *testing.T) {
	tests := []struct {
		name        string
		port        Port
		typed       string
		wantMarkup  string
		wantHilight string
	}{
		{
			name:        "typed inside port",
			port:        3000,
			typed:       "300",
			wantMarkup:  "<dim>localhost:</dim><match>300</match>0",
			wantHilight: "300",
		},
		{
			name:        "typed in the middle",
			port:        13000,
			typed:       "300",
			wantMarkup:  "<dim>localhost:</dim>1<match>300</match>0",
			wantHilight: "300",
		},
		{
			name:        "full port typed",
			port:        8080,
			typed:       "8080",
			wantMarkup:  "<dim>localhost:</dim><match>8080</match>",
			wantHilight: "8080",
		},
		{
			name:        "nothing typed highlights the port",
			port:        5173,
			typed:       "",
			wantMarkup:  "<dim>localhost:</dim><match>5173</match>",
			wantHilight: "5173",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPortSuggestion(tt.port, "", tt.typed)
			assert.Equal(t, tt.port.String(), s.Content)
			assert.True(t, s.Deletable)
			assert.Equal(t, tt.wantMarkup, s.Description.Markup())
			assert.Equal(t, tt.wantHilight, s.Description.Highlighted())
			assert.Equal(t, "localhost:"+tt.port.String(), s.Description.Text())
		})
	}
}

func TestSuggestionDescription_MarkupEscapes(t *testing.T) {
	d := SuggestionDescription{{Text: "a<b", Style: SegmentDim}, {Text: "&"}}
	assert.Equal(t, "<dim>a&lt;b</dim>&amp;", d.Markup())
}

func TestSessionContext(t *testing.T) {
	s := NewSessionContext()
	_, _, ok := s.CurrentTab()
	assert.False(t, ok)

	s.Activate(TabActivation{TabID: "7", WindowID: "1"})
	id, win, ok := s.CurrentTab()
	assert.True(t, ok)
	assert.Equal(t, TabID("7"), id)
	assert.Equal(t, WindowID("1"), win)
}

func TestNewInvalidPortNotification(t *testing.T) {
	n := NewInvalidPortNotification("99999", "")
	assert.Equal(t, "Invalid Port !!!", n.Title)
	assert.Equal(t, "'99999' is not a valid port", n.Message)
	assert.Equal(t, DefaultNotificationIcon, n.IconURL)
}
