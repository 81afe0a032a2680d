package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "ticker",
			content: "AAPL",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "INTERNATIONAL BUSINESS MACHINES CORPORATION COMMON STOCK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("AAPL")
	id2 := IDFromContent("MSFT")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different tickers")
	}
}
