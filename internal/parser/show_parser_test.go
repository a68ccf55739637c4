package parser

import (
	"strings"
	"testing"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
	"github.com/Belphemur/ShowBrowser/internal/testutil"
)

func TestShowParser_Parse_DefaultImage(t *testing.T) {
	body := `[{"score":0.9,"show":{"id":1,"name":"Batman","summary":"<p>Dark</p>","image":null}}]`

	shows, err := NewShowParser(config.DefaultImageURL).Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	expected := models.Show{ID: 1, Name: "Batman", Summary: "<p>Dark</p>", Image: "https://tinyurl.com/tv-missing"}
	if len(shows) != 1 {
		t.Fatalf("Expected 1 show, got %d", len(shows))
	}
	if shows[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, shows[0])
	}
}

func TestShowParser_Parse_PreservesOrderAndImages(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.ShowRecordOptions{
		{ID: 975, Name: "Batman", Summary: testutil.StringPtr("<p>Caped</p>"), ImageURL: "https://static.tvmaze.com/975.jpg", Score: 0.9},
		{ID: 12, Name: "Batman Beyond", ImageURL: "", Score: 0.7},
		{ID: 3, Name: "The Batman", Summary: testutil.StringPtr(""), ImageURL: "https://static.tvmaze.com/3.jpg", Score: 0.95},
	})

	shows, err := NewShowParser("https://example.com/missing.png").Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantIDs := []int{975, 12, 3}
	if len(shows) != len(wantIDs) {
		t.Fatalf("Expected %d shows, got %d", len(wantIDs), len(shows))
	}
	for i, id := range wantIDs {
		if shows[i].ID != id {
			t.Errorf("Position %d: expected ID %d, got %d", i, id, shows[i].ID)
		}
	}

	if shows[0].Image != "https://static.tvmaze.com/975.jpg" {
		t.Errorf("Expected original image URL, got %q", shows[0].Image)
	}
	if shows[1].Image != "https://example.com/missing.png" {
		t.Errorf("Expected placeholder for missing image, got %q", shows[1].Image)
	}
	if shows[1].Summary != "" {
		t.Errorf("Expected empty summary for null, got %q", shows[1].Summary)
	}
}

func TestShowParser_Parse_EmptyOriginalUsesPlaceholder(t *testing.T) {
	body := `[{"score":1,"show":{"id":5,"name":"X","summary":null,"image":{"medium":"m.jpg","original":""}}}]`

	shows, err := NewShowParser("").Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if shows[0].Image != config.DefaultImageURL {
		t.Errorf("Expected default image, got %q", shows[0].Image)
	}
}

func TestShowParser_Parse_EmptyArray(t *testing.T) {
	shows, err := NewShowParser("").Parse(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("Expected no shows, got %d", len(shows))
	}
}

func TestShowParser_Parse_InvalidJSON(t *testing.T) {
	_, err := NewShowParser("").Parse(strings.NewReader(`<html>oops</html>`))
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to decode search results") {
		t.Errorf("Unexpected error message: %v", err)
	}
}
