package site

import (
	"testing"

	"github.com/mckvie/hackathon/internal/hackathon"
)

func TestProblemsCoverEveryCategory(t *testing.T) {
	problems := Problems()
	cats := hackathon.Categories()
	if len(problems) != len(cats) {
		t.Fatalf("expected %d problems, got %d", len(cats), len(problems))
	}
	for i, p := range problems {
		if p.Category != cats[i] {
			t.Errorf("[%d] expected category %s, got %s", i, cats[i], p.Category)
		}
		if p.Title != hackathon.CategoryDisplay(p.Category) {
			t.Errorf("[%d] title %q does not match display name", i, p.Title)
		}
	}
}

func TestScheduleMainDay(t *testing.T) {
	phases := Schedule()
	if len(phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(phases))
	}
	main := phases[1]
	if main.Title != "Main Hackathon Day" {
		t.Errorf("unexpected title %q", main.Title)
	}
	if first, last := main.Events[0], main.Events[len(main.Events)-1]; first.Time != "8:00 AM" || last.Time != "8:00 PM" {
		t.Errorf("expected 8:00 AM to 8:00 PM, got %s to %s", first.Time, last.Time)
	}
}

func TestContactPageStripsBios(t *testing.T) {
	c := ContactPage()
	for _, o := range c.Organizers {
		if o.Bio != "" || o.Tags != nil {
			t.Errorf("expected contact card without bio/tags: %+v", o)
		}
		if o.Phone == "" {
			t.Errorf("expected phone for %s", o.Name)
		}
	}
	if Team()[0].Bio == "" {
		t.Error("ContactPage must not modify the team list")
	}
}
