package types

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("  SEO Services\n"); got != "seo services" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID("seo services")
	if len(id) != 16 {
		t.Errorf("id length = %d, want 16", len(id))
	}
	// Case and whitespace variants of the same keyword share an id.
	if GenerateID("  SEO Services ") != id {
		t.Error("id should be derived from the normalized text")
	}
	if GenerateID("keyword research") == id {
		t.Error("distinct keywords must get distinct ids")
	}
}

func TestNewRecordAssignsID(t *testing.T) {
	r := NewRecord(KeywordCandidate{Text: "SEO Services", Source: SourceAutocomplete})
	if r.ID != GenerateID("seo services") {
		t.Errorf("ID = %q", r.ID)
	}
	if r.Text != "SEO Services" || r.Source != SourceAutocomplete {
		t.Errorf("candidate fields not carried: %+v", r)
	}
}
