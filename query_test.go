package servant

import "testing"

func TestParseQuery_TriState(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		key      string
		presence Presence
		text     string
	}{
		{"bare key", "a", "a", PresentNoValue, ""},
		{"empty value", "a=", "a", PresentWithValue, ""},
		{"value", "a=x", "a", PresentWithValue, "x"},
		{"absent", "b=x&c", "a", Absent, ""},
		{"empty query", "", "a", Absent, ""},
		{"bare key among others", "b=1&a&c=2", "a", PresentNoValue, ""},
		{"value containing equals", "a=x=y", "a", PresentWithValue, "x=y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseQuery(tt.query).Lookup(tt.key)
			if v.Presence != tt.presence {
				t.Errorf("Lookup(%q) presence = %v, want %v", tt.key, v.Presence, tt.presence)
			}
			if v.Text != tt.text {
				t.Errorf("Lookup(%q) text = %q, want %q", tt.key, v.Text, tt.text)
			}
		})
	}
}

func TestParseQuery_DuplicateFirstWins(t *testing.T) {
	pq := ParseQuery("a=first&a=second&a")
	v := pq.Lookup("a")
	if v.Presence != PresentWithValue || v.Text != "first" {
		t.Errorf("Lookup(a) = %+v, want first occurrence", v)
	}
}

func TestParseQuery_BareDuplicateFirstWins(t *testing.T) {
	// The first occurrence wins even when it carries no value.
	v := ParseQuery("a&a=second").Lookup("a")
	if v.Presence != PresentNoValue {
		t.Errorf("Lookup(a) presence = %v, want PresentNoValue", v.Presence)
	}
}

func TestParseQuery_EmptyTokensSkipped(t *testing.T) {
	pq := ParseQuery("&&a=1&&b=2&")
	if pq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pq.Len())
	}
}

func TestLookupAll_OrderAndArrayKeys(t *testing.T) {
	pq := ParseQuery("a=1&b=x&a[]=2&a=3")
	got := pq.LookupAll("a")
	if len(got) != 3 {
		t.Fatalf("LookupAll(a) returned %d entries, want 3", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].Presence != PresentWithValue || got[i].Text != want {
			t.Errorf("entry %d = %+v, want value %q", i, got[i], want)
		}
	}
}

func TestLookupAll_IncludesNoValueEntries(t *testing.T) {
	got := ParseQuery("a=1&a&a[]=").LookupAll("a")
	if len(got) != 3 {
		t.Fatalf("LookupAll(a) returned %d entries, want 3", len(got))
	}
	if got[1].Presence != PresentNoValue {
		t.Errorf("entry 1 presence = %v, want PresentNoValue", got[1].Presence)
	}
	if got[2].Presence != PresentWithValue || got[2].Text != "" {
		t.Errorf("entry 2 = %+v, want empty value", got[2])
	}
}

func TestLookupAll_Absent(t *testing.T) {
	if got := ParseQuery("b=1").LookupAll("a"); len(got) != 0 {
		t.Errorf("LookupAll(a) = %v, want empty", got)
	}
}

func TestLookupAll_ArrayKeyIsDistinctForSingleLookup(t *testing.T) {
	// "a[]" matches only the multi lookup; the single lookup wants the
	// literal key.
	pq := ParseQuery("a[]=1")
	if v := pq.Lookup("a"); v.Presence != Absent {
		t.Errorf("Lookup(a) presence = %v, want Absent", v.Presence)
	}
	if got := pq.LookupAll("a"); len(got) != 1 {
		t.Errorf("LookupAll(a) returned %d entries, want 1", len(got))
	}
}
