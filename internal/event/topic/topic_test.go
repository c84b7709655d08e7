package topic

import "testing"

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"textarea.popup.trigger", "textarea.popup.trigger", true},
		{"textarea.popup.trigger", "textarea.popup.*", true},
		{"textarea.popup.trigger", "textarea.*", false},
		{"textarea.popup.trigger", "textarea.**", true},
		{"textarea", "textarea.**", true},
		{"textarea.popup.trigger", "**.trigger", true},
		{"textarea.popup.trigger", "**", true},
		{"textarea.popup.trigger", "*.*.*", true},
		{"textarea.popup.trigger", "*.*", false},
		{"textarea.position.changing", "textarea.popup.*", false},
		{"config.reloaded", "textarea.**", false},
		{"a.b.c.d", "a.**.d", true},
		{"a.d", "a.**.d", true},
		{"a.b.c", "a.**.d", false},
	}

	for _, tt := range tests {
		if got := tt.topic.Matches(tt.pattern); got != tt.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
		}
	}
}

func TestTopicIsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"textarea", true},
		{"textarea.popup.trigger", true},
		{"textarea.**", true},
		{"", false},
		{".textarea", false},
		{"textarea.", false},
		{"textarea..popup", false},
	}

	for _, tt := range tests {
		if got := tt.topic.IsValid(); got != tt.want {
			t.Errorf("%q.IsValid() = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestTopicHelpers(t *testing.T) {
	tp := Join("textarea", "popup", "trigger")
	if tp != "textarea.popup.trigger" {
		t.Errorf("Join = %q", tp)
	}
	if got := tp.Base(); got != "trigger" {
		t.Errorf("Base() = %q, want trigger", got)
	}
	if got := len(tp.Segments()); got != 3 {
		t.Errorf("len(Segments()) = %d, want 3", got)
	}
	if tp.IsWildcard() {
		t.Error("plain topic reported as wildcard")
	}
	if !Topic("textarea.*").IsWildcard() {
		t.Error("textarea.* should be a wildcard")
	}
	if Topic("").Segments() != nil {
		t.Error("empty topic should have no segments")
	}
}
