package pathfilter

import (
	"strings"
	"testing"

	"github.com/taigrr/folder-archiver/internal/types"
)

func TestPathFilter_NilConfigExcludesNothing(t *testing.T) {
	filter := New(nil)

	for _, name := range []string{"A", ".git", "node_modules", ""} {
		t.Run(name, func(t *testing.T) {
			if filter.IsExcluded(name) {
				t.Errorf("IsExcluded(%q) = true, want false", name)
			}
		})
	}
}

func TestPathFilter_ExactNames(t *testing.T) {
	filter := New(&types.ExclusionConfig{Names: []string{"A", "Client Work"}})

	tests := []struct {
		name string
		want bool
	}{
		{"A", true},
		{"a", false},
		{"AA", false},
		{"Client Work", true},
		{"client work", false},
		{"Client Work ", false},
		{"C", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsExcluded(tt.name); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_Patterns(t *testing.T) {
	t.Run("asterisk glob matches", func(t *testing.T) {
		filter := New(&types.ExclusionConfig{Patterns: []string{"temp*"}})

		tests := []struct {
			name string
			want bool
		}{
			{"temp", true},
			{"temp1", true},
			{"temporary", true},
			{"atemp", false},
		}

		for _, tt := range tests {
			if got := filter.IsExcluded(tt.name); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("question mark matches one char", func(t *testing.T) {
		filter := New(&types.ExclusionConfig{Patterns: []string{"v?"}})

		if !filter.IsExcluded("v1") {
			t.Error("IsExcluded(\"v1\") = false, want true")
		}
		if filter.IsExcluded("v10") {
			t.Error("IsExcluded(\"v10\") = true, want false")
		}
	})

	t.Run("regex special characters are literal", func(t *testing.T) {
		filter := New(&types.ExclusionConfig{Patterns: []string{"(archive)", "[trash]", "backup.2024", "C++"}})

		tests := []struct {
			name string
			want bool
		}{
			{"(archive)", true},
			{"archive", false},
			{"[trash]", true},
			{"t", false},
			{"backup.2024", true},
			{"backup_2024", false},
			{"C++", true},
			{"CC", false},
		}

		for _, tt := range tests {
			if got := filter.IsExcluded(tt.name); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})
}

func TestPathFilter_EdgeCases(t *testing.T) {
	filter := New(&types.ExclusionConfig{Names: []string{"日本語", "🎉"}})

	t.Run("unicode names", func(t *testing.T) {
		for _, name := range []string{"日本語", "🎉"} {
			if !filter.IsExcluded(name) {
				t.Errorf("IsExcluded(%q) = false, want true", name)
			}
		}
	})

	t.Run("very long names", func(t *testing.T) {
		long := strings.Repeat("a", 1000)
		if filter.IsExcluded(long) {
			t.Error("IsExcluded(long) = true, want false")
		}
	})

	t.Run("duplicate names", func(t *testing.T) {
		f := New(&types.ExclusionConfig{Names: []string{"A", "A"}})
		if !f.IsExcluded("A") {
			t.Error("IsExcluded(A) = false, want true")
		}
	})
}
