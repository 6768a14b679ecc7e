package charset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-passkit/charset"
)

func TestBuild_CompositionOrder(t *testing.T) {
	got := charset.Build(charset.Options{
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Special: true,
		Include: "€",
	})
	want := "€" + charset.Upper + charset.Lower + charset.Digits + charset.Special
	assert.Equal(t, want, got)
}

func TestBuild_Categories(t *testing.T) {
	tests := []struct {
		name string
		opts charset.Options
		want string
	}{
		{"upper only", charset.Options{Upper: true}, charset.Upper},
		{"lower only", charset.Options{Lower: true}, charset.Lower},
		{"digits only", charset.Options{Digits: true}, charset.Digits},
		{"special only", charset.Options{Special: true}, charset.Special},
		{"include only", charset.Options{Include: "xyz"}, "xyz"},
		{"nothing", charset.Options{}, ""},
		{"exclude without categories", charset.Options{Exclude: "abc"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charset.Build(tt.opts))
		})
	}
}

// Exclude is a contiguous substring removal against the assembled charset.
func TestBuild_ExcludeIsSubstringRemoval(t *testing.T) {
	tests := []struct {
		name    string
		exclude string
		want    string
	}{
		{"contiguous run removed", "345", "0126789"},
		{"non-contiguous run kept", "35", "0123456789"},
		{"single symbol", "0", "123456789"},
		{"whole charset", "0123456789", ""},
		{"not present", "x", "0123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := charset.Build(charset.Options{Digits: true, Exclude: tt.exclude})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_ExcludeRemovesEveryOccurrence(t *testing.T) {
	got := charset.Build(charset.Options{Include: "ab", Lower: true, Exclude: "ab"})
	assert.Equal(t, strings.TrimPrefix(charset.Lower, "ab"), got)
}

func TestBuild_NoDeduplication(t *testing.T) {
	got := charset.Build(charset.Options{Include: "a", Lower: true})
	assert.Equal(t, 27, len(got))
	assert.Equal(t, 2, strings.Count(got, "a"))
}

func TestOptions_Empty(t *testing.T) {
	assert.True(t, charset.Options{}.Empty())
	assert.True(t, charset.Options{Exclude: "a"}.Empty())
	assert.False(t, charset.Options{Include: "a"}.Empty())
	assert.False(t, charset.Options{Special: true}.Empty())
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc123", 36},
		{"abc", 26},
		{"ABC", 26},
		{"123", 10},
		{"!", 32},
		{"!?~", 32},
		{"aB3$", 26 + 26 + 10 + 32},
		{"äöü", 0},
		{"pässwort", 26},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, charset.SizeOf(tt.password))
		})
	}
}

func TestSpecial_Size(t *testing.T) {
	assert.Len(t, charset.Special, 32)
}
