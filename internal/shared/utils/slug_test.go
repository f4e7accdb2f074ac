package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nonprofit-cms-backend/internal/shared/utils"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Our Story", "our-story"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"collapses whitespace", "a   b\t c", "a-b-c"},
		{"collapses hyphen runs", "a -- b", "a-b"},
		{"trims edge hyphens", "  -leading and trailing-  ", "leading-and-trailing"},
		{"unicode dropped", "Café Ñandú", "caf-and"},
		{"already clean", "clean-water-program", "clean-water-program"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.GenerateSlug(tt.input))
		})
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	slug := utils.GenerateUniqueSlug("Our Story")
	assert.Regexp(t, regexp.MustCompile(`^our-story-\d+$`), slug)
}

func TestGenerateUniqueSlugNoCollision(t *testing.T) {
	first := utils.GenerateUniqueSlug("Our Story")
	time.Sleep(2 * time.Millisecond)
	second := utils.GenerateUniqueSlug("Our Story")

	assert.NotEqual(t, first, second)
}
