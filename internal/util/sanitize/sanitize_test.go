package sanitize_utils

import (
	"strings"
	"testing"

	"builderspace-backend/internal/util/errs"

	"github.com/stretchr/testify/assert"
)

func Test_CleanText_StripsMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "script tags removed entirely",
			input:    `<script>alert("xss")</script>hello`,
			expected: "hello",
		},
		{
			name:     "formatting tags stripped but text kept",
			input:    "<b>bold</b> and <i>italic</i>",
			expected: "bold and italic",
		},
		{
			name:     "event handler attributes removed",
			input:    `<img src=x onerror=alert(1)>caption`,
			expected: "caption",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  padded  ",
			expected: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func Test_CleanText_EntityEncodesSpecials(t *testing.T) {
	// specials are stored in the sanitizer's encoded canonical form;
	// decoding would make "&lt;script&gt;" collapse on a second pass
	once := CleanText("5 < 6 && x > y")
	twice := CleanText(once)

	assert.Equal(t, "5 &lt; 6 &amp;&amp; x &gt; y", once)
	assert.Equal(t, once, twice)
}

func Test_CleanText_IsIdempotent(t *testing.T) {
	input := `<div onclick="steal()">some <b>text</b></div>`

	once := CleanText(input)
	twice := CleanText(once)

	assert.Equal(t, once, twice)
}

func Test_CleanAndValidate_EmptyAfterSanitization_ReturnsValidationError(t *testing.T) {
	_, err := CleanAndValidate("<script>alert(1)</script>", "message", 100)

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Contains(t, err.Error(), "message must not be empty")
}

func Test_CleanAndValidate_LengthEnforcedAfterSanitization(t *testing.T) {
	// markup does not count against the limit, only the surviving text does
	input := "<b>" + strings.Repeat("a", 100) + "</b>"

	cleaned, err := CleanAndValidate(input, "title", 100)

	assert.NoError(t, err)
	assert.Len(t, cleaned, 100)
}

func Test_CleanAndValidate_TooLong_ReturnsValidationError(t *testing.T) {
	_, err := CleanAndValidate(strings.Repeat("a", 201), "title", 200)

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Contains(t, err.Error(), "title must be at most 200 characters")
}

func Test_CleanOptional_EmptyInput_ReturnsEmptyWithoutError(t *testing.T) {
	cleaned, err := CleanOptional("", "description", 100)

	assert.NoError(t, err)
	assert.Empty(t, cleaned)
}
