package sanitize_utils

import (
	"fmt"
	"strings"

	"builderspace-backend/internal/util/errs"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// CleanText strips all HTML markup (including script/style contents) and
// trims surrounding whitespace. Applying it twice yields the same result.
//
// Output is in the sanitizer's canonical form: special characters are stored
// entity-encoded ("5 < 6" becomes "5 &lt; 6"). Decoding here would undo the
// idempotence guarantee ("&lt;script&gt;" would turn into live markup on a
// second pass), so clients render stored text as HTML-encoded content.
func CleanText(input string) string {
	return strings.TrimSpace(policy.Sanitize(input))
}

// CleanAndValidate sanitizes the input and enforces that the result is
// non-empty and within maxLength characters. fieldName is used in error
// messages ("message", "title", "description").
func CleanAndValidate(input, fieldName string, maxLength int) (string, error) {
	cleaned := CleanText(input)

	if cleaned == "" {
		return "", errs.Validation(fmt.Sprintf("%s must not be empty", fieldName))
	}

	if len([]rune(cleaned)) > maxLength {
		return "", errs.Validation(
			fmt.Sprintf("%s must be at most %d characters", fieldName, maxLength),
		)
	}

	return cleaned, nil
}

// CleanOptional is CleanAndValidate for fields that may be empty:
// an empty result is returned as-is without error.
func CleanOptional(input, fieldName string, maxLength int) (string, error) {
	cleaned := CleanText(input)

	if cleaned == "" {
		return "", nil
	}

	if len([]rune(cleaned)) > maxLength {
		return "", errs.Validation(
			fmt.Sprintf("%s must be at most %d characters", fieldName, maxLength),
		)
	}

	return cleaned, nil
}
