package avatar

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeID canonicalizes an identifier: surrounding white space is
// trimmed, the text is put in Unicode NFC and case folded. Identifiers that
// differ only in case or composition normalize to the same string.
func NormalizeID(id string) string {
	id = norm.NFC.String(strings.TrimSpace(id))
	return cases.Fold().String(id)
}
