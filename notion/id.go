package notion

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/fwojciec/notedown"
)

var (
	rawID    = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
	dashedID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	slugID   = regexp.MustCompile(`([0-9a-fA-F]{32})$`)
)

// NormalizeID canonicalizes a page or block identifier to dashed lowercase
// UUID form. It accepts raw 32-hex identifiers, dashed UUIDs, and share URLs
// whose path slug or p= query parameter embeds the identifier. Anything else
// returns [notedown.ErrInvalidID].
func NormalizeID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if dashedID.MatchString(s) {
		return strings.ToLower(s), nil
	}
	if rawID.MatchString(s) {
		return addDashes(strings.ToLower(s)), nil
	}
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		if p := u.Query().Get("p"); rawID.MatchString(p) {
			return addDashes(strings.ToLower(p)), nil
		}
		if m := slugID.FindString(path.Base(u.Path)); m != "" {
			return addDashes(strings.ToLower(m)), nil
		}
	}
	return "", fmt.Errorf("notion: %q: %w", s, notedown.ErrInvalidID)
}

// addDashes formats a 32-hex identifier as 8-4-4-4-12.
func addDashes(id string) string {
	return id[:8] + "-" + id[8:12] + "-" + id[12:16] + "-" + id[16:20] + "-" + id[20:]
}
