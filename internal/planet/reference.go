package planet

import (
	"fmt"
	"strconv"
	"strings"
)

// URL is the reference other resources use to point at a planet.
func URL(id int) string {
	return fmt.Sprintf("/planets/%d/", id)
}

// IDFromURL extracts the planet id from a URL-like reference, taking the
// second-to-last "/" separated segment: ".../planets/3/" yields 3.
func IDFromURL(ref string) (int, error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return 0, fmt.Errorf("reference %q has no id segment", ref)
	}

	segment := parts[len(parts)-2]
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("reference %q: id segment %q is not an integer", ref, segment)
	}

	return id, nil
}
