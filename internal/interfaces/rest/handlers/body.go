package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// decodeLoose parses a request body defensively: a JSON object fills dst
// directly, a JSON-encoded string is unwrapped and parsed again (some
// storefront clients double-encode the body), and anything malformed
// leaves dst at its zero value so field validation produces the 400
// instead of a parse failure.
func decodeLoose(r *http.Request, dst any) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return
	}

	if err := json.Unmarshal(body, dst); err == nil {
		return
	}

	var wrapped string
	if err := json.Unmarshal(body, &wrapped); err == nil {
		_ = json.Unmarshal([]byte(wrapped), dst)
	}
}
