package request

import "strconv"

// Ref identifies a borrow request by internal numeric id, public request_id,
// or both. Resolution tries the numeric key first and falls back to the
// identifier; a request_id that happens to be all digits still resolves.
type Ref struct {
	ID        uint64
	RequestID string
}

func RefByID(id uint64) Ref { return Ref{ID: id} }

func RefByRequestID(requestID string) Ref { return Ref{RequestID: requestID} }

// ParseRef builds a Ref from a raw path/query key.
func ParseRef(key string) Ref {
	if n, err := strconv.ParseUint(key, 10, 64); err == nil && n > 0 {
		return Ref{ID: n, RequestID: key}
	}
	return Ref{RequestID: key}
}
