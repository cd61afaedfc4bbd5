package models

// AccessRecord is one parsed line of a combined-format access log.
//
// Example line:
//
//	203.0.113.7 - - [10/Oct/2024:13:55:36 +0000] "GET /index.html HTTP/1.1" 200 2326 "https://example.com/" "Mozilla/5.0 ... Firefox/121.0"
//
// Status and Size are never negative: values that cannot be read as a number are stored as 0.
type AccessRecord struct {
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Protocol  string `json:"protocol"`
	Status    int    `json:"status"`
	Size      int64  `json:"size"`
	Referer   string `json:"referer"`
	Agent     string `json:"agent"`
}

// NoReferer is the placeholder nginx writes when a request carries no referer.
const NoReferer = "-"

// HasReferer reports whether the record carries a real referer.
func (r *AccessRecord) HasReferer() bool {
	return r.Referer != "" && r.Referer != NoReferer
}
