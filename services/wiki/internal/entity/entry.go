package entity

// Entry is a single encyclopedia page. Content is the raw markdown source;
// HTML is filled in when the entry is rendered for display.
type Entry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	HTML    string `json:"html,omitempty"`
}

// SearchResult is the outcome of a title search. An exact (case-insensitive)
// match sets Exact and Title so the client can redirect straight to the
// entry; otherwise Matches holds all substring matches in store order.
type SearchResult struct {
	Exact   bool     `json:"exact"`
	Title   string   `json:"title,omitempty"`
	Matches []string `json:"matches"`
}
