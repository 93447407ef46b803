// Package share builds the outbound LINE links for a rendered order summary.
package share

import "net/url"

// Links holds the two sinks the summary text is handed to: the LINE app deep
// link, and the web URL opened when the deep link does not resolve.
type Links struct {
	Deep string `json:"deepLink"`
	Web  string `json:"webLink"`
}

// ForText returns the share links for a summary message. Empty text yields no
// links, matching the nothing-to-share case. The text sits in a path segment of
// the deep link, so spaces must percent-encode; PathEscape gives %20 where
// QueryEscape would give a literal-breaking +.
func ForText(text string) Links {
	if text == "" {
		return Links{}
	}
	enc := url.PathEscape(text)
	return Links{
		Deep: "line://msg/text/" + enc,
		Web:  "https://line.me/R/msg/text/?" + enc,
	}
}
