// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import (
	"net/url"
	"regexp"
	"strings"
)

// linkPattern matches http and https links up to whitespace or a quote.
var linkPattern = regexp.MustCompile(`https?://[^\s<>"«»]+`)

// trailingPunctuation is stripped from the end of a matched link.
const trailingPunctuation = ".,!?;:)]}"

// Links returns the links in the message text in order of appearance,
// without duplicates.
func (m ChatMessage) Links() []string {
	if m.Text == nil {
		return nil
	}
	return appendLinks(nil, map[string]bool{}, *m.Text)
}

// SharedLinks collects the distinct links posted across messages, in the
// order they were first seen.
func SharedLinks(messages []ChatMessage) []string {
	seen := map[string]bool{}
	var links []string
	for _, m := range messages {
		if m.Text != nil {
			links = appendLinks(links, seen, *m.Text)
		}
	}
	return links
}

// LinkHost returns the host name of link without port, or link itself when
// it does not parse.
func LinkHost(link string) string {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return link
	}
	return parsed.Hostname()
}

func appendLinks(links []string, seen map[string]bool, text string) []string {
	for _, match := range linkPattern.FindAllString(text, -1) {
		link := strings.TrimRight(match, trailingPunctuation)
		if seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}
	return links
}
