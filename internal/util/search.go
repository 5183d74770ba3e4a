package util

import (
	"regexp"
	"strconv"
	"strings"
)

// SearchQuery represents the parsed components of a profile filter string.
type SearchQuery struct {
	Sets   []int64
	Rounds []int64
	Text   []string
}

var (
	setsRegex   = regexp.MustCompile(`sets:(\d+)`)
	roundsRegex = regexp.MustCompile(`rounds:(\d+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []int64 {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []int64
		for _, match := range matches {
			if len(match) < 2 {
				continue
			}
			if n, err := strconv.ParseInt(match[1], 10, 64); err == nil {
				values = append(values, n)
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Sets = extract(setsRegex)
	sq.Rounds = extract(roundsRegex)
	for _, word := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(word))
	}

	return sq
}

// Empty reports whether the query filters nothing.
func (q SearchQuery) Empty() bool {
	return len(q.Sets) == 0 && len(q.Rounds) == 0 && len(q.Text) == 0
}
