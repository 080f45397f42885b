package canonicalizer

import "strings"

// Segment is one (text, inString) slice of a Segmenter's split.
type Segment struct {
	Text     string
	InString bool
}

// Segmenter splits text into a single-pass sequence of (segment,
// in-string) pairs (spec.md §4.1 "String segmentation"). Quotes
// considered: the lexicon's configured pair, ASCII '"' (always), and
// smart '“'/'”' (always). A quote is escaped (not a
// delimiter) if preceded by an odd number of backslashes.
type Segmenter struct {
	openers map[rune]rune // opener rune -> matching closer rune
}

// NewSegmenter builds a Segmenter for the given extra lexicon-specific
// quote pair (ASCII and smart quotes are always included).
func NewSegmenter(extra ...QuotePair) *Segmenter {
	s := &Segmenter{openers: map[rune]rune{
		'"':      '"',
		'“': '”',
	}}
	for _, p := range extra {
		s.openers[p.Open] = p.Close
	}
	return s
}

// QuotePair mirrors lexicon.QuotePair without importing the lexicon
// package, keeping the segmenter reusable independent of locale data.
type QuotePair struct {
	Open  rune
	Close rune
}

// Split partitions text into alternating out-of-string/in-string
// segments. In-string segments include their delimiting quote runes.
func (s *Segmenter) Split(text string) []Segment {
	runes := []rune(text)
	var segs []Segment
	i := 0
	start := 0
	inString := false
	var closer rune

	flush := func(end int, isString bool) {
		if end > start {
			segs = append(segs, Segment{Text: string(runes[start:end]), InString: isString})
		}
		start = end
	}

	for i < len(runes) {
		r := runes[i]
		if !inString {
			if cl, ok := s.openers[r]; ok {
				flush(i, false)
				inString = true
				closer = cl
				i++
				continue
			}
			i++
			continue
		}
		// inString: look for an unescaped closer
		if r == closer && !precededByOddBackslashes(runes, i) {
			i++
			flush(i, true)
			inString = false
			continue
		}
		i++
	}
	flush(len(runes), inString)
	return segs
}

// precededByOddBackslashes reports whether the rune at index idx is
// preceded by an odd number of consecutive backslashes (so it is
// escaped and not a real delimiter).
func precededByOddBackslashes(runes []rune, idx int) bool {
	count := 0
	for j := idx - 1; j >= 0 && runes[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}

// MapOutOfString applies f to every out-of-string segment of text and
// leaves in-string segments byte-identical, preserving string-literal
// content exactly (spec.md invariant 2).
func (s *Segmenter) MapOutOfString(text string, f func(string) string) string {
	var b strings.Builder
	for _, seg := range s.Split(text) {
		if seg.InString {
			b.WriteString(seg.Text)
		} else {
			b.WriteString(f(seg.Text))
		}
	}
	return b.String()
}
