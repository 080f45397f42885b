package canonicalizer

import "golang.org/x/text/width"

// foldFullWidth converts full-width ASCII-range characters (U+FF01..
// U+FF5E) and the full-width space (U+3000) to their half-width ASCII
// equivalents, outside strings (step 6). Only lexicons that opt in
// (lexicon.FoldFullWidth) run this step, since Latin-script locales have
// no full-width forms to fold.
func foldFullWidth(s string, seg *Segmenter) string {
	return seg.MapOutOfString(s, func(chunk string) string {
		return width.Narrow.String(chunk)
	})
}
