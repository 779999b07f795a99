package markup

import "strings"

// ClassList is an ordered collection of style class tokens. Insertion order
// is preserved and duplicates are kept; repeating a token is legitimate for
// specificity in the underlying style cascade, so merging never deduplicates.
type ClassList []string

// Classes builds a ClassList from the given tokens.
func Classes(tokens ...string) ClassList {
	if len(tokens) == 0 {
		return nil
	}
	list := make(ClassList, len(tokens))
	copy(list, tokens)
	return list
}

// Merge returns a new list containing every token of base followed by every
// token of extra, in order. Neither input is modified.
func Merge(base, extra ClassList) ClassList {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(ClassList, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	return merged
}

// Extend returns a new list with extra appended after the receiver's tokens.
func (c ClassList) Extend(extra ClassList) ClassList {
	return Merge(c, extra)
}

// String joins the tokens with single spaces, suitable for a class attribute.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}
