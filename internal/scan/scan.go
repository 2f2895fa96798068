// Package scan implements the SPIFFE ID grammar check as a single left-to-right
// pass over decoded characters.
//
// The scanner deliberately depends on nothing: no regexp, no net/url, no SDK.
// It partitions the input into the literal scheme prefix, an authority, and an
// optional path, rejecting at the first character or segment that violates the
// grammar. Anything that would need normalization, percent-decoding, or URI
// reference resolution is rejected rather than interpreted.
//
// Inputs are Go strings decoded to runes before indexing, so classification and
// cursor positions operate on characters, not bytes. Every permitted character
// is ASCII, so any multi-byte rune fails its character-class check.
package scan

// Prefix is the literal scheme prefix every SPIFFE ID begins with.
const Prefix = "spiffe://"

// prefixLen is the prefix length in characters. The prefix is pure ASCII, so
// this equals its byte length, but it is derived rather than hardcoded.
var prefixLen = len([]rune(Prefix))

// minIDLength is the shortest possible valid ID: the prefix plus a
// one-character authority. Derived from the prefix so the fast-path guard
// cannot silently diverge from the scheme check.
var minIDLength = prefixLen + 1

// Result is the verdict of a validation pass.
//
// Valid discriminates the outcome: when false, Authority and Path are always
// empty; when true, Authority is non-empty and Path is either "" (authority-only
// ID) or begins with '/' and never ends with one.
type Result struct {
	Valid     bool
	Authority string
	Path      string
}

// Invalid returns the rejection verdict. Rejections never carry component data.
func Invalid() Result {
	return Result{}
}

// Validate checks id against the SPIFFE ID grammar
// (spiffe://<authority>[/<path>]) in one pass over its characters.
//
// It is pure and total: any string, including the empty string, produces a
// verdict without panicking. Malformed input is an expected outcome, not an
// error, so there is exactly one failure shape and no diagnostic detail.
//
// Callers holding raw bytes in a variable-width encoding must decode them to a
// string first; feeding undecoded bytes is outside the contract.
func Validate(id string) Result {
	chars := []rune(id)

	// Fast path: nothing shorter than prefix + one authority character can be valid.
	if len(chars) < minIDLength {
		return Invalid()
	}

	// Scheme is lowercase-only and matched exactly. "Spiffe://" fails here.
	if string(chars[:prefixLen]) != Prefix {
		return Invalid()
	}

	// Authority runs from the end of the prefix to the first '/' or end of
	// input. The character class has no ':' or '@', so userinfo and ports are
	// impossible by construction rather than by a separate rule.
	cursor := prefixLen
	for cursor < len(chars) {
		c := chars[cursor]
		if c == '/' {
			break
		}
		if !isAuthorityChar(c) {
			return Invalid()
		}
		cursor++
	}

	authority := string(chars[prefixLen:cursor])
	if len(authority) == 0 {
		// Covers "spiffe://" after the length guard, and "spiffe:///".
		return Invalid()
	}

	// Authority-only IDs are valid with an empty path.
	if cursor == len(chars) {
		return Result{Valid: true, Authority: authority}
	}

	// The scan above only stops at '/' or end of input, so this cannot fire
	// today. It stays as a terminal rejection so a rewrite of the authority
	// loop cannot silently admit a malformed path start.
	if chars[cursor] != '/' {
		return Invalid()
	}

	pathStart := cursor

	// Walk the path, checking each '/'-delimited segment as it closes.
	cursor++
	segStart := cursor
	for cursor < len(chars) {
		c := chars[cursor]
		if c == '/' {
			if rejectedSegment(string(chars[segStart:cursor])) {
				return Invalid()
			}
			cursor++
			segStart = cursor
			continue
		}
		if !isPathSegmentChar(c) {
			return Invalid()
		}
		cursor++
	}

	// The final segment has no closing '/'. Rejecting "" here is also what
	// rejects a trailing slash.
	if rejectedSegment(string(chars[segStart:])) {
		return Invalid()
	}

	return Result{
		Valid:     true,
		Authority: authority,
		Path:      string(chars[pathStart:]),
	}
}

// rejectedSegment reports whether a path segment is forbidden: empty segments
// and the relative-path elements "." and "..". Segments that merely start with
// dots ("..Baz") are fine.
func rejectedSegment(seg string) bool {
	return seg == "" || seg == "." || seg == ".."
}

// isAuthorityChar reports membership in the authority character class:
// lowercase letters, digits, '.', '-', '_'.
func isAuthorityChar(c rune) bool {
	return ('a' <= c && c <= 'z') ||
		('0' <= c && c <= '9') ||
		c == '.' || c == '-' || c == '_'
}

// isPathSegmentChar reports membership in the path segment character class:
// the authority class plus uppercase letters.
func isPathSegmentChar(c rune) bool {
	return isAuthorityChar(c) || ('A' <= c && c <= 'Z')
}
