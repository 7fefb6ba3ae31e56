package transport

import "regexp"

// emptyString stands in for "" while the codec decodes, since the codec
// turns an empty <string> into nil. U+FDD0 is a noncharacter.
const emptyString = "\uFDD0"

var (
	// <value>text</value> with no type element is a string.
	untypedValue    = regexp.MustCompile(`<value>([^<]*)</value>`)
	selfClosedValue = regexp.MustCompile(`<value\s*/>`)
	emptyStringElem = regexp.MustCompile(`<string></string>|<string\s*/>`)
)

// normalize rewrites the response forms the codec rejects or loses:
// untyped values become <string> and empty strings carry emptyString.
func normalize(raw []byte) []byte {
	raw = untypedValue.ReplaceAll(raw, []byte("<value><string>${1}</string></value>"))
	raw = selfClosedValue.ReplaceAll(raw, []byte("<value><string></string></value>"))
	return emptyStringElem.ReplaceAll(raw, []byte("<string>"+emptyString+"</string>"))
}
