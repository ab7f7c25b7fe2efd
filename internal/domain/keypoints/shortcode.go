package keypoints

import (
	"regexp"
	"strconv"
	"strings"
)

// ShortcodeTag is the tag that requests manual placement in content.
const ShortcodeTag = "keypoints"

var (
	openTagRe = regexp.MustCompile(`\[` + ShortcodeTag + `(\s[^\]]*)?\]`)
	closeTag  = "[/" + ShortcodeTag + "]"
	attrRe    = regexp.MustCompile(`([\w-]+)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+))`)
)

// shortcode is one parsed occurrence of the tag.
type shortcode struct {
	attrs   map[string]string
	content string
}

// itemID returns the id attribute, or zero when it is missing or invalid.
func (s shortcode) itemID() int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s.attrs["id"]), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// HasShortcode reports whether content requests manual placement.
func HasShortcode(content string) bool {
	return openTagRe.MatchString(content)
}

// ParseAttrs parses shortcode attributes. Keys are lowercased; later
// duplicates win.
func ParseAttrs(raw string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(raw, -1) {
		key := strings.ToLower(m[1])
		switch {
		case m[2] != "":
			attrs[key] = m[2]
		case m[3] != "":
			attrs[key] = m[3]
		default:
			attrs[key] = m[4]
		}
	}
	return attrs
}

// replaceShortcodes substitutes every tag occurrence. An opening tag
// encloses content only when its closing tag comes before the next opening
// tag; otherwise it is self-closing.
func replaceShortcodes(content string, render func(shortcode) string) string {
	opens := openTagRe.FindAllStringSubmatchIndex(content, -1)
	if len(opens) == 0 {
		return content
	}

	var sb strings.Builder
	pos := 0
	for i, loc := range opens {
		sb.WriteString(content[pos:loc[0]])

		sc := shortcode{}
		if loc[2] >= 0 {
			sc.attrs = ParseAttrs(content[loc[2]:loc[3]])
		} else {
			sc.attrs = map[string]string{}
		}

		end := loc[1]
		limit := len(content)
		if i+1 < len(opens) {
			limit = opens[i+1][0]
		}
		if j := strings.Index(content[end:limit], closeTag); j >= 0 {
			sc.content = content[end : end+j]
			end += j + len(closeTag)
		}

		sb.WriteString(render(sc))
		pos = end
	}
	sb.WriteString(content[pos:])
	return sb.String()
}
