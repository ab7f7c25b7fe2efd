package keypoints

import "strings"

// View values understood by the renderer. Any other string renders inline.
const (
	ViewAbove = "above"
	ViewBelow = "below"
	ViewPopup = "popup"
)

// Mode values. Anything but ModeDark renders light.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// List types. Anything but ListOrdered renders an unordered list.
const (
	ListOrdered   = "ordered"
	ListUnordered = "unordered"
)

// Option keys recognized at the call site (shortcode attributes, query params).
const (
	KeyView        = "view"
	KeyMode        = "mode"
	KeyTitle       = "title"
	KeyButtonStyle = "button_style"
	KeyButtonColor = "button_color"
	KeyListType    = "list_type"
)

// Fallback values used when no tier supplies a field.
const (
	DefaultView        = ViewAbove
	DefaultMode        = ModeLight
	DefaultTitle       = "Key Takeaways"
	DefaultButtonStyle = "flat"
	DefaultButtonColor = "#0073aa"
	DefaultListType    = ListUnordered
)

// WrapperMarker is the class of the outer container. Its presence in content
// means the widget was already injected.
const WrapperMarker = "keypoints-wrap"

// FallbackNotice is returned by manual placement when an item has no points.
const FallbackNotice = "<p>No key points have been set for this post.</p>"

// PointList is an ordered list of points. Stored order is rendering order.
type PointList []string

// Filter returns the non-blank points, preserving order.
func (p PointList) Filter() PointList {
	out := make(PointList, 0, len(p))
	for _, point := range p {
		if strings.TrimSpace(point) == "" {
			continue
		}
		out = append(out, point)
	}
	return out
}

// Config is the effective configuration. Every field is populated.
type Config struct {
	View        string `json:"view"`
	Mode        string `json:"mode"`
	Title       string `json:"title"`
	ButtonStyle string `json:"button_style"`
	ButtonColor string `json:"button_color"`
	ListType    string `json:"list_type"`
}

// DefaultConfig returns the hardcoded fallback configuration.
func DefaultConfig() Config {
	return Config{
		View:        DefaultView,
		Mode:        DefaultMode,
		Title:       DefaultTitle,
		ButtonStyle: DefaultButtonStyle,
		ButtonColor: DefaultButtonColor,
		ListType:    DefaultListType,
	}
}

// PartialConfig is a single configuration tier. Empty fields are absent.
type PartialConfig struct {
	View        string `json:"view,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Title       string `json:"title,omitempty"`
	ButtonStyle string `json:"button_style,omitempty"`
	ButtonColor string `json:"button_color,omitempty"`
	ListType    string `json:"list_type,omitempty"`
}

// Lookup implements Source.
func (p PartialConfig) Lookup(key string) (string, bool) {
	var v string
	switch key {
	case KeyView:
		v = p.View
	case KeyMode:
		v = p.Mode
	case KeyTitle:
		v = p.Title
	case KeyButtonStyle:
		v = p.ButtonStyle
	case KeyButtonColor:
		v = p.ButtonColor
	case KeyListType:
		v = p.ListType
	}
	return v, v != ""
}

// PartialFromMap builds a tier from option keys. Unknown keys are ignored.
func PartialFromMap(m map[string]string) PartialConfig {
	return PartialConfig{
		View:        m[KeyView],
		Mode:        m[KeyMode],
		Title:       m[KeyTitle],
		ButtonStyle: m[KeyButtonStyle],
		ButtonColor: m[KeyButtonColor],
		ListType:    m[KeyListType],
	}
}
