package keypoints

import (
	"html"
	"strings"
)

const clearFloats = `<div style="clear: both;"></div>`

// Render builds the widget for points and composes it with surrounding
// content. The result is wrapped in the marker container and followed by a
// float-clearing element. Surrounding content is inserted verbatim; every
// other value is escaped.
//
// Callers short-circuit on an empty filtered list before calling Render.
func Render(points PointList, cfg Config, surrounding string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="` + WrapperMarker + `">`)
	sb.WriteString(Place(cfg.View, Block(points, cfg), surrounding))
	sb.WriteString(`</div>`)
	sb.WriteString(clearFloats)
	return sb.String()
}

// Place composes block and content: after content for ViewBelow, before it
// for every other view.
func Place(view, block, content string) string {
	if view == ViewBelow {
		return content + block
	}
	return block + content
}

// Block renders the widget markup alone, without wrapper or placement.
func Block(points PointList, cfg Config) string {
	var sb strings.Builder
	modeClass := ModeLight
	if cfg.Mode == ModeDark {
		modeClass = ModeDark
	}

	if cfg.View == ViewPopup {
		sb.WriteString(`<button class="keypoints-popup-btn `)
		sb.WriteString(html.EscapeString(modeClass))
		sb.WriteString(` `)
		sb.WriteString(html.EscapeString(cfg.ButtonStyle))
		sb.WriteString(`" style="background-color: `)
		sb.WriteString(html.EscapeString(cfg.ButtonColor))
		sb.WriteString(`;">`)
		sb.WriteString(html.EscapeString(cfg.Title))
		sb.WriteString(`</button>`)
		sb.WriteString(`<div class="keypoints-popup-modal" style="display:none;">`)
		sb.WriteString(`<div class="keypoints-popup-content">`)
		sb.WriteString(`<span class="keypoints-popup-close">&times;</span>`)
		writeHeadingAndList(&sb, points, cfg)
		sb.WriteString(`</div></div>`)
		return sb.String()
	}

	sb.WriteString(`<div class="keypoints `)
	sb.WriteString(html.EscapeString(modeClass))
	sb.WriteString(`">`)
	writeHeadingAndList(&sb, points, cfg)
	sb.WriteString(`</div>`)
	return sb.String()
}

func writeHeadingAndList(sb *strings.Builder, points PointList, cfg Config) {
	sb.WriteString(`<h2>`)
	sb.WriteString(html.EscapeString(cfg.Title))
	sb.WriteString(`</h2>`)

	tag := "ul"
	if cfg.ListType == ListOrdered {
		tag = "ol"
	}
	sb.WriteString("<" + tag + ">")
	for _, point := range points.Filter() {
		sb.WriteString(`<li>`)
		sb.WriteString(html.EscapeString(point))
		sb.WriteString(`</li>`)
	}
	sb.WriteString("</" + tag + ">")
}
