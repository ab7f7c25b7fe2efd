package keypoints

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"double quoted", ` view="popup" title="Key Ideas"`, map[string]string{"view": "popup", "title": "Key Ideas"}},
		{"single quoted", ` mode='dark'`, map[string]string{"mode": "dark"}},
		{"bare", ` id=12 list_type=ordered`, map[string]string{"id": "12", "list_type": "ordered"}},
		{"uppercase keys", ` VIEW="below"`, map[string]string{"view": "below"}},
		{"duplicate keeps last", ` view="above" view="below"`, map[string]string{"view": "below"}},
		{"color value", ` button_color="#ff0000"`, map[string]string{"button_color": "#ff0000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAttrs(tt.raw))
		})
	}
}

func TestShortcodeItemID(t *testing.T) {
	assert.Equal(t, int64(12), shortcode{attrs: map[string]string{"id": "12"}}.itemID())
	assert.Equal(t, int64(0), shortcode{attrs: map[string]string{"id": "abc"}}.itemID())
	assert.Equal(t, int64(0), shortcode{attrs: map[string]string{"id": "-4"}}.itemID())
	assert.Equal(t, int64(0), shortcode{attrs: map[string]string{}}.itemID())
}

func TestExpandShortcodes(t *testing.T) {
	store := newFakeStore()
	store.points[1] = PointList{"Current"}
	store.points[2] = PointList{"Other"}
	svc := newTestService(store)
	ctx := context.Background()

	content := `<p>Intro</p>[keypoints]<p>Mid</p>[keypoints id="2" view="below"]Wrapped[/keypoints][keypoints id=3]`
	out := svc.ExpandShortcodes(ctx, 1, content)

	assert.NotContains(t, out, "[keypoints")
	assert.Contains(t, out, "<li>Current</li>")
	assert.Contains(t, out, "Wrapped<div class=\"keypoints light\">", "below places enclosed content first")
	assert.Contains(t, out, "<li>Other</li>")
	assert.True(t, strings.HasSuffix(out, FallbackNotice), "unknown item renders the notice")
	assert.Equal(t, 2, strings.Count(out, WrapperMarker))
}

func TestExpandShortcodesLeavesOtherContent(t *testing.T) {
	svc := newTestService(newFakeStore())
	content := "<p>No tags here [other] [keypointsish]</p>"
	assert.Equal(t, content, svc.ExpandShortcodes(context.Background(), 1, content))
}
