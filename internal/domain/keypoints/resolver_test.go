package keypoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Resolve())
	assert.Equal(t, DefaultConfig(), Resolve(PartialConfig{}, MapSource{}, nil))
}

func TestResolvePrecedence(t *testing.T) {
	callSite := MapSource{KeyView: "popup", KeyTitle: ""}
	global := PartialConfig{View: "below", Title: "Highlights", Mode: "dark"}

	cfg := Resolve(callSite, global)

	assert.Equal(t, "popup", cfg.View, "first tier wins")
	assert.Equal(t, "Highlights", cfg.Title, "empty call-site value falls through")
	assert.Equal(t, "dark", cfg.Mode)
	assert.Equal(t, DefaultButtonStyle, cfg.ButtonStyle)
	assert.Equal(t, DefaultButtonColor, cfg.ButtonColor)
	assert.Equal(t, ListUnordered, cfg.ListType)
}

func TestResolvePassesUnknownValuesThrough(t *testing.T) {
	cfg := Resolve(MapSource{KeyView: "sideways", KeyListType: "bulleted"})

	assert.Equal(t, "sideways", cfg.View)
	assert.Equal(t, "bulleted", cfg.ListType)
}

func TestResolveListTypeAlwaysPopulated(t *testing.T) {
	tiers := [][]Source{
		nil,
		{PartialConfig{}},
		{MapSource{KeyListType: ""}, PartialConfig{ListType: ""}},
		{PartialConfig{ListType: ListOrdered}},
		{MapSource{}, PartialConfig{ListType: ListOrdered}},
	}
	want := []string{ListUnordered, ListUnordered, ListUnordered, ListOrdered, ListOrdered}

	for i, ts := range tiers {
		cfg := Resolve(ts...)
		assert.Equal(t, want[i], cfg.ListType, "case %d", i)
	}
}

func TestResolveEveryFieldPopulated(t *testing.T) {
	cfg := Resolve(MapSource{KeyMode: ""}, PartialConfig{Title: ""})

	assert.NotEmpty(t, cfg.View)
	assert.NotEmpty(t, cfg.Mode)
	assert.NotEmpty(t, cfg.Title)
	assert.NotEmpty(t, cfg.ButtonStyle)
	assert.NotEmpty(t, cfg.ButtonColor)
	assert.NotEmpty(t, cfg.ListType)
}

func TestPartialFromMap(t *testing.T) {
	p := PartialFromMap(map[string]string{
		"view":         "below",
		"button_color": "red",
		"id":           "12",
	})

	assert.Equal(t, PartialConfig{View: "below", ButtonColor: "red"}, p)
}

func TestPointListFilter(t *testing.T) {
	points := PointList{"Fast", "", "   ", "Reliable", "\n"}
	assert.Equal(t, PointList{"Fast", "Reliable"}, points.Filter())
	assert.Empty(t, PointList{"", " "}.Filter())
	assert.Empty(t, PointList(nil).Filter())
}
