package domain

import "strings"

// TagInfo is the display descriptor for a tag: icon name plus pill colors.
type TagInfo struct {
	Name            string `json:"name"`
	IconName        string `json:"icon_name"`
	Color           string `json:"color"`
	BackgroundColor string `json:"background_color"`
}

// Known descriptors, keyed by upper-cased tag name.
var tagRegistry = map[string]TagInfo{
	"WELLNESS":  {IconName: "infinity", Color: "#9b87f5", BackgroundColor: "#E5DEFF"},
	"YOGA":      {IconName: "flower", Color: "#9b87f5", BackgroundColor: "#E5DEFF"},
	"EVENTS":    {IconName: "partyPopper", Color: "#FF4136", BackgroundColor: "#FFDFDF"},
	"MUSIC":     {IconName: "music", Color: "#FF4136", BackgroundColor: "#FFDFDF"},
	"TOURS":     {IconName: "mapPin", Color: "#FF851B", BackgroundColor: "#FFE9D1"},
	"SURF":      {IconName: "waves", Color: "#0074D9", BackgroundColor: "#D1E8FF"},
	"IMPACT":    {IconName: "leaf", Color: "#2ECC40", BackgroundColor: "#D1FFD7"},
	"ADVENTURE": {IconName: "mountain", Color: "#FF851B", BackgroundColor: "#FFE9D1"},
	"TRANSPORT": {IconName: "car", Color: "#0074D9", BackgroundColor: "#D1E8FF"},
	"FOOD":      {IconName: "utensils", Color: "#FF4136", BackgroundColor: "#FFDFDF"},
	"WORKSPACE": {IconName: "laptop", Color: "#2ECC40", BackgroundColor: "#D1FFD7"},
}

// ResolveTag returns the display descriptor for a tag name. The lookup is
// case-insensitive; the returned Name keeps the caller's casing. Unknown
// tags get a neutral default.
func ResolveTag(name string) TagInfo {
	if ti, ok := tagRegistry[strings.ToUpper(name)]; ok {
		ti.Name = name
		return ti
	}
	return TagInfo{Name: name, IconName: "circle", Color: "#000000", BackgroundColor: "#FFFFFF"}
}
