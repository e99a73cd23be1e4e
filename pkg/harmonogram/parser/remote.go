package parser

import "strings"

// Accepted "red" font encodings. Workbooks in the wild carry the same
// visual red as a full ARGB value, a truncated RGB value, a legacy palette
// index or a theme slot, depending on the authoring tool.
var (
	redRGBExact    = []string{"FF0000"}
	redARGBExact   = []string{"FFFF0000"}
	redRGBPrefixes = []string{"FF00", "F00", "E00", "C00"}
	redIndexed     = map[int]bool{2: true, 3: true, 10: true}
	redThemes      = map[int]bool{2: true, 6: true}
)

// remoteKeywords mark a session as remote regardless of styling.
var remoteKeywords = []string{"zdalnie", "online", "teams"}

// IsRemote reports whether a cell denotes an online/remote session: a red
// font color in any of its three encodings, or a remote keyword anywhere in
// the text. Any single signal suffices.
func IsRemote(color FontColor, text string) bool {
	if isRedRGB(color.RGB) {
		return true
	}
	if redIndexed[color.Indexed] {
		return true
	}
	if color.Theme != nil && redThemes[*color.Theme] {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range remoteKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isRedRGB(argb string) bool {
	if argb == "" {
		return false
	}
	argb = strings.ToUpper(argb)
	rgb := argb
	if len(argb) >= 6 {
		rgb = argb[len(argb)-6:]
	}
	for _, v := range redRGBExact {
		if rgb == v {
			return true
		}
	}
	for _, v := range redARGBExact {
		if argb == v {
			return true
		}
	}
	for _, prefix := range redRGBPrefixes {
		if strings.HasPrefix(rgb, prefix) {
			return true
		}
	}
	return false
}
