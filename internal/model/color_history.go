package model

import "regexp"

// MaxHistoryLength bounds how many distinct colors a user's history keeps.
const MaxHistoryLength = 12

// HexPattern matches "#" followed by exactly 3 or 6 hex digits, any case.
var HexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ColorHistory is the per-user recency list of hex colors, most recently
// added first.  A user owns at most one record; it is created lazily on
// the first add.
type ColorHistory struct {
    UserID uint64   // color_history.user_id
    Colors []string // ordered, newest first, no duplicates
}

// Add prepends hex to the list when it is not already present and reports
// whether the list changed.  Re-adding an existing color is a no-op: the
// entry keeps its position rather than moving to the front.
func (h *ColorHistory) Add(hex string) bool {
    for _, c := range h.Colors {
        if c == hex {
            return false
        }
    }
    h.Colors = append([]string{hex}, h.Colors...)
    return true
}

// ClampColors truncates a color list to MaxHistoryLength entries, keeping
// the front (most recent) of the list.  Applied on every persist so the
// stored record never exceeds the cap even if it grew out of band.
func ClampColors(colors []string) []string {
    if len(colors) > MaxHistoryLength {
        return colors[:MaxHistoryLength]
    }
    return colors
}
