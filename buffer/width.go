package buffer

import "github.com/rivo/uniseg"

// VisualColumn returns the display column of the given byte column within a
// line, expanding tabs to the next multiple of tabStop and measuring
// everything else in grapheme cluster widths.
func VisualColumn(lineText string, byteCol, tabStop int) int {
	if tabStop < 1 {
		tabStop = 1
	}
	width := 0
	rest := lineText[:byteCol]
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			width = (width/tabStop + 1) * tabStop
		} else {
			width += w
		}
	}
	return width
}

// ColumnForWidth returns the byte column within a line whose visual column
// first reaches or passes target. The newline is never included; a target
// past the line content yields the column of the last character.
func ColumnForWidth(lineText string, target, tabStop int) int {
	if tabStop < 1 {
		tabStop = 1
	}
	content := lineText
	if n := len(content); n > 0 && content[n-1] == '\n' {
		content = content[:n-1]
	}
	width := 0
	col := 0
	rest := content
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			width = (width/tabStop + 1) * tabStop
		} else {
			width += w
		}
		if width > target {
			return col
		}
		col += len(cluster)
		if len(rest) == 0 {
			// target lies at or past the last cluster
			return col - len(cluster)
		}
	}
	return 0
}
