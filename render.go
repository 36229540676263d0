package bufview

import (
	"fmt"
	"strings"
)

// String renders the view descriptor as [offset,length](capacity).
func (v View) String() string {
	return fmt.Sprintf("[%d,%d](%d)", v.off, v.length, v.store.Cap())
}

// HexDump renders the window content 16 bytes per line, each byte as two
// lowercase hex digits followed by a space. A blank line opens the dump
// and a newline closes it. The exact shape is relied on by log tooling;
// keep it stable.
func HexDump(v View) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for i, b := range v.window() {
		if i > 0 && i%16 == 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%02x ", b)
	}
	sb.WriteByte('\n')
	return sb.String()
}
