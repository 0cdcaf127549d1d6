package segment

import "strings"

// Noise lines are artifacts of the PDF conversion that produced the guide
// documents: pagination markers and inline base64 images. They are dropped
// before accumulation so they never appear in chunk content.
func isNoiseLine(line string) bool {
	stripped := strings.TrimSpace(line)
	return (strings.HasPrefix(stripped, "[Page") && strings.HasSuffix(stripped, "]")) ||
		strings.HasPrefix(stripped, "![이미지](data:image") ||
		strings.HasPrefix(stripped, "![이미지](page")
}
