// Package format detects whether input is STL text or an HTML document.
package format

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// STL indicates Structured Table Language text.
	STL
	// HTML indicates an HTML document or fragment.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case STL:
		return "STL"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case STL:
		return ".stl"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".stl", ".txt":
		return STL
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromMagic inspects the start of the content. HTML is recognised by
// a doctype, an <html> element or a leading <table>; STL by a section
// marker or comment on the first non-blank line.
func DetectFromMagic(data []byte) Format {
	if detectHTMLMagic(data) {
		return HTML
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			return STL
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(strings.TrimSpace(line[1 : len(line)-1])) {
			case "header", "body", "footer":
				return STL
			}
		}
		return Unknown
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive)
	head := strings.ToUpper(string(data[:min(len(data), 512)]))
	for _, sig := range []string{"<!DOCTYPE HTML", "<HTML", "<TABLE"} {
		if strings.HasPrefix(head, sig) {
			return true
		}
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(head, "<?XML") && strings.Contains(head, "<HTML")
}
