package roast

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	sheetURLPrefix  = "https://docs.google.com/spreadsheets/d/"
	sheetExportGID  = "0"
	sheetExportBase = "https://docs.google.com/spreadsheets/d/"
)

var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// SheetRef identifies a published spreadsheet and its CSV export.
type SheetRef struct {
	ID        string
	ExportURL string
}

// NormalizeManual renders days as "Day {n}: {details}" lines, numbered by
// position. It fails when every day is blank.
func NormalizeManual(days []Day) (string, error) {
	lines := make([]string, 0, len(days))
	filled := 0
	for i, day := range days {
		details := strings.TrimSpace(day.Details)
		if details != "" {
			filled++
		}
		lines = append(lines, fmt.Sprintf("Day %d: %s", i+1, details))
	}
	if filled == 0 {
		return "", errEmptyItinerary()
	}
	return strings.Join(lines, "\n"), nil
}

// NormalizeVoice passes a transcript through unchanged once it is known to be non-blank.
func NormalizeVoice(transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", errEmptyVoiceNote()
	}
	return transcript, nil
}

// NormalizeSheetText passes fetched sheet text through unchanged once it is known to be non-blank.
func NormalizeSheetText(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errEmptySheet()
	}
	return raw, nil
}

// ParseSheetURL validates a published sheet URL and derives its CSV export URL.
// No network access happens here.
func ParseSheetURL(raw string) (SheetRef, error) {
	if raw == "" || !strings.HasPrefix(raw, sheetURLPrefix) {
		return SheetRef{}, errInvalidSheetURL()
	}
	match := sheetIDPattern.FindStringSubmatch(raw)
	if len(match) < 2 || match[1] == "" {
		return SheetRef{}, errMissingSheetID()
	}
	id := match[1]
	return SheetRef{
		ID:        id,
		ExportURL: fmt.Sprintf("%s%s/export?format=csv&gid=%s", sheetExportBase, id, sheetExportGID),
	}, nil
}
