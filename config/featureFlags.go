package config

import (
	"os"
	"strings"
)

// MarkAsLeft enables the master-table post-pass that flags employees who
// are present in Grist but missing from the incoming workbook as Left.
// Dangerous on partial workbooks, so it is opt-in.
//
// Set via env:
// - MARK_AS_LEFT=true
func MarkAsLeft() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MARK_AS_LEFT")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
