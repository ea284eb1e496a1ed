package gristsync

import (
	"fmt"
	"strings"
	"time"
)

const insertedAction = "Inserted New Record"

// historyLine renders one audit line, e.g.
// "05-04-2024 Mar-24: Updated Perm_Temp to Temp".
func historyLine(now time.Time, monthYear string, action string) string {
	return fmt.Sprintf("%s %s: %s", now.Format("02-01-2006"), monthYear, action)
}

func updatedAction(column string, value any) string {
	return fmt.Sprintf("Updated %s to %s", column, stringValue(value))
}

// prependHistory puts freshly composed lines ahead of the existing
// history, newest first. No trailing newline is introduced when the
// existing history is empty.
func prependHistory(lines []string, existing string) string {
	joined := strings.Join(lines, "\n")
	if existing == "" {
		return joined
	}
	return joined + "\n" + existing
}
