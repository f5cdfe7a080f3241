package booking

import (
	"regexp"
	"time"

	"scheduler/models"
)

const (
	dateLayout     = "20060102"
	listWindowDays = 7
)

var (
	datePattern      = regexp.MustCompile(`^\d{8}$`)
	startTimePattern = regexp.MustCompile(`^\d{1,2}$`)
)

// validateCreate applies the create checks in order and stops at the first failure.
// start_time is kept verbatim, so "9" and "09" are different slots.
func validateCreate(req models.CreateReservationRequest) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"start_time", req.StartTime},
		{"title", req.Title},
		{"content", req.Content},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &Error{Kind: KindValidation, Message: "All fields are required", Missing: missing}
	}

	if !datePattern.MatchString(req.Date) {
		return newValidationError("Invalid date format")
	}
	if !startTimePattern.MatchString(req.StartTime) {
		return newValidationError("Invalid time format")
	}
	return nil
}

// parseTargetDate validates a list path date and parses it as a UTC calendar day.
func parseTargetDate(date string) (time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, newValidationError("Invalid date format")
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, newValidationError("Invalid date")
	}
	return t, nil
}

// listWindow returns the inclusive [D-7d, D+7d] bounds as yyyyMMdd strings.
func listWindow(target time.Time) (string, string) {
	return target.AddDate(0, 0, -listWindowDays).Format(dateLayout),
		target.AddDate(0, 0, listWindowDays).Format(dateLayout)
}

// affectedTargets lists every target date whose list window contains day.
func affectedTargets(day time.Time) []string {
	targets := make([]string, 0, 2*listWindowDays+1)
	for i := -listWindowDays; i <= listWindowDays; i++ {
		targets = append(targets, day.AddDate(0, 0, i).Format(dateLayout))
	}
	return targets
}
