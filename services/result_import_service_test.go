package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"admission-api/models"
)

func activeYearStep(yearID int) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT \\* FROM `academic_years` WHERE is_active = \\?"),
		columns: []string{"academic_year_id", "year", "is_active"},
		rows: [][]driver.Value{
			{int64(yearID), int64(2025), true},
		},
	}
}

func resetStaleStatusesStep() *queryStep {
	return &queryStep{
		kind:         kindExec,
		pattern:      regexp.MustCompile("UPDATE `applications` SET .*WHERE academic_year_id = \\? AND priority_rank IS NOT NULL AND application_status IN"),
		rowsAffected: 2,
	}
}

func clearRanksStep() *queryStep {
	return &queryStep{
		kind:         kindExec,
		pattern:      regexp.MustCompile("UPDATE `applications` SET .*WHERE academic_year_id = \\? AND priority_rank IS NOT NULL"),
		rowsAffected: 2,
	}
}

func rankUpdateStep(affected int64) *queryStep {
	return &queryStep{
		kind:         kindExec,
		pattern:      regexp.MustCompile("UPDATE `applications` SET .*WHERE national_id = \\? AND academic_year_id = \\?"),
		rowsAffected: affected,
	}
}

func TestImportResultsAssignsRanksByQuota(t *testing.T) {
	first := rankUpdateStep(1)
	second := rankUpdateStep(1)
	third := rankUpdateStep(1)
	reset := resetStaleStatusesStep()
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		activeYearStep(3),
		reset,
		clearRanksStep(),
		first,
		second,
		third,
	})
	defer cleanup()

	updated, err := ImportResults(db, []string{"1101700230705", "1103700158730", "1234567890121"}, 2)
	if err != nil {
		t.Fatalf("ImportResults() error = %v", err)
	}
	if updated != 3 {
		t.Errorf("updated = %d, want 3", updated)
	}
	if !argsContain(first.gotArgs, models.StatusAwaitingPhase3Decision) {
		t.Errorf("rank 1 args %v, want status %s", first.gotArgs, models.StatusAwaitingPhase3Decision)
	}
	if !argsContain(second.gotArgs, models.StatusAwaitingPhase3Decision) {
		t.Errorf("rank 2 args %v, want status %s", second.gotArgs, models.StatusAwaitingPhase3Decision)
	}
	if !argsContain(third.gotArgs, models.StatusWaitingList) {
		t.Errorf("rank 3 args %v, want status %s", third.gotArgs, models.StatusWaitingList)
	}
	// Ranked applicants missing from the new file fall back to the
	// exam-passed pool before the new ranks are written.
	if !argsContain(reset.gotArgs, models.StatusEligibleForExam) {
		t.Errorf("reset args %v, want status %s", reset.gotArgs, models.StatusEligibleForExam)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

// An unknown national ID aborts the whole batch. Earlier rows in the
// same file must not survive the rollback.
func TestImportResultsAbortsOnUnknownNationalID(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		activeYearStep(3),
		resetStaleStatusesStep(),
		clearRanksStep(),
		rankUpdateStep(1),
		rankUpdateStep(0),
	})
	defer cleanup()

	updated, err := ImportResults(db, []string{"1101700230705", "9999999999999", "1234567890121"}, DefaultPrimaryQuota)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ImportResults() error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the failing sheet row", err)
	}
	if updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestImportResultsEmptyBatch(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	_, err := ImportResults(db, nil, DefaultPrimaryQuota)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ImportResults() error = %v, want ErrValidation", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestParseResultRows(t *testing.T) {
	rows := [][]string{
		{ColNationalID, "ชื่อ"},
		{"1101700230705", "สมชาย"},
		{"1103700158730", "สมหญิง"},
	}
	ids, err := ParseResultRows(rows)
	if err != nil {
		t.Fatalf("ParseResultRows() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "1101700230705" || ids[1] != "1103700158730" {
		t.Errorf("ids = %v", ids)
	}
}

func TestParseResultRowsBlankID(t *testing.T) {
	rows := [][]string{
		{ColNationalID},
		{"1101700230705"},
		{""},
	}
	_, err := ParseResultRows(rows)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ParseResultRows() error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the failing row", err)
	}
}
