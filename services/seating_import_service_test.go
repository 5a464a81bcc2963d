package services

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func seatUpdateStep(affected int64) *queryStep {
	return &queryStep{
		kind:         kindExec,
		pattern:      regexp.MustCompile("UPDATE `applications` SET .*WHERE national_id = \\?"),
		rowsAffected: affected,
	}
}

func TestImportSeating(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		seatUpdateStep(1),
		seatUpdateStep(1),
	})
	defer cleanup()

	venue := "อาคาร 1"
	updated, err := ImportSeating(db, []SeatingRow{
		{NationalID: "1101700230705", ExamVenue: &venue},
		{NationalID: "1103700158730", ExamVenue: &venue},
	})
	if err != nil {
		t.Fatalf("ImportSeating() error = %v", err)
	}
	if updated != 2 {
		t.Errorf("updated = %d, want 2", updated)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestImportSeatingAbortsOnUnknownNationalID(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		seatUpdateStep(1),
		seatUpdateStep(0),
	})
	defer cleanup()

	updated, err := ImportSeating(db, []SeatingRow{
		{NationalID: "1101700230705"},
		{NationalID: "9999999999999"},
		{NationalID: "1234567890121"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ImportSeating() error = %v, want ErrNotFound", err)
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
