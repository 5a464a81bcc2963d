package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
)

func lookupApplicationStep(userID driver.Value) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT \\* FROM `applications` WHERE national_id = \\?"),
		columns: []string{"application_id", "national_id", "first_name", "school_id", "user_id"},
		rows: [][]driver.Value{
			{int64(7), "1234567890121", "สมชาย", int64(3), userID},
		},
	}
}

func lookupSchoolStep() *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT \\* FROM `schools` WHERE"),
		columns: []string{"school_id", "name", "province"},
		rows: [][]driver.Value{
			{int64(3), "โรงเรียนอนุบาลขอนแก่น", "ขอนแก่น"},
		},
	}
}

func TestLookupApplicantByNationalID(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		lookupApplicationStep(nil),
		lookupSchoolStep(),
	})
	defer cleanup()

	application, err := LookupApplicantByNationalID(db, "1234567890121")
	if err != nil {
		t.Fatalf("LookupApplicantByNationalID() error = %v", err)
	}
	if application.FirstName != "สมชาย" {
		t.Errorf("first name = %q", application.FirstName)
	}
	if application.School.Name != "โรงเรียนอนุบาลขอนแก่น" {
		t.Errorf("school = %q", application.School.Name)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

// A roster row that already has an account attached must not be shown on
// the sign-up page again.
func TestLookupApplicantAlreadyRegistered(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		lookupApplicationStep(int64(42)),
		lookupSchoolStep(),
	})
	defer cleanup()

	_, err := LookupApplicantByNationalID(db, "1234567890121")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("LookupApplicantByNationalID() error = %v, want ErrConflict", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}

func TestLookupApplicantNotFound(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `applications` WHERE national_id = \\?"),
			columns: []string{"application_id"},
		},
	})
	defer cleanup()

	_, err := LookupApplicantByNationalID(db, "1234567890121")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("LookupApplicantByNationalID() error = %v, want ErrNotFound", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
