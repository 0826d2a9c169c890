package roster

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Run("Valid Batch Keeps Order", func(t *testing.T) {
		users, err := Validate([]RawRecord{
			Raw(3, "Charlie", 35),
			Raw(1, "Alice", 25),
			Raw(2, "Bob", 30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []User{
			{ID: 3, Name: "Charlie", Age: 35},
			{ID: 1, Name: "Alice", Age: 25},
			{ID: 2, Name: "Bob", Age: 30},
		}
		if !reflect.DeepEqual(users, expected) {
			t.Errorf("expected %+v, got %+v", expected, users)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		users, err := Validate(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected no users, got %d", len(users))
		}
	})

	tests := []struct {
		name    string
		records []RawRecord
		detail  string
	}{
		{
			name: "invalid age marker",
			records: []RawRecord{
				Raw(1, "Alice", 25),
				{ID: TypedID(2), Name: "Bob", Age: InvalidAge("thirty")},
				Raw(3, "Charlie", 35),
			},
			detail: "Invalid age value: thirty",
		},
		{
			name:    "unparsable text age",
			records: []RawRecord{{ID: TypedID(1), Name: "Alice", Age: TextAge("4 1")}},
			detail:  "Invalid age value: 4 1",
		},
		{
			name:    "empty text age",
			records: []RawRecord{{ID: TypedID(1), Name: "Alice", Age: TextAge("")}},
			detail:  "Invalid age value: ",
		},
		{
			name:    "zero age value",
			records: []RawRecord{{ID: TypedID(1), Name: "Alice"}},
			detail:  "Invalid age value: ",
		},
		{
			name:    "zero id",
			records: []RawRecord{Raw(0, "Alice", 25)},
			detail:  "Invalid id value",
		},
		{
			name:    "negative id",
			records: []RawRecord{Raw(-4, "Alice", 25)},
			detail:  "Invalid id value",
		},
		{
			name:    "unparsable text id",
			records: []RawRecord{{ID: TextID("one"), Name: "Alice", Age: TypedAge(25)}},
			detail:  "Invalid id value",
		},
		{
			name:    "empty name",
			records: []RawRecord{Raw(1, "", 25)},
			detail:  "Invalid name value",
		},
		{
			name: "age checked before id",
			records: []RawRecord{
				{ID: TypedID(0), Name: "", Age: InvalidAge("old")},
			},
			detail: "Invalid age value: old",
		},
		{
			name:    "id checked before name",
			records: []RawRecord{Raw(0, "", 25)},
			detail:  "Invalid id value",
		},
		{
			name: "first invalid record wins",
			records: []RawRecord{
				Raw(1, "Alice", 25),
				Raw(2, "", 30),
				Raw(0, "Charlie", 35),
			},
			detail: "Invalid name value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := Validate(tt.records)
			if users != nil {
				t.Errorf("expected no partial result, got %+v", users)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if verr.Detail != tt.detail {
				t.Errorf("expected detail %q, got %q", tt.detail, verr.Detail)
			}
		})
	}

	t.Run("Text Values Are Parsed", func(t *testing.T) {
		users, err := Validate([]RawRecord{
			{ID: TextID("7"), Name: "Dora", Age: TextAge("41")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users[0] != (User{ID: 7, Name: "Dora", Age: 41}) {
			t.Errorf("unexpected user %+v", users[0])
		}
	})

	t.Run("Negative Age Is Accepted", func(t *testing.T) {
		users, err := Validate([]RawRecord{Raw(1, "Eve", -1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users[0].Age != -1 {
			t.Errorf("expected age -1, got %d", users[0].Age)
		}
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Detail: "Invalid id value"}
	if err.Error() != "Validation error: Invalid id value" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
