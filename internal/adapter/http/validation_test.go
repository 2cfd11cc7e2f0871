package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(fe []FieldError, field, msgPart string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, msgPart) {
			return true
		}
	}
	return false
}

func TestReqStatusValidation(t *testing.T) {
	type P struct {
		Status string `validate:"reqstatus"`
	}
	cv := NewValidator()

	for _, s := range []string{"pending", "approved", "rejected", "borrowed", "returned"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}

	for _, s := range []string{"", "lost", "PENDING", "borrowed "} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Status", "must be one of") {
			t.Fatalf("expected reqstatus message for %q, got %+v", s, fe)
		}
	}
}

func TestRequiredAndFormatMapping(t *testing.T) {
	type P struct {
		Name  string   `validate:"required"`
		Email string   `validate:"required,email"`
		Date  string   `validate:"datetime=2006-01-02"`
		Items []string `validate:"min=1"`
		Qty   int      `validate:"gte=1"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name:  "",
		Email: "not-an-email",
		Date:  "10/09/2025",
		Items: nil,
		Qty:   0,
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Date", "YYYY-MM-DD") {
		t.Fatalf("missing datetime message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Items", "at least 1") {
		t.Fatalf("missing min message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Qty", "greater than or equal to 1") {
		t.Fatalf("missing gte message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errFake{})
	if len(fe) != 1 || fe[0].Field != "_" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

type errFake struct{}

func (errFake) Error() string { return "not a validator error" }
