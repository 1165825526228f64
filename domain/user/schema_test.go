package user_test

import (
	"errors"
	"testing"

	"github.com/artpar/userhub/domain/user"
)

func validFields() user.Fields {
	return user.Fields{
		"name":  "Alice",
		"email": "alice@example.com",
		"age":   float64(30),
		"sex":   "female",
	}
}

func TestValidate_FullValidSet(t *testing.T) {
	if err := user.Validate(validFields()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidate_PartialSetAllowed(t *testing.T) {
	// Presence of required fields is not the schema's concern
	if err := user.Validate(user.Fields{"age": float64(25)}); err != nil {
		t.Errorf("partial field set should validate: %v", err)
	}
	if err := user.Validate(user.Fields{}); err != nil {
		t.Errorf("empty field set should validate: %v", err)
	}
}

func TestValidate_UnknownField(t *testing.T) {
	err := user.Validate(user.Fields{"nickname": "al"})
	if err == nil {
		t.Fatal("expected error for unknown field")
	}

	var fe *user.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %T", err)
	}
	if fe.Field != "nickname" {
		t.Errorf("Field = %s, want nickname", fe.Field)
	}
}

func TestValidate_AgeBounds(t *testing.T) {
	tests := []struct {
		age   float64
		valid bool
	}{
		{0, false},
		{1, true},
		{50, true},
		{99, true},
		{100, false},
		{-5, false},
	}

	for _, tt := range tests {
		err := user.Validate(user.Fields{"age": tt.age})
		if tt.valid && err != nil {
			t.Errorf("age %v should be valid: %v", tt.age, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("age %v should be invalid", tt.age)
		}
	}
}

func TestValidate_AgeType(t *testing.T) {
	// JSON numbers decode as float64; only integer values pass
	if err := user.Validate(user.Fields{"age": 30.5}); err == nil {
		t.Error("fractional age should fail the type check")
	}
	if err := user.Validate(user.Fields{"age": "30"}); err == nil {
		t.Error("string age should fail the type check")
	}
	if err := user.Validate(user.Fields{"age": 30}); err != nil {
		t.Errorf("int age should validate: %v", err)
	}
	if err := user.Validate(user.Fields{"age": float64(30)}); err != nil {
		t.Errorf("integral float age should validate: %v", err)
	}
}

func TestValidate_SexEnum(t *testing.T) {
	for _, valid := range []string{"male", "female"} {
		if err := user.Validate(user.Fields{"sex": valid}); err != nil {
			t.Errorf("sex %q should validate: %v", valid, err)
		}
	}
	for _, invalid := range []any{"other", "", "MALE", 1} {
		if err := user.Validate(user.Fields{"sex": invalid}); err == nil {
			t.Errorf("sex %v should be invalid", invalid)
		}
	}
}

func TestValidate_EmptyNameAndEmail(t *testing.T) {
	if err := user.Validate(user.Fields{"name": ""}); err == nil {
		t.Error("empty name should be invalid")
	}
	if err := user.Validate(user.Fields{"email": ""}); err == nil {
		t.Error("empty email should be invalid")
	}
	if err := user.Validate(user.Fields{"name": 42}); err == nil {
		t.Error("non-string name should be invalid")
	}
}

func TestValidate_ReportsInvalidFieldAmongValid(t *testing.T) {
	// Every supplied field is checked, not just the first valid one
	fields := validFields()
	fields["sex"] = "other"

	err := user.Validate(fields)
	if err == nil {
		t.Fatal("expected error for invalid sex among valid fields")
	}

	var fe *user.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %T", err)
	}
	if fe.Field != "sex" {
		t.Errorf("Field = %s, want sex", fe.Field)
	}
}

func TestMissing(t *testing.T) {
	missing := user.Missing(user.Fields{"name": "A", "sex": "male"})
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", missing)
	}
	if missing[0] != "age" || missing[1] != "email" {
		t.Errorf("missing = %v, want [age email]", missing)
	}

	if got := user.Missing(validFields()); len(got) != 0 {
		t.Errorf("full field set should have no missing fields, got %v", got)
	}
}
