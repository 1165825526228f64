package user_test

import (
	"encoding/json"
	"testing"

	"github.com/artpar/userhub/domain/user"
)

func TestNewRef(t *testing.T) {
	u := user.User{ID: 7, Name: "Bob", Email: "bob@example.com", Age: 40, Sex: user.SexMale}

	ref := user.NewRef(u)
	if ref.ID != 7 {
		t.Errorf("ID = %d, want 7", ref.ID)
	}
	if ref.Name != "Bob" {
		t.Errorf("Name = %s, want Bob", ref.Name)
	}
	if ref.URL != "/users/7" {
		t.Errorf("URL = %s, want /users/7", ref.URL)
	}
}

func TestApply_PartialOverwrite(t *testing.T) {
	u := user.User{ID: 1, Name: "Alice", Email: "alice@example.com", Age: 30, Sex: user.SexFemale}

	got := user.Apply(u, user.Fields{"age": float64(31), "name": "Alicia"})

	if got.Age != 31 {
		t.Errorf("Age = %d, want 31", got.Age)
	}
	if got.Name != "Alicia" {
		t.Errorf("Name = %s, want Alicia", got.Name)
	}
	// Untouched fields survive
	if got.Email != "alice@example.com" {
		t.Errorf("Email = %s, want alice@example.com", got.Email)
	}
	if got.Sex != user.SexFemale {
		t.Errorf("Sex = %s, want female", got.Sex)
	}
	if got.ID != 1 {
		t.Errorf("ID = %d, want 1", got.ID)
	}
}

func TestFromFields(t *testing.T) {
	u := user.FromFields(user.Fields{
		"name":  "Carol",
		"email": "carol@example.com",
		"age":   float64(22),
		"sex":   "female",
	})

	want := user.User{Name: "Carol", Email: "carol@example.com", Age: 22, Sex: user.SexFemale}
	if u != want {
		t.Errorf("FromFields = %+v, want %+v", u, want)
	}
}

func TestSex_IsValid(t *testing.T) {
	if !user.SexMale.IsValid() || !user.SexFemale.IsValid() {
		t.Error("male and female must be valid")
	}
	if user.Sex("other").IsValid() {
		t.Error("other must be invalid")
	}
	if user.Sex("").IsValid() {
		t.Error("empty must be invalid")
	}
}

func TestUser_JSONShape(t *testing.T) {
	u := user.User{ID: 1, Name: "A", Email: "a@x.com", Age: 30, Sex: user.SexMale}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":1,"name":"A","email":"a@x.com","age":30,"sex":"male"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestRef_JSONShape(t *testing.T) {
	ref := user.NewRef(user.User{ID: 1, Name: "A"})

	data, err := json.Marshal(ref)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":1,"name":"A","url":"/users/1"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
