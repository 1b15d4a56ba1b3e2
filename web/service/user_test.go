package service

import (
	"errors"
	"testing"

	"heart-haven/database/model"
)

func TestCheckUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	tests := []struct {
		name     string
		username string
		password string
		wantRole model.Role
		wantNil  bool
	}{
		{"admin ok", "admin", "admin123", model.RoleAdmin, false},
		{"student ok", "student1", "student123", model.RoleStudent, false},
		{"admin wrong password", "admin", "nope", "", true},
		{"student wrong password", "student2", "nope", "", true},
		{"unknown user", "ghost", "admin123", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := users.CheckUser(tc.username, tc.password)
			if tc.wantNil {
				if user != nil {
					t.Fatalf("got %v, want nil", user)
				}
				return
			}
			if user == nil {
				t.Fatal("got nil, want user")
			}
			if user.UserRole() != tc.wantRole {
				t.Errorf("role = %s, want %s", user.UserRole(), tc.wantRole)
			}
			if user.UserName() != tc.username {
				t.Errorf("username = %s, want %s", user.UserName(), tc.username)
			}
		})
	}
}

func TestGetStudent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	student, err := users.GetStudent("2")
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if student.DisplayName != "John Smith" || student.Hearts != 50 {
		t.Errorf("student = %+v", student)
	}

	if _, err := users.GetStudent("missing"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestUserIdTaken(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	// "1" is the seeded admin, "2" a seeded student; ids share one space.
	for _, id := range []string{"1", "2"} {
		taken, err := users.UserIdTaken(id)
		if err != nil {
			t.Fatalf("id taken %s: %v", id, err)
		}
		if !taken {
			t.Errorf("id %s should be taken", id)
		}
	}
	taken, err := users.UserIdTaken("free")
	if err != nil {
		t.Fatalf("id taken: %v", err)
	}
	if taken {
		t.Error("unused id reported taken")
	}
}

func TestGetFirstAdmin(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	admin, err := users.GetFirstAdmin()
	if err != nil {
		t.Fatalf("get first admin: %v", err)
	}
	if admin.Username != "admin" {
		t.Errorf("username = %q, want admin", admin.Username)
	}
}
