package service

import (
	"testing"
)

func TestImportStudents(t *testing.T) {
	db := newTestDB(t)
	imports := NewImportService(db)
	users := NewUserService(db)

	result, err := imports.ImportStudents([]StudentRecord{
		{Id: "2", Name: "Clash Kid", StudentId: "S99990", Username: "clash", Password: "pw"},
		{Id: "99", Name: "New Kid", StudentId: "S99991", Username: "student99", Password: "pw", Hearts: 15},
		{Name: "No Username", StudentId: "S99992", Password: "pw"},
		{Name: "Taken Name", StudentId: "S99993", Username: "student1", Password: "pw"},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(result.Accepted) != 1 {
		t.Fatalf("accepted = %d, want 1", len(result.Accepted))
	}
	if result.Accepted[0].Id != "99" || result.Accepted[0].Hearts != 15 {
		t.Errorf("accepted = %+v", result.Accepted[0])
	}

	if len(result.Rejected) != 3 {
		t.Fatalf("rejected = %d, want 3", len(result.Rejected))
	}
	wantReasons := map[string]string{
		"Clash Kid":   "duplicate id",
		"No Username": "missing username",
		"Taken Name":  "duplicate username",
	}
	for _, rej := range result.Rejected {
		if want := wantReasons[rej.Record.Name]; rej.Reason != want {
			t.Errorf("%s: reason = %q, want %q", rej.Record.Name, rej.Reason, want)
		}
	}

	students, err := users.AllStudents()
	if err != nil {
		t.Fatalf("all students: %v", err)
	}
	if len(students) != 3 {
		t.Errorf("students = %d, want 3 (two seeded plus one imported)", len(students))
	}
}

func TestImportBatchInternalDuplicates(t *testing.T) {
	db := newTestDB(t)
	imports := NewImportService(db)

	result, err := imports.ImportStudents([]StudentRecord{
		{Name: "First", StudentId: "S80001", Username: "twin", Password: "pw"},
		{Name: "Second", StudentId: "S80002", Username: "twin", Password: "pw"},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Accepted) != 1 {
		t.Fatalf("accepted = %d, want 1", len(result.Accepted))
	}
	if result.Accepted[0].DisplayName != "First" {
		t.Errorf("accepted = %q, want First", result.Accepted[0].DisplayName)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].Reason != "duplicate username" {
		t.Errorf("rejected = %+v", result.Rejected)
	}
}

func TestImportDefaults(t *testing.T) {
	db := newTestDB(t)
	imports := NewImportService(db)

	result, err := imports.ImportStudents([]StudentRecord{
		{Name: "Fresh", StudentId: "S70001", Username: "fresh", Password: "pw", Hearts: -10},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Accepted) != 1 {
		t.Fatalf("accepted = %d, want 1", len(result.Accepted))
	}
	got := result.Accepted[0]
	if got.Hearts != 0 {
		t.Errorf("hearts = %d, want 0 (negative values floor)", got.Hearts)
	}
	if got.Id == "" {
		t.Error("blank id should be assigned")
	}
}

func TestImportEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	imports := NewImportService(db)

	result, err := imports.ImportStudents(nil)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Accepted) != 0 || len(result.Rejected) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
