package service

import (
	"heart-haven/database/model"
	"heart-haven/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRecord is one already-parsed row of a bulk import. Splitting the
// raw CSV blob into records is the client's job; hearts defaults to zero
// when the column is absent or unparseable.
type StudentRecord struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	StudentId string `json:"studentId"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Hearts    int    `json:"hearts"`
}

// RejectedRecord pairs a rejected candidate with the reason it was dropped.
type RejectedRecord struct {
	Record StudentRecord `json:"record"`
	Reason string        `json:"reason"`
}

// ImportResult reports the fate of every candidate, not just a count.
type ImportResult struct {
	Accepted []model.Student  `json:"accepted"`
	Rejected []RejectedRecord `json:"rejected"`
}

// ImportService performs bulk student onboarding.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportStudents validates each candidate and creates the accepted ones in
// a single transaction. A candidate is rejected when a required field is
// missing, when its id collides with any existing account, or when its
// username is already taken; collisions within the batch count too.
func (s *ImportService) ImportStudents(records []StudentRecord) (*ImportResult, error) {
	result := &ImportResult{
		Accepted: make([]model.Student, 0, len(records)),
		Rejected: make([]RejectedRecord, 0),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		seenIds := make(map[string]bool)
		seenUsernames := make(map[string]bool)

		for _, rec := range records {
			if reason := missingField(rec); reason != "" {
				result.Rejected = append(result.Rejected, RejectedRecord{Record: rec, Reason: reason})
				continue
			}

			if rec.Id != "" {
				taken, err := userIdTaken(tx, rec.Id)
				if err != nil {
					return err
				}
				if taken || seenIds[rec.Id] {
					result.Rejected = append(result.Rejected, RejectedRecord{Record: rec, Reason: "duplicate id"})
					continue
				}
			}

			taken, err := usernameTaken(tx, rec.Username)
			if err != nil {
				return err
			}
			if taken || seenUsernames[rec.Username] {
				result.Rejected = append(result.Rejected, RejectedRecord{Record: rec, Reason: "duplicate username"})
				continue
			}

			hearts := rec.Hearts
			if hearts < 0 {
				hearts = 0
			}
			student := model.Student{
				Id:          rec.Id,
				Username:    rec.Username,
				Password:    rec.Password,
				DisplayName: rec.Name,
				StudentId:   rec.StudentId,
				Hearts:      hearts,
			}
			if student.Id == "" {
				student.Id = uuid.NewString()
			}
			if err := tx.Create(&student).Error; err != nil {
				return err
			}

			seenIds[student.Id] = true
			seenUsernames[student.Username] = true
			result.Accepted = append(result.Accepted, student)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if report, err := json.Marshal(result.Rejected); err == nil {
		logger.Infof("imported %d students, rejected %d: %s", len(result.Accepted), len(result.Rejected), report)
	}
	return result, nil
}

func missingField(rec StudentRecord) string {
	switch {
	case rec.Name == "":
		return "missing name"
	case rec.StudentId == "":
		return "missing studentId"
	case rec.Username == "":
		return "missing username"
	case rec.Password == "":
		return "missing password"
	}
	return ""
}
