package service

import (
	"heart-haven/database"
	"heart-haven/database/model"
	"heart-haven/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService is the identity store: admin and student accounts and the
// single source of truth for student lookups.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CheckUser matches username and password against both account variants and
// returns nil on any mismatch. Unknown user and wrong password are
// deliberately indistinguishable. Passwords are compared in plain text by
// product decision.
func (s *UserService) CheckUser(username string, password string) model.User {
	admin := &model.Admin{}
	err := s.db.Model(model.Admin{}).
		Where("username = ?", username).
		First(admin).
		Error
	if err == nil {
		if admin.Password == password {
			return *admin
		}
		return nil
	}
	if !database.IsNotFound(err) {
		logger.Warning("check user err:", err)
		return nil
	}

	student := &model.Student{}
	err = s.db.Model(model.Student{}).
		Where("username = ?", username).
		First(student).
		Error
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("check user err:", err)
		}
		return nil
	}
	if student.Password != password {
		return nil
	}
	return *student
}

// GetFirstAdmin returns the first admin account, used by the CLI.
func (s *UserService) GetFirstAdmin() (*model.Admin, error) {
	admin := &model.Admin{}
	err := s.db.Model(model.Admin{}).First(admin).Error
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// GetStudent looks up one student by internal id.
func (s *UserService) GetStudent(id string) (*model.Student, error) {
	student := &model.Student{}
	err := s.db.Model(model.Student{}).
		Where("id = ?", id).
		First(student).
		Error
	if database.IsNotFound(err) {
		return nil, ErrStudentNotFound
	} else if err != nil {
		return nil, err
	}
	return student, nil
}

// AllStudents lists students in insertion order.
func (s *UserService) AllStudents() ([]model.Student, error) {
	var students []model.Student
	err := s.db.Model(model.Student{}).Find(&students).Error
	return students, err
}

// AddStudent stores one student record, assigning an id when the caller
// left it blank. Uniqueness checks are the caller's concern, matching the
// bulk-import contract.
func (s *UserService) AddStudent(student *model.Student) error {
	if student.Id == "" {
		student.Id = uuid.NewString()
	}
	return s.db.Create(student).Error
}

// UserIdTaken reports whether an id belongs to any existing account,
// admin or student.
func (s *UserService) UserIdTaken(id string) (bool, error) {
	return userIdTaken(s.db, id)
}

func userIdTaken(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(model.Admin{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := db.Model(model.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func usernameTaken(db *gorm.DB, username string) (bool, error) {
	var count int64
	if err := db.Model(model.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := db.Model(model.Student{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
