package service

import (
	"strconv"
	"strings"
	"time"

	"heart-haven/database"
	"heart-haven/database/model"
	"heart-haven/util/random"

	"gorm.io/gorm"
)

var defaultValueMap = map[string]string{
	"webListen":     "",
	"webPort":       "8080",
	"webBasePath":   "/",
	"sessionMaxAge": "60",
	"secret":        random.Seq(32),
	"timeLocation":  "Local",
}

// SettingService stores panel runtime settings in a key-value table,
// falling back to defaults for unset keys.
type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

func (s *SettingService) getSetting(key string) (string, error) {
	setting := &model.Setting{}
	err := s.db.Model(model.Setting{}).
		Where("key = ?", key).
		First(setting).
		Error
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", err
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting := &model.Setting{}
	err := s.db.Model(model.Setting{}).
		Where("key = ?", key).
		First(setting).
		Error
	if database.IsNotFound(err) {
		return s.db.Create(&model.Setting{Key: key, Value: value}).Error
	} else if err != nil {
		return err
	}
	setting.Value = value
	return s.db.Save(setting).Error
}

func (s *SettingService) getInt(key string) (int, error) {
	value, err := s.getSetting(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func (s *SettingService) GetListen() (string, error) {
	return s.getSetting("webListen")
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

// GetBasePath returns the base path with leading and trailing slashes
// normalized.
func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getSetting("webBasePath")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

// GetSessionMaxAge returns the session lifetime in minutes.
func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

// GetSecret returns the cookie-signing secret, generating and persisting
// one on first use.
func (s *SettingService) GetSecret() ([]byte, error) {
	secret, err := s.getSetting("secret")
	if err != nil {
		return nil, err
	}
	if err := s.saveSetting("secret", secret); err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

func (s *SettingService) GetTimeLocation() (*time.Location, error) {
	location, err := s.getSetting("timeLocation")
	if err != nil {
		return nil, err
	}
	return time.LoadLocation(location)
}

// ResetSettings drops all stored settings, reverting to defaults.
func (s *SettingService) ResetSettings() error {
	return s.db.Where("1 = 1").Delete(&model.Setting{}).Error
}
