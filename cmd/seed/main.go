package main

import (
	_ "embed"
	"os"

	"github.com/yemenhybrid/workshop-go/internal/config"
	"github.com/yemenhybrid/workshop-go/internal/db"
	"github.com/yemenhybrid/workshop-go/internal/domain/catalog"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Admin struct {
		FullName string `yaml:"fullName"`
		Email    string `yaml:"email"`
		Username string `yaml:"username"`
	} `yaml:"admin"`
	Channels []struct {
		Name        string `yaml:"name"`
		Type        string `yaml:"type"`
		Description string `yaml:"description"`
	} `yaml:"channels"`
	Specializations []struct {
		Code   string `yaml:"code"`
		NameAr string `yaml:"nameAr"`
		NameEn string `yaml:"nameEn"`
	} `yaml:"specializations"`
	Services []struct {
		NameAr          string  `yaml:"nameAr"`
		NameEn          string  `yaml:"nameEn"`
		DescAr          string  `yaml:"descAr"`
		DescEn          string  `yaml:"descEn"`
		Price           float64 `yaml:"price"`
		DurationMinutes int     `yaml:"durationMinutes"`
		Specialization  string  `yaml:"specialization"`
	} `yaml:"services"`
	Parts []struct {
		NameAr    string  `yaml:"nameAr"`
		NameEn    string  `yaml:"nameEn"`
		PartCode  string  `yaml:"partCode"`
		UnitPrice float64 `yaml:"unitPrice"`
	} `yaml:"parts"`
}

func main() {
	config.LoadConfig()
	log := logger.Init()
	defer logger.Sync()

	gormDB, err := db.Open()
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		log.Fatal("failed to parse seed data", zap.Error(err))
	}

	seedAdmin(gormDB, log, data)
	seedChannels(gormDB, log, data)
	specIDs := seedSpecializations(gormDB, log, data)
	seedServices(gormDB, log, data, specIDs)
	seedParts(gormDB, log, data)

	log.Info("seeding completed")
}

func seedAdmin(gormDB *gorm.DB, log *zap.Logger, data seedData) {
	var count int64
	gormDB.Model(&user.User{}).Where("username = ?", data.Admin.Username).Count(&count)
	if count > 0 {
		log.Info("admin user already exists")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash admin password", zap.Error(err))
	}

	admin := user.User{
		FullName:          data.Admin.FullName,
		Email:             data.Admin.Email,
		Username:          data.Admin.Username,
		HashedPassword:    string(hashed),
		Role:              user.RoleAdmin,
		PreferredLanguage: user.LanguageEnglish,
		IsActive:          true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin user", zap.Error(err))
	}
	log.Info("admin user created", zap.String("username", admin.Username))
}

func seedChannels(gormDB *gorm.DB, log *zap.Logger, data seedData) {
	var count int64
	gormDB.Model(&chat.Channel{}).Count(&count)
	if count > 0 {
		log.Info("chat channels already exist")
		return
	}

	for _, ch := range data.Channels {
		desc := ch.Description
		channel := chat.Channel{
			Name:        ch.Name,
			Type:        chat.ChannelType(ch.Type),
			Description: &desc,
			IsActive:    true,
		}
		if err := gormDB.Create(&channel).Error; err != nil {
			log.Fatal("failed to create channel", zap.String("name", ch.Name), zap.Error(err))
		}
	}
	log.Info("default chat channels created", zap.Int("count", len(data.Channels)))
}

func seedSpecializations(gormDB *gorm.DB, log *zap.Logger, data seedData) map[string]string {
	ids := make(map[string]string)

	for _, sp := range data.Specializations {
		var existing catalog.Specialization
		err := gormDB.Where("code = ?", sp.Code).First(&existing).Error
		if err == nil {
			ids[sp.Code] = existing.ID
			continue
		}

		spec := catalog.Specialization{Code: sp.Code, NameAr: sp.NameAr, NameEn: sp.NameEn}
		if err := gormDB.Create(&spec).Error; err != nil {
			log.Fatal("failed to create specialization", zap.String("code", sp.Code), zap.Error(err))
		}
		ids[sp.Code] = spec.ID
	}

	log.Info("specializations ready", zap.Int("count", len(ids)))
	return ids
}

func seedServices(gormDB *gorm.DB, log *zap.Logger, data seedData, specIDs map[string]string) {
	var count int64
	gormDB.Model(&catalog.Service{}).Count(&count)
	if count > 0 {
		log.Info("services already exist")
		return
	}

	for _, s := range data.Services {
		descAr, descEn, duration := s.DescAr, s.DescEn, s.DurationMinutes
		svc := catalog.Service{
			NameAr:                  s.NameAr,
			NameEn:                  s.NameEn,
			DescAr:                  &descAr,
			DescEn:                  &descEn,
			Price:                   s.Price,
			ExpectedDurationMinutes: &duration,
			IsActive:                true,
		}
		if id, ok := specIDs[s.Specialization]; ok {
			svc.SpecializationID = &id
		}
		if err := gormDB.Create(&svc).Error; err != nil {
			log.Fatal("failed to create service", zap.String("name", s.NameEn), zap.Error(err))
		}
	}
	log.Info("sample services created", zap.Int("count", len(data.Services)))
}

func seedParts(gormDB *gorm.DB, log *zap.Logger, data seedData) {
	var count int64
	gormDB.Model(&catalog.SparePart{}).Count(&count)
	if count > 0 {
		log.Info("spare parts already exist")
		return
	}

	for _, p := range data.Parts {
		code := p.PartCode
		part := catalog.SparePart{
			NameAr:    p.NameAr,
			NameEn:    p.NameEn,
			PartCode:  &code,
			UnitPrice: p.UnitPrice,
			IsActive:  true,
		}
		if err := gormDB.Create(&part).Error; err != nil {
			log.Fatal("failed to create spare part", zap.String("name", p.NameEn), zap.Error(err))
		}
	}
	log.Info("sample spare parts created", zap.Int("count", len(data.Parts)))
}
