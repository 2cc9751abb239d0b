package main

import (
	"log"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Demo accounts created alongside the catalog. Passwords are for local
// development only.
var demoUsers = []struct {
	Name     string
	Email    string
	Document string
	Role     string
	Password string
}{
	{"Fisioterapeuta Demo", "fisio@stepwise-saude.com.br", "111.222.333-44", models.RolePhysiotherapist, "Fisio@123"},
	{"Industria Demo", "industria@stepwise-saude.com.br", "11.222.333/0001-44", models.RoleIndustry, "Industria@123"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("Starting seed script...")

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := seedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := seedUsers(db); err != nil {
		log.Fatalf("Failed to seed demo users: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedCatalog(db *gorm.DB) error {
	coatings := []models.Coating{
		{Name: "EVA Premium", Description: "Revestimento em EVA de alta densidade", PriceCents: 2500, IsActive: true},
		{Name: "Couro Natural", Description: "Revestimento em couro legitimo", PriceCents: 4500, IsActive: true},
		{Name: "Tecido Antibacteriano", Description: "Revestimento com tratamento antibacteriano", PriceCents: 3200, IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&coatings).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d coatings", len(coatings))

	insoleModels := []models.InsoleModel{
		{Name: "Conforto Total", Description: "Palmilha para uso diario", Indication: "Uso geral e conforto", PriceCents: 18900, IsActive: true},
		{Name: "Esportiva Pro", Description: "Palmilha para praticas esportivas", Indication: "Corrida e esportes de impacto", PriceCents: 24900, IsActive: true},
		{Name: "Diabetico Care", Description: "Palmilha para pes diabeticos", Indication: "Neuropatia e pe diabetico", PriceCents: 29900, IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&insoleModels).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d insole models", len(insoleModels))

	expires := time.Now().AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{Code: "BEMVINDO10", Kind: models.CouponPercent, Value: 10, ExpiresAt: &expires, UsageLimit: 0, IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&coupons).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d coupons", len(coupons))

	return nil
}

func seedUsers(db *gorm.DB) error {
	created := 0
	for _, du := range demoUsers {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", du.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:         du.Name,
			Email:        du.Email,
			Document:     du.Document,
			Role:         du.Role,
			PasswordHash: string(hashed),
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		created++
	}
	log.Printf("Seeded %d demo users", created)
	return nil
}
