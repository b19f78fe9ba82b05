package main

import (
	"log"

	"garagehub/internal/config"
	"garagehub/internal/database"
	"garagehub/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data in FK-safe order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM forum_posts")
	db.Exec("DELETE FROM forum_threads")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM parts")
	db.Exec("DELETE FROM part_categories")
	db.Exec("DELETE FROM garage_services")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM garages")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Username:     "staff",
		Email:        "staff@garagehub.dev",
		PasswordHash: string(staffHash),
		IsStaff:      true,
		Profile:      &domain.Profile{UserType: domain.UserTypeCarOwner},
	}
	db.Create(&staff)

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	garageAdmin := domain.User{
		Username:     "mechanic_mike",
		Email:        "mike@garagehub.dev",
		PasswordHash: string(adminHash),
		Profile: &domain.Profile{
			UserType:    domain.UserTypeGarageAdmin,
			PhoneNumber: "+254700000001",
		},
	}
	db.Create(&garageAdmin)

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	carOwner := domain.User{
		Username:     "driver_dana",
		Email:        "dana@garagehub.dev",
		PasswordHash: string(ownerHash),
		Profile: &domain.Profile{
			UserType:    domain.UserTypeCarOwner,
			PhoneNumber: "+254700000002",
		},
	}
	db.Create(&carOwner)

	log.Println("Creating service catalog...")
	oilChange := domain.Service{Name: "Oil Change", Description: "Engine oil and filter replacement"}
	tireRotation := domain.Service{Name: "Tire Rotation", Description: "Rotate tires front to back"}
	brakeService := domain.Service{Name: "Brake Service", Description: "Pads, discs and fluid"}
	db.Create(&oilChange)
	db.Create(&tireRotation)
	db.Create(&brakeService)

	log.Println("Creating garages...")
	nairobiGarage := domain.Garage{
		OwnerID:     garageAdmin.ID,
		Name:        "Westlands Auto Works",
		Description: "Full-service garage in Westlands",
		Address:     "12 Waiyaki Way",
		City:        "Nairobi",
		Country:     "Kenya",
		Longitude:   36.8095,
		Latitude:    -1.2648,
		PhoneNumber: "+254712345678",
		Email:       "contact@westlandsauto.ke",
		IsVerified:  true,
	}
	db.Create(&nairobiGarage)

	parisGarage := domain.Garage{
		OwnerID:     garageAdmin.ID,
		Name:        "Garage de la Tour",
		Description: "Quartier Gros-Caillou repair shop",
		Address:     "5 Avenue de la Bourdonnais",
		City:        "Paris",
		Country:     "France",
		Longitude:   2.2945,
		Latitude:    48.8584,
		PhoneNumber: "+33123456789",
		Email:       "bonjour@garagedelatour.fr",
		IsVerified:  true,
	}
	db.Create(&parisGarage)

	db.Create(&domain.GarageService{GarageID: nairobiGarage.ID, ServiceID: oilChange.ID, Price: 55.00})
	db.Create(&domain.GarageService{GarageID: nairobiGarage.ID, ServiceID: tireRotation.ID, Price: 45.00})
	db.Create(&domain.GarageService{GarageID: parisGarage.ID, ServiceID: brakeService.ID, Price: 120.00})

	log.Println("Creating parts...")
	engineParts := domain.PartCategory{Name: "Engine Parts", Slug: "engine-parts"}
	db.Create(&engineParts)

	db.Create(&domain.Part{
		SellerGarageID: nairobiGarage.ID,
		CategoryID:     &engineParts.ID,
		Name:           "Oil Filter",
		Description:    "OEM oil filter for most sedans",
		Price:          12.50,
		Stock:          40,
		IsAvailable:    true,
	})

	log.Println("Creating reviews...")
	db.Create(&domain.Review{
		GarageID: nairobiGarage.ID,
		UserID:   carOwner.ID,
		Rating:   5,
		Comment:  "Quick and honest service.",
	})

	log.Println("Creating forum content...")
	thread := domain.ForumThread{Title: "Best oil for high-mileage engines?", AuthorID: carOwner.ID}
	db.Create(&thread)
	db.Create(&domain.ForumPost{
		ThreadID: thread.ID,
		AuthorID: garageAdmin.ID,
		Content:  "Go for a high-mileage synthetic blend, 5W-30 in most climates.",
	})

	log.Println("Seed complete.")
}
