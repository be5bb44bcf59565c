package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"courtside/internal/partners"
	"courtside/internal/shared/config"
	"courtside/internal/shared/database"
	"courtside/internal/slots"
	"courtside/internal/users"
	"courtside/internal/venues"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Courtside Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"booking_slots",
		"bookings",
		"slots",
		"venues",
		"push_subscriptions",
		"partners",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	partnerIDs, err := s.SeedPartners()
	if err != nil {
		return fmt.Errorf("failed to seed partners: %w", err)
	}

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	venueIDs, err := s.SeedVenues(partnerIDs)
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedSlots(venueIDs); err != nil {
		return fmt.Errorf("failed to seed slots: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedPartners creates venue partners with a known password ("qwerty")
func (s *Seeder) SeedPartners() (map[string]uuid.UUID, error) {
	fmt.Println("  🤝 Seeding partners...")

	partnerIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	partnersData := []struct {
		key   string
		name  string
		email string
		phone string
	}{
		{"arena", "Arena Sports Pvt Ltd", "arena@courtside.app", "9876543210"},
		{"smash", "Smash Badminton Academy", "smash@courtside.app", "9876543211"},
	}

	for _, partnerData := range partnersData {
		partner := partners.Partner{
			ID:        uuid.New(),
			Name:      partnerData.name,
			Email:     partnerData.email,
			Password:  string(hashedPassword),
			Phone:     partnerData.phone,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&partner).Error; err != nil {
			return nil, fmt.Errorf("failed to create partner %s: %w", partnerData.email, err)
		}

		partnerIDs[partnerData.key] = partner.ID
		fmt.Printf("    ✅ Created partner: %s\n", partner.Email)
	}

	return partnerIDs, nil
}

// SeedUsers creates a couple of OTP-login users
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	usersData := []struct {
		mobile string
		name   string
	}{
		{"9000000001", "Rohan Mehta"},
		{"9000000002", "Priya Nair"},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			Mobile:    userData.mobile,
			Name:      userData.name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.mobile, err)
		}

		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Name, user.Mobile)
	}

	return nil
}

// SeedVenues creates sample venues for each partner
func (s *Seeder) SeedVenues(partnerIDs map[string]uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding venues...")

	var venueIDs []uuid.UUID

	venuesData := []struct {
		partnerKey  string
		name        string
		description string
		address     string
		city        string
		sports      []string
		amenities   []string
		startTime   string
		endTime     string
	}{
		{
			partnerKey:  "arena",
			name:        "Arena Turf Park",
			description: "Floodlit 5-a-side football turf with FIFA-approved artificial grass.",
			address:     "12 MG Road, Indiranagar",
			city:        "bengaluru",
			sports:      []string{"football", "cricket"},
			amenities:   []string{"parking", "floodlights", "changing-room", "drinking-water"},
			startTime:   "06:00",
			endTime:     "23:00",
		},
		{
			partnerKey:  "arena",
			name:        "Arena Box Cricket",
			description: "Indoor box cricket arena with electronic scoring.",
			address:     "45 Outer Ring Road, Marathahalli",
			city:        "bengaluru",
			sports:      []string{"cricket"},
			amenities:   []string{"parking", "cafeteria", "first-aid"},
			startTime:   "07:00",
			endTime:     "22:00",
		},
		{
			partnerKey:  "smash",
			name:        "Smash Courts Koramangala",
			description: "Six synthetic badminton courts with BWF-standard lighting.",
			address:     "8th Block, Koramangala",
			city:        "bengaluru",
			sports:      []string{"badminton"},
			amenities:   []string{"parking", "pro-shop", "coaching", "shower"},
			startTime:   "05:30",
			endTime:     "23:30",
		},
		{
			partnerKey:  "smash",
			name:        "Smash Courts Andheri",
			description: "Four wooden badminton courts in the heart of Andheri West.",
			address:     "Veera Desai Road, Andheri West",
			city:        "mumbai",
			sports:      []string{"badminton", "table-tennis"},
			amenities:   []string{"air-conditioning", "locker", "shower"},
			startTime:   "06:00",
			endTime:     "22:00",
		},
	}

	for _, venueData := range venuesData {
		venue := venues.Venue{
			ID:          uuid.New(),
			PartnerID:   partnerIDs[venueData.partnerKey],
			Name:        venueData.name,
			Description: venueData.description,
			Address:     venueData.address,
			City:        venueData.city,
			Sports:      venueData.sports,
			Amenities:   venueData.amenities,
			Images:      []string{},
			StartTime:   venueData.startTime,
			EndTime:     venueData.endTime,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
		}

		venueIDs = append(venueIDs, venue.ID)
		fmt.Printf("    ✅ Created venue: %s (%s)\n", venue.Name, venue.City)
	}

	return venueIDs, nil
}

// SeedSlots creates hourly slots for the next 7 days for every venue
func (s *Seeder) SeedSlots(venueIDs []uuid.UUID) error {
	fmt.Println("  ⏰ Seeding slots...")

	prices := []float64{600, 800, 1000, 1200}

	for vi, venueID := range venueIDs {
		count := 0
		for day := 0; day < 7; day++ {
			date := time.Now().AddDate(0, 0, day).Format("2006-01-02")

			// Morning 06:00-10:00 and evening 17:00-22:00 blocks
			for hour := 6; hour < 10; hour++ {
				if err := s.createSlot(venueID, date, hour, prices[vi%len(prices)]); err != nil {
					return err
				}
				count++
			}
			for hour := 17; hour < 22; hour++ {
				if err := s.createSlot(venueID, date, hour, prices[vi%len(prices)]*1.5); err != nil {
					return err
				}
				count++
			}
		}
		fmt.Printf("    ✅ Created %d slots for venue %s\n", count, venueID)
	}

	return nil
}

func (s *Seeder) createSlot(venueID uuid.UUID, date string, hour int, price float64) error {
	slot := slots.Slot{
		ID:        uuid.New(),
		VenueID:   venueID,
		Date:      date,
		StartTime: fmt.Sprintf("%02d:00", hour),
		EndTime:   fmt.Sprintf("%02d:00", hour+1),
		Price:     price,
		IsBooked:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.PostgreSQL.Create(&slot).Error; err != nil {
		return fmt.Errorf("failed to create slot %s %s: %w", date, slot.StartTime, err)
	}

	return nil
}
