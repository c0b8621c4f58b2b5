// Command seed populates the therapist directory, weekly availability, and a
// few starter resources. Therapists have no write surface over HTTP, so this
// is the only way rows get there.
package main

import (
	"flag"
	"time"

	"github.com/mindhaven/core/internal/config"
	"github.com/mindhaven/core/internal/database"
	"github.com/mindhaven/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := seed(db); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Start from a clean directory; re-running the seeder must not
		// duplicate therapists or availability.
		if err := tx.Where("1 = 1").Delete(&models.TherapistAvailabilityModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.TherapistModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.ResourceModel{}).Error; err != nil {
			return err
		}

		jane := models.TherapistModel{
			Name:           "Dr. Jane Smith",
			PhotoURL:       "https://randomuser.me/api/portraits/women/44.jpg",
			Specialization: "Anxiety, Depression",
			Qualifications: "PhD Clinical Psychology",
			Contact:        "janesmith@example.com",
			Location:       "Sydney, Australia",
		}
		john := models.TherapistModel{
			Name:           "Dr. John Doe",
			PhotoURL:       "https://randomuser.me/api/portraits/men/46.jpg",
			Specialization: "Stress Management, PTSD",
			Qualifications: "MD Psychiatry",
			Contact:        "johndoe@example.com",
			Location:       "Melbourne, Australia",
		}
		if err := tx.Create(&jane).Error; err != nil {
			return err
		}
		if err := tx.Create(&john).Error; err != nil {
			return err
		}

		availability := []models.TherapistAvailabilityModel{
			{TherapistID: jane.ID, Day: "Monday", Slot: "09:00"},
			{TherapistID: jane.ID, Day: "Monday", Slot: "10:00"},
			{TherapistID: jane.ID, Day: "Monday", Slot: "14:00"},
			{TherapistID: jane.ID, Day: "Wednesday", Slot: "11:00"},
			{TherapistID: jane.ID, Day: "Wednesday", Slot: "13:00"},
			{TherapistID: john.ID, Day: "Tuesday", Slot: "09:30"},
			{TherapistID: john.ID, Day: "Tuesday", Slot: "12:00"},
			{TherapistID: john.ID, Day: "Tuesday", Slot: "15:00"},
			{TherapistID: john.ID, Day: "Thursday", Slot: "10:00"},
			{TherapistID: john.ID, Day: "Thursday", Slot: "14:30"},
		}
		if err := tx.Create(&availability).Error; err != nil {
			return err
		}

		resources := []models.ResourceModel{
			{
				Title:        "Understanding Anxiety",
				Summary:      "An article explaining anxiety and ways to manage it.",
				URL:          "https://www.example.com/anxiety",
				Source:       "MedlinePlus",
				ResourceType: "article",
				Tags:         "anxiety,mental health,coping",
				Verified:     true,
				PublishedAt:  date(2023, 3, 15),
			},
			{
				Title:        "Stress Management Techniques",
				Summary:      "A video guide on effective stress management.",
				URL:          "https://www.youtube.com/watch?v=stress123",
				Source:       "YouTube",
				ResourceType: "video",
				Tags:         "stress,relaxation,mental health",
				PublishedAt:  date(2023, 1, 10),
			},
			{
				Title:        "Mindfulness Meditation for Anxiety",
				Summary:      "A comprehensive guide on how mindfulness meditation can help reduce anxiety.",
				URL:          "https://www.mindful.org/mindfulness-meditation-for-anxiety/",
				Source:       "Mindful.org",
				ResourceType: "article",
				Tags:         "mindfulness,anxiety,meditation",
				Verified:     true,
				PublishedAt:  date(2023, 3, 15),
			},
			{
				Title:        "Understanding Depression",
				Summary:      "An easy-to-understand overview of depression symptoms, causes, and treatment options.",
				URL:          "https://www.nimh.nih.gov/health/topics/depression",
				Source:       "NIMH",
				ResourceType: "article",
				Tags:         "depression,mental health,symptoms",
				Verified:     true,
				PublishedAt:  date(2022, 11, 20),
			},
			{
				Title:        "Cognitive Behavioral Therapy (CBT) Explained",
				Summary:      "An introduction to CBT techniques used to treat various mental health issues.",
				URL:          "https://www.psychologytools.com/resource/cognitive-behavioural-therapy-cbt-explained/",
				Source:       "Psychology Tools",
				ResourceType: "article",
				Tags:         "CBT,therapy,mental health",
				PublishedAt:  date(2023, 6, 5),
			},
			{
				Title:        "Guided Relaxation and Deep Breathing",
				Summary:      "A video demonstrating simple deep breathing exercises to reduce stress.",
				URL:          "https://www.youtube.com/watch?v=1vx8iUvfyCY",
				Source:       "YouTube",
				ResourceType: "video",
				Tags:         "relaxation,breathing,stress relief",
				PublishedAt:  date(2023, 2, 1),
			},
		}
		return tx.Create(&resources).Error
	})
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
