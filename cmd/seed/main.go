package main

import (
	"log"
	"os"
	"time"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/model"
	"personal-assistant-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding starter data...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	tasks := []model.Task{
		{Title: "Review weekly priorities", Description: "Go through open projects and pick the top three", Priority: constant.TaskPriorityHigh, Status: constant.TaskStatusPending, DueDate: &tomorrow},
		{Title: "Inbox zero", Description: "Archive or reply to everything older than two days", Priority: constant.TaskPriorityMedium, Status: constant.TaskStatusPending},
	}
	for _, t := range tasks {
		var existing model.Task
		if err := db.Where("title = ?", t.Title).First(&existing).Error; err == nil {
			log.Printf("Task '%s' already exists, skipping...", t.Title)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating task '%s': %v", t.Title, err)
		} else {
			log.Printf("Created task: %s", t.Title)
		}
	}

	goals := []model.Goal{
		{Title: "Read 12 books this year", Description: "One book a month, alternating fiction and non-fiction", Status: constant.GoalStatusActive},
	}
	for _, g := range goals {
		var existing model.Goal
		if err := db.Where("title = ?", g.Title).First(&existing).Error; err == nil {
			log.Printf("Goal '%s' already exists, skipping...", g.Title)
			continue
		}
		if err := db.Create(&g).Error; err != nil {
			log.Printf("Error creating goal '%s': %v", g.Title, err)
		} else {
			log.Printf("Created goal: %s", g.Title)
		}
	}

	preferences := []model.Preference{
		{Key: "work_hours", Value: "09:00-17:00", Category: "schedule"},
		{Key: "planning_style", Value: "morning/afternoon/evening blocks", Category: "planning"},
	}
	for _, p := range preferences {
		var existing model.Preference
		if err := db.Where("key = ?", p.Key).First(&existing).Error; err == nil {
			log.Printf("Preference '%s' already exists, skipping...", p.Key)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating preference '%s': %v", p.Key, err)
		} else {
			log.Printf("Created preference: %s", p.Key)
		}
	}

	log.Println("Seeding completed!")
}
