//go:build ignore
// +build ignore

// Helper script to add sample tasks to the configured database
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"
	"time"

	"github.com/thenoetrevino/tasklist/internal/app"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dbPath, err := cfg.ResolvedDatabasePath()
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v", err)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	svc := app.New(db, app.WithConfig(cfg)).TaskService
	today := models.Today(time.Now())

	tasks := []taskservice.CreateTaskRequest{
		{Title: "Buy milk", Deadline: today.String(), Category: "Household"},
		{Title: "Pay electricity bill", Deadline: today.AddDays(-2).String(), Category: "Household"},
		{Title: "Read chapter 4", Notes: "Focus on **section 4.2**", Deadline: today.AddDays(3).String(), Category: "Study"},
		{Title: "Call the dentist", Deadline: today.AddDays(1).String(), Category: "Personal"},
		{Title: "Sort old photos", Deadline: today.AddDays(14).String()},
	}

	for _, req := range tasks {
		task, err := svc.CreateTask(ctx, req)
		if err != nil {
			log.Printf("Failed to create task %s: %v", req.Title, err)
			continue
		}
		log.Printf("Created task %d: %s (%s)", task.ID, task.Title, task.Status)
	}

	// One finished task so every status shows up
	done, err := svc.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    "Renew library card",
		Deadline: today.AddDays(-5).String(),
		Category: "Personal",
	})
	if err != nil {
		log.Fatalf("Failed to create task: %v", err)
	}
	if _, err := svc.ToggleDone(ctx, done.ID); err != nil {
		log.Fatalf("Failed to complete task %d: %v", done.ID, err)
	}

	log.Println("Sample tasks added successfully!")
}
