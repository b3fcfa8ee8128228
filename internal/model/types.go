package model

import "time"

type Profile struct {
	Name           string
	WeightKg       float64
	HeightCm       float64
	BirthDate      string
	Gender         string
	ActivityLevel  string
	WeightGoal     string
	TargetWeightKg *float64
	XPLevel        int
	XPCurrent      int
	XPTotal        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type WeightEntry struct {
	ID        int64
	Date      string
	WeightKg  float64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MealEntry struct {
	ID          int64
	Date        string
	Name        string
	Calories    int
	MealType    string
	Quality     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ExerciseEntry struct {
	ID             int64
	Date           string
	ExerciseType   string
	DurationMin    int
	CaloriesBurned int
	Intensity      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type MoodEntry struct {
	ID        int64
	Date      string
	Mood      string
	Notes     string
	CreatedAt time.Time
}

type CycleEntry struct {
	ID        int64
	Date      string
	Flow      string
	Symptoms  []string
	Notes     string
	CreatedAt time.Time
}

type Goal struct {
	ID           int64
	Title        string
	GoalType     string
	TargetValue  float64
	CurrentValue float64
	Deadline     string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Achievement struct {
	ID               string
	Key              string
	Title            string
	Description      string
	BadgeType        string
	Category         string
	Tier             string
	XPReward         int
	DateEarned       string
	NotificationSent bool
}
