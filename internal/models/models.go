package models

import (
	"time"
)

// Role represents a user's role in the points program
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValidRole checks if a role is valid
func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Category represents a reward catalog category
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryGiftCards   Category = "giftcards"
	CategoryMerchandise Category = "merchandise"
)

// IsValidCategory checks if a category is valid
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryElectronics, CategoryGiftCards, CategoryMerchandise:
		return true
	}
	return false
}

// RedemptionStatus represents the settlement state of a redemption
type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "Pending"
	RedemptionCompleted RedemptionStatus = "Completed"
	RedemptionFailed    RedemptionStatus = "Failed"
)

// User represents a points program member
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Points int    `json:"points"`
}

// Activity represents a point-earning activity logged by a user
type Activity struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Timestamp   time.Time `json:"timestamp"`
}

// AdminAction represents a manual points adjustment recorded by an admin.
// PointsChanged is nil for actions that did not touch a balance.
type AdminAction struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Action        string    `json:"action"`
	PointsChanged *int      `json:"pointsChanged,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Reward represents a catalog entry redeemable for points
type Reward struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	PointsCost  int      `json:"pointsCost"`
	Image       string   `json:"image"`
}

// RedemptionRecord tracks one simulated redemption for the current session.
// Records are never persisted to the backend.
type RedemptionRecord struct {
	ID         int
	Name       string
	PointsCost int
	Date       time.Time
	Status     RedemptionStatus
}

// ActivityOption is a predefined activity the client can log locally
type ActivityOption struct {
	Description string
	Points      int
}

// ActivityOptions are the activities offered by the log form, in menu order.
var ActivityOptions = []ActivityOption{
	{Description: "Task Completion", Points: 10},
	{Description: "Daily Login Streak", Points: 5},
	{Description: "Content Creation", Points: 20},
	{Description: "Community Engagement", Points: 15},
}

// Config represents client configuration persisted to ~/.rd/config.json
type Config struct {
	BaseURL  string `json:"base_url,omitempty"`
	DarkMode bool   `json:"dark_mode,omitempty"`
	LoggedIn bool   `json:"logged_in,omitempty"`
	Username string `json:"username,omitempty"`
}

// Collection identifies one of the backend's flat resource collections
type Collection string

const (
	CollectionUsers        Collection = "users"
	CollectionActivities   Collection = "activities"
	CollectionRewards      Collection = "rewards"
	CollectionAdminActions Collection = "adminActions"
)

// IsValidCollection checks if a collection name is one the backend serves
func IsValidCollection(c Collection) bool {
	switch c {
	case CollectionUsers, CollectionActivities, CollectionRewards, CollectionAdminActions:
		return true
	}
	return false
}
