package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"size:50" json:"first_name"`
	LastName   string    `gorm:"size:50" json:"last_name"`
	Username   string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	IsAdmin    bool      `gorm:"default:false" json:"is_admin"`
	IsSupplier bool      `gorm:"default:false" json:"is_supplier"`
	IsCustomer bool      `gorm:"default:true" json:"is_customer"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"is_admin"`
	IsSupplier bool      `json:"is_supplier"`
	IsCustomer bool      `json:"is_customer"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		IsSupplier: u.IsSupplier,
		IsCustomer: u.IsCustomer,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

// ============================================================
// Catalog Tables
// ============================================================

// Category represents categories table
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	ParentID *uint  `gorm:"index" json:"parent_id"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}

// Product represents products table
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	CategoryID  uint    `gorm:"index;not null" json:"category_id"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
}

func (Product) TableName() string {
	return "products"
}

// Rating represents ratings table
type Rating struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	Grade     int  `gorm:"not null" json:"grade"`
	UserID    uint `gorm:"index;not null" json:"user_id"`
	ProductID uint `gorm:"index;not null" json:"product_id"`
	IsActive  bool `gorm:"default:true" json:"is_active"`
}

func (Rating) TableName() string {
	return "ratings"
}

// Review represents reviews table
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProductID   uint      `gorm:"index;not null" json:"product_id"`
	RatingID    uint      `gorm:"index;not null" json:"rating_id"`
	Comment     string    `gorm:"type:text;not null" json:"comment"`
	CommentDate time.Time `gorm:"autoCreateTime" json:"comment_date"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

func (Review) TableName() string {
	return "reviews"
}

// AutoMigrate runs migrations for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
		&Rating{},
		&Review{},
	)
}
