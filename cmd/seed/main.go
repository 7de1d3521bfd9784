// Command seed populates the database with demo users and posts for local
// development and prints a ready-to-use bearer token for each user.
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devconnect/devconnect/config"
	"github.com/devconnect/devconnect/models"
	"github.com/devconnect/devconnect/utils"
)

func main() {
	cfg := config.Load()
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Post{}, &models.Like{}, &models.Comment{})

	if err := seedDatabase(db); err != nil {
		utils.Sugar.Fatalf("seed failed: %v", err)
	}
	utils.Sugar.Info("database seeded")
}

func seedDatabase(db *gorm.DB) error {
	demoUsers := []struct {
		name   string
		email  string
		avatar string
	}{
		{"Alice Doe", "alice@example.com", "https://www.gravatar.com/avatar/alice?d=mm"},
		{"Bob Roe", "bob@example.com", "https://www.gravatar.com/avatar/bob?d=mm"},
		{"Charlie Poe", "charlie@example.com", "https://www.gravatar.com/avatar/charlie?d=mm"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := make([]models.User, 0, len(demoUsers))
	for _, du := range demoUsers {
		var user models.User
		err := db.Where("email = ?", du.email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:           uuid.NewString(),
				Name:         du.name,
				Email:        du.email,
				PasswordHash: string(hash),
				AvatarURL:    du.avatar,
			}
			if err := db.Create(&user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", du.email, err)
			}
		} else if err != nil {
			return fmt.Errorf("look up user %s: %w", du.email, err)
		}
		users = append(users, user)
	}

	var postCount int64
	if err := db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if postCount == 0 {
		for i, u := range users {
			post := models.Post{
				ID:           uuid.NewString(),
				UserID:       u.ID,
				AuthorName:   u.Name,
				AuthorAvatar: u.AvatarURL,
				Text:         fmt.Sprintf("Hello from %s!", u.Name),
				CreatedAt:    time.Now().Add(time.Duration(i) * time.Second),
			}
			if err := db.Create(&post).Error; err != nil {
				return fmt.Errorf("create post for %s: %w", u.Email, err)
			}
		}
	}

	for _, u := range users {
		token, err := utils.GenerateToken(u.ID, u.Name, 24*time.Hour)
		if err != nil {
			return fmt.Errorf("issue token for %s: %w", u.Email, err)
		}
		fmt.Printf("%s\t%s\tBearer %s\n", u.Name, u.Email, token)
	}
	return nil
}
