package repository

import (
	"github.com/h4ks-com/brewlog/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	return firstOrNil(r.db.Where("username = ?", username), &user)
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	return firstOrNil(r.db.Where("id = ?", id), &user)
}

// FirstOrCreate returns the user with the given name, creating it on first
// sight. A concurrent insert of the same name loses the unique index race and
// is resolved by reading the winner's row.
func (r *UserRepository) FirstOrCreate(username string) (*models.User, error) {
	user, err := r.FindByUsername(username)
	if err != nil || user != nil {
		return user, err
	}
	user = &models.User{Username: username}
	if createErr := r.db.Create(user).Error; createErr != nil {
		existing, err := r.FindByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, createErr
		}
		return existing, nil
	}
	return user, nil
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username ASC").Find(&users).Error
	return users, err
}

// BeanCounts returns the number of beans owned by each user id.
func (r *UserRepository) BeanCounts() (map[uint]int64, error) {
	var rows []struct {
		UserID uint
		Count  int64
	}
	err := r.db.Model(&models.CoffeeBean{}).
		Select("user_id, COUNT(*) AS count").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}
