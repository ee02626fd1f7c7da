package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"restaurant_system/internal/domain"
	"restaurant_system/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// RegisterInput is a new customer sign-up
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// UserFilter narrows the admin user listing
type UserFilter struct {
	Role     domain.Role
	Page     int
	PageSize int
}

// UserPage is one page of the admin user listing
type UserPage struct {
	Users []domain.User `json:"users"`
	Page
}

// Accounts handles registration, login and profiles
type Accounts struct {
	db        *gorm.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAccounts(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *Accounts {
	return &Accounts{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a customer account with an empty address book
func (a *Accounts) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	if name == "" || email == "" || phone == "" || in.Password == "" {
		return nil, domain.Validationf("name, email, password and phone are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.Validationf("invalid email address")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.Validationf("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
		Role:         domain.RoleCustomer,
		Addresses:    datatypes.JSONSlice[string]{},
	}
	err = a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return domain.Conflictf("email already registered")
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.Conflictf("email already registered")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User registered")
	return &user, nil
}

// Login checks credentials and issues a token carrying the user's id and role
func (a *Accounts) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var user domain.User
	err := a.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, domain.Authorizationf("invalid credentials")
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.Authorizationf("invalid credentials")
	}
	token, err := utils.GenerateJWT(user.ID, user.Role, a.jwtSecret, a.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, &user, nil
}

// Profile returns the user with addresses and loyalty points
func (a *Accounts) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	var user domain.User
	if err := a.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err, "user")
	}
	return &user, nil
}

// ListUsers returns a page of users, optionally only one role
func (a *Accounts) ListUsers(ctx context.Context, f UserFilter) (*UserPage, error) {
	if f.Role != "" && !f.Role.Valid() {
		return nil, domain.Validationf("unknown role %q", f.Role)
	}
	page, size := normalizePage(f.Page, f.PageSize)

	filtered := func() *gorm.DB {
		q := a.db.WithContext(ctx).Model(&domain.User{})
		if f.Role != "" {
			q = q.Where("role = ?", f.Role)
		}
		return q
	}
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	var users []domain.User
	err := filtered().Order("id").Offset((page - 1) * size).Limit(size).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &UserPage{Users: users, Page: newPage(page, size, total)}, nil
}
