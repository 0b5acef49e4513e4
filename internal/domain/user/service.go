// internal/domain/user/service.go
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/veggiekart-backend/internal/config"
	"github.com/your-org/veggiekart-backend/internal/pkg/auth"
)

var (
	// ErrInvalidPhone is returned for phone numbers that are not 10 digits.
	ErrInvalidPhone = errors.New("please enter a valid 10-digit phone number")
	// ErrOTPExpired is returned when no pending code exists for the phone.
	ErrOTPExpired = errors.New("OTP expired or not requested")
	// ErrOTPIncorrect is returned when the submitted code does not match.
	ErrOTPIncorrect = errors.New("incorrect OTP")
	// ErrOTPTooManyAttempts is returned once the attempt limit is reached.
	ErrOTPTooManyAttempts = errors.New("too many incorrect attempts, request a new OTP")
)

// Service handles phone authentication and profile business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	jwtManager  *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		jwtManager:  auth.NewJWTManager(cfg),
	}
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	User            *Profile `json:"user"`
	AccessToken     string   `json:"access_token"`
	RefreshToken    string   `json:"refresh_token"`
	ProfileComplete bool     `json:"profile_complete"`
}

// otpRecord is the pending-code state kept in Redis, keyed by phone.
type otpRecord struct {
	Hash     string `json:"hash"`
	Attempts int    `json:"attempts"`
}

func otpKey(phone string) string {
	return fmt.Sprintf("otp:phone:%s", phone)
}

// SendOTP issues a one-time code for the phone number and stores its hash
// with a TTL. The returned code is only exposed to the caller in development
// mode; delivery over SMS is an external concern.
func (s *Service) SendOTP(ctx context.Context, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return "", ErrInvalidPhone
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return "", err
	}

	hash, err := auth.HashOTP(code, s.config.OTP.BcryptCost)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(otpRecord{Hash: hash})
	if err != nil {
		return "", fmt.Errorf("failed to encode OTP record: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey(phone), data, s.config.OTP.Expiry).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	if s.config.IsDevelopment() {
		return code, nil
	}
	return "", nil
}

// VerifyOTP checks the submitted code, consumes it and signs the user in,
// creating the profile on first successful authentication.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (*AuthResponse, error) {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	key := otpKey(phone)
	data, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	var record otpRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to decode OTP record: %w", err)
	}

	if record.Attempts >= s.config.OTP.MaxAttempts {
		s.redisClient.Del(ctx, key)
		return nil, ErrOTPTooManyAttempts
	}

	if !auth.CheckOTP(record.Hash, code) {
		record.Attempts++
		if updated, err := json.Marshal(record); err == nil {
			s.redisClient.Set(ctx, key, updated, redis.KeepTTL)
		}
		return nil, ErrOTPIncorrect
	}

	// Code verified, consume it
	s.redisClient.Del(ctx, key)

	profile, err := s.ensureProfile(phone)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(profile)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	profile, err := LoadProfile(s.db, claims.UID)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(profile)
}

// GetProfile gets the profile for a uid.
func (s *Service) GetProfile(uid string) (*Profile, error) {
	return LoadProfile(s.db, uid)
}

// UpdateName sets the display name, completing the profile.
func (s *Service) UpdateName(uid, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("please enter your name")
	}

	var updated *Profile
	err := MutateProfile(s.db, uid, func(profile *Profile) error {
		profile.Name = name
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Private helper methods

// ensureProfile finds the profile by phone, creating an empty one for a
// first-time caller.
func (s *Service) ensureProfile(phone string) (*Profile, error) {
	var profile Profile
	result := s.db.Where("phone = ?", phone).First(&profile)
	if result.Error == nil {
		return &profile, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to retrieve profile: %w", result.Error)
	}

	profile = Profile{
		UID:       uuid.New().String(),
		Phone:     phone,
		CartItems: CartItems{},
		Addresses: Addresses{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

func (s *Service) buildAuthResponse(profile *Profile) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(profile.UID, profile.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(profile.UID, profile.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:            profile,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		ProfileComplete: profile.HasCompletedProfile(),
	}, nil
}
