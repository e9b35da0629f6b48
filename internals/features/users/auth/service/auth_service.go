package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/users/auth/dto"
	authRepo "csms_backend/internals/features/users/auth/repository"
	adminModel "csms_backend/internals/features/users/admins/model"
	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")

// dummyHash dibandingkan saat email tidak ditemukan, supaya waktu respons
// login tidak membedakan email terdaftar dan tidak.
var dummyHash = sync.OnceValue(func() string {
	h, err := HashPassword("csms-dummy-password")
	if err != nil {
		log.Printf("[ERROR] dummy hash: %v", err)
	}
	return h
})

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// ========================== LOGIN ==========================

// Login: cari akun di tabel sesuai role, cocokkan bcrypt,
// update last_login, lalu terbitkan token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	role, ok := constants.ParseRole(req.Role)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid role")
	}

	acc, err := authRepo.FindAccountByEmail(ctx, s.DB, role, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			CheckPassword(dummyHash(), req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, helper.MapDBError(err, "", "")
	}
	if !CheckPassword(acc.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := authRepo.TouchLastLogin(ctx, s.DB, acc, time.Now().UTC()); err != nil {
		return nil, helper.MapDBError(err, "", "")
	}

	token, exp, err := s.Tokens.Issue(helper.Identity{ID: acc.ID, Email: acc.Email, Role: role})
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: exp.Unix(),
		User:      acc.Record,
	}, nil
}

// ========================== REGISTER ADMIN ==========================

func (s *AuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest) (*adminModel.AdminModel, error) {
	role := req.Role
	switch role {
	case "":
		role = constants.AdminRoleSuper
	case constants.AdminRoleSuper, constants.AdminRoleDepartment:
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("role must be one of: %s, %s", constants.AdminRoleSuper, constants.AdminRoleDepartment))
	}

	exists, err := authRepo.AdminExists(ctx, s.DB, req.Email, req.AdminID)
	if err != nil {
		return nil, helper.MapDBError(err, "", "")
	}
	if exists {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Admin already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	admin := &adminModel.AdminModel{
		Name:     req.Name,
		AdminID:  req.AdminID,
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}
	if err := authRepo.CreateAdmin(ctx, s.DB, admin); err != nil {
		return nil, helper.MapDBError(err, "", "Admin already exists")
	}
	return admin, nil
}

// ========================== ME ==========================

func (s *AuthService) Me(ctx context.Context, role constants.Role, id uuid.UUID) (any, error) {
	acc, err := authRepo.FindAccountByID(ctx, s.DB, role, id)
	if err != nil {
		return nil, helper.MapDBError(err, "User not found", "")
	}
	return acc.Record, nil
}
