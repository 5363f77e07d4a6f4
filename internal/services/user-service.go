package services

import (
	"context"
	"errors"
	"strings"

	"github.com/campusgig/gig_service/config"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/campusgig/gig_service/internal/repository"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService struct {
	Repo          repository.UserRepository
	PortfolioRepo repository.PortfolioRepository
	Auth          helper.Auth
	Producer      interfaces.ProducerHandler
	Uploader      interfaces.Uploader
	Config        config.Config
}

// Register creates a student or recruiter account and returns a signed token
// alongside the stored user.
func (s *UserService) Register(ctx context.Context, input dto.RegisterRequest) (string, *domain.User, error) {
	if err := validateStruct(input); err != nil {
		return "", nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.Repo.FindUserByEmail(email); err == nil {
		return "", nil, errBadRequest("user already exists with the provided email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hashed, err := s.Auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         input.Role,
	}

	switch input.Role {
	case domain.RoleStudent:
		if input.Student == nil {
			return "", nil, errBadRequest("student details are required")
		}
		user.College = strings.TrimSpace(input.Student.College)
		user.Year = input.Student.Year
		user.Skills = helper.NormalizeSkills(input.Student.Skills)
		user.PortfolioLinks = input.Student.PortfolioLinks
		user.Avatar = s.uploadOptional(ctx, "avatars", input.Student.Avatar)
		user.Resume = s.uploadOptional(ctx, "resumes", input.Student.Resume)
	case domain.RoleRecruiter:
		if input.Recruiter == nil {
			return "", nil, errBadRequest("recruiter details are required")
		}
		user.CompanyName = strings.TrimSpace(input.Recruiter.CompanyName)
		user.CompanyDescription = input.Recruiter.CompanyDescription
		user.Avatar = s.uploadOptional(ctx, "avatars", input.Recruiter.Avatar)
	default:
		return "", nil, errBadRequest("role must be student or recruiter")
	}

	if _, err := s.Repo.CreateUser(user); err != nil {
		if helper.IsDuplicateKey(err) {
			return "", nil, errBadRequest("user already exists with the provided email")
		}
		return "", nil, err
	}

	publishEvent(s.Producer, "user.registered", map[string]any{
		"user_id": user.ID,
		"role":    user.Role,
	})

	token, err := s.Auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Login(input dto.UserLogin) (string, *domain.User, error) {
	if err := validateStruct(input); err != nil {
		return "", nil, err
	}

	user, err := s.Repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return "", nil, errUnauthorized("invalid email or password")
	}
	if err := s.Auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return "", nil, errUnauthorized("invalid email or password")
	}

	token, err := s.Auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) GetProfile(userID uint) (*domain.User, error) {
	user, err := s.Repo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, input dto.ChangePasswordRequest) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if input.NewPassword != input.ConfirmPassword {
		return errBadRequest("passwords do not match")
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if err := s.Auth.VerifyPassword(input.OldPassword, user.PasswordHash); err != nil {
		return errUnauthorized("old password is incorrect")
	}

	hashed, err := s.Auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	return s.Repo.SaveUser(user)
}

// UpdateProfile applies only the fields present in the request. Fields that
// belong to the other role are ignored, and verified_recruiter is never
// client-settable.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			if _, err := s.Repo.FindUserByEmail(email); err == nil {
				return nil, errBadRequest("email already in use")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ContactNumber != nil {
		user.ContactNumber = *input.ContactNumber
	}
	if input.Avatar != "" {
		user.Avatar = s.uploadOptional(ctx, "avatars", input.Avatar)
	}

	if user.IsStudent() {
		if input.College != nil {
			user.College = strings.TrimSpace(*input.College)
		}
		if input.Year != nil {
			if *input.Year < 1 || *input.Year > 4 {
				return nil, errBadRequest("year must be between 1 and 4")
			}
			user.Year = *input.Year
		}
		if input.Skills != nil {
			user.Skills = helper.NormalizeSkills(input.Skills)
		}
		if input.PortfolioLinks != nil {
			user.PortfolioLinks = input.PortfolioLinks
		}
		if input.Resume != "" {
			user.Resume = s.uploadOptional(ctx, "resumes", input.Resume)
		}
	}

	if user.IsRecruiter() {
		if input.CompanyName != nil && strings.TrimSpace(*input.CompanyName) != "" {
			user.CompanyName = strings.TrimSpace(*input.CompanyName)
		}
		if input.CompanyDescription != nil {
			user.CompanyDescription = *input.CompanyDescription
		}
	}

	if err := s.Repo.SaveUser(user); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, errBadRequest("email already in use")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteAccount(userID uint, input dto.DeleteAccountRequest) error {
	if err := validateStruct(input); err != nil {
		return err
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if err := s.Auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return errUnauthorized("password is incorrect")
	}

	if err := s.PortfolioRepo.DeleteByUserID(userID); err != nil {
		log.Warnf("delete portfolio for user %d: %v", userID, err)
	}
	if err := s.Repo.DeleteUser(userID); err != nil {
		return err
	}

	publishEvent(s.Producer, "user.deleted", map[string]any{"user_id": userID})
	return nil
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.Repo.ListUsers()
}

func (s *UserService) UpdateUserRole(userID uint, role string) (*domain.User, error) {
	if role != domain.RoleStudent && role != domain.RoleRecruiter && role != domain.RoleAdmin {
		return nil, errBadRequest("invalid role")
	}
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.Repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetRecruiterVerification(userID uint, verified bool) (*domain.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsRecruiter() {
		return nil, errBadRequest("user is not a recruiter")
	}
	user.VerifiedRecruiter = verified
	if err := s.Repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(userID uint) error {
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}
	if err := s.PortfolioRepo.DeleteByUserID(userID); err != nil {
		log.Warnf("delete portfolio for user %d: %v", userID, err)
	}
	return s.Repo.DeleteUser(userID)
}

func (s *UserService) uploadOptional(ctx context.Context, folder, value string) domain.FileRef {
	ref, err := resolveFileRef(ctx, s.Uploader, folder, value)
	if err != nil {
		log.Warnf("upload to %s failed: %v", folder, err)
		return domain.FileRef{}
	}
	return ref
}
