// Package onboarding implements the staged onboarding workflow.
// Every mutating operation is gated on the record being at the exact
// predecessor stage; out-of-order calls are rejected with ErrWrongStage.
package onboarding

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"onboard/internal/models"
	"onboard/internal/repositories"
	"onboard/internal/storage"
	"onboard/internal/utils"
)

// DocumentUploads carries the optional identity document files for the
// upload-docs stage. At least one must be present.
type DocumentUploads struct {
	AadharFront *multipart.FileHeader
	AadharBack  *multipart.FileHeader
	PanFront    *multipart.FileHeader
}

// Empty reports whether no document was attached.
func (d DocumentUploads) Empty() bool {
	return d.AadharFront == nil && d.AadharBack == nil && d.PanFront == nil
}

// Service defines the onboarding workflow operations.
type Service interface {
	AdminCreate(ctx context.Context, input *models.AdminCreateInput) (*models.User, error)
	Verify(ctx context.Context, input *models.VerifyInput) (*models.User, error)
	UploadProfile(ctx context.Context, userID string, img *multipart.FileHeader) (*models.User, error)
	SubmitDetails(ctx context.Context, userID string, input *models.DetailsInput) (*models.User, error)
	UploadDocs(ctx context.Context, userID string, docs DocumentUploads) (*models.User, error)
	Approve(ctx context.Context, userID string) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type service struct {
	repo      repositories.UserRepository
	blobs     storage.Storage
	jwtSecret string
	tokenTTL  time.Duration
}

// NewService creates a new onboarding service.
func NewService(repo repositories.UserRepository, blobs storage.Storage, jwtSecret string) Service {
	if repo == nil {
		panic("repo is required")
	}
	if blobs == nil {
		panic("storage is required")
	}

	return &service{
		repo:      repo,
		blobs:     blobs,
		jwtSecret: jwtSecret,
		tokenTTL:  7 * 24 * time.Hour,
	}
}

// AdminCreate inserts a fresh record at the verify-pending stage.
func (s *service) AdminCreate(ctx context.Context, input *models.AdminCreateInput) (*models.User, error) {
	if existing, _ := s.repo.GetByUserID(ctx, input.UserID); existing != nil {
		return nil, ErrUserExists
	}

	user := &models.User{
		UserID:      input.UserID,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Status:      models.StatusLabel(models.StatusVerifyPending),
		StatusCode:  models.StatusVerifyPending,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if err == repositories.ErrUserExists {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// Verify confirms the contact identity and advances to profile-img-pending.
func (s *service) Verify(ctx context.Context, input *models.VerifyInput) (*models.User, error) {
	user, err := s.atStage(ctx, input.UserID, models.StatusVerifyPending)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.advance(ctx, user, models.StatusProfileImgPending, map[string]interface{}{
		"phone_number": input.PhoneNumber,
		"email":        input.Email,
		"approved_at":  now,
	}); err != nil {
		return nil, err
	}

	user.PhoneNumber = input.PhoneNumber
	user.Email = input.Email
	user.ApprovedAt = &now
	return user, nil
}

// UploadProfile stores the profile photo and advances to details-pending.
// The blob is written before the record references it, so a crash in
// between leaves an orphaned file, never a dangling reference.
func (s *service) UploadProfile(ctx context.Context, userID string, img *multipart.FileHeader) (*models.User, error) {
	user, err := s.atStage(ctx, userID, models.StatusProfileImgPending)
	if err != nil {
		return nil, err
	}

	name, err := s.blobs.Store(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	if err := s.advance(ctx, user, models.StatusDetailsPending, map[string]interface{}{
		"profile_img": name,
	}); err != nil {
		return nil, err
	}

	user.ProfileImg = name
	return user, nil
}

// SubmitDetails records the KYC payload and advances to uploads-docs-pending.
func (s *service) SubmitDetails(ctx context.Context, userID string, input *models.DetailsInput) (*models.User, error) {
	user, err := s.atStage(ctx, userID, models.StatusDetailsPending)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"aadhar_no":        input.AadharNo,
		"pan_card_number":  input.PanCardNumber,
		"bank_account_no":  input.BankAccountNo,
		"nominee_name":     input.NomineeName,
		"nominee_phone_no": input.NomineePhoneNo,
	}
	if input.IFSCCode != "" {
		updates["ifsc_code"] = input.IFSCCode
	}
	if input.EmployerName != "" {
		updates["employer_name"] = input.EmployerName
	}

	if err := s.advance(ctx, user, models.StatusUploadDocsPending, updates); err != nil {
		return nil, err
	}

	user.AadharNo = input.AadharNo
	user.PanCardNumber = input.PanCardNumber
	user.BankAccountNo = input.BankAccountNo
	user.NomineeName = input.NomineeName
	user.NomineePhoneNo = input.NomineePhoneNo
	if input.IFSCCode != "" {
		user.IFSCCode = input.IFSCCode
	}
	if input.EmployerName != "" {
		user.EmployerName = input.EmployerName
	}
	return user, nil
}

// UploadDocs stores the submitted identity documents and advances to
// approve-pending. Absent documents leave their fields untouched.
func (s *service) UploadDocs(ctx context.Context, userID string, docs DocumentUploads) (*models.User, error) {
	if docs.Empty() {
		return nil, ErrNoDocuments
	}

	user, err := s.atStage(ctx, userID, models.StatusUploadDocsPending)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if docs.AadharFront != nil {
		name, err := s.blobs.Store(ctx, docs.AadharFront)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		updates["aadhar_front_img"] = name
		user.AadharFrontImg = name
	}
	if docs.AadharBack != nil {
		name, err := s.blobs.Store(ctx, docs.AadharBack)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		updates["aadhar_back_img"] = name
		user.AadharBackImg = name
	}
	if docs.PanFront != nil {
		name, err := s.blobs.Store(ctx, docs.PanFront)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		updates["pan_front_img"] = name
		user.PanFrontImg = name
	}

	if err := s.advance(ctx, user, models.StatusApprovePending, updates); err != nil {
		return nil, err
	}

	return user, nil
}

// Approve issues the credential and moves the record to its terminal
// active stage. After this the workflow never mutates the record again.
func (s *service) Approve(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.atStage(ctx, userID, models.StatusApprovePending)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.tokenTTL, user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.advance(ctx, user, models.StatusActive, map[string]interface{}{
		"token":       token,
		"approved_at": now,
	}); err != nil {
		return nil, err
	}

	user.Token = token
	user.ApprovedAt = &now
	return user, nil
}

func (s *service) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

// atStage loads the record and checks it sits at exactly the expected
// stage for the operation.
func (s *service) atStage(ctx context.Context, userID string, want int) (*models.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.StatusCode != want {
		return nil, fmt.Errorf("%w: record is %q, operation expects %q",
			ErrWrongStage, user.Status, models.StatusLabel(want))
	}
	return user, nil
}

// advance applies the stage mutation and the status pair in one row
// update, guarded on the record still being at its current stage. Two
// racing calls for the same transition resolve to one winner; the
// loser's update matches no row and surfaces as a stage conflict.
func (s *service) advance(ctx context.Context, user *models.User, next int, updates map[string]interface{}) error {
	updates["status"] = models.StatusLabel(next)
	updates["status_code"] = next

	if err := s.repo.UpdateAtStage(ctx, user.UserID, user.StatusCode, updates); err != nil {
		if err == repositories.ErrUserNotFound {
			return fmt.Errorf("%w: record moved past %q", ErrWrongStage, user.Status)
		}
		return err
	}

	user.Status = models.StatusLabel(next)
	user.StatusCode = next
	return nil
}
