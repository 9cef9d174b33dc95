package handlers

import (
	"errors"

	"onboard/internal/models"
	"onboard/internal/services/onboarding"
	"onboard/internal/utils/response"
	"onboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FilesMountPath is where stored attachments are served from.
const FilesMountPath = "/files"

type UserHandler struct {
	service onboarding.Service
}

func NewUserHandler(service onboarding.Service) *UserHandler {
	return &UserHandler{service: service}
}

// AdminCreate handles POST /users/admin.
func (h *UserHandler) AdminCreate(c *fiber.Ctx) error {
	var input models.AdminCreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.AdminCreate(&input)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	user, err := h.service.AdminCreate(c.Context(), &input)
	if err != nil {
		return h.serviceError(c, err)
	}

	return response.Created(c, "user created", presentUser(c.BaseURL(), user))
}

// Verify handles POST /users.
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	var input models.VerifyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Verify(&input)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	user, err := h.service.Verify(c.Context(), &input)
	if err != nil {
		return h.serviceError(c, err)
	}

	return response.Success(c, "user verified", presentUser(c.BaseURL(), user))
}

// UploadProfile handles POST /users/profile/:user_id.
func (h *UserHandler) UploadProfile(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	img, err := c.FormFile("profile_img")
	if err != nil {
		return response.BadRequest(c, "profile_img file is required")
	}

	user, err := h.service.UploadProfile(c.Context(), userID, img)
	if err != nil {
		return h.serviceError(c, err)
	}

	return response.Success(c, "profile image uploaded", presentUser(c.BaseURL(), user))
}

// SubmitDetails handles POST /users/details/:user_id.
func (h *UserHandler) SubmitDetails(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	var input models.DetailsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Details(&input)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	user, err := h.service.SubmitDetails(c.Context(), userID, &input)
	if err != nil {
		return h.serviceError(c, err)
	}

	return response.Success(c, "details submitted", presentUser(c.BaseURL(), user))
}

// UploadDocs handles POST /users/upload-docs/:user_id. Any subset of
// the three document fields is accepted, but not an empty one.
func (h *UserHandler) UploadDocs(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	var docs onboarding.DocumentUploads
	if f, err := c.FormFile("aadhar_front_img"); err == nil {
		docs.AadharFront = f
	}
	if f, err := c.FormFile("aadhar_back_img"); err == nil {
		docs.AadharBack = f
	}
	if f, err := c.FormFile("pan_front_img"); err == nil {
		docs.PanFront = f
	}

	if docs.Empty() {
		return response.BadRequest(c, "at least one of aadhar_front_img, aadhar_back_img, pan_front_img is required")
	}

	user, err := h.service.UploadDocs(c.Context(), userID, docs)
	if err != nil {
		return h.serviceError(c, err)
	}

	return response.Success(c, "documents uploaded", presentUser(c.BaseURL(), user))
}

// Approve handles POST /users/admin/approve/:user_id.
func (h *UserHandler) Approve(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	user, err := h.service.Approve(c.Context(), userID)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "user approved",
		"token":   user.Token,
		"data":    presentUser(c.BaseURL(), user),
	})
}

// List handles GET /users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return h.serviceError(c, err)
	}

	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		out = append(out, presentUser(c.BaseURL(), u))
	}
	return response.Success(c, "users", out)
}

// Get handles GET /users/:user_id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.Get(c.Context(), c.Params("user_id"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return response.Success(c, "user", presentUser(c.BaseURL(), user))
}

func (h *UserHandler) serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, onboarding.ErrUserNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, onboarding.ErrUserExists), errors.Is(err, onboarding.ErrWrongStage):
		return response.Conflict(c, err.Error())
	case errors.Is(err, onboarding.ErrNoDocuments):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}

// presentUser returns a copy with attachment names rewritten to
// absolute URLs. Stored names never leave the database as URLs; the
// rewrite happens here, at response time only.
func presentUser(baseURL string, u *models.User) *models.User {
	out := *u
	if out.ProfileImg != "" {
		out.ProfileImg = fileURL(baseURL, out.ProfileImg)
	}
	if out.AadharFrontImg != "" {
		out.AadharFrontImg = fileURL(baseURL, out.AadharFrontImg)
	}
	if out.AadharBackImg != "" {
		out.AadharBackImg = fileURL(baseURL, out.AadharBackImg)
	}
	if out.PanFrontImg != "" {
		out.PanFrontImg = fileURL(baseURL, out.PanFrontImg)
	}
	return &out
}

func fileURL(baseURL, name string) string {
	return baseURL + FilesMountPath + "/" + name
}
