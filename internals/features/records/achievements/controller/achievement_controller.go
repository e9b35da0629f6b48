package controller

import (
	"log"
	"strings"

	"csms_backend/internals/features/records/achievements/dto"
	"csms_backend/internals/features/records/achievements/model"
	helper "csms_backend/internals/helpers"
	ossHelper "csms_backend/internals/helpers/oss"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	msgAchievementNotFound = "Achievement not found"
	certificateDir         = "certificates"
)

type AchievementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Blob      ossHelper.BlobService
}

func NewAchievementController(db *gorm.DB, blob ossHelper.BlobService) *AchievementController {
	return &AchievementController{DB: db, Validator: helper.NewValidator(), Blob: blob}
}

// POST /api/achievements
func (ctl *AchievementController) Create(c *fiber.Ctx) error {
	var body dto.AchievementCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide studentId, title, and date"); err != nil {
		return err
	}

	ctx := c.UserContext()
	certURL := ""
	if strings.TrimSpace(body.CertificateBase64) != "" {
		url, err := ctl.Blob.UploadFile(ctx, certificateDir, body.CertificateBase64)
		if err != nil {
			return err
		}
		certURL = url
	}

	ent := body.ToModel(certURL)
	if err := ctl.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		ctl.dropCertificate(c, certURL)
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Achievement added successfully", ent)
}

// GET /api/achievements/student/:studentId?category=
func (ctl *AchievementController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var f dto.AchievementFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctl.DB.WithContext(c.UserContext()).Where("student_id = ?", studentID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var list []model.AchievementModel
	if err := q.Order("date DESC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// PUT /api/achievements/:id (certificateBase64 baru menggantikan file lama)
func (ctl *AchievementController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.AchievementUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}

	ctx := c.UserContext()
	db := ctl.DB.WithContext(ctx)
	var ent model.AchievementModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgAchievementNotFound, "")
	}

	oldURL := ""
	if strings.TrimSpace(body.CertificateBase64) != "" {
		url, err := ctl.Blob.UploadFile(ctx, certificateDir, body.CertificateBase64)
		if err != nil {
			return err
		}
		oldURL, ent.CertificateURL = ent.CertificateURL, url
	}
	body.ApplyUpdates(&ent)

	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	ctl.dropCertificate(c, oldURL)
	return helper.JsonUpdated(c, "Achievement updated successfully", ent)
}

// DELETE /api/achievements/:id
func (ctl *AchievementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var ent model.AchievementModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgAchievementNotFound, "")
	}
	if err := db.Delete(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	ctl.dropCertificate(c, ent.CertificateURL)
	return helper.JsonDeleted(c, "Achievement deleted successfully")
}

// best-effort; gagal hapus object tidak menggagalkan request
func (ctl *AchievementController) dropCertificate(c *fiber.Ctx, url string) {
	if url == "" {
		return
	}
	if err := ctl.Blob.DeleteByPublicURL(c.UserContext(), url); err != nil {
		log.Printf("[WARN] delete certificate %s: %v", url, err)
	}
}
