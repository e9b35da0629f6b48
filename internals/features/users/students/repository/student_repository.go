package repository

import (
	"context"
	"strings"

	"csms_backend/internals/features/users/students/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentFilter dipakai list, export, dan dashboard.
type StudentFilter struct {
	DepartmentID *uuid.UUID
	SectionID    *uuid.UUID
	Status       string
	AtRisk       *bool
}

func (f StudentFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.DepartmentID != nil {
		q = q.Where("department_id = ?", *f.DepartmentID)
	}
	if f.SectionID != nil {
		q = q.Where("section_id = ?", *f.SectionID)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		q = q.Where("status = ?", s)
	}
	if f.AtRisk != nil {
		q = q.Where("at_risk = ?", *f.AtRisk)
	}
	return q
}

func WithRelations(q *gorm.DB) *gorm.DB {
	return q.Preload("Department").Preload("Section")
}

func List(ctx context.Context, db *gorm.DB, f StudentFilter) ([]model.StudentModel, error) {
	var list []model.StudentModel
	err := WithRelations(f.Apply(db.WithContext(ctx))).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := WithRelations(db.WithContext(ctx)).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ExistsByEmailOrRoll: pre-check duplikat sebelum insert.
func ExistsByEmailOrRoll(ctx context.Context, db *gorm.DB, email, roll string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.StudentModel{}).
		Where("email = ? OR roll_number = ?", email, roll).
		Count(&n).Error
	return n > 0, err
}

// TakenEmailsAndRolls: satu query untuk seluruh kandidat import.
func TakenEmailsAndRolls(ctx context.Context, db *gorm.DB, emails, rolls []string) (map[string]bool, map[string]bool, error) {
	takenEmails, takenRolls := map[string]bool{}, map[string]bool{}
	if len(emails) == 0 && len(rolls) == 0 {
		return takenEmails, takenRolls, nil
	}
	var rows []struct {
		Email      string
		RollNumber string
	}
	err := db.WithContext(ctx).Model(&model.StudentModel{}).
		Select("email", "roll_number").
		Where("email IN ? OR roll_number IN ?", emails, rolls).
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	for _, r := range rows {
		takenEmails[r.Email] = true
		takenRolls[r.RollNumber] = true
	}
	return takenEmails, takenRolls, nil
}

func EmailTakenByOther(ctx context.Context, db *gorm.DB, email string, id uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.StudentModel{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&n).Error
	return n > 0, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Search: substring case-insensitive di roll number, nama, email.
// % dan _ dari input dicari apa adanya, bukan wildcard.
func Search(ctx context.Context, db *gorm.DB, term string, limit int) ([]model.StudentModel, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
	var list []model.StudentModel
	err := WithRelations(db.WithContext(ctx)).
		Where(`LOWER(roll_number) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`, like, like, like).
		Order("roll_number ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
