// Package brief berisi proyeksi read-only untuk preload relasi
// (populate) tanpa import silang antar package model.
package brief

import (
	"github.com/google/uuid"
)

type DepartmentBrief struct {
	ID   uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	Name string    `gorm:"column:name" json:"name"`
	Code string    `gorm:"column:code" json:"code"`
}

func (DepartmentBrief) TableName() string { return "departments" }

type SectionBrief struct {
	ID           uuid.UUID  `gorm:"column:id;primaryKey" json:"id"`
	Name         string     `gorm:"column:name" json:"name"`
	DepartmentID uuid.UUID  `gorm:"column:department_id" json:"departmentId"`
	TeacherID    *uuid.UUID `gorm:"column:teacher_id" json:"teacherId,omitempty"`
}

func (SectionBrief) TableName() string { return "sections" }

// TeacherBrief: kode pegawai sengaja tidak bernama TeacherID, supaya
// foreignKey:TeacherID di model pemilik tetap dibaca sebagai belongs-to.
type TeacherBrief struct {
	ID          uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Code        string    `gorm:"column:teacher_id" json:"teacherId"`
	Email       string    `gorm:"column:email" json:"email"`
	Designation string    `gorm:"column:designation" json:"designation,omitempty"`
}

func (TeacherBrief) TableName() string { return "teachers" }

type StudentBrief struct {
	ID         uuid.UUID  `gorm:"column:id;primaryKey" json:"id"`
	Name       string     `gorm:"column:name" json:"name"`
	RollNumber string     `gorm:"column:roll_number" json:"rollNumber"`
	Email      string     `gorm:"column:email" json:"email"`
	SectionID  *uuid.UUID `gorm:"column:section_id" json:"sectionId,omitempty"`
	Status     string     `gorm:"column:status" json:"status"`
}

func (StudentBrief) TableName() string { return "students" }

type AdminBrief struct {
	ID      uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	Name    string    `gorm:"column:name" json:"name"`
	AdminID string    `gorm:"column:admin_id" json:"adminId"`
}

func (AdminBrief) TableName() string { return "admins" }
