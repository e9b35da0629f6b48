package service

import (
	"testing"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/records/attendance/model"

	"github.com/stretchr/testify/assert"
)

func rows(statuses ...string) []model.AttendanceModel {
	out := make([]model.AttendanceModel, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, model.AttendanceModel{Status: s})
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		in   []model.AttendanceModel
		want Statistics
	}{
		{"empty", nil, Statistics{Percentage: "0.00"}},
		{
			"mixed",
			rows(constants.AttendancePresent, constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceLate),
			Statistics{Total: 4, Present: 2, Absent: 1, Late: 1, Percentage: "50.00"},
		},
		{
			"thirds",
			rows(constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceAbsent),
			Statistics{Total: 3, Present: 1, Absent: 2, Percentage: "33.33"},
		},
		{
			"all present",
			rows(constants.AttendancePresent, constants.AttendancePresent),
			Statistics{Total: 2, Present: 2, Percentage: "100.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.in))
		})
	}
}
