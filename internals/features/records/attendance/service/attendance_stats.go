package service

import (
	"strconv"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/records/attendance/model"
)

// Statistics dihitung dari list yang sudah difilter, bukan query terpisah.
type Statistics struct {
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Late       int    `json:"late"`
	Percentage string `json:"percentage"`
}

// Summarize: percentage = present/total*100, dua desimal. Late tidak dihitung hadir.
func Summarize(rows []model.AttendanceModel) Statistics {
	st := Statistics{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case constants.AttendancePresent:
			st.Present++
		case constants.AttendanceAbsent:
			st.Absent++
		case constants.AttendanceLate:
			st.Late++
		}
	}
	pct := 0.0
	if st.Total > 0 {
		pct = float64(st.Present) / float64(st.Total) * 100
	}
	st.Percentage = strconv.FormatFloat(pct, 'f', 2, 64)
	return st
}
