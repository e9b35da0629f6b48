package constants

// Nilai enum yang disimpan apa adanya di kolom varchar.

const (
	StudentStatusActive   = "Active"
	StudentStatusInactive = "Inactive"
)

const (
	AdminRoleSuper      = "Super Admin"
	AdminRoleDepartment = "Department Admin"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

const (
	ExamTypeInternal   = "Internal"
	ExamTypeExternal   = "External"
	ExamTypeAssignment = "Assignment"
)

const (
	RemarkTypePositive = "positive"
	RemarkTypeNegative = "negative"
	RemarkTypeNeutral  = "neutral"

	RemarkCategoryAcademic    = "Academic"
	RemarkCategoryBehavioral  = "Behavioral"
	RemarkCategoryAttendance  = "Attendance"
	RemarkCategoryImprovement = "Improvement"
)

const (
	AchievementCategoryAcademic  = "Academic"
	AchievementCategorySports    = "Sports"
	AchievementCategoryCultural  = "Cultural"
	AchievementCategoryTechnical = "Technical"
	AchievementCategoryOther     = "Other"
)

const (
	NotificationTargetAll        = "all"
	NotificationTargetStudents   = "students"
	NotificationTargetTeachers   = "teachers"
	NotificationTargetSection    = "section"
	NotificationTargetDepartment = "department"

	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
)
