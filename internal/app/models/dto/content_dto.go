package dto

// StaffRequest creates or updates a staff member. The image travels as a
// multipart file alongside the form fields.
type StaffRequest struct {
	Name         string  `form:"name" binding:"required"`
	Position     string  `form:"position" binding:"required"`
	Bio          string  `form:"bio" binding:"required"`
	Email        *string `form:"email"`
	Phone        *string `form:"phone"`
	DisplayOrder int     `form:"displayOrder"`
}

// ExcoRequest creates or updates an executive council member
type ExcoRequest struct {
	Name         string  `form:"name" binding:"required"`
	Position     string  `form:"position" binding:"required"`
	Bio          string  `form:"bio" binding:"required"`
	Email        *string `form:"email"`
	Phone        *string `form:"phone"`
	Session      string  `form:"session" binding:"required"`
	DisplayOrder int     `form:"displayOrder"`
}

// PastQuestionRequest creates or updates a past question
type PastQuestionRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required"`
	CourseTitle string  `json:"courseTitle" binding:"required"`
	Level       string  `json:"level" binding:"required"`
	Semester    string  `json:"semester" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Link        string  `json:"link" binding:"required,url"`
	Description *string `json:"description,omitempty"`
}

// PastQuestionListResponse is a filtered past-question listing plus the
// distinct years available for the filter controls.
type PastQuestionListResponse struct {
	Questions interface{} `json:"questions"`
	Years     []int       `json:"years"`
}

// LibraryResourceRequest creates or updates a library resource
type LibraryResourceRequest struct {
	Title       string  `form:"title" binding:"required"`
	Author      *string `form:"author"`
	Category    string  `form:"category" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Link        string  `form:"link" binding:"required,url"`
	Level       *string `form:"level"`
}

// TestimonialRequest is the public testimonial submission payload
type TestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// TestimonialBatchRequest approves or unapproves a set of testimonials
type TestimonialBatchRequest struct {
	IDs      []int64 `json:"ids" binding:"required,min=1"`
	Approved bool    `json:"approved"`
}

// AnnouncementRequest creates or updates an announcement
type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// HandbookRequest creates or updates a handbook entry
type HandbookRequest struct {
	Level       string  `json:"level" binding:"required"`
	Semester    string  `json:"semester" binding:"required"`
	CourseCode  string  `json:"courseCode" binding:"required"`
	CourseTitle string  `json:"courseTitle" binding:"required"`
	CreditUnit  int     `json:"creditUnit" binding:"required,min=1"`
	CourseType  string  `json:"courseType"`
	Description *string `json:"description,omitempty"`
}

// HandbookViewResponse is the public level+semester handbook view
type HandbookViewResponse struct {
	Courses      interface{} `json:"courses"`
	Level        string      `json:"level"`
	Semester     string      `json:"semester"`
	TotalCredits int         `json:"totalCredits"`
}

// TimetableRequest creates or updates a timetable record; the image is a
// multipart file.
type TimetableRequest struct {
	Title           string  `form:"title" binding:"required"`
	Type            string  `form:"type" binding:"required"`
	Level           string  `form:"level"`
	Semester        string  `form:"semester" binding:"required"`
	AcademicSession string  `form:"academicSession" binding:"required"`
	Description     *string `form:"description"`
	IsActive        *bool   `form:"isActive"`
}

// CalendarRequest creates or updates an academic calendar; the image is a
// multipart file.
type CalendarRequest struct {
	Title           string  `form:"title" binding:"required"`
	AcademicSession string  `form:"academicSession" binding:"required"`
	Description     *string `form:"description"`
	IsActive        *bool   `form:"isActive"`
}

// CalendarViewResponse is the public calendar view: the active calendar (if
// any) plus recent history.
type CalendarViewResponse struct {
	Active interface{} `json:"active,omitempty"`
	Recent interface{} `json:"recent"`
}

// HomeResponse is the aggregate payload behind the homepage
type HomeResponse struct {
	Testimonials     interface{}      `json:"testimonials"`
	Announcements    interface{}      `json:"announcements"`
	RecentStaff      interface{}      `json:"recentStaff"`
	CurrentExcos     interface{}      `json:"currentExcos"`
	RecentResources  interface{}      `json:"recentResources"`
	RecentQuestions  interface{}      `json:"recentQuestions"`
	Stats            HomeStats        `json:"stats"`
	QuestionsByLevel map[string]int64 `json:"questionsByLevel"`
}

// HomeStats carries the homepage counters
type HomeStats struct {
	TotalStaff     int64 `json:"totalStaff"`
	TotalStudents  int64 `json:"totalStudents"`
	TotalResources int64 `json:"totalResources"`
	TotalQuestions int64 `json:"totalQuestions"`
}

// AdminDashboardStats carries the back-office dashboard counters
type AdminDashboardStats struct {
	StaffCount          int64 `json:"staffCount"`
	ExcoCount           int64 `json:"excoCount"`
	PastQuestionCount   int64 `json:"pastQuestionCount"`
	LibraryCount        int64 `json:"libraryCount"`
	PendingTestimonials int64 `json:"pendingTestimonials"`
	ActiveAnnouncements int64 `json:"activeAnnouncements"`
}
