package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salt-notifier/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func floatPtr(f float64) *float64 {
	return &f
}

func createApprovalNotification() models.Notification {
	return models.Notification{
		ID:               "notif-1",
		NotificationType: models.TypeApprovalStudent,
		RecipientEmail:   "jane@school.edu",
		RecipientName:    "Jane Smith",
		EventID:          "event-1",
		EventTitle:       "Food Drive",
		EventDate:        "2025-06-07T18:00:00Z",
		EventLocation:    "Main Gym",
	}
}

// ==========================
// Notification Rendering
// ==========================

func TestRenderer_RenderNotification(t *testing.T) {
	r := New()

	tests := []struct {
		name            string
		notification    models.Notification
		expectedSubject string
		bodyContains    []string
		bodyExcludes    []string
	}{
		{
			name: "student signup confirmation",
			notification: models.Notification{
				NotificationType: models.TypeSignupStudent,
				RecipientName:    "Jane Smith",
				EventTitle:       "Food Drive",
				EventDate:        "2025-06-07T18:00:00Z",
				EventLocation:    "Main Gym",
				ModeratorName:    "Pat Jones",
			},
			expectedSubject: "Signup Confirmed: Food Drive",
			bodyContains: []string{
				"Hi Jane,",
				"Food Drive",
				"Saturday, June 7, 2025",
				"6:00 PM",
				"Main Gym",
				"Pat Jones",
				"Status: Pending Approval",
				"Kellenberg Memorial High School",
			},
			bodyExcludes: []string{"Service Hours:"},
		},
		{
			name: "student approval with hours and description",
			notification: func() models.Notification {
				n := createApprovalNotification()
				n.AdditionalData = models.AdditionalData{
					EventHours:       floatPtr(2.5),
					EventDescription: "Sort donations in the gym",
				}
				return n
			}(),
			expectedSubject: "Approved! Food Drive",
			bodyContains: []string{
				"Hi Jane,",
				"APPROVED",
				"Saturday, June 7, 2025",
				"6:00 PM",
				"2.5 hours",
				"Sort donations in the gym",
			},
		},
		{
			name:            "approval without hours omits the hours row",
			notification:    createApprovalNotification(),
			expectedSubject: "Approved! Food Drive",
			bodyContains:    []string{"APPROVED"},
			bodyExcludes:    []string{"Service Hours:", "Description:"},
		},
		{
			name: "moderator signup notification",
			notification: models.Notification{
				NotificationType: models.TypeSignupModerator,
				RecipientName:    "Pat Jones",
				EventTitle:       "Food Drive",
				EventDate:        "2025-06-07T18:00:00Z",
				EventLocation:    "Main Gym",
				StudentName:      "Jane Smith",
				StudentEmail:     "jane@school.edu",
			},
			expectedSubject: "New Signup: Jane Smith for Food Drive",
			bodyContains: []string{
				"Hi Pat,",
				"A new student has signed up for your event!",
				"Jane Smith",
				"jane@school.edu",
				"Action Required:",
			},
		},
		{
			name: "cancellation with previous status",
			notification: models.Notification{
				NotificationType: models.TypeCancelModerator,
				RecipientName:    "Pat Jones",
				EventTitle:       "Food Drive",
				EventDate:        "2025-06-07T18:00:00Z",
				EventLocation:    "Main Gym",
				StudentName:      "Jane Smith",
				StudentEmail:     "jane@school.edu",
				AdditionalData: models.AdditionalData{
					CancelledAt:          "2025-06-06T14:30:00Z",
					OriginalSignupStatus: "approved",
				},
			},
			expectedSubject: "Signup Cancelled: Jane Smith for Food Drive",
			bodyContains: []string{
				"Signup Cancelled",
				"6/6/2025, 2:30:00 PM",
				"Previous Status:",
				"approved",
			},
		},
		{
			name: "cancellation without timestamp falls back to just now",
			notification: models.Notification{
				NotificationType: models.TypeCancelModerator,
				RecipientName:    "Pat Jones",
				EventTitle:       "Food Drive",
				EventDate:        "2025-06-07T18:00:00Z",
				EventLocation:    "Main Gym",
				StudentName:      "Jane Smith",
				StudentEmail:     "jane@school.edu",
			},
			expectedSubject: "Signup Cancelled: Jane Smith for Food Drive",
			bodyContains:    []string{"Just now"},
			bodyExcludes:    []string{"Previous Status:"},
		},
		{
			name: "empty recipient name falls back to role",
			notification: models.Notification{
				NotificationType: models.TypeSignupStudent,
				EventTitle:       "Food Drive",
				EventDate:        "2025-06-07T18:00:00Z",
				EventLocation:    "Main Gym",
			},
			expectedSubject: "Signup Confirmed: Food Drive",
			bodyContains:    []string{"Hi Student,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, html, err := r.RenderNotification(tt.notification)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSubject, subject)
			for _, want := range tt.bodyContains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.bodyExcludes {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestRenderer_RenderNotification_UnknownType(t *testing.T) {
	r := New()

	n := createApprovalNotification()
	n.NotificationType = "welcome_student"

	subject, html, err := r.RenderNotification(n)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TEMPLATE_RENDER_FAILED")
	assert.Empty(t, subject)
	assert.Empty(t, html)
}

// ==========================
// Reminder Rendering
// ==========================

func TestRenderer_RenderStudentReminder(t *testing.T) {
	r := New()

	t.Run("with end time", func(t *testing.T) {
		subject, html, err := r.RenderStudentReminder(models.EventReminder{
			EventTitle:       "Food Drive",
			EventDescription: "Sort donations",
			EventLocation:    "Main Gym",
			EventStartDate:   "2025-06-07T18:00:00Z",
			EventEndDate:     "2025-06-07T20:00:00Z",
			StudentFirstName: "Jane",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Reminder: Food Drive - Tomorrow!", subject)
		assert.Contains(t, html, "Hi Jane,")
		assert.Contains(t, html, "Saturday, June 7, 2025")
		assert.Contains(t, html, "6:00 PM - 8:00 PM")
		assert.Contains(t, html, "Sort donations")
	})

	t.Run("without end time", func(t *testing.T) {
		subject, html, err := r.RenderStudentReminder(models.EventReminder{
			EventTitle:       "Food Drive",
			EventLocation:    "Main Gym",
			EventStartDate:   "2025-06-07T18:00:00Z",
			StudentFirstName: "Jane",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Reminder: Food Drive - Tomorrow!", subject)
		assert.Contains(t, html, "6:00 PM")
		assert.NotContains(t, html, "6:00 PM -")
	})
}

func TestRenderer_RenderModeratorReminder(t *testing.T) {
	r := New()

	t.Run("with roster", func(t *testing.T) {
		subject, html, err := r.RenderModeratorReminder(models.ModeratorReminder{
			EventTitle:         "Food Drive",
			EventLocation:      "Main Gym",
			EventStartDate:     "2025-06-07T18:00:00Z",
			EventHours:         2.5,
			ModeratorFirstName: "Pat",
			ApprovedCount:      2,
			PendingCount:       1,
			StudentList: []models.RosterStudent{
				{Name: "Jane Smith", Email: "jane@school.edu", Grade: 11},
				{Name: "Bob Lee", Email: "bob@school.edu", Grade: 9},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Event Tomorrow: Food Drive - 2 students", subject)
		assert.Contains(t, html, "Hi Pat,")
		assert.Contains(t, html, "2.5 hours")
		assert.Contains(t, html, "Jane Smith (Grade 11) - jane@school.edu")
		assert.Contains(t, html, "Bob Lee (Grade 9) - bob@school.edu")
		assert.NotContains(t, html, "No approved students yet")
	})

	t.Run("empty roster", func(t *testing.T) {
		subject, html, err := r.RenderModeratorReminder(models.ModeratorReminder{
			EventTitle:         "Food Drive",
			EventLocation:      "Main Gym",
			EventStartDate:     "2025-06-07T18:00:00Z",
			ModeratorFirstName: "Pat",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Event Tomorrow: Food Drive - 0 students", subject)
		assert.Contains(t, html, "No approved students yet")
		assert.NotContains(t, html, "Service Hours:")
	})
}

// ==========================
// Formatting Helpers
// ==========================

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "Saturday, June 7, 2025", formatDate("2025-06-07T18:00:00Z"))
	assert.Equal(t, "6:00 PM", formatTime("2025-06-07T18:00:00Z"))
	assert.Equal(t, "6/7/2025, 6:00:00 PM", formatDateTime("2025-06-07T18:00:00Z"))
	assert.Equal(t, "2.5", formatHours(2.5))
	assert.Equal(t, "3", formatHours(3))
	assert.Equal(t, "Jane", firstName("Jane Smith", "Student"))
	assert.Equal(t, "Student", firstName("", "Student"))
	assert.Equal(t, "Moderator", firstName("   ", "Moderator"))

	// Unparseable timestamps pass through untouched.
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}
