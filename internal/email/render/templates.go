// internal/email/render/templates.go
package render

// The shared blocks carry the S.A.L.T. signature and school footer that
// every message ends with.
const sharedBlocks = `
{{define "signature"}}
          <p style="margin-top: 30px;">
            <strong>S.A.L.T Team</strong><br/>
            <em>Service &bull; Allegiance &bull; Leadership &bull; Teamwork</em>
          </p>
{{end}}
{{define "footer"}}
        <div class="footer">
          <p>Kellenberg Memorial High School<br/>
          1400 Glenn Curtiss Boulevard, Uniondale, NY 11553</p>
          <p>This is an automated {{.}}. Please do not reply to this email.</p>
        </div>
{{end}}`

const studentSignupTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #1e3a8a, #60a5fa); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .event-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #22c55e; }
    .detail-row { margin: 10px 0; }
    .label { font-weight: bold; color: #1e3a8a; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .gold { color: #FFD700; }
    .success-badge { background: #22c55e; color: white; padding: 5px 15px; border-radius: 20px; display: inline-block; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#9989; Signup Confirmed!</h1>
      <p class="gold">S.A.L.T. Service Event Registration</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>
      <p>Great news! Your signup for the following event has been received:</p>

      <div class="event-details">
        <h2 style="margin-top: 0; color: #1e3a8a;">{{.EventTitle}}</h2>

        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>

        {{if .Hours}}
        <div class="detail-row">
          <span class="label">&#11088; Service Hours:</span> {{.Hours}} hours
        </div>
        {{end}}

        {{if .Description}}
        <div class="detail-row">
          <span class="label">&#128221; Description:</span><br/>
          {{.Description}}
        </div>
        {{end}}
      </div>

      <p><span class="success-badge">Status: Pending Approval</span></p>

      <p>Your signup is currently pending approval from the event moderator ({{.ModeratorName}}). You will be notified once your signup is approved.</p>

      <p><strong>What's Next?</strong></p>
      <ul>
        <li>Wait for approval from the event moderator</li>
        <li>Check your email for updates on your signup status</li>
        <li>You'll receive a reminder 24 hours before the event</li>
      </ul>

      <p>Thank you for your commitment to service!</p>
{{template "signature"}}
    </div>
{{template "footer" "confirmation"}}
  </div>
</body>
</html>`

const studentApprovalTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #059669, #10b981); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .event-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #FFD700; }
    .detail-row { margin: 10px 0; }
    .label { font-weight: bold; color: #059669; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .gold { color: #FFD700; }
    .approved-badge { background: #10b981; color: white; padding: 8px 20px; border-radius: 25px; display: inline-block; font-size: 16px; font-weight: bold; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#127881; You're Approved!</h1>
      <p class="gold">S.A.L.T. Service Event Confirmation</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>
      <p>Congratulations! Your signup has been <strong>approved</strong> by the event moderator!</p>

      <div style="text-align: center; margin: 20px 0;">
        <span class="approved-badge">&#10003; APPROVED</span>
      </div>

      <div class="event-details">
        <h2 style="margin-top: 0; color: #059669;">{{.EventTitle}}</h2>

        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>

        {{if .Hours}}
        <div class="detail-row">
          <span class="label">&#11088; Service Hours:</span> {{.Hours}} hours
        </div>
        {{end}}

        {{if .Description}}
        <div class="detail-row">
          <span class="label">&#128221; Description:</span><br/>
          {{.Description}}
        </div>
        {{end}}
      </div>

      <p><strong>What's Next?</strong></p>
      <ul>
        <li>Mark your calendar for the event date</li>
        <li>Arrive on time and prepared for service</li>
        <li>You'll receive a reminder 24 hours before the event</li>
        <li>If you can no longer attend, please cancel as soon as possible</li>
      </ul>

      <p>Thank you for your commitment to service and community!</p>
{{template "signature"}}
    </div>
{{template "footer" "confirmation"}}
  </div>
</body>
</html>`

const moderatorSignupTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #1e3a8a, #60a5fa); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .alert-box { background: #fef3c7; border: 1px solid #f59e0b; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .student-info { background: white; padding: 15px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #3b82f6; }
    .detail-row { margin: 8px 0; }
    .label { font-weight: bold; color: #1e3a8a; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .gold { color: #FFD700; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#128203; New Student Signup</h1>
      <p class="gold">S.A.L.T. Event Management</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>

      <div class="alert-box">
        <strong>&#128276; A new student has signed up for your event!</strong>
      </div>

      <div class="student-info">
        <h3 style="margin-top: 0; color: #1e3a8a;">Student Information</h3>
        <div class="detail-row">
          <span class="label">&#128100; Name:</span> {{.StudentName}}
        </div>
        <div class="detail-row">
          <span class="label">&#128231; Email:</span> {{.StudentEmail}}
        </div>
      </div>

      <div class="student-info">
        <h3 style="margin-top: 0; color: #1e3a8a;">Event Details</h3>
        <div class="detail-row">
          <span class="label">&#128204; Event:</span> {{.EventTitle}}
        </div>
        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>
        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeStr}}
        </div>
        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>
      </div>

      <p><strong>Action Required:</strong> Please review and approve or decline this signup in the S.A.L.T. dashboard.</p>
{{template "signature"}}
    </div>
{{template "footer" "notification"}}
  </div>
</body>
</html>`

const cancellationTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #dc2626, #f87171); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .alert-box { background: #fef2f2; border: 1px solid #ef4444; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .student-info { background: white; padding: 15px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #ef4444; }
    .detail-row { margin: 8px 0; }
    .label { font-weight: bold; color: #1e3a8a; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .cancelled-badge { background: #ef4444; color: white; padding: 5px 15px; border-radius: 20px; display: inline-block; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#10060; Signup Cancelled</h1>
      <p style="color: #fecaca;">S.A.L.T. Event Management</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>

      <div class="alert-box">
        <strong>&#9888;&#65039; A student has cancelled their signup for your event.</strong>
      </div>

      <div class="student-info">
        <h3 style="margin-top: 0; color: #dc2626;">Cancelled Signup</h3>
        <div class="detail-row">
          <span class="label">&#128100; Student:</span> {{.StudentName}}
        </div>
        <div class="detail-row">
          <span class="label">&#128231; Email:</span> {{.StudentEmail}}
        </div>
        <div class="detail-row">
          <span class="label">&#128336; Cancelled:</span> {{.CancelledAt}}
        </div>
        {{if .PreviousStatus}}
        <div class="detail-row">
          <span class="label">&#128203; Previous Status:</span> {{.PreviousStatus}}
        </div>
        {{end}}
      </div>

      <div class="student-info" style="border-left-color: #3b82f6;">
        <h3 style="margin-top: 0; color: #1e3a8a;">Event Details</h3>
        <div class="detail-row">
          <span class="label">&#128204; Event:</span> {{.EventTitle}}
        </div>
        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>
        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeStr}}
        </div>
        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>
      </div>

      <p>You may want to review your event's current signup numbers and consider reaching out to other students if needed.</p>
{{template "signature"}}
    </div>
{{template "footer" "notification"}}
  </div>
</body>
</html>`

const studentReminderTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #1e3a8a, #60a5fa); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .event-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #FFD700; }
    .detail-row { margin: 10px 0; }
    .label { font-weight: bold; color: #1e3a8a; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .gold { color: #FFD700; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#128276; Event Reminder</h1>
      <p class="gold">Your S.A.L.T event is tomorrow!</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>
      <p>This is a friendly reminder that you have an approved event tomorrow:</p>

      <div class="event-details">
        <h2 style="margin-top: 0; color: #1e3a8a;">{{.EventTitle}}</h2>

        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeRange}}
        </div>

        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>

        <div class="detail-row">
          <span class="label">&#128221; Description:</span><br/>
          {{.Description}}
        </div>
      </div>

      <p><strong>Important:</strong> Please arrive on time and be prepared for service!</p>

      <p>If you have any questions or can no longer attend, please contact the event moderator as soon as possible.</p>

      <p>Thank you for your commitment to service!</p>
{{template "signature"}}
    </div>
{{template "footer" "reminder"}}
  </div>
</body>
</html>`

const moderatorReminderTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #1e3a8a, #60a5fa); color: white; padding: 30px; border-radius: 10px 10px 0 0; }
    .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
    .event-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #FFD700; }
    .stats-box { background: #dbeafe; padding: 15px; border-radius: 8px; margin: 15px 0; text-align: center; }
    .stat { display: inline-block; margin: 0 20px; }
    .stat-number { font-size: 28px; font-weight: bold; color: #1e3a8a; }
    .stat-label { font-size: 12px; color: #666; }
    .student-list { background: white; padding: 15px; border-radius: 8px; margin: 15px 0; }
    .student-list ul { margin: 10px 0; padding-left: 20px; }
    .student-list li { margin: 5px 0; }
    .detail-row { margin: 10px 0; }
    .label { font-weight: bold; color: #1e3a8a; }
    .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    .gold { color: #FFD700; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#128203; Event Tomorrow - Summary</h1>
      <p class="gold">S.A.L.T. Moderator Reminder</p>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>
      <p>Your event is happening tomorrow! Here's a summary:</p>

      <div class="event-details">
        <h2 style="margin-top: 0; color: #1e3a8a;">{{.EventTitle}}</h2>

        <div class="detail-row">
          <span class="label">&#128197; Date:</span> {{.DateStr}}
        </div>

        <div class="detail-row">
          <span class="label">&#128336; Time:</span> {{.TimeRange}}
        </div>

        <div class="detail-row">
          <span class="label">&#128205; Location:</span> {{.Location}}
        </div>

        {{if .Hours}}
        <div class="detail-row">
          <span class="label">&#11088; Service Hours:</span> {{.Hours}} hours
        </div>
        {{end}}
      </div>

      <div class="stats-box">
        <div class="stat">
          <div class="stat-number">{{.ApprovedCount}}</div>
          <div class="stat-label">Approved</div>
        </div>
        <div class="stat">
          <div class="stat-number">{{.PendingCount}}</div>
          <div class="stat-label">Pending</div>
        </div>
      </div>

      <div class="student-list">
        <h3 style="margin-top: 0; color: #1e3a8a;">&#9989; Approved Students</h3>
        <ul>
          {{range .Students}}<li>{{.Name}} (Grade {{.Grade}}) - {{.Email}}</li>
          {{else}}<li><em>No approved students yet</em></li>
          {{end}}
        </ul>
      </div>

      <p><strong>Reminders:</strong></p>
      <ul>
        <li>Review any pending signups that need approval</li>
        <li>Prepare attendance tracking for tomorrow</li>
        <li>Contact students if there are any changes</li>
      </ul>
{{template "signature"}}
    </div>
{{template "footer" "reminder"}}
  </div>
</body>
</html>`
