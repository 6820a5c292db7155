package email

// Notification templates, keyed by name. Plain text; complainants may read
// these in any client.
var notificationTemplates = map[string]string{
	"grievance_submitted": `Dear {{.ComplainantName}},

Your grievance has been registered with the Insurance Development and
Regulatory Authority.

Reference: {{.Reference}}
Title:     {{.Title}}

You can track its progress at any time using the reference above. A response
is due by {{.SLADeadline}}.

IDRA Grievance Management System
`,

	"grievance_status_changed": `Dear {{.ComplainantName}},

The status of your grievance {{.Reference}} has changed.

{{.Summary}}

You can track further progress using your reference number.

IDRA Grievance Management System
`,
}
