package notification

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/formgate/pkg/email"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config routes rendered notifications. Each form type has its own
// recipient inbox.
type Config struct {
	ContactRecipient string `env:"CONTACT_EMAIL,required"`
	HRRecipient      string `env:"HR_EMAIL,required"`
	BrandName        string `env:"BRAND_NAME"`
}

// Renderer produces ready-to-send email messages from validated
// submissions. Templates are parsed once at construction.
type Renderer struct {
	cfg       Config
	templates *template.Template
	stripper  *bluemonday.Policy
	now       func() time.Time
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the time source used for the submission timestamp.
// Intended for deterministic output in tests.
func WithClock(now func() time.Time) RendererOption {
	if now == nil {
		panic("notification: nil clock")
	}
	return func(r *Renderer) { r.now = now }
}

// NewRenderer parses the embedded templates and returns a renderer bound to
// the configured recipients.
func NewRenderer(cfg Config, opts ...RendererOption) (*Renderer, error) {
	if cfg.ContactRecipient == "" {
		return nil, fmt.Errorf("%w: ContactRecipient is required", ErrValidation)
	}
	if cfg.HRRecipient == "" {
		return nil, fmt.Errorf("%w: HRRecipient is required", ErrValidation)
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	r := &Renderer{
		cfg:       cfg,
		templates: tmpl,
		stripper:  bluemonday.StrictPolicy(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNewRenderer is like NewRenderer but panics on error.
func MustNewRenderer(cfg Config, opts ...RendererOption) *Renderer {
	r, err := NewRenderer(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// stripMarkup reduces a submitted value to plain text for use outside HTML
// contexts, such as the subject line.
func (r *Renderer) stripMarkup(s string) string {
	return html.UnescapeString(r.stripper.Sanitize(s))
}

// RenderContact builds the notification email for a contact form
// submission. The reply-to is set to the submitter so the recipient can
// answer directly.
func (r *Renderer) RenderContact(sub ContactSubmission) (*email.Message, error) {
	now := r.now()
	data := struct {
		ContactSubmission
		BrandName    string
		ReceivedDate string
	}{
		ContactSubmission: sub,
		BrandName:         r.cfg.BrandName,
		ReceivedDate:      now.Format("January 2, 2006"),
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, "contact.html", data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &email.Message{
		SendTo:   r.cfg.ContactRecipient,
		Subject:  fmt.Sprintf("Contact Form: %s Project", r.stripMarkup(sub.ProjectType)),
		BodyHTML: body.String(),
		ReplyTo:  sub.Email,
		Tag:      "contact-form",
	}, nil
}

// RenderJobApplication builds the notification email for a job application,
// including the resume and any additional documents as attachments.
func (r *Renderer) RenderJobApplication(sub JobApplicationSubmission) (*email.Message, error) {
	now := r.now()
	data := struct {
		JobApplicationSubmission
		Employment    []numberedEmployment
		Education     []EducationRecord
		Training      []TrainingRecord
		RefereeList   []numberedReference
		SubmittedDate string
		SubmittedTime string
	}{
		JobApplicationSubmission: sub,
		Employment:               filledEmployment(sub.EmploymentRecords),
		Education:                filledEducation(sub.EducationRecords),
		Training:                 filledTraining(sub.TrainingRecords),
		RefereeList:              filledReferences(sub.References),
		SubmittedDate:            now.Format("January 2, 2006"),
		SubmittedTime:            now.Format("3:04:05 PM"),
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, "job_application.html", data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &email.Message{
		SendTo: r.cfg.HRRecipient,
		Subject: fmt.Sprintf("New Job Application: %s - %s %s",
			r.stripMarkup(sub.JobTitle), r.stripMarkup(sub.FirstName), r.stripMarkup(sub.LastName)),
		BodyHTML:    body.String(),
		ReplyTo:     sub.Email,
		Tag:         "job-application",
		Attachments: applicationAttachments(sub),
	}, nil
}

// applicationAttachments assembles the attachment list with the resume
// first, followed by additional documents in submitted order. Missing
// filenames and content types fall back to safe defaults.
func applicationAttachments(sub JobApplicationSubmission) []email.Attachment {
	var attachments []email.Attachment
	if len(sub.Resume) > 0 {
		attachments = append(attachments, email.Attachment{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Content:     sub.Resume,
		})
	}
	for i, doc := range sub.AdditionalDocuments {
		filename := doc.Filename
		if filename == "" {
			filename = fmt.Sprintf("document_%d.pdf", i+1)
		}
		contentType := doc.Type
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attachments = append(attachments, email.Attachment{
			Filename:    filename,
			ContentType: contentType,
			Content:     doc.Content,
		})
	}
	return attachments
}
