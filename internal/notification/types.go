package notification

import (
	"errors"
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ContactSubmission is the payload of a contact form post. Field names
// mirror the frontend form.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// Validate checks that all required contact fields are present. Company is
// the only optional field. All problems are reported at once.
func (s ContactSubmission) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Email == "" {
		errs = append(errs, errors.New("email is required"))
	} else if !emailRegex.MatchString(s.Email) {
		errs = append(errs, errors.New("email must be a valid email address"))
	}
	if s.Phone == "" {
		errs = append(errs, errors.New("phone is required"))
	}
	if s.ProjectType == "" {
		errs = append(errs, errors.New("projectType is required"))
	}
	if s.Message == "" {
		errs = append(errs, errors.New("message is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}
	return nil
}

// EmploymentRecord is one entry of an applicant's employment history.
// A record counts as filled only when Employer is set.
type EmploymentRecord struct {
	Employer         string `json:"employer"`
	JobTitle         string `json:"jobTitle"`
	Address          string `json:"address"`
	FromDate         string `json:"fromDate"`
	ToDate           string `json:"toDate"`
	Duties           string `json:"duties"`
	ReasonForLeaving string `json:"reasonForLeaving"`
}

// EducationRecord is one row of the education table. A record counts as
// filled only when Institution is set.
type EducationRecord struct {
	Institution   string `json:"institution"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	DateGained    string `json:"dateGained"`
}

// TrainingRecord is one row of the training table. A record counts as
// filled only when Course is set.
type TrainingRecord struct {
	Course string `json:"course"`
	Date   string `json:"date"`
}

// Reference is a person the applicant lists as a referee. A reference
// counts as filled only when Name is set.
type Reference struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Organization string `json:"organization"`
	Address      string `json:"address"`
	Telephone    string `json:"telephone"`
}

// Document is an extra file attached to an application. Content arrives
// base64-encoded in JSON and is decoded automatically.
type Document struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Content  []byte `json:"content"`
}

// JobApplicationSubmission is the payload of a job application post. The
// Resume field, when present, arrives base64-encoded in JSON.
type JobApplicationSubmission struct {
	// Position details
	JobTitle            string `json:"jobTitle"`
	Department          string `json:"department"`
	ReferenceNumber     string `json:"referenceNumber"`
	AdvertisementSource string `json:"advertisementSource"`

	// Personal details
	Title       string `json:"title"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	HomeAddress string `json:"homeAddress"`
	ZipCode     string `json:"zipCode"`
	HomePhone   string `json:"homePhone"`
	WorkPhone   string `json:"workPhone"`
	MobilePhone string `json:"mobilePhone"`
	Email       string `json:"email"`

	// Additional info
	HasDriversLicense   bool   `json:"hasDriversLicense"`
	HasMedicalCondition bool   `json:"hasMedicalCondition"`
	HasWorkRestrictions bool   `json:"hasWorkRestrictions"`
	NoticeRequired      string `json:"noticeRequired"`

	// History
	EmploymentRecords []EmploymentRecord `json:"employmentRecords"`
	EducationRecords  []EducationRecord  `json:"educationRecords"`
	TrainingRecords   []TrainingRecord   `json:"trainingRecords"`
	ExperienceSkills  string             `json:"experienceSkills"`
	References        []Reference        `json:"references"`

	// Legal
	HasCriminalConvictions        bool `json:"hasCriminalConvictions"`
	DrugAlcoholPolicyAcknowledged bool `json:"drugAlcoholPolicyAcknowledged"`

	// Attachments
	Resume              []byte     `json:"resume"`
	AdditionalDocuments []Document `json:"additionalDocuments"`
}

// Validate checks that the fields required to route and caption the
// application are present. All problems are reported at once.
func (s JobApplicationSubmission) Validate() error {
	var errs []error
	if s.JobTitle == "" {
		errs = append(errs, errors.New("jobTitle is required"))
	}
	if s.FirstName == "" {
		errs = append(errs, errors.New("firstName is required"))
	}
	if s.LastName == "" {
		errs = append(errs, errors.New("lastName is required"))
	}
	if s.Email == "" {
		errs = append(errs, errors.New("email is required"))
	} else if !emailRegex.MatchString(s.Email) {
		errs = append(errs, errors.New("email must be a valid email address"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}
	return nil
}
