// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/sealed-vitae/models"
)

// Field name constants accepted by [RecordValidator.Validate] to restrict
// validation to a subset of rules.
const (
	// FieldUpdated checks the format of Record.Updated.
	FieldUpdated = "updated"

	// FieldPublications checks publication years.
	FieldPublications = "publications"

	// FieldEntries checks that every education, experience, project and
	// publication entry has a title.
	FieldEntries = "entries"

	// FieldSkills checks skills category names.
	FieldSkills = "skills"

	// FieldContact checks contact details.
	FieldContact = "contact"
)

const (
	minPublicationYear = 1900
	maxPublicationYear = 9999
)

var defaultRecordFields = []string{FieldUpdated, FieldPublications, FieldEntries, FieldSkills, FieldContact}

// RecordValidator implements [Validator] for [models.Record]. It checks the
// semantic rules that JSON decoding alone cannot enforce, so that a record
// handed to the renderer is always well-formed.
type RecordValidator struct{}

// NewRecordValidator constructs a [RecordValidator] and returns it as the
// [Validator] interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate accepts models.Record or *models.Record. With no fields given, all
// rules are checked. Returns ErrUnsupportedType for any other input.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultRecordFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUpdated:
			err = validateUpdated(r.Updated.String())
		case FieldPublications:
			err = validatePublications(r.Publications)
		case FieldEntries:
			err = validateEntries(r)
		case FieldSkills:
			err = validateSkills(r.Skills)
		case FieldContact:
			err = validateContact(r.Contact)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateUpdated(updated string) error {
	if updated == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, updated); err == nil {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, updated); err == nil {
		return nil
	}
	return ErrInvalidUpdated
}

func validatePublications(pubs []models.Publication) error {
	for i, p := range pubs {
		raw := strings.TrimSpace(p.Year.String())
		if raw == "" {
			continue
		}
		year, err := strconv.Atoi(raw)
		if err != nil || year < minPublicationYear || year > maxPublicationYear {
			return fmt.Errorf("%w: publications[%d]=%q", ErrInvalidYear, i, raw)
		}
	}
	return nil
}

func validateEntries(r models.Record) error {
	for i, e := range r.Education {
		if isBlank(e.Title.String()) {
			return fmt.Errorf("%w: education[%d]", ErrEmptyEntryTitle, i)
		}
	}
	for i, e := range r.WorkExperience {
		if isBlank(e.Title.String()) {
			return fmt.Errorf("%w: work_experience[%d]", ErrEmptyEntryTitle, i)
		}
	}
	for i, e := range r.Experience {
		if isBlank(e.Title.String()) {
			return fmt.Errorf("%w: experience[%d]", ErrEmptyEntryTitle, i)
		}
	}
	for i, p := range r.FeaturedProjects {
		if isBlank(p.Title.String()) {
			return fmt.Errorf("%w: featured_projects[%d]", ErrEmptyEntryTitle, i)
		}
	}
	for i, p := range r.Publications {
		if isBlank(p.Title.String()) {
			return fmt.Errorf("%w: publications[%d]", ErrEmptyEntryTitle, i)
		}
	}
	return nil
}

func validateSkills(skills map[string]models.SkillList) error {
	for category := range skills {
		if isBlank(category) {
			return ErrEmptySkillCategory
		}
	}
	return nil
}

func validateContact(c *models.Contact) error {
	if c == nil || c.Email == "" {
		return nil
	}
	email := c.Email.String()
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n") {
		return ErrInvalidContactEmail
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
