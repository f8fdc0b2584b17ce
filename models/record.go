// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Record is the structured plaintext sealed inside a payload: a curriculum
// vitae whose fields are all optional. The rendering layer owns presentation;
// this type only fixes the names and types it may rely on.
type Record struct {
	Contact           *Contact             `json:"contact,omitempty"`
	Tagline           Text                 `json:"tagline,omitempty"`
	ResearchInterests Text                 `json:"research_interests,omitempty"`
	AboutMe           Text                 `json:"about_me,omitempty"`
	Education         []Education          `json:"education,omitempty"`
	WorkExperience    []Experience         `json:"work_experience,omitempty"`
	Experience        []Experience         `json:"experience,omitempty"`
	Skills            map[string]SkillList `json:"skills,omitempty"`
	FeaturedProjects  []Project            `json:"featured_projects,omitempty"`
	Publications      []Publication        `json:"publications,omitempty"`
	Certificates      []string             `json:"certificates,omitempty"`
	Languages         []string             `json:"languages,omitempty"`
	Interests         []string             `json:"interests,omitempty"`
	AskForCV          Text                 `json:"askforcv,omitempty"`

	// Updated is the last-modified date, RFC 3339 or YYYY-MM-DD.
	Updated Text `json:"updated,omitempty"`
}

// Contact groups how to reach the record's owner. Location is either given as
// a single string or split into City, Province and Country.
type Contact struct {
	Name     Text `json:"name,omitempty"`
	Location Text `json:"location,omitempty"`
	City     Text `json:"city,omitempty"`
	Province Text `json:"province,omitempty"`
	Country  Text `json:"country,omitempty"`
	Email    Text `json:"email,omitempty"`
	LinkedIn Text `json:"linkedin,omitempty"`
	GitHub   Text `json:"github,omitempty"`
	Website  Text `json:"website,omitempty"`
	ORCID    Text `json:"orcid,omitempty"`
	Phone    Text `json:"phone,omitempty"`
}

type Education struct {
	Title   Text `json:"title,omitempty"`
	School  Text `json:"school,omitempty"`
	Time    Text `json:"time,omitempty"`
	Content Text `json:"content,omitempty"`
}

type Experience struct {
	Title   Text `json:"title,omitempty"`
	Company Text `json:"company,omitempty"`
	Time    Text `json:"time,omitempty"`
	// Content holds bullet lines, each starting with "•".
	Content Text `json:"content,omitempty"`
}

type Project struct {
	Title       Text        `json:"title,omitempty"`
	Time        Text        `json:"time,omitempty"`
	Description Text        `json:"description,omitempty"`
	Tech        Text        `json:"tech,omitempty"`
	Features    Text        `json:"features,omitempty"`
	Ref         *ProjectRef `json:"ref,omitempty"`
}

type ProjectRef struct {
	Link  Text `json:"link,omitempty"`
	Label Text `json:"label,omitempty"`
}

// Publication.Year is kept as text: records in the wild carry it both as a
// number and as a string.
type Publication struct {
	Title Text `json:"title,omitempty"`
	Venue Text `json:"venue,omitempty"`
	Year  Text `json:"year,omitempty"`
	Link  Text `json:"link,omitempty"`
}

// Text is a display string that decodes from any JSON scalar. Numbers keep
// their literal form ("2024", "4165550100"), booleans become "true" or
// "false", and null leaves the zero value.
type Text string

var (
	errInvalidText      = errors.New("value must be a string, number or boolean")
	errInvalidSkillList = errors.New("skills entry must be a scalar or an array of scalars")
)

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errInvalidText
	}

	switch b[0] {
	case 'n':
		if string(b) != "null" {
			return errInvalidText
		}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return errInvalidText
		}
		*t = Text(strconv.FormatBool(v))
		return nil
	case '{', '[':
		return errInvalidText
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errInvalidText
	}
	*t = Text(n.String())
	return nil
}

// String returns t as a plain string.
func (t Text) String() string {
	return string(t)
}

// SkillList is the value of one skills category. On the wire it is either a
// single scalar or an array of scalars; a single value decodes to a
// one-element list.
type SkillList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*s = nil
		return nil
	}

	if len(b) > 0 && b[0] == '[' {
		var many []Text
		if err := json.Unmarshal(b, &many); err != nil {
			return errInvalidSkillList
		}
		list := make(SkillList, 0, len(many))
		for _, v := range many {
			list = append(list, v.String())
		}
		*s = list
		return nil
	}

	var single Text
	if err := json.Unmarshal(b, &single); err != nil {
		return errInvalidSkillList
	}
	*s = SkillList{single.String()}
	return nil
}
