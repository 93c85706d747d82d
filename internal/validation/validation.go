// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package validation checks contact and newsletter form submissions. Each
// Validate is a pure function returning a field-to-message map; the first
// violation per field wins, and validation itself never fails the process.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits.
const (
	minNameLen    = 2
	maxNameLen    = 100
	maxEmailLen   = 254
	minMessageLen = 10
	maxMessageLen = 2000
	maxCompanyLen = 100
	maxRoleLen    = 100
	maxPhoneLen   = 20
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// serviceInterests is the fixed set of values the contact form offers.
var serviceInterests = map[string]bool{
	"alpha":       true,
	"risk":        true,
	"private":     true,
	"technology":  true,
	"partnership": true,
	"general":     true,
}

// inquiryTypes is the fixed set of inquiry kinds.
var inquiryTypes = map[string]bool{
	"demo":         true,
	"consultation": true,
	"partnership":  true,
	"general":      true,
}

// ContactForm is a decoded contact submission, pre-validation.
type ContactForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Message         string `json:"message"`
	Company         string `json:"company,omitempty"`
	Role            string `json:"role,omitempty"`
	Phone           string `json:"phone,omitempty"`
	ServiceInterest string `json:"serviceInterest"`
	InquiryType     string `json:"inquiryType"`
	// Honeypot is a hidden field legitimate users never fill. Any non-empty
	// value marks the whole submission as automated.
	Honeypot string `json:"honeypot,omitempty"`
}

// Validate returns nil when the form is acceptable, otherwise a map of
// field name to a single human-readable message.
func (f *ContactForm) Validate() map[string]string {
	fields := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		fields["name"] = "Name must be at least 2 characters"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		fields["name"] = "Name must be at most 100 characters"
	}

	if !ValidEmail(f.Email) {
		fields["email"] = "Please enter a valid email address"
	}

	if utf8.RuneCountInString(f.Message) < minMessageLen {
		fields["message"] = "Message must be at least 10 characters"
	} else if utf8.RuneCountInString(f.Message) > maxMessageLen {
		fields["message"] = "Message must be at most 2000 characters"
	}

	if utf8.RuneCountInString(f.Company) > maxCompanyLen {
		fields["company"] = "Company must be at most 100 characters"
	}
	if utf8.RuneCountInString(f.Role) > maxRoleLen {
		fields["role"] = "Role must be at most 100 characters"
	}
	if utf8.RuneCountInString(f.Phone) > maxPhoneLen {
		fields["phone"] = "Phone must be at most 20 characters"
	}

	if !serviceInterests[f.ServiceInterest] {
		fields["serviceInterest"] = "Select a valid service interest"
	}
	if !inquiryTypes[f.InquiryType] {
		fields["inquiryType"] = "Select a valid inquiry type"
	}

	if f.Honeypot != "" {
		fields["honeypot"] = "Bot detected"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// NewsletterForm is a decoded newsletter subscription, pre-validation.
type NewsletterForm struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

// Validate returns nil when the form is acceptable.
func (f *NewsletterForm) Validate() map[string]string {
	if !ValidEmail(f.Email) {
		return map[string]string{"email": "Please enter a valid email address"}
	}
	return nil
}

// ValidEmail reports whether s has plausible email syntax.
func ValidEmail(s string) bool {
	return utf8.RuneCountInString(s) <= maxEmailLen && emailPattern.MatchString(s)
}
