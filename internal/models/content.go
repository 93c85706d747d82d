// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package models

// TeamDepartment groups team members by function.
type TeamDepartment string

const (
	DepartmentLeadership      TeamDepartment = "leadership"
	DepartmentQuantResearch   TeamDepartment = "quantitative-research"
	DepartmentTechnology      TeamDepartment = "technology"
	DepartmentOperations      TeamDepartment = "operations"
	DepartmentClientRelations TeamDepartment = "client-relations"
)

// TeamMember is one entry in the static team roster.
type TeamMember struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Department   TeamDepartment `json:"department"`
	Bio          string         `json:"bio"`
	Image        ImageAsset     `json:"image"`
	LinkedIn     string         `json:"linkedIn,omitempty"`
	Order        int            `json:"order"`
	IsLeadership bool           `json:"isLeadership"`
}

// AudienceType classifies which client segment a service targets.
type AudienceType string

const (
	AudienceInstitutional AudienceType = "institutional"
	AudiencePrivate       AudienceType = "private"
	AudienceFintech       AudienceType = "fintech"
)

// ServiceFeature is one capability bullet on a service page.
type ServiceFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// ServiceMetric is one headline figure on a service page.
type ServiceMetric struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Suffix      string `json:"suffix,omitempty"`
	Description string `json:"description,omitempty"`
}

// ServiceCTA describes the call-to-action attached to a service.
type ServiceCTA struct {
	Type               string `json:"type"` // demo, consultation, partnership
	Label              string `json:"label"`
	PrefilledInterest  string `json:"prefilledInterest"`
}

// ServiceDetail is one entry in the static service catalogue.
type ServiceDetail struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	ShortTitle      string           `json:"shortTitle"`
	Description     string           `json:"description"`
	LongDescription string           `json:"longDescription"`
	Features        []ServiceFeature `json:"features"`
	Metrics         []ServiceMetric  `json:"metrics"`
	TargetAudience  string           `json:"targetAudience"`
	AudienceType    AudienceType     `json:"audienceType"`
	CTA             ServiceCTA       `json:"cta"`
	Icon            string           `json:"icon"`
	AccentColor     string           `json:"accentColor,omitempty"`
}

// PartnerTier ranks partner relationships.
type PartnerTier string

const (
	PartnerTierStrategic     PartnerTier = "strategic"
	PartnerTierTechnology    PartnerTier = "technology"
	PartnerTierInstitutional PartnerTier = "institutional"
)

// Partner is one entry in the static partner roster.
type Partner struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Logo  ImageAsset  `json:"logo"`
	Tier  PartnerTier `json:"tier"`
	URL   string      `json:"url,omitempty"`
	Order int         `json:"order"`
}
