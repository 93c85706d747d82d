// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package content

import (
	"sort"

	"oxonnsite/internal/models"
)

// Fallback identity used when a post's author id doesn't resolve.
const (
	DefaultAuthorName   = "OXONN Team"
	DefaultAuthorAvatar = "/images/team/placeholder-avatar.svg"
)

var team = []models.TeamMember{
	{
		ID:         "ceo",
		Name:       "Dimitri Shelovheny",
		Role:       "Chief Executive Officer",
		Department: models.DepartmentLeadership,
		Bio:        "Leading OXONN's vision to redefine quantitative finance through systematic innovation and institutional-grade technology.",
		Image: models.ImageAsset{
			Src: "/images/team/dimitri-shelovheny.png", Alt: "Dimitri Shelovheny", Width: 800, Height: 800,
		},
		Order:        1,
		IsLeadership: true,
	},
	{
		ID:         "cofounder",
		Name:       "Melvyn Fathd",
		Role:       "Co-Founder",
		Department: models.DepartmentLeadership,
		Bio:        "Driving strategic growth and partnerships, bridging quantitative research with real-world financial applications.",
		Image: models.ImageAsset{
			Src: "/images/team/melvyn-fathd.png", Alt: "Melvyn Fathd", Width: 800, Height: 800,
		},
		Order:        2,
		IsLeadership: true,
	},
	{
		ID:         "cto",
		Name:       "Rawdan Parze",
		Role:       "Chief Technology Officer",
		Department: models.DepartmentLeadership,
		Bio:        "Architecting OXONN's high-performance infrastructure, from sub-millisecond execution to distributed computing at scale.",
		Image: models.ImageAsset{
			Src: "/images/team/rawdan-parze.png", Alt: "Rawdan Parze", Width: 800, Height: 800,
		},
		Order:        3,
		IsLeadership: true,
	},
	{
		ID:         "cbo",
		Name:       "Lee Hsan",
		Role:       "Chief Business Officer",
		Department: models.DepartmentLeadership,
		Bio:        "Spearheading business development and client relationships, connecting institutional investors with OXONN's quantitative solutions.",
		Image: models.ImageAsset{
			Src: "/images/team/lee-hsan.png", Alt: "Lee Hsan", Width: 800, Height: 800,
		},
		Order:        4,
		IsLeadership: true,
	},
}

// Team returns the full roster.
func Team() []models.TeamMember {
	return team
}

// Leadership returns leadership members sorted by display order.
func Leadership() []models.TeamMember {
	var out []models.TeamMember
	for _, m := range team {
		if m.IsLeadership {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// TeamMemberByID returns the team member with the given id, or nil.
func TeamMemberByID(id string) *models.TeamMember {
	for i := range team {
		if team[i].ID == id {
			return &team[i]
		}
	}
	return nil
}
