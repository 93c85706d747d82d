// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package content

import (
	"sort"

	"oxonnsite/internal/models"
)

// Partner roster. Empty until real partner data is available.
var partners = []models.Partner{}

// PartnersByTier returns partners of the given tier sorted by display order.
// An empty tier returns the full roster.
func PartnersByTier(tier models.PartnerTier) []models.Partner {
	var out []models.Partner
	for _, p := range partners {
		if tier == "" || p.Tier == tier {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
