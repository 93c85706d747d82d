// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package content

import (
	"reflect"
	"testing"
)

func TestServices(t *testing.T) {
	services := Services()
	if len(services) != 3 {
		t.Fatalf("services = %d, want 3", len(services))
	}
	for _, s := range services {
		if s.Slug == "" || s.Title == "" || s.Description == "" {
			t.Errorf("incomplete service %q: %+v", s.ID, s)
		}
		if s.CTA.PrefilledInterest != s.Slug {
			t.Errorf("service %q CTA prefill = %q, want its own slug", s.ID, s.CTA.PrefilledInterest)
		}
	}
}

func TestServiceSlugs(t *testing.T) {
	want := []string{"alpha", "risk", "private"}
	if got := ServiceSlugs(); !reflect.DeepEqual(got, want) {
		t.Errorf("slugs = %v, want %v", got, want)
	}
}

func TestServiceBySlug(t *testing.T) {
	risk := ServiceBySlug("risk")
	if risk == nil {
		t.Fatal("risk service missing")
	}
	if risk.Title != "Risk & Hedging" {
		t.Errorf("title = %q", risk.Title)
	}
	if got := ServiceBySlug("derivatives"); got != nil {
		t.Errorf("unknown slug = %+v, want nil", got)
	}
}

func TestTeam(t *testing.T) {
	roster := Team()
	if len(roster) == 0 {
		t.Fatal("empty roster")
	}
	seen := make(map[string]bool)
	for _, m := range roster {
		if seen[m.ID] {
			t.Errorf("duplicate member id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Name == "" || m.Role == "" {
			t.Errorf("incomplete member %q", m.ID)
		}
	}
	for _, id := range []string{"ceo", "cofounder", "cto", "cbo"} {
		if !seen[id] {
			t.Errorf("missing member %q", id)
		}
	}
}

func TestLeadership_SortedByOrder(t *testing.T) {
	leaders := Leadership()
	if len(leaders) == 0 {
		t.Fatal("no leadership members")
	}
	for i := 1; i < len(leaders); i++ {
		if leaders[i-1].Order > leaders[i].Order {
			t.Errorf("leadership out of order at %d: %d > %d", i, leaders[i-1].Order, leaders[i].Order)
		}
	}
	for _, m := range leaders {
		if !m.IsLeadership {
			t.Errorf("non-leadership member %q in leadership list", m.ID)
		}
	}
}

func TestTeamMemberByID(t *testing.T) {
	ceo := TeamMemberByID("ceo")
	if ceo == nil {
		t.Fatal("ceo missing")
	}
	if ceo.Name != "Dimitri Shelovheny" {
		t.Errorf("name = %q", ceo.Name)
	}
	if got := TeamMemberByID("intern"); got != nil {
		t.Errorf("unknown id = %+v, want nil", got)
	}
}
