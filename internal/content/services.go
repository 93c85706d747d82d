// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package content holds the static service, team, and partner records for
// the site. The data is compiled in; lookups are plain in-process reads.
package content

import "oxonnsite/internal/models"

var services = []models.ServiceDetail{
	{
		ID:          "alpha",
		Title:       "High Alpha Strategies",
		Slug:        "alpha",
		ShortTitle:  "Alpha",
		Description: "Systematic alpha generation through quantitative models and factor-driven investing.",
		LongDescription: "Our quantitative investment strategies harness advanced statistical models, machine learning, " +
			"and proprietary factor research to identify and capture persistent market inefficiencies. Every position is " +
			"systematically sourced, rigorously tested, and dynamically managed. No discretionary overrides, no " +
			"narrative-driven trades. Pure signal extraction at institutional scale.",
		Features: []models.ServiceFeature{
			{Title: "Factor-Driven Alpha", Description: "Proprietary multi-factor models capturing cross-sectional and time-series anomalies.", Icon: "TrendingUp"},
			{Title: "Systematic Execution", Description: "Fully automated trade lifecycle from signal generation to order routing.", Icon: "Cpu"},
			{Title: "Risk-Adjusted Returns", Description: "Dynamic position sizing and portfolio construction optimized for risk-adjusted performance.", Icon: "Shield"},
			{Title: "Alternative Data", Description: "Integration of non-traditional data sources for differentiated signal generation.", Icon: "Database"},
			{Title: "Multi-Asset Coverage", Description: "Strategies spanning equities, fixed income, commodities, and derivatives.", Icon: "Layers"},
			{Title: "Transparent Reporting", Description: "Institutional-grade attribution analytics and risk decomposition dashboards.", Icon: "BarChart3"},
		},
		Metrics: []models.ServiceMetric{
			{Label: "Quantitative Models", Value: "200+", Description: "Active models across all strategies"},
			{Label: "Data Points Processed", Value: "50B+", Suffix: "daily", Description: "Alternative and traditional data ingestion"},
			{Label: "Research Pipeline", Value: "1,200+", Suffix: "factors tested annually"},
			{Label: "Strategy Correlation", Value: "<0.15", Suffix: "to benchmarks", Description: "Low correlation to traditional market indices"},
		},
		TargetAudience: "Hedge funds, asset managers, and institutional allocators seeking uncorrelated, systematic alpha generation with full transparency.",
		AudienceType:   models.AudienceInstitutional,
		CTA:            models.ServiceCTA{Type: "partnership", Label: "Explore Partnership", PrefilledInterest: "alpha"},
		Icon:           "TrendingUp",
	},
	{
		ID:          "risk",
		Title:       "Risk & Hedging",
		Slug:        "risk",
		ShortTitle:  "Risk",
		Description: "Institutional-grade risk management and real-time hedging infrastructure for trading desks.",
		LongDescription: "Purpose-built for brokers, proprietary trading firms, and institutional desks that cannot afford " +
			"blind spots. Our risk management platform delivers sub-millisecond portfolio analytics, real-time hedging " +
			"recommendations, and regulatory compliance tooling through a single unified API. No latency. No " +
			"approximations. No excuses.",
		Features: []models.ServiceFeature{
			{Title: "Real-Time Risk Analytics", Description: "Sub-millisecond VaR, CVaR, and stress testing across the full portfolio.", Icon: "Activity"},
			{Title: "Automated Hedging", Description: "Dynamic hedge ratio optimization with real-time Greeks computation.", Icon: "Shield"},
			{Title: "Regulatory Compliance", Description: "Built-in Basel III/IV, FRTB, and margin requirement calculations.", Icon: "FileCheck"},
			{Title: "Scenario Engine", Description: "Monte Carlo simulation and historical stress testing with custom scenarios.", Icon: "GitBranch"},
			{Title: "API-First Architecture", Description: "RESTful and WebSocket APIs for seamless integration with existing systems.", Icon: "Code"},
			{Title: "Portfolio Aggregation", Description: "Cross-asset, cross-entity risk aggregation with real-time P&L attribution.", Icon: "Combine"},
		},
		Metrics: []models.ServiceMetric{
			{Label: "Execution Latency", Value: "<1", Suffix: "ms", Description: "End-to-end risk calculation latency"},
			{Label: "System Uptime", Value: "99.97", Suffix: "%", Description: "Measured over trailing 12 months"},
			{Label: "Instruments Covered", Value: "10M+", Description: "Equities, derivatives, fixed income, FX"},
			{Label: "Risk Scenarios", Value: "50K+", Suffix: "per second", Description: "Monte Carlo simulation throughput"},
		},
		TargetAudience: "Brokers, proprietary trading firms, and institutional desks requiring real-time risk infrastructure and hedging technology.",
		AudienceType:   models.AudienceInstitutional,
		CTA:            models.ServiceCTA{Type: "demo", Label: "Request Platform Demo", PrefilledInterest: "risk"},
		Icon:           "Shield",
	},
	{
		ID:          "private",
		Title:       "On-Demand",
		Slug:        "private",
		ShortTitle:  "Private",
		Description: "Bespoke quantitative services for discerning private clients and family offices.",
		LongDescription: "For those who require precision without compromise. Our On-Demand division serves " +
			"ultra-high-net-worth individuals and family offices with tailored quantitative solutions, from bespoke " +
			"portfolio construction and structured product engineering to private fund access and multi-generational " +
			"wealth preservation. Every engagement is confidential, every solution is singular.",
		Features: []models.ServiceFeature{
			{Title: "Bespoke Portfolio Construction", Description: "Custom-built portfolios aligned to your specific risk tolerance and objectives.", Icon: "Gem"},
			{Title: "Structured Products", Description: "Tailored financial instruments designed for capital preservation and growth.", Icon: "Box"},
			{Title: "Private Fund Access", Description: "Curated access to institutional-grade quantitative strategies.", Icon: "Lock"},
			{Title: "Wealth Preservation", Description: "Multi-generational wealth structuring and downside protection strategies.", Icon: "ShieldCheck"},
			{Title: "Tax-Efficient Engineering", Description: "Quantitative approaches to tax optimization and estate planning.", Icon: "Calculator"},
			{Title: "Dedicated Advisory", Description: "Direct access to senior quantitative strategists for ongoing guidance.", Icon: "Users"},
		},
		Metrics:        []models.ServiceMetric{},
		TargetAudience: "Ultra-high-net-worth individuals, family offices, and private foundations seeking bespoke quantitative financial solutions.",
		AudienceType:   models.AudiencePrivate,
		CTA:            models.ServiceCTA{Type: "consultation", Label: "Book Private Consultation", PrefilledInterest: "private"},
		Icon:           "Gem",
	},
}

// Services returns the full service catalogue in display order.
func Services() []models.ServiceDetail {
	return services
}

// ServiceBySlug returns the service with the given slug, or nil if unknown.
// An unknown slug is a normal outcome, not an error.
func ServiceBySlug(slug string) *models.ServiceDetail {
	for i := range services {
		if services[i].Slug == slug {
			return &services[i]
		}
	}
	return nil
}

// ServiceSlugs returns every service slug, used for static path enumeration.
func ServiceSlugs() []string {
	slugs := make([]string, 0, len(services))
	for i := range services {
		slugs = append(slugs, services[i].Slug)
	}
	return slugs
}
