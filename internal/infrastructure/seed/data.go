package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/timeline"
)

func (r *Runner) seedUsers(passwordHash string) error {
	users := []*entity.User{
		{
			Username: "founder_demo", Name: "Sarah Chen",
			Email: "sarah.chen@techstartup.com", Role: entity.RoleFounder,
			Company: "TechStartup Pty Ltd", Position: "Chief Executive Officer",
		},
		{
			Username: "secretary_demo", Name: "Michael O'Brien",
			Email: "mobrien@corporatelaw.com.au", Role: entity.RoleCompanySecretary,
			Company: "Corporate Law Associates", Position: "Senior Company Secretary",
		},
		{
			Username: "lawyer_demo", Name: "Rebecca Williams",
			Email: "rwilliams@asxlaw.com.au", Role: entity.RoleLawyer,
			Company: "ASX Legal Partners", Position: "Senior Partner - Capital Markets",
		},
		{
			Username: "cfo_demo", Name: "David Kim",
			Email: "dkim@financecorp.com.au", Role: entity.RoleCFO,
			Company: "FinanceCorp Australia", Position: "Chief Financial Officer",
		},
		{
			Username: "board_demo", Name: "Jennifer Thompson",
			Email: "jthompson@boardadvisors.com.au", Role: entity.RoleBoardMember,
			Company: "Board Advisory Services", Position: "Independent Non-Executive Director",
		},
		{
			Username: "adviser_demo", Name: "Robert Singh",
			Email: "rsingh@investmentbank.com.au", Role: entity.RoleAdviser,
			Company: "Investment Bank Australia", Position: "Managing Director - ECM",
		},
	}
	for _, u := range users {
		u.ID = uuid.New().String()
		u.PasswordHash = passwordHash
		u.CreatedAt = time.Now()
		if err := r.repos.Users.Create(u); err != nil {
			return err
		}
	}
	r.log.Info().Int("count", len(users)).Msg("seeded users")
	return nil
}

// seedListingStages loads the six journey phases and returns their ids in
// journey order so tasks can reference them.
func (r *Runner) seedListingStages() ([]string, error) {
	stages := []*entity.ListingStage{
		{Name: "Initial Planning", Description: "Early stage planning and feasibility assessment", Order: 1},
		{Name: "Due Diligence Preparation", Description: "Comprehensive preparation of all due diligence materials", Order: 2},
		{Name: "Documentation Drafting", Description: "Drafting of prospectus and key listing documents", Order: 3},
		{Name: "Regulatory Review", Description: "ASIC and ASX review process and approvals", Order: 4},
		{Name: "Marketing & Roadshow", Description: "Investor marketing and roadshow activities", Order: 5},
		{Name: "Completion", Description: "Final steps to complete the listing", Order: 6},
	}
	ids := make([]string, 0, len(stages))
	for _, s := range stages {
		s.ID = uuid.New().String()
		if err := r.repos.ListingStages.Create(s); err != nil {
			return nil, err
		}
		ids = append(ids, s.ID)
	}
	r.log.Info().Int("count", len(stages)).Msg("seeded listing stages")
	return ids, nil
}

func (r *Runner) seedTasks(stageIDs []string) error {
	tasks := []*entity.Task{
		{
			Title:       "Prepare Executive Summary",
			Description: "Draft comprehensive executive summary highlighting company vision and growth strategy",
			Category:    "Documentation", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleFounder, EstimatedTime: "8 hours", StageID: &stageIDs[0],
		},
		{
			Title:       "Management Team Biographies",
			Description: "Compile detailed biographies of key management team members",
			Category:    "Documentation", Priority: entity.PriorityMedium,
			TargetRole: entity.RoleFounder, EstimatedTime: "4 hours", StageID: &stageIDs[0],
		},
		{
			Title:       "Corporate Structure Review",
			Description: "Review and optimize corporate structure for listing requirements",
			Category:    "Legal", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleCompanySecretary, EstimatedTime: "12 hours", StageID: &stageIDs[1],
		},
		{
			Title:       "Share Register Audit",
			Description: "Conduct comprehensive audit of share register for accuracy",
			Category:    "Compliance", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleCompanySecretary, EstimatedTime: "6 hours", StageID: &stageIDs[1],
		},
		{
			Title:       "Draft Constitution Updates",
			Description: "Update company constitution to comply with ASX listing rules",
			Category:    "Legal", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleLawyer, EstimatedTime: "16 hours", StageID: &stageIDs[2],
		},
		{
			Title:       "Material Contracts Review",
			Description: "Review all material contracts for disclosure requirements",
			Category:    "Legal", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleLawyer, EstimatedTime: "20 hours", StageID: &stageIDs[1],
		},
		{
			Title:       "Financial Model Validation",
			Description: "Validate financial projections and ensure models are defensible",
			Category:    "Financial", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleCFO, EstimatedTime: "24 hours", StageID: &stageIDs[1],
		},
		{
			Title:       "Audit Coordination",
			Description: "Coordinate with auditors for completion of financial statement audit",
			Category:    "Financial", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleCFO, EstimatedTime: "16 hours", StageID: &stageIDs[1],
		},
		{
			Title:       "Board Charter Development",
			Description: "Develop comprehensive board charter outlining governance procedures",
			Category:    "Governance", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleBoardMember, EstimatedTime: "6 hours", StageID: &stageIDs[2],
		},
		{
			Title:       "Risk Management Framework",
			Description: "Establish risk management framework for listed entity requirements",
			Category:    "Risk", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleBoardMember, EstimatedTime: "12 hours", StageID: &stageIDs[2],
		},
		{
			Title:       "Market Positioning Strategy",
			Description: "Develop market positioning strategy including peer comparison",
			Category:    "Strategy", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleAdviser, EstimatedTime: "16 hours", StageID: &stageIDs[0],
		},
		{
			Title:       "Valuation Analysis",
			Description: "Prepare detailed valuation analysis using multiple methodologies",
			Category:    "Valuation", Priority: entity.PriorityHigh,
			TargetRole: entity.RoleAdviser, EstimatedTime: "20 hours", StageID: &stageIDs[4],
		},
	}
	for _, t := range tasks {
		t.ID = uuid.New().String()
		if err := r.repos.Tasks.Create(t); err != nil {
			return err
		}
	}
	r.log.Info().Int("count", len(tasks)).Msg("seeded tasks")
	return nil
}

func (r *Runner) seedResources() error {
	resources := []*entity.Resource{
		{
			Title: "ASX Listing Rules Guide", Type: "guide", Category: "Regulatory",
			Content:     "Comprehensive guide to ASX listing rules and requirements",
			URL:         "https://asx.com.au/listing-rules",
			TargetRoles: []string{entity.RoleFounder, entity.RoleCompanySecretary, entity.RoleLawyer},
			Tags:        []string{"ASX", "listing rules", "compliance"},
			IsPublic:    true,
		},
		{
			Title: "ASIC Regulatory Guide 228", Type: "document", Category: "Compliance",
			Content:     "ASIC guidance on prospectus disclosure requirements",
			URL:         "https://asic.gov.au/rg228",
			TargetRoles: []string{entity.RoleLawyer, entity.RoleCompanySecretary},
			Tags:        []string{"ASIC", "prospectus", "disclosure"},
			IsPublic:    true,
		},
		{
			Title: "IPO Financial Modeling Template", Type: "template", Category: "Financial",
			Content:     "Excel template for building comprehensive financial models",
			URL:         "/resources/ipo-financial-model.xlsx",
			TargetRoles: []string{entity.RoleCFO, entity.RoleAdviser},
			Tags:        []string{"financial modeling", "Excel", "projections"},
			IsPublic:    false,
		},
		{
			Title: "Due Diligence Checklist", Type: "template", Category: "Legal",
			Content:     "Comprehensive checklist covering all aspects of due diligence",
			URL:         "/resources/dd-checklist.pdf",
			TargetRoles: []string{entity.RoleCompanySecretary, entity.RoleLawyer},
			Tags:        []string{"due diligence", "checklist", "preparation"},
			IsPublic:    false,
		},
		{
			Title: "Board Governance Handbook", Type: "guide", Category: "Governance",
			Content:     "Best practice guide for board governance in listed companies",
			URL:         "/resources/board-governance.pdf",
			TargetRoles: []string{entity.RoleBoardMember},
			Tags:        []string{"governance", "board", "best practice"},
			IsPublic:    false,
		},
	}
	for _, res := range resources {
		res.ID = uuid.New().String()
		if err := r.repos.Resources.Create(res); err != nil {
			return err
		}
	}
	r.log.Info().Int("count", len(resources)).Msg("seeded resources")
	return nil
}

func (r *Runner) seedCompanies() error {
	companies := []*entity.Company{
		{Name: "GreenTech Innovations Pty Ltd", Industry: "Clean Technology", Size: "medium", ListingStage: timeline.StagePreparation},
		{Name: "HealthSoft Solutions Pty Ltd", Industry: "Health Technology", Size: "small", ListingStage: timeline.StagePreparation},
		{Name: "Mining Resources Australia Pty Ltd", Industry: "Mining & Resources", Size: "large", ListingStage: timeline.StagePreparation},
	}
	for _, c := range companies {
		c.ID = uuid.New().String()
		c.CreatedAt = time.Now()
		if err := r.repos.Companies.Create(c); err != nil {
			return err
		}
	}
	r.log.Info().Int("count", len(companies)).Msg("seeded companies")
	return nil
}

func dec(f float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

func intPtr(n int) *int { return &n }

func (r *Runner) seedMarket() error {
	data := []*entity.MarketData{
		{
			Symbol: "BHP", Name: "BHP Group Ltd", Sector: "Materials",
			MarketCap: "$215.4B", SharePrice: dec(42.51), PriceChange: dec(0.34),
			PriceChangePercent: dec(0.81), Volume: "8.2M", PERatio: dec(12.4), DividendYield: dec(5.6),
		},
		{
			Symbol: "CBA", Name: "Commonwealth Bank of Australia", Sector: "Financials",
			MarketCap: "$172.9B", SharePrice: dec(103.27), PriceChange: dec(-0.52),
			PriceChangePercent: dec(-0.50), Volume: "2.1M", PERatio: dec(17.8), DividendYield: dec(4.2),
		},
		{
			Symbol: "CSL", Name: "CSL Ltd", Sector: "Health Care",
			MarketCap: "$138.6B", SharePrice: dec(287.10), PriceChange: dec(1.95),
			PriceChangePercent: dec(0.68), Volume: "0.7M", PERatio: dec(34.2), DividendYield: dec(1.1),
		},
	}
	for _, d := range data {
		d.ID = uuid.New().String()
		d.LastUpdated = time.Now()
		if err := r.repos.MarketData.Create(d); err != nil {
			return err
		}
	}

	inThree := time.Now().AddDate(0, 3, 0)
	inFive := time.Now().AddDate(0, 5, 0)
	entries := []*entity.IpoCalendarEntry{
		{
			CompanyName: "SolarGrid Energy Ltd", Sector: "Utilities",
			ExpectedListingDate: &inThree, OfferPriceRange: "$1.80 - $2.20",
			SharesOffered: "45M", ExpectedMarketCap: "$90M",
			LeadUnderwriter: "Investment Bank Australia", Status: entity.IpoStatusAnnounced,
		},
		{
			CompanyName: "Quantum Analytics Ltd", Sector: "Information Technology",
			ExpectedListingDate: &inFive, OfferPriceRange: "$3.50 - $4.00",
			SharesOffered: "20M", ExpectedMarketCap: "$75M",
			LeadUnderwriter: "ASX Capital Partners", Status: entity.IpoStatusPricing,
		},
	}
	for _, e := range entries {
		e.ID = uuid.New().String()
		e.CreatedAt = time.Now()
		if err := r.repos.IpoCalendar.Create(e); err != nil {
			return err
		}
	}

	sentiment := &entity.MarketSentiment{
		ID:                 uuid.New().String(),
		Date:               time.Now(),
		ASXIndex:           "7,845.20",
		IndexChange:        dec(23.40),
		IndexChangePercent: dec(0.30),
		TradingVolume:      "$6.8B",
		AdvancingStocks:    intPtr(612),
		DecliningStocks:    intPtr(488),
		SentimentScore:     intPtr(64),
		VolatilityIndex:    "11.8",
		Notes:              "Mild risk-on tone ahead of RBA minutes",
	}
	if err := r.repos.Sentiment.Create(sentiment); err != nil {
		return err
	}

	r.log.Info().Msg("seeded market dataset")
	return nil
}
