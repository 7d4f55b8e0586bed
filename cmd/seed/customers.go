package main

import "sentinel-kyc-be/internal/model"

func analystRows() []model.Analyst {
	return []model.Analyst{
		{Name: "Sarah Chen", Role: "Senior Compliance Analyst"},
		{Name: "James Morrison", Role: "Compliance Analyst"},
		{Name: "Priya Patel", Role: "Senior Compliance Analyst"},
		{Name: "Marcus Webb", Role: "Compliance Manager"},
		{Name: "Elena Rossi", Role: "Compliance Analyst"},
		{Name: "David Kim", Role: "AML Specialist"},
		{Name: "Lisa Chang", Role: "KYC Analyst"},
		{Name: "Robert Torres", Role: "Senior AML Analyst"},
	}
}

func customerRows() []model.Customer {
	return []model.Customer{
		// High risk, roughly a quarter of the book
		{CustomerId: "CUS-10001", LegalName: "Meridian Capital Holdings Ltd", BusinessType: "Holding Company", Jurisdiction: "Cayman Islands", RiskTier: "High", KycStatus: "Under Review", OnboardingDate: d(-820), LastReviewDate: dp(-45), NextReviewDue: dp(-10), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("High-risk jurisdiction: Cayman Islands", "Complex multi-layered ownership structure", "PEP association identified — board member linked to foreign government official", "Significant unexplained wealth indicators")},
		{CustomerId: "CUS-10002", LegalName: "Oaktree Trust Services AG", BusinessType: "Trust", Jurisdiction: "Switzerland", RiskTier: "High", KycStatus: "Verified", OnboardingDate: d(-650), LastReviewDate: dp(-30), NextReviewDue: dp(60), AssignedAnalyst: "Priya Patel", RiskFactors: factors("Opaque trust structure with nominee directors", "High-value transactions to non-transparent jurisdictions", "Frequent changes in beneficial ownership")},
		{CustomerId: "CUS-10003", LegalName: "Pacific Rim Trading Co", BusinessType: "Trading Company", Jurisdiction: "Hong Kong", RiskTier: "High", KycStatus: "Verified", OnboardingDate: d(-400), LastReviewDate: dp(-60), NextReviewDue: dp(15), AssignedAnalyst: "David Kim", RiskFactors: factors("Trade-based money laundering indicators", "Discrepancies between invoiced and market values", "Counterparties in sanctioned jurisdictions")},
		{CustomerId: "CUS-10004", LegalName: "Volkov International Group", BusinessType: "Holding Company", Jurisdiction: "BVI", RiskTier: "High", KycStatus: "Under Review", OnboardingDate: d(-300), LastReviewDate: dp(-90), NextReviewDue: dp(-20), AssignedAnalyst: "Marcus Webb", RiskFactors: factors("High-risk jurisdiction: BVI", "Politically exposed person as ultimate beneficial owner", "Source of funds documentation incomplete", "Shell company indicators in ownership chain")},
		{CustomerId: "CUS-10005", LegalName: "Golden Dragon Enterprises Ltd", BusinessType: "Trading Company", Jurisdiction: "Singapore", RiskTier: "High", KycStatus: "Expired", OnboardingDate: d(-900), LastReviewDate: dp(-200), NextReviewDue: dp(-60), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("Overdue KYC renewal — 60 days past due", "Structuring pattern detected in transaction history", "Adverse media mentions regarding sanctions evasion")},
		{CustomerId: "CUS-10006", LegalName: "Caspian Energy Ventures SPV", BusinessType: "SPV", Jurisdiction: "UAE", RiskTier: "High", KycStatus: "Pending", OnboardingDate: d(-150), LastReviewDate: dp(-150), NextReviewDue: dp(30), AssignedAnalyst: "James Morrison", RiskFactors: factors("Single-purpose vehicle with limited transparency", "Energy sector exposure in sanctioned region", "Newly onboarded — limited transaction history")},
		{CustomerId: "CUS-10007", LegalName: "Aegean Maritime Holdings SA", BusinessType: "Holding Company", Jurisdiction: "Luxembourg", RiskTier: "High", KycStatus: "Verified", OnboardingDate: d(-500), LastReviewDate: dp(-20), NextReviewDue: dp(90), AssignedAnalyst: "Elena Rossi", RiskFactors: factors("Maritime sector — vessel flagging in high-risk jurisdictions", "Complex corporate structure across 4 jurisdictions", "Historical SARs filed by previous institution")},
		{CustomerId: "CUS-10008", LegalName: "Sahara Investment Fund III", BusinessType: "Investment Fund", Jurisdiction: "Jersey", RiskTier: "High", KycStatus: "Under Review", OnboardingDate: d(-700), LastReviewDate: dp(-100), NextReviewDue: dp(-5), AssignedAnalyst: "Robert Torres", RiskFactors: factors("Fund investors include high-risk jurisdiction entities", "Concentration risk — single large investor >40% of AUM", "Incomplete investor look-through documentation")},
		{CustomerId: "CUS-10009", LegalName: "Nordic Shield Private Equity", BusinessType: "Private Equity", Jurisdiction: "UK", RiskTier: "High", KycStatus: "Verified", OnboardingDate: d(-450), LastReviewDate: dp(-15), NextReviewDue: dp(120), AssignedAnalyst: "Priya Patel", RiskFactors: factors("Portfolio companies in high-risk sectors", "Leveraged buyout structures with offshore elements", "PEP among limited partners")},
		{CustomerId: "CUS-10010", LegalName: "Falcone Family Office", BusinessType: "Family Office", Jurisdiction: "Delaware", RiskTier: "High", KycStatus: "Verified", OnboardingDate: d(-600), LastReviewDate: dp(-25), NextReviewDue: dp(45), AssignedAnalyst: "Lisa Chang", RiskFactors: factors("High net worth individual with complex asset structures", "Dual citizenship — US/Italian", "Frequent large wire transfers to Mediterranean region")},

		// Medium risk
		{CustomerId: "CUS-10011", LegalName: "Sovereign Wealth Partners LLC", BusinessType: "Investment Fund", Jurisdiction: "Delaware", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-550), LastReviewDate: dp(-40), NextReviewDue: dp(50), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("Multiple investment vehicles under management", "Some investors from elevated-risk jurisdictions")},
		{CustomerId: "CUS-10012", LegalName: "Atlas Maritime Holdings", BusinessType: "Holding Company", Jurisdiction: "UK", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-480), LastReviewDate: dp(-35), NextReviewDue: dp(75), AssignedAnalyst: "James Morrison", RiskFactors: factors("Shipping operations in multiple jurisdictions", "Moderate transaction volumes")},
		{CustomerId: "CUS-10013", LegalName: "Pinnacle Asset Management Pte", BusinessType: "Investment Fund", Jurisdiction: "Singapore", RiskTier: "Medium", KycStatus: "Pending", OnboardingDate: d(-100), LastReviewDate: dp(-100), NextReviewDue: dp(80), AssignedAnalyst: "Priya Patel", RiskFactors: factors("New relationship — undergoing enhanced onboarding", "Fund domiciled in Singapore with regional investors")},
		{CustomerId: "CUS-10014", LegalName: "Helvetia Fiduciary Services", BusinessType: "Trust", Jurisdiction: "Switzerland", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-700), LastReviewDate: dp(-50), NextReviewDue: dp(40), AssignedAnalyst: "Elena Rossi", RiskFactors: factors("Swiss trust with European beneficiaries", "Moderate complexity in ownership structure")},
		{CustomerId: "CUS-10015", LegalName: "Crescent Bay Insurance Ltd", BusinessType: "Insurance", Jurisdiction: "Cayman Islands", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-380), LastReviewDate: dp(-20), NextReviewDue: dp(100), AssignedAnalyst: "David Kim", RiskFactors: factors("Captive insurance structure", "Cayman Islands jurisdiction — mitigated by regulatory oversight")},
		{CustomerId: "CUS-10016", LegalName: "Tandem Capital Advisors", BusinessType: "Private Equity", Jurisdiction: "UK", RiskTier: "Medium", KycStatus: "Under Review", OnboardingDate: d(-250), LastReviewDate: dp(-80), NextReviewDue: dp(10), AssignedAnalyst: "Marcus Webb", RiskFactors: factors("PE fund with portfolio companies in emerging markets", "Periodic review triggered by regulatory change")},
		{CustomerId: "CUS-10017", LegalName: "Sterling Trade Finance Corp", BusinessType: "Trading Company", Jurisdiction: "Hong Kong", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-600), LastReviewDate: dp(-30), NextReviewDue: dp(85), AssignedAnalyst: "Lisa Chang", RiskFactors: factors("Trade finance operations in Asia-Pacific", "Moderate counterparty risk")},
		{CustomerId: "CUS-10018", LegalName: "Bluestone Property Holdings", BusinessType: "Holding Company", Jurisdiction: "Luxembourg", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-420), LastReviewDate: dp(-55), NextReviewDue: dp(35), AssignedAnalyst: "Robert Torres", RiskFactors: factors("Real estate holding structures across EU", "Some properties in emerging markets")},
		{CustomerId: "CUS-10019", LegalName: "Coral Reef Ventures SPV", BusinessType: "SPV", Jurisdiction: "BVI", RiskTier: "Medium", KycStatus: "Pending", OnboardingDate: d(-60), LastReviewDate: dp(-60), NextReviewDue: dp(120), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("BVI-domiciled SPV — enhanced monitoring applied", "Resort development financing")},
		{CustomerId: "CUS-10020", LegalName: "Zenith Global Consulting AG", BusinessType: "Holding Company", Jurisdiction: "Switzerland", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-350), LastReviewDate: dp(-45), NextReviewDue: dp(65), AssignedAnalyst: "James Morrison", RiskFactors: factors("Consulting fees from multiple jurisdictions", "Moderate transaction complexity")},
		{CustomerId: "CUS-10021", LegalName: "Ironclad Security Services", BusinessType: "Trading Company", Jurisdiction: "UAE", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-280), LastReviewDate: dp(-40), NextReviewDue: dp(55), AssignedAnalyst: "Priya Patel", RiskFactors: factors("Security sector — dual-use goods risk", "UAE-based with government contracts")},
		{CustomerId: "CUS-10022", LegalName: "Maple Leaf Holdings Inc", BusinessType: "Holding Company", Jurisdiction: "Jersey", RiskTier: "Medium", KycStatus: "Expired", OnboardingDate: d(-800), LastReviewDate: dp(-180), NextReviewDue: dp(-30), AssignedAnalyst: "David Kim", RiskFactors: factors("KYC renewal overdue", "Canadian beneficial owners with Jersey holding structure")},
		{CustomerId: "CUS-10023", LegalName: "Jade Emperor Investment Trust", BusinessType: "Trust", Jurisdiction: "Hong Kong", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-500), LastReviewDate: dp(-25), NextReviewDue: dp(70), AssignedAnalyst: "Elena Rossi", RiskFactors: factors("Family trust with cross-border beneficiaries", "Moderate AUM with quarterly distributions")},
		{CustomerId: "CUS-10024", LegalName: "Riviera Luxury Group SA", BusinessType: "Holding Company", Jurisdiction: "Luxembourg", RiskTier: "Medium", KycStatus: "Verified", OnboardingDate: d(-450), LastReviewDate: dp(-35), NextReviewDue: dp(90), AssignedAnalyst: "Marcus Webb", RiskFactors: factors("Luxury goods sector — higher cash transaction risk", "European operations with some Middle Eastern clients")},

		// Low risk
		{CustomerId: "CUS-10025", LegalName: "Northern Star Pension Fund", BusinessType: "Investment Fund", Jurisdiction: "UK", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-900), LastReviewDate: dp(-30), NextReviewDue: dp(150), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("Regulated UK pension fund", "Low-risk investor base")},
		{CustomerId: "CUS-10026", LegalName: "Clearwater Technologies Inc", BusinessType: "Trading Company", Jurisdiction: "Delaware", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-700), LastReviewDate: dp(-20), NextReviewDue: dp(180), AssignedAnalyst: "Lisa Chang", RiskFactors: factors("US-domiciled technology company", "Transparent ownership structure")},
		{CustomerId: "CUS-10027", LegalName: "Canterbury Life Assurance", BusinessType: "Insurance", Jurisdiction: "UK", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-600), LastReviewDate: dp(-15), NextReviewDue: dp(200), AssignedAnalyst: "James Morrison", RiskFactors: factors("FCA-regulated insurance company", "Domestic operations only")},
		{CustomerId: "CUS-10028", LegalName: "Alpine Wealth Management GmbH", BusinessType: "Family Office", Jurisdiction: "Switzerland", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-550), LastReviewDate: dp(-25), NextReviewDue: dp(130), AssignedAnalyst: "Priya Patel", RiskFactors: factors("FINMA-regulated entity", "European HNW clients with verified source of wealth")},
		{CustomerId: "CUS-10029", LegalName: "Sunrise Healthcare Holdings", BusinessType: "Holding Company", Jurisdiction: "Singapore", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-480), LastReviewDate: dp(-40), NextReviewDue: dp(110), AssignedAnalyst: "David Kim", RiskFactors: factors("Healthcare sector — low inherent risk", "MAS-regulated subsidiary")},
		{CustomerId: "CUS-10030", LegalName: "Thames Valley Property Trust", BusinessType: "Trust", Jurisdiction: "UK", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-400), LastReviewDate: dp(-30), NextReviewDue: dp(160), AssignedAnalyst: "Elena Rossi", RiskFactors: factors("UK commercial property trust", "Regulated and transparent structure")},
		{CustomerId: "CUS-10031", LegalName: "Pacific Coast Ventures LLC", BusinessType: "Private Equity", Jurisdiction: "Delaware", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-350), LastReviewDate: dp(-20), NextReviewDue: dp(175), AssignedAnalyst: "Robert Torres", RiskFactors: factors("US-based PE with domestic portfolio", "SEC-registered investment adviser")},
		{CustomerId: "CUS-10032", LegalName: "Borealis Infrastructure Fund", BusinessType: "Investment Fund", Jurisdiction: "Luxembourg", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-500), LastReviewDate: dp(-35), NextReviewDue: dp(140), AssignedAnalyst: "Marcus Webb", RiskFactors: factors("CSSF-regulated infrastructure fund", "Institutional investor base")},
		{CustomerId: "CUS-10033", LegalName: "Eastgate Trading Partners", BusinessType: "Trading Company", Jurisdiction: "Singapore", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-300), LastReviewDate: dp(-15), NextReviewDue: dp(190), AssignedAnalyst: "Sarah Chen", RiskFactors: factors("Commodities trading — regulated exchange only", "Transparent beneficial ownership")},
		{CustomerId: "CUS-10034", LegalName: "Redwood Financial Services", BusinessType: "Insurance", Jurisdiction: "Delaware", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-450), LastReviewDate: dp(-25), NextReviewDue: dp(155), AssignedAnalyst: "Lisa Chang", RiskFactors: factors("State-regulated insurance provider", "Domestic client base")},
		{CustomerId: "CUS-10035", LegalName: "Harbour Point Capital", BusinessType: "Investment Fund", Jurisdiction: "Jersey", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-380), LastReviewDate: dp(-20), NextReviewDue: dp(165), AssignedAnalyst: "James Morrison", RiskFactors: factors("JFSC-regulated fund", "European institutional investors")},
		{CustomerId: "CUS-10036", LegalName: "Whitmore & Associates Trust", BusinessType: "Trust", Jurisdiction: "UK", RiskTier: "Low", KycStatus: "Pending", OnboardingDate: d(-40), LastReviewDate: dp(-40), NextReviewDue: dp(140), AssignedAnalyst: "Priya Patel", RiskFactors: factors("New onboarding — documentation in review", "UK-based family trust")},
		{CustomerId: "CUS-10037", LegalName: "Greenfield Agri Holdings", BusinessType: "Holding Company", Jurisdiction: "Singapore", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-600), LastReviewDate: dp(-30), NextReviewDue: dp(120), AssignedAnalyst: "David Kim", RiskFactors: factors("Agricultural holdings — low inherent risk", "Government-linked investment entity")},
		{CustomerId: "CUS-10038", LegalName: "Summit Peak Advisors", BusinessType: "Family Office", Jurisdiction: "Switzerland", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-500), LastReviewDate: dp(-22), NextReviewDue: dp(145), AssignedAnalyst: "Elena Rossi", RiskFactors: factors("FINMA-regulated family office", "Verified source of wealth — industrial enterprise")},
		{CustomerId: "CUS-10039", LegalName: "Keystone Infrastructure Corp", BusinessType: "Holding Company", Jurisdiction: "Delaware", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-420), LastReviewDate: dp(-18), NextReviewDue: dp(170), AssignedAnalyst: "Robert Torres", RiskFactors: factors("US infrastructure holding company", "Government contract visibility")},
		{CustomerId: "CUS-10040", LegalName: "Continental Trade Solutions", BusinessType: "Trading Company", Jurisdiction: "UK", RiskTier: "Low", KycStatus: "Verified", OnboardingDate: d(-350), LastReviewDate: dp(-28), NextReviewDue: dp(135), AssignedAnalyst: "Marcus Webb", RiskFactors: factors("UK-regulated trade finance", "HMRC-compliant operations")},
	}
}
