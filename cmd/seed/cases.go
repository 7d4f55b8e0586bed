package main

import (
	"sentinel-kyc-be/internal/model"

	"github.com/google/uuid"
)

func caseRows(cust map[string]uuid.UUID) []model.Case {
	return []model.Case{
		// Open
		{CaseId: "CAS-00001", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10001"], Priority: "Critical", Status: "Open", OpenedDate: d(-10), DueDate: dp(5), AssignedAnalyst: "Sarah Chen"},
		{CaseId: "CAS-00002", CaseType: "Alert Investigation", CustomerId: cust["CUS-10004"], Priority: "Critical", Status: "Open", OpenedDate: d(-5), DueDate: dp(10), AssignedAnalyst: "Marcus Webb"},
		{CaseId: "CAS-00003", CaseType: "Periodic Review", CustomerId: cust["CUS-10008"], Priority: "High", Status: "Open", OpenedDate: d(-15), DueDate: dp(-3), AssignedAnalyst: "Robert Torres"},
		{CaseId: "CAS-00004", CaseType: "Onboarding", CustomerId: cust["CUS-10019"], Priority: "Medium", Status: "Open", OpenedDate: d(-20), DueDate: dp(15), AssignedAnalyst: "Sarah Chen"},
		{CaseId: "CAS-00005", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10006"], Priority: "High", Status: "Open", OpenedDate: d(-8), DueDate: dp(22), AssignedAnalyst: "James Morrison"},
		{CaseId: "CAS-00006", CaseType: "Alert Investigation", CustomerId: cust["CUS-10005"], Priority: "Critical", Status: "Open", OpenedDate: d(-3), DueDate: dp(12), AssignedAnalyst: "David Kim"},
		{CaseId: "CAS-00007", CaseType: "Periodic Review", CustomerId: cust["CUS-10022"], Priority: "Medium", Status: "Open", OpenedDate: d(-25), DueDate: dp(-8), AssignedAnalyst: "David Kim"},
		{CaseId: "CAS-00008", CaseType: "Onboarding", CustomerId: cust["CUS-10036"], Priority: "Low", Status: "Open", OpenedDate: d(-12), DueDate: dp(30), AssignedAnalyst: "Priya Patel"},

		// In Progress
		{CaseId: "CAS-00009", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10003"], Priority: "High", Status: "In Progress", OpenedDate: d(-30), DueDate: dp(5), AssignedAnalyst: "David Kim"},
		{CaseId: "CAS-00010", CaseType: "Alert Investigation", CustomerId: cust["CUS-10009"], Priority: "High", Status: "In Progress", OpenedDate: d(-25), DueDate: dp(-5), AssignedAnalyst: "Priya Patel"},
		{CaseId: "CAS-00011", CaseType: "Periodic Review", CustomerId: cust["CUS-10002"], Priority: "Medium", Status: "In Progress", OpenedDate: d(-35), DueDate: dp(10), AssignedAnalyst: "Priya Patel"},
		{CaseId: "CAS-00012", CaseType: "Onboarding", CustomerId: cust["CUS-10013"], Priority: "Medium", Status: "In Progress", OpenedDate: d(-40), DueDate: dp(20), AssignedAnalyst: "Priya Patel"},
		{CaseId: "CAS-00013", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10007"], Priority: "High", Status: "In Progress", OpenedDate: d(-20), DueDate: dp(15), AssignedAnalyst: "Elena Rossi"},
		{CaseId: "CAS-00014", CaseType: "Alert Investigation", CustomerId: cust["CUS-10010"], Priority: "Medium", Status: "In Progress", OpenedDate: d(-28), DueDate: dp(-2), AssignedAnalyst: "Lisa Chang"},
		{CaseId: "CAS-00015", CaseType: "Periodic Review", CustomerId: cust["CUS-10016"], Priority: "Medium", Status: "In Progress", OpenedDate: d(-22), DueDate: dp(8), AssignedAnalyst: "Marcus Webb"},
		{CaseId: "CAS-00016", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10021"], Priority: "Medium", Status: "In Progress", OpenedDate: d(-18), DueDate: dp(12), AssignedAnalyst: "Priya Patel"},

		// Escalated
		{CaseId: "CAS-00017", CaseType: "Alert Investigation", CustomerId: cust["CUS-10001"], Priority: "Critical", Status: "Escalated", OpenedDate: d(-45), DueDate: dp(-15), AssignedAnalyst: "Sarah Chen"},
		{CaseId: "CAS-00018", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10004"], Priority: "Critical", Status: "Escalated", OpenedDate: d(-50), DueDate: dp(-10), AssignedAnalyst: "Marcus Webb"},
		{CaseId: "CAS-00019", CaseType: "Alert Investigation", CustomerId: cust["CUS-10005"], Priority: "High", Status: "Escalated", OpenedDate: d(-40), DueDate: dp(-7), AssignedAnalyst: "David Kim"},
		{CaseId: "CAS-00020", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10008"], Priority: "High", Status: "Escalated", OpenedDate: d(-38), DueDate: dp(-12), AssignedAnalyst: "Robert Torres"},

		// Closed
		{CaseId: "CAS-00021", CaseType: "Periodic Review", CustomerId: cust["CUS-10025"], Priority: "Low", Status: "Closed", OpenedDate: d(-90), DueDate: dp(-60), AssignedAnalyst: "Sarah Chen"},
		{CaseId: "CAS-00022", CaseType: "Onboarding", CustomerId: cust["CUS-10026"], Priority: "Low", Status: "Closed", OpenedDate: d(-100), DueDate: dp(-70), AssignedAnalyst: "Lisa Chang"},
		{CaseId: "CAS-00023", CaseType: "Alert Investigation", CustomerId: cust["CUS-10027"], Priority: "Medium", Status: "Closed", OpenedDate: d(-85), DueDate: dp(-55), AssignedAnalyst: "James Morrison"},
		{CaseId: "CAS-00024", CaseType: "Periodic Review", CustomerId: cust["CUS-10028"], Priority: "Low", Status: "Closed", OpenedDate: d(-80), DueDate: dp(-50), AssignedAnalyst: "Priya Patel"},
		{CaseId: "CAS-00025", CaseType: "Enhanced Due Diligence", CustomerId: cust["CUS-10029"], Priority: "Medium", Status: "Closed", OpenedDate: d(-75), DueDate: dp(-45), AssignedAnalyst: "David Kim"},
		{CaseId: "CAS-00026", CaseType: "Onboarding", CustomerId: cust["CUS-10030"], Priority: "Low", Status: "Closed", OpenedDate: d(-95), DueDate: dp(-65), AssignedAnalyst: "Elena Rossi"},
		{CaseId: "CAS-00027", CaseType: "Periodic Review", CustomerId: cust["CUS-10031"], Priority: "Low", Status: "Closed", OpenedDate: d(-88), DueDate: dp(-58), AssignedAnalyst: "Robert Torres"},
		{CaseId: "CAS-00028", CaseType: "Alert Investigation", CustomerId: cust["CUS-10032"], Priority: "Medium", Status: "Closed", OpenedDate: d(-70), DueDate: dp(-40), AssignedAnalyst: "Marcus Webb"},
		{CaseId: "CAS-00029", CaseType: "Periodic Review", CustomerId: cust["CUS-10033"], Priority: "Low", Status: "Closed", OpenedDate: d(-82), DueDate: dp(-52), AssignedAnalyst: "Sarah Chen"},
		{CaseId: "CAS-00030", CaseType: "Onboarding", CustomerId: cust["CUS-10034"], Priority: "Low", Status: "Closed", OpenedDate: d(-78), DueDate: dp(-48), AssignedAnalyst: "Lisa Chang"},
	}
}

func caseNoteRows(cases map[string]uuid.UUID) []model.CaseNote {
	return []model.CaseNote{
		{CaseId: cases["CAS-00001"], Content: "Initiated enhanced due diligence review for Meridian Capital Holdings. Requesting updated beneficial ownership documentation and source of wealth verification.", AnalystName: "Sarah Chen", CreatedAt: dt(-10, 9, 15)},
		{CaseId: cases["CAS-00001"], Content: "Received partial documentation from client. Ownership chain shows 3 layers of holding companies. Need to trace through to ultimate beneficial owners.", AnalystName: "Sarah Chen", CreatedAt: dt(-7, 14, 30)},
		{CaseId: cases["CAS-00001"], Content: "Identified PEP connection at second layer of ownership. Escalation may be required if additional risk factors surface during UBO verification.", AnalystName: "Sarah Chen", CreatedAt: dt(-3, 11, 0)},

		{CaseId: cases["CAS-00002"], Content: "Opened investigation into potential sanctions match for Volkov International Group. Gathering counterparty details and wire transfer documentation.", AnalystName: "Marcus Webb", CreatedAt: dt(-5, 10, 0)},
		{CaseId: cases["CAS-00002"], Content: "OFAC screening confirms 87% name match. Requesting additional identifying information from client to perform definitive match/no-match determination.", AnalystName: "Marcus Webb", CreatedAt: dt(-3, 15, 45)},

		{CaseId: cases["CAS-00003"], Content: "Periodic review initiated for Sahara Investment Fund III. Reviewing current investor list and look-through documentation.", AnalystName: "Robert Torres", CreatedAt: dt(-15, 9, 30)},
		{CaseId: cases["CAS-00003"], Content: "Identified gaps in investor documentation — 3 investors missing current passports. Sent request to fund administrator.", AnalystName: "Robert Torres", CreatedAt: dt(-10, 11, 15)},
		{CaseId: cases["CAS-00003"], Content: "Review is overdue. Fund administrator citing operational delays. Escalation recommended if documentation not received by end of week.", AnalystName: "Robert Torres", CreatedAt: dt(-2, 16, 0)},

		{CaseId: cases["CAS-00004"], Content: "Onboarding case opened for Coral Reef Ventures SPV. BVI-domiciled entity requires enhanced onboarding procedures per policy.", AnalystName: "Sarah Chen", CreatedAt: dt(-20, 10, 0)},
		{CaseId: cases["CAS-00004"], Content: "Received Certificate of Incorporation and Director Register. Pending verification of UBO identity documents.", AnalystName: "Sarah Chen", CreatedAt: dt(-12, 14, 0)},

		{CaseId: cases["CAS-00005"], Content: "EDD triggered by energy sector exposure in sanctioned region. Reviewing supply chain documentation for Caspian Energy Ventures.", AnalystName: "James Morrison", CreatedAt: dt(-8, 10, 30)},
		{CaseId: cases["CAS-00005"], Content: "Initial review shows operations are limited to non-sanctioned areas within the region. Awaiting confirmation from independent source.", AnalystName: "James Morrison", CreatedAt: dt(-4, 13, 45)},
		{CaseId: cases["CAS-00005"], Content: "Engaged external compliance consultant to verify geographic scope of operations. Report expected within 10 business days.", AnalystName: "James Morrison", CreatedAt: dt(-1, 9, 0)},

		{CaseId: cases["CAS-00006"], Content: "Investigation opened following detection of structuring pattern in Golden Dragon Enterprises account. Reviewing 3 months of transaction history.", AnalystName: "David Kim", CreatedAt: dt(-3, 11, 0)},
		{CaseId: cases["CAS-00006"], Content: "Transaction analysis shows 12 deposits between $8,500-$9,800 over 3 weeks. Pattern is consistent with structuring. Preparing SAR filing documentation.", AnalystName: "David Kim", CreatedAt: dt(-1, 15, 30)},

		{CaseId: cases["CAS-00007"], Content: "Periodic review for Maple Leaf Holdings overdue by 30 days. KYC documentation expired. Multiple outreach attempts to client.", AnalystName: "David Kim", CreatedAt: dt(-25, 9, 0)},
		{CaseId: cases["CAS-00007"], Content: "Client responded — claims administrative delay due to change of corporate secretary. New documentation promised within 2 weeks.", AnalystName: "David Kim", CreatedAt: dt(-15, 10, 30)},
		{CaseId: cases["CAS-00007"], Content: "Still awaiting documentation. Review remains overdue. Considering relationship restriction if documents not received by next week.", AnalystName: "David Kim", CreatedAt: dt(-5, 14, 0)},

		{CaseId: cases["CAS-00008"], Content: "Standard onboarding initiated for Whitmore & Associates Trust. UK-based family trust — standard risk profile.", AnalystName: "Priya Patel", CreatedAt: dt(-12, 10, 0)},
		{CaseId: cases["CAS-00008"], Content: "Received trust deed and beneficiary information. Performing standard screening checks.", AnalystName: "Priya Patel", CreatedAt: dt(-8, 11, 30)},

		{CaseId: cases["CAS-00009"], Content: "EDD review in progress for Pacific Rim Trading. Focus on trade-based money laundering indicators. Reviewing trade documentation for last 6 months.", AnalystName: "David Kim", CreatedAt: dt(-30, 10, 0)},
		{CaseId: cases["CAS-00009"], Content: "Found discrepancies between invoiced values and market prices for 5 shipments. Requesting explanation from client and independent price verification.", AnalystName: "David Kim", CreatedAt: dt(-20, 14, 30)},
		{CaseId: cases["CAS-00009"], Content: "Client provided explanations for 3 of 5 discrepancies citing market volatility. Two remaining require further investigation with counterparty banks.", AnalystName: "David Kim", CreatedAt: dt(-10, 11, 0)},

		{CaseId: cases["CAS-00010"], Content: "Investigation into PEP-linked PE fund. Reviewing limited partner documentation and source of funds for PEP investor.", AnalystName: "Priya Patel", CreatedAt: dt(-25, 9, 30)},
		{CaseId: cases["CAS-00010"], Content: "PEP's investment source verified as legitimate — proceeds from sale of family business. Documented in file. Case nearing resolution.", AnalystName: "Priya Patel", CreatedAt: dt(-15, 13, 0)},

		{CaseId: cases["CAS-00011"], Content: "Annual periodic review for Oaktree Trust Services. Reviewing trust structure changes and beneficiary updates over the past year.", AnalystName: "Priya Patel", CreatedAt: dt(-35, 10, 0)},
		{CaseId: cases["CAS-00011"], Content: "Trust structure unchanged. Two new beneficiaries added — both screened clear. Updating KYC file with current information.", AnalystName: "Priya Patel", CreatedAt: dt(-20, 11, 45)},

		{CaseId: cases["CAS-00012"], Content: "Onboarding for Pinnacle Asset Management. Singapore-domiciled fund with regional investors. Enhanced procedures applied.", AnalystName: "Priya Patel", CreatedAt: dt(-40, 10, 0)},
		{CaseId: cases["CAS-00012"], Content: "Investor look-through completed for top 10 investors. All cleared screening. Remaining investors below materiality threshold.", AnalystName: "Priya Patel", CreatedAt: dt(-25, 14, 0)},
		{CaseId: cases["CAS-00012"], Content: "MAS regulatory check completed. Fund is properly licensed. Onboarding documentation 90% complete — awaiting final board resolution.", AnalystName: "Priya Patel", CreatedAt: dt(-10, 9, 30)},

		{CaseId: cases["CAS-00013"], Content: "EDD review for Aegean Maritime. Focus on vessel operations in potentially sanctioned waters.", AnalystName: "Elena Rossi", CreatedAt: dt(-20, 10, 0)},
		{CaseId: cases["CAS-00013"], Content: "Vessel tracking data reviewed for past 12 months. Port call in sanctioned country identified but client claims it was weather-related emergency stop.", AnalystName: "Elena Rossi", CreatedAt: dt(-12, 15, 0)},

		{CaseId: cases["CAS-00014"], Content: "Investigation into structuring alerts for Falcone Family Office. Analyzing cash deposit patterns across multiple accounts.", AnalystName: "Lisa Chang", CreatedAt: dt(-28, 9, 0)},
		{CaseId: cases["CAS-00014"], Content: "Cash deposit analysis complete. 8 deposits below CTR threshold within 30 days. Client claims deposits are from property rental income collected in cash.", AnalystName: "Lisa Chang", CreatedAt: dt(-18, 14, 30)},
		{CaseId: cases["CAS-00014"], Content: "Reviewing rental agreements and property portfolio to verify explanation. Partial documentation received. Case overdue — expediting.", AnalystName: "Lisa Chang", CreatedAt: dt(-5, 10, 15)},

		{CaseId: cases["CAS-00015"], Content: "Periodic review for Tandem Capital triggered by regulatory change affecting PE fund disclosures.", AnalystName: "Marcus Webb", CreatedAt: dt(-22, 10, 0)},
		{CaseId: cases["CAS-00015"], Content: "Reviewed updated regulatory requirements. Fund is broadly compliant but needs to update investor disclosures for new regime.", AnalystName: "Marcus Webb", CreatedAt: dt(-12, 11, 30)},

		{CaseId: cases["CAS-00016"], Content: "EDD initiated for Ironclad Security Services due to government contract exposure and dual-use goods risk.", AnalystName: "Priya Patel", CreatedAt: dt(-18, 10, 0)},
		{CaseId: cases["CAS-00016"], Content: "Export license documentation reviewed. All licenses current and valid. No restricted end-users identified in contract registry.", AnalystName: "Priya Patel", CreatedAt: dt(-8, 13, 0)},

		{CaseId: cases["CAS-00017"], Content: "Alert investigation escalated to compliance committee. Multiple concurrent alerts for Meridian Capital require senior oversight.", AnalystName: "Sarah Chen", CreatedAt: dt(-45, 10, 0)},
		{CaseId: cases["CAS-00017"], Content: "Committee review scheduled for next board meeting. Interim transaction monitoring enhanced. All wire transfers over $50K require manual approval.", AnalystName: "Marcus Webb", CreatedAt: dt(-30, 14, 0)},
		{CaseId: cases["CAS-00017"], Content: "Board presentation prepared summarizing risk exposure. Recommendation to consider relationship exit if remediation not achieved within 60 days.", AnalystName: "Sarah Chen", CreatedAt: dt(-15, 11, 30)},

		{CaseId: cases["CAS-00018"], Content: "EDD escalated for Volkov International. Sanctions concern requires legal department involvement.", AnalystName: "Marcus Webb", CreatedAt: dt(-50, 10, 0)},
		{CaseId: cases["CAS-00018"], Content: "Legal counsel engaged. Formal legal opinion requested on sanctions exposure. Client placed on enhanced monitoring pending resolution.", AnalystName: "Marcus Webb", CreatedAt: dt(-35, 15, 0)},

		{CaseId: cases["CAS-00019"], Content: "Investigation escalated after discovery of multiple expired KYC documents and structuring alerts for Golden Dragon.", AnalystName: "David Kim", CreatedAt: dt(-40, 10, 0)},
		{CaseId: cases["CAS-00019"], Content: "SAR filed with regulatory authority. Account activity restrictions implemented pending full investigation completion.", AnalystName: "David Kim", CreatedAt: dt(-25, 16, 0)},
		{CaseId: cases["CAS-00019"], Content: "Regulatory authority acknowledged SAR receipt. No additional requests at this time. Continuing internal investigation.", AnalystName: "David Kim", CreatedAt: dt(-10, 10, 30)},

		{CaseId: cases["CAS-00020"], Content: "EDD escalated for Sahara Investment Fund. Incomplete investor look-through and concentration risk concerns.", AnalystName: "Robert Torres", CreatedAt: dt(-38, 10, 0)},
		{CaseId: cases["CAS-00020"], Content: "Fund administrator provided updated investor list. Single investor holding >40% identified as sovereign wealth entity. Enhanced verification in progress.", AnalystName: "Robert Torres", CreatedAt: dt(-20, 13, 45)},

		{CaseId: cases["CAS-00021"], Content: "Annual periodic review for Northern Star Pension Fund completed. Low-risk profile confirmed. All documentation current.", AnalystName: "Sarah Chen", CreatedAt: dt(-85, 10, 0)},
		{CaseId: cases["CAS-00021"], Content: "Review closed. Next review scheduled per standard annual cycle. No risk tier change recommended.", AnalystName: "Sarah Chen", CreatedAt: dt(-62, 14, 0)},

		{CaseId: cases["CAS-00022"], Content: "Onboarding for Clearwater Technologies completed. All documentation received and verified.", AnalystName: "Lisa Chang", CreatedAt: dt(-95, 10, 0)},
		{CaseId: cases["CAS-00022"], Content: "Customer fully onboarded. Low-risk classification confirmed. Standard monitoring applied.", AnalystName: "Lisa Chang", CreatedAt: dt(-72, 11, 0)},

		{CaseId: cases["CAS-00023"], Content: "Alert investigation for Canterbury Life Assurance. False positive sanctions match resolved.", AnalystName: "James Morrison", CreatedAt: dt(-80, 10, 0)},
		{CaseId: cases["CAS-00023"], Content: "Investigation closed. No further action required. Screening parameters adjusted to reduce false positives for this entity.", AnalystName: "James Morrison", CreatedAt: dt(-57, 14, 30)},

		{CaseId: cases["CAS-00024"], Content: "Periodic review for Alpine Wealth Management completed. FINMA-regulated entity in good standing.", AnalystName: "Priya Patel", CreatedAt: dt(-75, 10, 0)},
		{CaseId: cases["CAS-00024"], Content: "Review closed. All KYC documentation current. Source of wealth verified. No concerns identified.", AnalystName: "Priya Patel", CreatedAt: dt(-52, 13, 0)},

		{CaseId: cases["CAS-00025"], Content: "EDD for Sunrise Healthcare completed. MAS regulatory status confirmed. Operations verified as low-risk.", AnalystName: "David Kim", CreatedAt: dt(-70, 10, 0)},
		{CaseId: cases["CAS-00025"], Content: "Case closed. Risk assessment confirms Low tier appropriate. Next EDD cycle in 24 months.", AnalystName: "David Kim", CreatedAt: dt(-47, 11, 30)},

		{CaseId: cases["CAS-00026"], Content: "Onboarding for Thames Valley Property Trust completed. UK-regulated trust with transparent structure.", AnalystName: "Elena Rossi", CreatedAt: dt(-90, 10, 0)},
		{CaseId: cases["CAS-00026"], Content: "Onboarding closed. Standard monitoring and annual review cycle applied.", AnalystName: "Elena Rossi", CreatedAt: dt(-67, 14, 0)},

		{CaseId: cases["CAS-00027"], Content: "Periodic review for Pacific Coast Ventures completed. SEC registration confirmed. Portfolio companies screened clear.", AnalystName: "Robert Torres", CreatedAt: dt(-83, 10, 0)},
		{CaseId: cases["CAS-00027"], Content: "Review closed. Low-risk status maintained. Comprehensive documentation on file.", AnalystName: "Robert Torres", CreatedAt: dt(-60, 11, 0)},

		{CaseId: cases["CAS-00028"], Content: "Alert investigation for Borealis Infrastructure Fund. Volume alert during capital deployment resolved as expected activity.", AnalystName: "Marcus Webb", CreatedAt: dt(-65, 10, 0)},
		{CaseId: cases["CAS-00028"], Content: "Investigation closed. Capital call and deployment documented with supporting legal agreements. No anomalies.", AnalystName: "Marcus Webb", CreatedAt: dt(-42, 15, 0)},

		{CaseId: cases["CAS-00029"], Content: "Periodic review for Eastgate Trading Partners. Clean record maintained. MAS compliance confirmed.", AnalystName: "Sarah Chen", CreatedAt: dt(-77, 10, 0)},
		{CaseId: cases["CAS-00029"], Content: "Review closed. Trading activity within expected parameters. Documentation current.", AnalystName: "Sarah Chen", CreatedAt: dt(-54, 12, 0)},

		{CaseId: cases["CAS-00030"], Content: "Onboarding for Redwood Financial Services completed. State-regulated insurer with domestic operations.", AnalystName: "Lisa Chang", CreatedAt: dt(-73, 10, 0)},
		{CaseId: cases["CAS-00030"], Content: "Onboarding closed. Standard risk profile. All regulatory documentation verified.", AnalystName: "Lisa Chang", CreatedAt: dt(-50, 13, 30)},
	}
}
