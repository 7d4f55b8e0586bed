package main

import "sentinel-kyc-be/internal/model"

func activityRows() []model.ActivityLog {
	return []model.ActivityLog{
		{Action: "Alert ALT-00031 resolved — pension fund quarterly rebalancing confirmed as legitimate activity", AnalystName: "Sarah Chen", CreatedAt: dt(-1, 16, 30)},
		{Action: "Customer CUS-10001 risk tier review initiated — multiple concurrent alerts flagged", AnalystName: "Sarah Chen", CreatedAt: dt(-1, 14, 15)},
		{Action: "Document DOC-00034 verified for Crescent Bay Insurance Ltd — passport renewal confirmed", AnalystName: "David Kim", CreatedAt: dt(-1, 11, 0)},
		{Action: "Case CAS-00009 status updated to In Progress — EDD review underway for Pacific Rim Trading", AnalystName: "David Kim", CreatedAt: dt(-2, 15, 45)},
		{Action: "Alert ALT-00004 created — structuring pattern detected for Golden Dragon Enterprises", AnalystName: "David Kim", CreatedAt: dt(-2, 10, 30)},
		{Action: "Customer CUS-10022 flagged for overdue KYC renewal — Maple Leaf Holdings", AnalystName: "David Kim", CreatedAt: dt(-3, 9, 0)},
		{Action: "Alert ALT-00016 created — sanctions screening flagged trade counterparty for Pacific Rim Trading", AnalystName: "David Kim", CreatedAt: dt(-3, 14, 30)},
		{Action: "Case CAS-00017 escalated to compliance committee — Meridian Capital Holdings", AnalystName: "Sarah Chen", CreatedAt: dt(-4, 11, 15)},
		{Action: "Document DOC-00040 verified for Zenith Global Consulting — Certificate of Good Standing confirmed", AnalystName: "James Morrison", CreatedAt: dt(-4, 16, 0)},
		{Action: "Alert ALT-00032 resolved — false positive sanctions match for Atlas Maritime Holdings confirmed", AnalystName: "James Morrison", CreatedAt: dt(-5, 13, 30)},
		{Action: "Customer CUS-10005 KYC status changed to Expired — Golden Dragon Enterprises documents overdue", AnalystName: "Sarah Chen", CreatedAt: dt(-5, 10, 0)},
		{Action: "Case CAS-00002 opened — alert investigation for Volkov International Group sanctions concern", AnalystName: "Marcus Webb", CreatedAt: dt(-5, 9, 45)},
		{Action: "Alert ALT-00033 resolved — low-risk PEP classification for Clearwater Technologies board member", AnalystName: "Lisa Chang", CreatedAt: dt(-6, 14, 0)},
		{Action: "Document DOC-00022 verified for Oaktree Trust Services — business license renewal confirmed", AnalystName: "Priya Patel", CreatedAt: dt(-7, 11, 30)},
		{Action: "Case CAS-00005 opened — EDD for Caspian Energy Ventures due to sanctioned region exposure", AnalystName: "James Morrison", CreatedAt: dt(-8, 10, 15)},
		{Action: "Alert ALT-00005 created — unusual transaction volume detected for Pacific Rim Trading", AnalystName: "David Kim", CreatedAt: dt(-8, 9, 0)},
		{Action: "Customer CUS-10016 periodic review triggered by regulatory change — Tandem Capital Advisors", AnalystName: "Marcus Webb", CreatedAt: dt(-9, 15, 30)},
		{Action: "Alert ALT-00034 resolved — renewed business license received for Canterbury Life Assurance", AnalystName: "James Morrison", CreatedAt: dt(-10, 14, 45)},
		{Action: "Case CAS-00001 opened — enhanced due diligence for Meridian Capital Holdings", AnalystName: "Sarah Chen", CreatedAt: dt(-10, 9, 15)},
		{Action: "Document DOC-00047 verified for Riviera Luxury Group — updated business license on file", AnalystName: "Marcus Webb", CreatedAt: dt(-11, 11, 0)},
		{Action: "Alert ALT-00035 resolved — address mismatch for Alpine Wealth Management clarified", AnalystName: "Priya Patel", CreatedAt: dt(-12, 16, 15)},
		{Action: "Customer CUS-10006 onboarding enhanced monitoring applied — Caspian Energy Ventures", AnalystName: "James Morrison", CreatedAt: dt(-13, 10, 30)},
		{Action: "Alert ALT-00036 resolved — structuring alert for Sunrise Healthcare dismissed as payroll activity", AnalystName: "David Kim", CreatedAt: dt(-14, 13, 0)},
		{Action: "Case CAS-00003 opened — periodic review for Sahara Investment Fund III", AnalystName: "Robert Torres", CreatedAt: dt(-15, 9, 30)},
		{Action: "Document DOC-00056 verified for Alpine Wealth Management — proof of address updated", AnalystName: "Priya Patel", CreatedAt: dt(-16, 14, 45)},
		{Action: "Alert ALT-00037 resolved — quarterly rent collection volume for Thames Valley Trust confirmed", AnalystName: "Elena Rossi", CreatedAt: dt(-17, 11, 15)},
		{Action: "Customer CUS-10023 risk tier confirmed as Medium — Jade Emperor Investment Trust annual review", AnalystName: "Elena Rossi", CreatedAt: dt(-18, 10, 0)},
		{Action: "Case CAS-00016 opened — EDD for Ironclad Security Services dual-use goods review", AnalystName: "Priya Patel", CreatedAt: dt(-18, 15, 30)},
		{Action: "Alert ALT-00038 resolved — portfolio company name similarity to sanctioned entity cleared", AnalystName: "Robert Torres", CreatedAt: dt(-20, 13, 45)},
		{Action: "Document DOC-00030 verified for Atlas Maritime Holdings — business license confirmed current", AnalystName: "James Morrison", CreatedAt: dt(-21, 10, 30)},
		{Action: "Case CAS-00013 status updated to In Progress — Aegean Maritime EDD review", AnalystName: "Elena Rossi", CreatedAt: dt(-22, 9, 0)},
		{Action: "Alert ALT-00039 resolved — former municipal official PEP classification for Borealis Fund", AnalystName: "Marcus Webb", CreatedAt: dt(-23, 14, 15)},
		{Action: "Customer CUS-10004 placed on enhanced monitoring — Volkov International Group", AnalystName: "Marcus Webb", CreatedAt: dt(-25, 11, 0)},
		{Action: "Case CAS-00007 opened — periodic review for Maple Leaf Holdings overdue", AnalystName: "David Kim", CreatedAt: dt(-25, 9, 15)},
		{Action: "Alert ALT-00042 resolved — address discrepancy for Harbour Point Capital resolved via site visit", AnalystName: "James Morrison", CreatedAt: dt(-26, 15, 30)},
		{Action: "Document DOC-00037 verified for Sterling Trade Finance — Certificate of Incorporation confirmed", AnalystName: "Lisa Chang", CreatedAt: dt(-28, 10, 45)},
		{Action: "Case CAS-00014 opened — alert investigation for Falcone Family Office structuring concerns", AnalystName: "Lisa Chang", CreatedAt: dt(-28, 9, 0)},
		{Action: "Alert ALT-00043 resolved — currency conversion explains subscription payment variations for Pinnacle AM", AnalystName: "Priya Patel", CreatedAt: dt(-30, 14, 0)},
		{Action: "Customer CUS-10009 risk factors updated — PEP among limited partners documented", AnalystName: "Priya Patel", CreatedAt: dt(-32, 11, 30)},
		{Action: "Case CAS-00011 status updated to In Progress — annual review for Oaktree Trust Services", AnalystName: "Priya Patel", CreatedAt: dt(-33, 10, 0)},
		{Action: "Alert ALT-00044 resolved — Lloyd's syndicate reinsurance counterparty confirmed not sanctioned", AnalystName: "David Kim", CreatedAt: dt(-35, 15, 45)},
		{Action: "Document DOC-00049 verified for Northern Star Pension Fund — Certificate of Incorporation current", AnalystName: "Sarah Chen", CreatedAt: dt(-37, 11, 0)},
		{Action: "Case CAS-00019 escalated — SAR filed for Golden Dragon Enterprises structuring activity", AnalystName: "David Kim", CreatedAt: dt(-38, 9, 30)},
		{Action: "Alert ALT-00045 resolved — low-level PEP classification for Zenith Global consultant", AnalystName: "James Morrison", CreatedAt: dt(-40, 14, 15)},
		{Action: "Customer CUS-10002 beneficial ownership structure verified — Oaktree Trust Services", AnalystName: "Priya Patel", CreatedAt: dt(-42, 10, 45)},
		{Action: "Case CAS-00018 escalated — Volkov International sanctions concern requires legal review", AnalystName: "Marcus Webb", CreatedAt: dt(-45, 16, 0)},
		{Action: "Alert ALT-00046 resolved — trust distribution for Jade Emperor confirmed per trust deed", AnalystName: "Elena Rossi", CreatedAt: dt(-48, 13, 30)},
		{Action: "Document DOC-00052 verified for Clearwater Technologies — business license renewed", AnalystName: "Lisa Chang", CreatedAt: dt(-50, 11, 15)},
		{Action: "Case CAS-00022 closed — Clearwater Technologies onboarding completed successfully", AnalystName: "Lisa Chang", CreatedAt: dt(-52, 10, 0)},
		{Action: "Alert ALT-00048 resolved — government agricultural subsidy confirmed for Greenfield Agri Holdings", AnalystName: "David Kim", CreatedAt: dt(-55, 14, 45)},
	}
}
