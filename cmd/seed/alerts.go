package main

import (
	"sentinel-kyc-be/internal/model"

	"github.com/google/uuid"
)

func alertRows(cust map[string]uuid.UUID) []model.Alert {
	return []model.Alert{
		// Open
		{AlertId: "ALT-00001", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10001"], Severity: "Critical", Status: "Open", CreatedDate: d(-5), AssignedAnalyst: "Sarah Chen", Description: "Transaction volume for the current quarter exceeded 3.2x the historical average with 47 transactions totaling $2.3M, primarily to jurisdictions flagged as high-risk including BVI and Cayman Islands."},
		{AlertId: "ALT-00002", AlertType: "Sanctions Match", CustomerId: cust["CUS-10004"], Severity: "Critical", Status: "Open", CreatedDate: d(-3), AssignedAnalyst: "Marcus Webb", Description: "Potential sanctions match identified: counterparty 'VK Industrial Group' shows 87% name similarity to OFAC SDN list entry. Wire transfer of $450,000 flagged on 2024-01-15."},
		{AlertId: "ALT-00003", AlertType: "PEP Match", CustomerId: cust["CUS-10001"], Severity: "High", Status: "Open", CreatedDate: d(-10), AssignedAnalyst: "Sarah Chen", Description: "New PEP screening match: board director Alexander Volkov identified as relative of a senior government official in a CIS country. Relationship requires enhanced due diligence review."},
		{AlertId: "ALT-00004", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10005"], Severity: "Critical", Status: "Open", CreatedDate: d(-2), AssignedAnalyst: "David Kim", Description: "Structuring pattern detected: 12 deposits between $8,500 and $9,800 over a 3-week period, consistent with deliberate avoidance of the $10,000 reporting threshold. Total: $112,400."},
		{AlertId: "ALT-00005", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10003"], Severity: "High", Status: "Open", CreatedDate: d(-8), AssignedAnalyst: "David Kim", Description: "Outbound wire transfers increased 280% month-over-month. 23 transactions totaling $1.8M directed to previously unseen counterparties in Southeast Asian jurisdictions."},
		{AlertId: "ALT-00006", AlertType: "Document Expired", CustomerId: cust["CUS-10022"], Severity: "Medium", Status: "Open", CreatedDate: d(-15), AssignedAnalyst: "David Kim", Description: "Primary identification document (passport) for UBO Marcus Henderson expired 30 days ago. KYC file incomplete without valid ID. Customer contacted but no response received."},
		{AlertId: "ALT-00007", AlertType: "Address Mismatch", CustomerId: cust["CUS-10006"], Severity: "Medium", Status: "Open", CreatedDate: d(-12), AssignedAnalyst: "James Morrison", Description: "Registered office address on file does not match the address provided in the latest bank statement. Discrepancy may indicate undisclosed change of operations or virtual office usage."},
		{AlertId: "ALT-00008", AlertType: "Sanctions Match", CustomerId: cust["CUS-10007"], Severity: "High", Status: "Open", CreatedDate: d(-7), AssignedAnalyst: "Elena Rossi", Description: "Vessel 'MV Aegean Star' operated by subsidiary appeared in port call data for a sanctioned country. Potential violation of maritime sanctions regime requires immediate investigation."},
		{AlertId: "ALT-00009", AlertType: "PEP Match", CustomerId: cust["CUS-10008"], Severity: "High", Status: "Open", CreatedDate: d(-4), AssignedAnalyst: "Robert Torres", Description: "Quarterly PEP screening identified new match: fund investor Hassan Al-Rashidi listed as a politically exposed person — former minister of finance in a Gulf state."},
		{AlertId: "ALT-00010", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10009"], Severity: "Medium", Status: "Open", CreatedDate: d(-18), AssignedAnalyst: "Priya Patel", Description: "Capital call disbursements to portfolio companies increased significantly. Three transactions over $5M each within 48 hours to newly created entities. Pattern requires review."},
		{AlertId: "ALT-00011", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10010"], Severity: "High", Status: "Open", CreatedDate: d(-6), AssignedAnalyst: "Lisa Chang", Description: "Multiple cash deposits across 4 bank branches within a 5-day period, each below reporting threshold. Total: $87,600. Pattern consistent with structuring to avoid CTR filing."},
		{AlertId: "ALT-00012", AlertType: "Document Expired", CustomerId: cust["CUS-10005"], Severity: "Medium", Status: "Open", CreatedDate: d(-20), AssignedAnalyst: "Sarah Chen", Description: "Certificate of Incorporation for Golden Dragon Enterprises expired. Annual renewal not filed. May indicate dormant company status or administrative neglect."},
		{AlertId: "ALT-00013", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10011"], Severity: "Medium", Status: "Open", CreatedDate: d(-14), AssignedAnalyst: "Sarah Chen", Description: "Fund redemption activity increased 150% versus trailing 12-month average. Three large redemption requests from a single investor class. Monitoring for potential run risk."},
		{AlertId: "ALT-00014", AlertType: "Address Mismatch", CustomerId: cust["CUS-10019"], Severity: "Low", Status: "Open", CreatedDate: d(-25), AssignedAnalyst: "Sarah Chen", Description: "Utility bill provided for address verification references a different suite number than the registered office. Minor discrepancy but flagged for completeness."},
		{AlertId: "ALT-00015", AlertType: "PEP Match", CustomerId: cust["CUS-10024"], Severity: "Medium", Status: "Open", CreatedDate: d(-9), AssignedAnalyst: "Marcus Webb", Description: "Client representative Pierre Dubois identified as nephew of a sitting EU parliamentarian. Relationship is indirect but requires documentation under PEP policy."},
		{AlertId: "ALT-00016", AlertType: "Sanctions Match", CustomerId: cust["CUS-10003"], Severity: "Critical", Status: "Open", CreatedDate: d(-1), AssignedAnalyst: "David Kim", Description: "Trade counterparty 'Shenzhen Industrial Materials Co' flagged by OFAC secondary sanctions screening. $320,000 invoice pending payment requires hold and review."},
		{AlertId: "ALT-00017", AlertType: "Document Expired", CustomerId: cust["CUS-10016"], Severity: "Low", Status: "Open", CreatedDate: d(-30), AssignedAnalyst: "Marcus Webb", Description: "Tax registration certificate for Tandem Capital Advisors approaching renewal deadline. Currently valid but will expire in 15 days if not renewed."},
		{AlertId: "ALT-00018", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10021"], Severity: "Medium", Status: "Open", CreatedDate: d(-11), AssignedAnalyst: "Priya Patel", Description: "Government contract payment of $2.1M received followed by immediate outbound transfers totaling $1.9M to three different entities. Rapid pass-through pattern flagged."},

		// Under Review
		{AlertId: "ALT-00019", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10002"], Severity: "High", Status: "Under Review", CreatedDate: d(-35), AssignedAnalyst: "Priya Patel", Description: "Wire transfers to 7 new counterparties in a single month, totaling $4.2M. Investigation ongoing — analyst reviewing counterparty documentation and transaction rationale."},
		{AlertId: "ALT-00020", AlertType: "Sanctions Match", CustomerId: cust["CUS-10001"], Severity: "Critical", Status: "Under Review", CreatedDate: d(-28), AssignedAnalyst: "Sarah Chen", Description: "Name match against EU consolidated sanctions list for business associate. Currently under review — compliance team assessing whether the association is direct or incidental."},
		{AlertId: "ALT-00021", AlertType: "PEP Match", CustomerId: cust["CUS-10010"], Severity: "High", Status: "Under Review", CreatedDate: d(-40), AssignedAnalyst: "Lisa Chang", Description: "UBO Giovanni Falcone identified as a former regional government official in Italy. Enhanced due diligence documentation being collected to assess ongoing risk."},
		{AlertId: "ALT-00022", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10003"], Severity: "High", Status: "Under Review", CreatedDate: d(-33), AssignedAnalyst: "David Kim", Description: "Series of 15 payments between $4,000 and $4,900 to the same beneficiary over 6 weeks. Analyst investigating whether this represents installment payments or deliberate structuring."},
		{AlertId: "ALT-00023", AlertType: "Document Expired", CustomerId: cust["CUS-10014"], Severity: "Medium", Status: "Under Review", CreatedDate: d(-45), AssignedAnalyst: "Elena Rossi", Description: "Annual financial statements for Helvetia Fiduciary Services are 45 days overdue. Client claims auditor delays. Follow-up scheduled for next week."},
		{AlertId: "ALT-00024", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10017"], Severity: "Medium", Status: "Under Review", CreatedDate: d(-38), AssignedAnalyst: "Lisa Chang", Description: "Trade finance utilization rate jumped from 40% to 92% of facility limit within two weeks. Review in progress to verify underlying trade documentation supports the increase."},
		{AlertId: "ALT-00025", AlertType: "Address Mismatch", CustomerId: cust["CUS-10004"], Severity: "Medium", Status: "Under Review", CreatedDate: d(-42), AssignedAnalyst: "Marcus Webb", Description: "Corporate registry search reveals new registered address in a different BVI district. Client has not notified us of the change. Verification in progress."},
		{AlertId: "ALT-00026", AlertType: "Sanctions Match", CustomerId: cust["CUS-10021"], Severity: "High", Status: "Under Review", CreatedDate: d(-30), AssignedAnalyst: "Priya Patel", Description: "Sub-contractor identified in security services supply chain appears on a regional sanctions watchlist. Reviewing contractual relationships and exposure level."},
		{AlertId: "ALT-00027", AlertType: "PEP Match", CustomerId: cust["CUS-10009"], Severity: "Medium", Status: "Under Review", CreatedDate: d(-50), AssignedAnalyst: "Priya Patel", Description: "Limited partner Sir James Worthington holds a hereditary peerage and sits on a parliamentary committee. Low-risk PEP but requires annual certification under policy."},
		{AlertId: "ALT-00028", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10011"], Severity: "Low", Status: "Under Review", CreatedDate: d(-55), AssignedAnalyst: "Sarah Chen", Description: "Multiple small subscription payments from retail investors detected. Likely legitimate investment activity but pattern triggered automated structuring alert. Reviewing."},
		{AlertId: "ALT-00029", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10018"], Severity: "Medium", Status: "Under Review", CreatedDate: d(-32), AssignedAnalyst: "Robert Torres", Description: "Property acquisition payments of $8.5M across 3 transactions in a single week. Reviewing sale/purchase agreements to confirm legitimate real estate activity."},
		{AlertId: "ALT-00030", AlertType: "Document Expired", CustomerId: cust["CUS-10008"], Severity: "Low", Status: "Under Review", CreatedDate: d(-48), AssignedAnalyst: "Robert Torres", Description: "Fund prospectus supplement is 6 months past renewal date. Legal team reviewing whether this triggers regulatory notification requirements."},

		// Resolved
		{AlertId: "ALT-00031", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10025"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-90), AssignedAnalyst: "Sarah Chen", Description: "Pension fund quarterly rebalancing caused elevated transaction volumes. Confirmed legitimate portfolio management activity. No further action required."},
		{AlertId: "ALT-00032", AlertType: "Sanctions Match", CustomerId: cust["CUS-10012"], Severity: "High", Status: "Resolved", CreatedDate: d(-85), AssignedAnalyst: "James Morrison", Description: "False positive: 'Atlas Shipping Ltd' flagged but confirmed different entity from 'Atlas Maritime Shipping' on sanctions list. Different jurisdiction, ownership, and registration."},
		{AlertId: "ALT-00033", AlertType: "PEP Match", CustomerId: cust["CUS-10026"], Severity: "Low", Status: "Resolved", CreatedDate: d(-100), AssignedAnalyst: "Lisa Chang", Description: "Board member Robert Clearwater identified as former low-level government advisor. Role was advisory only, no decision-making authority. Classified as low-risk PEP. Annual review scheduled."},
		{AlertId: "ALT-00034", AlertType: "Document Expired", CustomerId: cust["CUS-10027"], Severity: "Low", Status: "Resolved", CreatedDate: d(-75), AssignedAnalyst: "James Morrison", Description: "Renewed business license received and verified. Document updated in system. KYC file now complete and compliant."},
		{AlertId: "ALT-00035", AlertType: "Address Mismatch", CustomerId: cust["CUS-10028"], Severity: "Low", Status: "Resolved", CreatedDate: d(-95), AssignedAnalyst: "Priya Patel", Description: "Client confirmed office relocation within Zurich. New address verified against commercial registry. All records updated."},
		{AlertId: "ALT-00036", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10029"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-80), AssignedAnalyst: "David Kim", Description: "Regular payroll disbursements to healthcare staff across multiple clinics caused pattern alert. Confirmed legitimate payroll activity. Alert dismissed as false positive."},
		{AlertId: "ALT-00037", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10030"], Severity: "Low", Status: "Resolved", CreatedDate: d(-110), AssignedAnalyst: "Elena Rossi", Description: "Quarterly rent collections from trust properties caused volume spike. Normal seasonal pattern consistent with lease payment schedules."},
		{AlertId: "ALT-00038", AlertType: "Sanctions Match", CustomerId: cust["CUS-10031"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-70), AssignedAnalyst: "Robert Torres", Description: "Portfolio company 'Keystone Analytics' flagged due to name similarity with sanctioned entity. Confirmed no connection — different industry, ownership, and geography."},
		{AlertId: "ALT-00039", AlertType: "PEP Match", CustomerId: cust["CUS-10032"], Severity: "Low", Status: "Resolved", CreatedDate: d(-120), AssignedAnalyst: "Marcus Webb", Description: "Fund manager previously held elected office in local municipality 15 years ago. No current political exposure. Risk assessed as negligible."},
		{AlertId: "ALT-00040", AlertType: "Document Expired", CustomerId: cust["CUS-10033"], Severity: "Low", Status: "Resolved", CreatedDate: d(-65), AssignedAnalyst: "Sarah Chen", Description: "Renewed Certificate of Good Standing received from Singapore ACRA. Document verified and filed. Compliance status current."},
		{AlertId: "ALT-00041", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10034"], Severity: "Low", Status: "Resolved", CreatedDate: d(-105), AssignedAnalyst: "Lisa Chang", Description: "Insurance premium collection spike during annual renewal period. Volume consistent with historical Q4 patterns. No anomalies detected."},
		{AlertId: "ALT-00042", AlertType: "Address Mismatch", CustomerId: cust["CUS-10035"], Severity: "Low", Status: "Resolved", CreatedDate: d(-88), AssignedAnalyst: "James Morrison", Description: "Suite number discrepancy resolved — client operates from two floors in the same building. Both addresses verified through site visit."},
		{AlertId: "ALT-00043", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10013"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-60), AssignedAnalyst: "Priya Patel", Description: "Investor subscription payments came in varying amounts due to currency conversion from SGD to USD. Not structuring — FX-related variation explained."},
		{AlertId: "ALT-00044", AlertType: "Sanctions Match", CustomerId: cust["CUS-10015"], Severity: "High", Status: "Resolved", CreatedDate: d(-55), AssignedAnalyst: "David Kim", Description: "Reinsurance counterparty initially flagged but confirmed to be a Lloyd's syndicate — regulated entity with no sanctions nexus. False positive cleared."},
		{AlertId: "ALT-00045", AlertType: "PEP Match", CustomerId: cust["CUS-10020"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-78), AssignedAnalyst: "James Morrison", Description: "Consultant Dr. Eva Hartmann identified as spouse of a Swiss cantonal official. Low-level PEP classification applied. Enhanced monitoring not required per policy."},
		{AlertId: "ALT-00046", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10023"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-68), AssignedAnalyst: "Elena Rossi", Description: "Trust distribution to beneficiaries exceeded normal quarterly amount. Trustee confirmed early distribution approved by trust deed for educational expenses."},
		{AlertId: "ALT-00047", AlertType: "Document Expired", CustomerId: cust["CUS-10036"], Severity: "Low", Status: "Resolved", CreatedDate: d(-50), AssignedAnalyst: "Priya Patel", Description: "Proof of address for trustee updated with new utility bill. Previous document had expired during onboarding process. File now complete."},
		{AlertId: "ALT-00048", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10037"], Severity: "Low", Status: "Resolved", CreatedDate: d(-115), AssignedAnalyst: "David Kim", Description: "Government subsidy payments received in bulk caused volume spike. Confirmed as legitimate agricultural subsidy disbursement through official channels."},
		{AlertId: "ALT-00049", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10038"], Severity: "Low", Status: "Resolved", CreatedDate: d(-92), AssignedAnalyst: "Elena Rossi", Description: "Regular monthly transfers to family members flagged as potential structuring. Confirmed as standing instructions for family allowances. Amounts consistent over 24 months."},
		{AlertId: "ALT-00050", AlertType: "Address Mismatch", CustomerId: cust["CUS-10039"], Severity: "Low", Status: "Resolved", CreatedDate: d(-82), AssignedAnalyst: "Robert Torres", Description: "PO Box address provided on application differed from physical office. Both addresses verified — PO Box used for correspondence, physical office confirmed."},
		{AlertId: "ALT-00051", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10040"], Severity: "Low", Status: "Resolved", CreatedDate: d(-97), AssignedAnalyst: "Marcus Webb", Description: "Year-end inventory purchases caused transaction volume increase. Consistent with prior year patterns. Trade documentation verified."},
		{AlertId: "ALT-00052", AlertType: "Sanctions Match", CustomerId: cust["CUS-10014"], Severity: "Medium", Status: "Resolved", CreatedDate: d(-72), AssignedAnalyst: "Elena Rossi", Description: "Beneficiary name 'M. Hassan' matched broadly against sanctions list. Full name verification confirmed no match. Different date of birth and nationality."},
		{AlertId: "ALT-00053", AlertType: "PEP Match", CustomerId: cust["CUS-10011"], Severity: "Low", Status: "Resolved", CreatedDate: d(-108), AssignedAnalyst: "Sarah Chen", Description: "Investor identified as former campaign treasurer for a US congressional candidate. Not a PEP under our policy definition. Documented and closed."},
		{AlertId: "ALT-00054", AlertType: "Document Expired", CustomerId: cust["CUS-10025"], Severity: "Low", Status: "Resolved", CreatedDate: d(-62), AssignedAnalyst: "Sarah Chen", Description: "Audited financial statements updated for current fiscal year. Previous year's statements had technically expired per 12-month policy. Now current."},

		// Dismissed
		{AlertId: "ALT-00055", AlertType: "Sanctions Match", CustomerId: cust["CUS-10026"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-130), AssignedAnalyst: "Lisa Chang", Description: "Automated screening flagged common name 'Global Technologies' against sanctions list. Completely different entity in different country. Dismissed as false positive."},
		{AlertId: "ALT-00056", AlertType: "PEP Match", CustomerId: cust["CUS-10027"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-140), AssignedAnalyst: "James Morrison", Description: "Name match on 'Canterbury' triggered regional political figure screening. No connection to the insurance company. Geographic coincidence. Dismissed."},
		{AlertId: "ALT-00057", AlertType: "Address Mismatch", CustomerId: cust["CUS-10030"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-125), AssignedAnalyst: "Elena Rossi", Description: "Automated address verification flagged difference between 'Street' and 'St.' abbreviation. Same address confirmed. System sensitivity too high — dismissed."},
		{AlertId: "ALT-00058", AlertType: "Document Expired", CustomerId: cust["CUS-10031"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-135), AssignedAnalyst: "Robert Torres", Description: "Alert triggered for passport expiry but the document type in question was a corporate certificate, not a passport. Data entry error in document system. Dismissed."},
		{AlertId: "ALT-00059", AlertType: "Structuring Pattern", CustomerId: cust["CUS-10034"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-145), AssignedAnalyst: "Lisa Chang", Description: "Automated pattern detection flagged regular premium payments as structuring. These are scheduled insurance premium collections at fixed amounts. Dismissed — expected activity."},
		{AlertId: "ALT-00060", AlertType: "Unusual Transaction Volume", CustomerId: cust["CUS-10032"], Severity: "Low", Status: "Dismissed", CreatedDate: d(-150), AssignedAnalyst: "Marcus Webb", Description: "Infrastructure fund capital deployment caused temporary volume spike during project closing. Fully documented with legal agreements. Normal fund activity dismissed."},
	}
}
