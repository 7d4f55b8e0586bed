package main

import (
	"sentinel-kyc-be/internal/model"

	"github.com/google/uuid"
)

func documentRows(cust map[string]uuid.UUID) []model.Document {
	return []model.Document{
		// Expiring within 30 days
		{DocumentId: "DOC-00001", DocType: "Passport", CustomerId: cust["CUS-10001"], IssueDate: d(-1800), ExpiryDate: dp(5), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00002", DocType: "Business License", CustomerId: cust["CUS-10003"], IssueDate: d(-350), ExpiryDate: dp(10), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00003", DocType: "Tax Registration", CustomerId: cust["CUS-10004"], IssueDate: d(-360), ExpiryDate: dp(15), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00004", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10005"], IssueDate: d(-365), ExpiryDate: dp(8), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00005", DocType: "Bank Statement", CustomerId: cust["CUS-10006"], IssueDate: d(-85), ExpiryDate: dp(5), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00006", DocType: "Proof of Address", CustomerId: cust["CUS-10007"], IssueDate: d(-80), ExpiryDate: dp(12), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00007", DocType: "Utility Bill", CustomerId: cust["CUS-10008"], IssueDate: d(-88), ExpiryDate: dp(2), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00008", DocType: "Directors Register", CustomerId: cust["CUS-10009"], IssueDate: d(-355), ExpiryDate: dp(20), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00009", DocType: "Passport", CustomerId: cust["CUS-10010"], IssueDate: d(-1750), ExpiryDate: dp(25), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00010", DocType: "Business License", CustomerId: cust["CUS-10011"], IssueDate: d(-340), ExpiryDate: dp(18), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00011", DocType: "Tax Registration", CustomerId: cust["CUS-10016"], IssueDate: d(-370), ExpiryDate: dp(7), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00012", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10022"], IssueDate: d(-360), ExpiryDate: dp(3), VerificationStatus: "Verified"},

		// Already expired
		{DocumentId: "DOC-00013", DocType: "Passport", CustomerId: cust["CUS-10005"], IssueDate: d(-1900), ExpiryDate: dp(-30), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00014", DocType: "Business License", CustomerId: cust["CUS-10022"], IssueDate: d(-400), ExpiryDate: dp(-15), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00015", DocType: "Utility Bill", CustomerId: cust["CUS-10004"], IssueDate: d(-120), ExpiryDate: dp(-25), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00016", DocType: "Bank Statement", CustomerId: cust["CUS-10001"], IssueDate: d(-150), ExpiryDate: dp(-55), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00017", DocType: "Proof of Address", CustomerId: cust["CUS-10008"], IssueDate: d(-130), ExpiryDate: dp(-40), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00018", DocType: "Tax Registration", CustomerId: cust["CUS-10005"], IssueDate: d(-420), ExpiryDate: dp(-50), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00019", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10022"], IssueDate: d(-500), ExpiryDate: dp(-10), VerificationStatus: "Expired"},
		{DocumentId: "DOC-00020", DocType: "Directors Register", CustomerId: cust["CUS-10004"], IssueDate: d(-400), ExpiryDate: dp(-20), VerificationStatus: "Expired"},

		// Verified with future expiry
		{DocumentId: "DOC-00021", DocType: "Passport", CustomerId: cust["CUS-10002"], IssueDate: d(-500), ExpiryDate: dp(800), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00022", DocType: "Business License", CustomerId: cust["CUS-10002"], IssueDate: d(-200), ExpiryDate: dp(165), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00023", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10002"], IssueDate: d(-650), ExpiryDate: dp(710), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00024", DocType: "Passport", CustomerId: cust["CUS-10003"], IssueDate: d(-300), ExpiryDate: dp(1060), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00025", DocType: "Bank Statement", CustomerId: cust["CUS-10003"], IssueDate: d(-60), ExpiryDate: dp(31), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00026", DocType: "Passport", CustomerId: cust["CUS-10006"], IssueDate: d(-400), ExpiryDate: dp(960), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00027", DocType: "Tax Registration", CustomerId: cust["CUS-10007"], IssueDate: d(-300), ExpiryDate: dp(65), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00028", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10008"], IssueDate: d(-700), ExpiryDate: dp(660), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00029", DocType: "Passport", CustomerId: cust["CUS-10012"], IssueDate: d(-400), ExpiryDate: dp(960), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00030", DocType: "Business License", CustomerId: cust["CUS-10012"], IssueDate: d(-180), ExpiryDate: dp(185), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00031", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10012"], IssueDate: d(-480), ExpiryDate: dp(880), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00032", DocType: "Passport", CustomerId: cust["CUS-10014"], IssueDate: d(-500), ExpiryDate: dp(860), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00033", DocType: "Bank Statement", CustomerId: cust["CUS-10014"], IssueDate: d(-50), ExpiryDate: dp(40), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00034", DocType: "Passport", CustomerId: cust["CUS-10015"], IssueDate: d(-300), ExpiryDate: dp(1060), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00035", DocType: "Business License", CustomerId: cust["CUS-10015"], IssueDate: d(-200), ExpiryDate: dp(165), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00036", DocType: "Tax Registration", CustomerId: cust["CUS-10017"], IssueDate: d(-250), ExpiryDate: dp(115), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00037", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10017"], IssueDate: d(-600), ExpiryDate: dp(760), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00038", DocType: "Passport", CustomerId: cust["CUS-10018"], IssueDate: d(-350), ExpiryDate: dp(1010), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00039", DocType: "Directors Register", CustomerId: cust["CUS-10018"], IssueDate: d(-200), ExpiryDate: dp(165), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00040", DocType: "Passport", CustomerId: cust["CUS-10020"], IssueDate: d(-300), ExpiryDate: dp(1060), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00041", DocType: "Business License", CustomerId: cust["CUS-10020"], IssueDate: d(-150), ExpiryDate: dp(215), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00042", DocType: "Passport", CustomerId: cust["CUS-10021"], IssueDate: d(-250), ExpiryDate: dp(1110), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00043", DocType: "Tax Registration", CustomerId: cust["CUS-10021"], IssueDate: d(-200), ExpiryDate: dp(165), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00044", DocType: "Passport", CustomerId: cust["CUS-10023"], IssueDate: d(-400), ExpiryDate: dp(960), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00045", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10023"], IssueDate: d(-500), ExpiryDate: dp(860), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00046", DocType: "Passport", CustomerId: cust["CUS-10024"], IssueDate: d(-350), ExpiryDate: dp(1010), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00047", DocType: "Business License", CustomerId: cust["CUS-10024"], IssueDate: d(-160), ExpiryDate: dp(205), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00048", DocType: "Passport", CustomerId: cust["CUS-10025"], IssueDate: d(-500), ExpiryDate: dp(860), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00049", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10025"], IssueDate: d(-900), ExpiryDate: dp(460), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00050", DocType: "Bank Statement", CustomerId: cust["CUS-10025"], IssueDate: d(-30), ExpiryDate: dp(60), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00051", DocType: "Passport", CustomerId: cust["CUS-10026"], IssueDate: d(-400), ExpiryDate: dp(960), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00052", DocType: "Business License", CustomerId: cust["CUS-10026"], IssueDate: d(-100), ExpiryDate: dp(265), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00053", DocType: "Passport", CustomerId: cust["CUS-10027"], IssueDate: d(-350), ExpiryDate: dp(1010), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00054", DocType: "Tax Registration", CustomerId: cust["CUS-10027"], IssueDate: d(-180), ExpiryDate: dp(185), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00055", DocType: "Passport", CustomerId: cust["CUS-10028"], IssueDate: d(-300), ExpiryDate: dp(1060), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00056", DocType: "Proof of Address", CustomerId: cust["CUS-10028"], IssueDate: d(-40), ExpiryDate: dp(50), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00057", DocType: "Passport", CustomerId: cust["CUS-10029"], IssueDate: d(-250), ExpiryDate: dp(1110), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00058", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10029"], IssueDate: d(-480), ExpiryDate: dp(880), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00059", DocType: "Passport", CustomerId: cust["CUS-10030"], IssueDate: d(-200), ExpiryDate: dp(1160), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00060", DocType: "Utility Bill", CustomerId: cust["CUS-10030"], IssueDate: d(-30), ExpiryDate: dp(60), VerificationStatus: "Verified"},

		// Pending verification
		{DocumentId: "DOC-00061", DocType: "Passport", CustomerId: cust["CUS-10013"], IssueDate: d(-100), ExpiryDate: dp(1260), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00062", DocType: "Business License", CustomerId: cust["CUS-10013"], IssueDate: d(-90), ExpiryDate: dp(275), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00063", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10019"], IssueDate: d(-60), ExpiryDate: dp(1300), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00064", DocType: "Passport", CustomerId: cust["CUS-10036"], IssueDate: d(-40), ExpiryDate: dp(1320), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00065", DocType: "Proof of Address", CustomerId: cust["CUS-10036"], IssueDate: d(-35), ExpiryDate: dp(55), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00066", DocType: "Business License", CustomerId: cust["CUS-10006"], IssueDate: d(-145), ExpiryDate: dp(220), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00067", DocType: "Directors Register", CustomerId: cust["CUS-10019"], IssueDate: d(-55), ExpiryDate: dp(310), VerificationStatus: "Pending"},
		{DocumentId: "DOC-00068", DocType: "Tax Registration", CustomerId: cust["CUS-10013"], IssueDate: d(-95), ExpiryDate: dp(270), VerificationStatus: "Pending"},

		// Rejected
		{DocumentId: "DOC-00069", DocType: "Bank Statement", CustomerId: cust["CUS-10004"], IssueDate: d(-100), ExpiryDate: dp(-10), VerificationStatus: "Rejected"},
		{DocumentId: "DOC-00070", DocType: "Proof of Address", CustomerId: cust["CUS-10005"], IssueDate: d(-80), ExpiryDate: dp(10), VerificationStatus: "Rejected"},
		{DocumentId: "DOC-00071", DocType: "Utility Bill", CustomerId: cust["CUS-10001"], IssueDate: d(-70), ExpiryDate: dp(20), VerificationStatus: "Rejected"},
		{DocumentId: "DOC-00072", DocType: "Bank Statement", CustomerId: cust["CUS-10008"], IssueDate: d(-90), ExpiryDate: dp(0), VerificationStatus: "Rejected"},

		// Remaining customers
		{DocumentId: "DOC-00073", DocType: "Passport", CustomerId: cust["CUS-10031"], IssueDate: d(-200), ExpiryDate: dp(1160), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00074", DocType: "Certificate of Incorporation", CustomerId: cust["CUS-10032"], IssueDate: d(-500), ExpiryDate: dp(860), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00075", DocType: "Passport", CustomerId: cust["CUS-10033"], IssueDate: d(-180), ExpiryDate: dp(1180), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00076", DocType: "Passport", CustomerId: cust["CUS-10034"], IssueDate: d(-250), ExpiryDate: dp(1110), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00077", DocType: "Passport", CustomerId: cust["CUS-10035"], IssueDate: d(-300), ExpiryDate: dp(1060), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00078", DocType: "Passport", CustomerId: cust["CUS-10037"], IssueDate: d(-350), ExpiryDate: dp(1010), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00079", DocType: "Passport", CustomerId: cust["CUS-10038"], IssueDate: d(-280), ExpiryDate: dp(1080), VerificationStatus: "Verified"},
		{DocumentId: "DOC-00080", DocType: "Passport", CustomerId: cust["CUS-10039"], IssueDate: d(-220), ExpiryDate: dp(1140), VerificationStatus: "Verified"},
	}
}
